package handler_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRegisterRoutes verifies that every route is mounted. A 404 means the
// route is missing; any other status comes from the handler or middleware and
// is fine for this existence check.
func TestRegisterRoutes(t *testing.T) {
	f := newFixture(t)

	testCases := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/v1/register"},
		{http.MethodPost, "/api/v1/login"},
		{http.MethodGet, "/api/v1/users/"},
		{http.MethodGet, "/api/v1/users/me"},
		{http.MethodGet, "/api/v1/users/some-id"},
		{http.MethodPut, "/api/v1/users/some-id"},
		{http.MethodDelete, "/api/v1/users/some-id"},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%s_%s_exists", tc.method, tc.path), func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			resp, err := f.app.Test(req)
			require.NoError(t, err)

			assert.NotEqual(t, http.StatusNotFound, resp.StatusCode)
		})
	}
}

// TestProtectedRoutesRejectAnonymous checks that the user routes sit behind
// the bearer middleware.
func TestProtectedRoutesRejectAnonymous(t *testing.T) {
	f := newFixture(t)

	testCases := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/users/"},
		{http.MethodGet, "/api/v1/users/me"},
		{http.MethodGet, "/api/v1/users/some-id"},
		{http.MethodPut, "/api/v1/users/some-id"},
		{http.MethodDelete, "/api/v1/users/some-id"},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%s_%s_requires_auth", tc.method, tc.path), func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			resp, err := f.app.Test(req)
			require.NoError(t, err)

			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		})
	}
}
