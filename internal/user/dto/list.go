package dto

type ListUsersOutput struct {
	Users   []UserOutput `json:"users"`
	Total   int          `json:"total"`
	Skip    int          `json:"skip"`
	Limit   int          `json:"limit"`
	HasMore bool         `json:"has_more"`
}
