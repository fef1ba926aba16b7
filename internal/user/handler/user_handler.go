package handler

import (
	"errors"

	"github.com/andriyanto/user-service/config"
	apperrors "github.com/andriyanto/user-service/internal/errors"
	"github.com/andriyanto/user-service/internal/user/dto"
	"github.com/andriyanto/user-service/internal/user/service"
	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	userService *service.UserService
	tokens      service.TokenGenerator
	cfg         *config.Config
}

func NewUserHandler(userService *service.UserService, tokens service.TokenGenerator, cfg *config.Config) *UserHandler {
	return &UserHandler{
		userService: userService,
		tokens:      tokens,
		cfg:         cfg,
	}
}

// errorStatus maps the service error taxonomy onto HTTP statuses. The
// services themselves never see transport concerns.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		return fiber.StatusConflict
	case errors.Is(err, apperrors.ErrInvalidCredentials),
		errors.Is(err, apperrors.ErrInvalidToken),
		errors.Is(err, apperrors.ErrTokenExpired):
		return fiber.StatusUnauthorized
	case errors.Is(err, apperrors.ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, apperrors.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, apperrors.ErrRepositoryUnavailable):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

func respondError(c *fiber.Ctx, err error) error {
	return c.Status(errorStatus(err)).JSON(fiber.Map{"error": err.Error()})
}

func (h *UserHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	user, err := h.userService.Register(c.Context(), input)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewUserOutput(user))
}

func (h *UserHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	out, err := h.userService.Login(c.Context(), input)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(out)
}

func (h *UserHandler) Me(c *fiber.Ctx) error {
	user, err := h.userService.GetByID(c.Context(), AuthenticatedUserID(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.NewUserOutput(user))
}

func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	user, err := h.userService.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.NewUserOutput(user))
}

func (h *UserHandler) List(c *fiber.Ctx) error {
	skip := c.QueryInt("skip", 0)
	limit := c.QueryInt("limit", h.cfg.DefaultPageLimit)

	out, err := h.userService.List(c.Context(), skip, limit)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(out)
}

func (h *UserHandler) Update(c *fiber.Ctx) error {
	var input dto.UpdateUserInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	user, err := h.userService.Update(c.Context(), AuthenticatedUserID(c), c.Params("id"), input)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.NewUserOutput(user))
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := h.userService.Delete(c.Context(), AuthenticatedUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.DeleteUserOutput{ID: id})
}
