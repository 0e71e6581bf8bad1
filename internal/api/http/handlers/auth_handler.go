package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/helpdesk-labs/ticket-tracker/internal/api/dto"
	"github.com/helpdesk-labs/ticket-tracker/internal/domain"
	"github.com/helpdesk-labs/ticket-tracker/internal/service"
	apperrors "github.com/helpdesk-labs/ticket-tracker/pkg/util"
)

// AuthHandler exposes signup and login endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Signup handles POST /api/auth/signup.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Role == "" {
		req.Role = domain.RoleUser
	}

	user, token, exp, err := h.auth.Signup(c.Context(), req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(dto.AuthResponse{
		Token:     token,
		ExpiresAt: exp,
		User:      dto.NewUserResponse(user),
	})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("email and password required", nil)
	}

	user, token, exp, err := h.auth.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(dto.AuthResponse{
		Token:     token,
		ExpiresAt: exp,
		User:      dto.NewUserResponse(user),
	})
}
