package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/skillmentor/backend/api/http/presenter"
	"github.com/skillmentor/backend/pkg/auth"
	"github.com/skillmentor/backend/pkg/identity"
	"github.com/skillmentor/backend/pkg/session"
)

type AuthHandler struct {
	useCase  auth.UseCase
	sessions *session.Store
}

func NewAuthHandler(useCase auth.UseCase, sessions *session.Store) *AuthHandler {
	return &AuthHandler{useCase: useCase, sessions: sessions}
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles user registration via the external identity provider.
// @Summary Register user
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body registerRequest true "registration payload"
// @Success 201 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 409 {object} presenter.ErrorResponse
// @Failure 429 {object} presenter.ErrorResponse
// @Router  /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return presenter.Error(c, http.StatusBadRequest, "email and password are required")
	}

	result, err := h.useCase.Register(c.Context(), req.Email, req.Password)
	if err != nil {
		return identityError(c, err, "failed to register user")
	}

	return presenter.JSON(c, http.StatusCreated, fiber.Map{
		"id":    result.Account.UserID,
		"email": result.Account.Email,
		"token": result.Token,
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles user login and seeds the user's session state.
// @Summary Login
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body loginRequest true "login payload"
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 429 {object} presenter.ErrorResponse
// @Router  /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return presenter.Error(c, http.StatusBadRequest, "email and password are required")
	}

	result, err := h.useCase.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return identityError(c, err, "failed to login")
	}

	h.sessions.Apply(result.Account.UserID, func(s session.State) session.State {
		return session.LoggedIn(s, result.Account.UserID, result.Account.Email)
	})

	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"id":    result.Account.UserID,
		"email": result.Account.Email,
		"token": result.Token,
	})
}

// Logout clears the user's session state.
// @Summary Logout
// @Tags    auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Router  /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)
	h.sessions.Apply(userID, session.LoggedOut)
	return presenter.JSON(c, http.StatusOK, fiber.Map{"message": "logged out successfully"})
}

// identityError maps typed identity errors onto HTTP statuses and
// user-facing messages.
func identityError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, identity.ErrEmailExists):
		return presenter.Error(c, http.StatusConflict, identity.ErrEmailExists.Error())
	case errors.Is(err, identity.ErrWeakPassword):
		return presenter.Error(c, http.StatusBadRequest, identity.ErrWeakPassword.Error())
	case errors.Is(err, identity.ErrInvalidEmail):
		return presenter.Error(c, http.StatusBadRequest, identity.ErrInvalidEmail.Error())
	case errors.Is(err, identity.ErrInvalidCredentials):
		return presenter.Error(c, http.StatusUnauthorized, identity.ErrInvalidCredentials.Error())
	case errors.Is(err, identity.ErrTooManyAttempts):
		return presenter.Error(c, http.StatusTooManyRequests, identity.ErrTooManyAttempts.Error())
	}
	return presenter.Error(c, http.StatusInternalServerError, fallback)
}
