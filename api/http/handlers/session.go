package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/skillmentor/backend/api/http/presenter"
	"github.com/skillmentor/backend/pkg/session"
)

type SessionHandler struct {
	sessions *session.Store
}

func NewSessionHandler(sessions *session.Store) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// Get returns the caller's current session state.
// @Summary Current session state
// @Tags    session
// @Produce json
// @Security BearerAuth
// @Success 200 {object} session.State
// @Router  /session [get]
func (h *SessionHandler) Get(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)
	return presenter.JSON(c, http.StatusOK, h.sessions.Get(userID))
}

// Reset is the "start fresh" action: keeps the identity, clears the rest.
// @Summary Start fresh
// @Tags    session
// @Produce json
// @Security BearerAuth
// @Success 200 {object} session.State
// @Router  /session/reset [post]
func (h *SessionHandler) Reset(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)
	state := h.sessions.Apply(userID, session.Reset)
	return presenter.JSON(c, http.StatusOK, state)
}
