package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/skillmentor/backend/api/http/presenter"
	"github.com/skillmentor/backend/pkg/profile"
	"github.com/skillmentor/backend/pkg/session"
)

type ProfileHandler struct {
	repo     profile.Repository
	sessions *session.Store
}

func NewProfileHandler(repo profile.Repository, sessions *session.Store) *ProfileHandler {
	return &ProfileHandler{repo: repo, sessions: sessions}
}

// Save upserts the caller's profile (resume text, interests, goal and the
// last analysis) as one whole record keyed by user id.
// @Summary Save profile
// @Tags    profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /profile/save [post]
func (h *ProfileHandler) Save(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)
	email, _ := c.Locals("email").(string)
	state := h.sessions.Get(userID)
	if state.ResumeText == "" {
		return presenter.Error(c, http.StatusBadRequest, "nothing to save: no resume uploaded yet")
	}
	rec := profile.Record{
		UserID:     userID,
		Email:      email,
		ResumeText: state.ResumeText,
		Interests:  state.Interests,
		CareerGoal: state.CareerGoal,
		Analysis:   state.Analysis,
		UpdatedAt:  time.Now().UTC(),
	}
	if err := h.repo.Upsert(c.Context(), rec); err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to save profile")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"message": "profile saved"})
}

// Get loads the caller's persisted profile.
// @Summary Load profile
// @Tags    profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} profile.Record
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /profile [get]
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)
	rec, err := h.repo.Get(c.Context(), userID)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "profile not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to load profile")
	}
	return presenter.JSON(c, http.StatusOK, rec)
}
