package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/skillmentor/backend/api/http/presenter"
	"github.com/skillmentor/backend/pkg/profile"
	"github.com/skillmentor/backend/pkg/session"
)

type AnalysisHandler struct {
	sessions  *session.Store
	evaluator profile.Evaluator
	roadmaps  profile.RoadmapGenerator
	projects  profile.ProjectRecommender
}

func NewAnalysisHandler(sessions *session.Store, evaluator profile.Evaluator, roadmaps profile.RoadmapGenerator, projects profile.ProjectRecommender) *AnalysisHandler {
	return &AnalysisHandler{sessions: sessions, evaluator: evaluator, roadmaps: roadmaps, projects: projects}
}

// Start runs the skill-gap analysis over the session's resume, interests and
// career goal, and moves the session to the dashboard.
// @Summary Start resume analysis
// @Tags    analysis
// @Produce json
// @Security BearerAuth
// @Success 200 {object} profile.AnalysisRecord
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /analysis/start [post]
func (h *AnalysisHandler) Start(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)
	state := h.sessions.Get(userID)
	if state.ResumeText == "" {
		return presenter.Error(c, http.StatusBadRequest, "no resume uploaded yet")
	}
	if state.CareerGoal == "" {
		return presenter.Error(c, http.StatusBadRequest, "no career goal selected yet")
	}

	rec := h.evaluator.Evaluate(c.Context(), state.ResumeText, state.Interests, state.CareerGoal)
	h.sessions.Apply(userID, func(s session.State) session.State {
		return session.Analyzed(s, rec)
	})
	return presenter.JSON(c, http.StatusOK, rec)
}

// Roadmap returns an ordered learning roadmap for the skills the last
// analysis found missing.
// @Summary Learning roadmap
// @Tags    analysis
// @Produce json
// @Security BearerAuth
// @Success 200 {array} profile.RoadmapItem
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /analysis/roadmap [get]
func (h *AnalysisHandler) Roadmap(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)
	state := h.sessions.Get(userID)
	if state.Analysis == nil {
		return presenter.Error(c, http.StatusBadRequest, "no analysis found, start analysis first")
	}
	items := h.roadmaps.Generate(c.Context(), state.Analysis.Result.MissingSkills)
	return presenter.JSON(c, http.StatusOK, items)
}

// Projects returns practice-project suggestions for the session's career
// goal and marks project suggestions as shown.
// @Summary Project suggestions
// @Tags    analysis
// @Produce json
// @Security BearerAuth
// @Success 200 {array} profile.ProjectSuggestion
// @Router  /analysis/projects [get]
func (h *AnalysisHandler) Projects(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)
	state := h.sessions.Get(userID)
	suggestions := h.projects.Suggest(c.Context(), state.CareerGoal)
	h.sessions.Apply(userID, func(s session.State) session.State {
		return session.ProjectsToggled(s, true)
	})
	return presenter.JSON(c, http.StatusOK, suggestions)
}
