package handlers

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/skillmentor/backend/api/http/presenter"
	"github.com/skillmentor/backend/pkg/profile"
	"github.com/skillmentor/backend/pkg/resume"
	"github.com/skillmentor/backend/pkg/session"
)

type ResumeHandler struct {
	sessions *session.Store
	goals    profile.GoalSuggester
	// Limit uploaded file size read into memory (bytes)
	maxBytes int64
	baseDir  string
}

func NewResumeHandler(sessions *session.Store, goals profile.GoalSuggester) *ResumeHandler {
	return &ResumeHandler{sessions: sessions, goals: goals, maxBytes: 15 << 20, baseDir: "uploads"} // 15MB
}

// Upload accepts a resume (PDF/DOCX), extracts its text and records it in
// the session along with the selected interests and optional career goal.
// @Summary Upload resume
// @Description Accepts a PDF or DOCX resume, extracts the text and stores it in the user's session together with interests and career goal.
// @Tags    resume
// @Accept  multipart/form-data
// @Produce json
// @Param   file formData file true "Resume file (PDF or DOCX)"
// @Param   interests formData string false "Comma-separated interests"
// @Param   careerGoal formData string false "Career goal"
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /resume/upload [post]
func (h *ResumeHandler) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil || fh == nil {
		return presenter.Error(c, http.StatusBadRequest, "file is required (pdf or docx)")
	}
	mimeType := fh.Header.Get("Content-Type")
	file, err := fh.Open()
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "failed to open uploaded file")
	}
	defer file.Close()

	data, err := readAtMost(file, h.maxBytes)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	text, err := resume.ExtractText(data, mimeType)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, fmt.Sprintf("failed to read resume: %v", err))
	}
	if text == "" {
		return presenter.Error(c, http.StatusBadRequest, "empty resume content")
	}

	// Keep the raw file for later re-processing.
	if err := os.MkdirAll(h.baseDir, 0o755); err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to prepare storage")
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	dst := filepath.Join(h.baseDir, uuid.New().String()+ext)
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to store file")
	}

	interests := splitInterests(c.FormValue("interests"))
	careerGoal := strings.TrimSpace(c.FormValue("careerGoal"))

	userID, _ := c.Locals("userId").(string)
	state := h.sessions.Apply(userID, func(s session.State) session.State {
		s = session.ResumeUploaded(s, text, interests)
		if careerGoal != "" {
			s = session.GoalChosen(s, careerGoal)
		}
		return s
	})

	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"filename":   fh.Filename,
		"sizeB":      len(data),
		"chars":      len(text),
		"interests":  state.Interests,
		"careerGoal": state.CareerGoal,
	})
}

// SuggestGoal asks the model for a suitable career goal based on the
// session's resume text and interests.
// @Summary Suggest a career goal
// @Tags    resume
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 502 {object} presenter.ErrorResponse
// @Router  /goal/suggest [post]
func (h *ResumeHandler) SuggestGoal(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)
	state := h.sessions.Get(userID)
	if state.ResumeText == "" {
		return presenter.Error(c, http.StatusBadRequest, "no resume uploaded yet")
	}
	goal, err := h.goals.Suggest(c.Context(), state.ResumeText, state.Interests)
	if err != nil {
		return presenter.Error(c, http.StatusBadGateway, fmt.Sprintf("failed to suggest a career goal: %v", err))
	}
	h.sessions.Apply(userID, func(s session.State) session.State {
		return session.GoalChosen(s, goal)
	})
	return presenter.JSON(c, http.StatusOK, fiber.Map{"careerGoal": goal})
}

func splitInterests(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func readAtMost(f multipart.File, max int64) ([]byte, error) {
	limited := io.LimitReader(f, max+1)
	b, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(b)) > max {
		return nil, fmt.Errorf("file too large: limit is %d bytes", max)
	}
	return b, nil
}
