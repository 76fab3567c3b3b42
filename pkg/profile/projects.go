package profile

import (
	"context"
	"fmt"

	"github.com/skillmentor/backend/pkg/llm"
)

// ProjectRecommender suggests practice projects for a career goal.
type ProjectRecommender interface {
	Suggest(ctx context.Context, careerGoal string) []ProjectSuggestion
}

type projectRecommender struct {
	llm llm.ChatModel
}

func NewProjectRecommender(model llm.ChatModel) ProjectRecommender {
	return &projectRecommender{llm: model}
}

const projectsSystem = "You are a career mentor. Return ONLY a JSON array, no markdown, no extra text."

func projectsPrompt(careerGoal string) string {
	return fmt.Sprintf(`The user's career goal is: %s

Tasks:
1. Suggest 2-4 practical and real time projects the user can do to gain relevant knowledge and experience.
2. Provide a short description for each project.
3. Suggest an estimated timeline to complete each project.

Important:
- Return ONLY a JSON array of objects with keys:
  - project_name
  - description
  - estimated_duration
- Do NOT include explanations, Markdown, or text outside the JSON.`,
		careerGoal,
	)
}

// Suggest short-circuits on an absent goal: exactly one informational
// placeholder and no model call.
func (s *projectRecommender) Suggest(ctx context.Context, careerGoal string) []ProjectSuggestion {
	if careerGoal == "" {
		return []ProjectSuggestion{{Message: "No career goal provided. Cannot suggest projects."}}
	}

	raw, err := s.llm.Ask(ctx, projectsSystem, projectsPrompt(careerGoal))
	if err != nil {
		return []ProjectSuggestion{{Message: "Failed to suggest projects: " + err.Error()}}
	}

	var projects []ProjectSuggestion
	if err := llm.DecodeArray(raw, &projects); err != nil {
		return []ProjectSuggestion{{Message: "Failed to parse model JSON output. Raw output: " + llm.StripFences(raw)}}
	}
	return projects
}
