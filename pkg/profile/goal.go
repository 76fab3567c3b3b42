package profile

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/skillmentor/backend/pkg/llm"
)

// GoalSuggester proposes a career goal when the user does not know one.
type GoalSuggester interface {
	Suggest(ctx context.Context, resumeText string, interests []string) (string, error)
}

type goalSuggester struct {
	llm      llm.ChatModel
	maxChars int
}

func NewGoalSuggester(model llm.ChatModel) GoalSuggester {
	return &goalSuggester{llm: model, maxChars: 12_000}
}

const goalSystem = "You are an expert career coach."

func goalPrompt(resumeText string, interests []string) string {
	return fmt.Sprintf(`Resume:
%s

User Interests: %s

Task:
Suggest one suitable career goal/job role for this user based on the resume and interests.
Return ONLY the job title as plain text.`,
		resumeText,
		strings.Join(interests, ", "),
	)
}

func (s *goalSuggester) Suggest(ctx context.Context, resumeText string, interests []string) (string, error) {
	text := strings.TrimSpace(resumeText)
	if text == "" {
		return "", errors.New("empty resume text")
	}
	if len(text) > s.maxChars {
		text = text[:s.maxChars]
	}
	raw, err := s.llm.Ask(ctx, goalSystem, goalPrompt(text, interests))
	if err != nil {
		return "", err
	}
	goal := strings.Trim(llm.StripFences(raw), `"' `)
	if goal == "" {
		return "", errors.New("model returned an empty goal")
	}
	return goal, nil
}
