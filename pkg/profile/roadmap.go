package profile

import (
	"context"
	"fmt"
	"strings"

	"github.com/skillmentor/backend/pkg/llm"
)

// RoadmapGenerator builds an ordered learning roadmap for missing skills.
type RoadmapGenerator interface {
	Generate(ctx context.Context, missingSkills []string) []RoadmapItem
}

type roadmapGenerator struct {
	llm llm.ChatModel
}

func NewRoadmapGenerator(model llm.ChatModel) RoadmapGenerator {
	return &roadmapGenerator{llm: model}
}

const roadmapSystem = "You are a career coach. Return ONLY a JSON array, no markdown, no extra text."

func roadmapPrompt(missingSkills []string) string {
	return fmt.Sprintf(`The user is missing the following skills: %s

Tasks:
1. Generate a structured learning roadmap to bridge these skill gaps.
2. Suggest relevant online courses from Udemy, Coursera, edX, Infosys Springboard.
3. Provide the order in which the skills should be learned.
4. Give an estimated timeline for each skill/course (e.g., 1-2 weeks, 2-3 weeks or in months).

Important: Return ONLY a JSON array of objects with keys:
- skill
- recommended_course
- platform
- estimated_duration
Do NOT include explanations, Markdown, or extra text.`,
		strings.Join(missingSkills, ", "),
	)
}

// Generate short-circuits on an empty skill list: exactly one informational
// placeholder and no model call.
func (s *roadmapGenerator) Generate(ctx context.Context, missingSkills []string) []RoadmapItem {
	if len(missingSkills) == 0 {
		return []RoadmapItem{{Message: "No missing skills detected. No roadmap needed."}}
	}

	raw, err := s.llm.Ask(ctx, roadmapSystem, roadmapPrompt(missingSkills))
	if err != nil {
		return []RoadmapItem{{Message: "Failed to generate roadmap: " + err.Error()}}
	}

	var items []RoadmapItem
	if err := llm.DecodeArray(raw, &items); err != nil {
		return []RoadmapItem{{Message: "Failed to parse model JSON output. Raw output: " + llm.StripFences(raw)}}
	}
	return items
}
