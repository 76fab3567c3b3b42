package profile

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/skillmentor/backend/pkg/llm"
)

// Evaluator runs the resume-vs-goal skill analysis.
type Evaluator interface {
	Evaluate(ctx context.Context, resumeText string, interests []string, careerGoal string) AnalysisRecord
}

type evaluator struct {
	llm       llm.ChatModel
	modelName string
	maxChars  int
}

func NewEvaluator(model llm.ChatModel, modelName string) Evaluator {
	return &evaluator{
		llm:       model,
		modelName: modelName,
		maxChars:  12_000,
	}
}

const evaluatorSystem = "You are an expert career coach. Return ONLY JSON, no extra text, no markdown."

func evaluatorPrompt(resumeText string, interests []string, careerGoal string) string {
	return fmt.Sprintf(`Resume:
%s

User Interests: %s
Career Goal: %s

Tasks:
1. Extract all skills mentioned anywhere in the resume, including:
   - Technical skills
   - Internships
   - Projects
   - Work experience
   - Achievements
2. List all the skills required for the selected interests and career goal.
3. Compute skill match percentage (skills they have / skills required).
4. Compute skill gap percentage.
5. List missing skills.
6. Provide 3-5 actionable recommendations (courses, learning paths, or projects) to cover missing skills.

Important: Return ONLY JSON, no extra text. The JSON keys must be:
- extracted_skills
- required_skills
- skill_match_percentage
- skill_gap_percentage
- missing_skills
- recommendations`,
		resumeText,
		strings.Join(interests, ", "),
		careerGoal,
	)
}

func (s *evaluator) Evaluate(ctx context.Context, resumeText string, interests []string, careerGoal string) AnalysisRecord {
	rec := AnalysisRecord{
		Status:    AnalysisStatusOK,
		Model:     s.modelName,
		Result:    emptyAnalysis(),
		CreatedAt: time.Now().UTC(),
	}

	text := strings.TrimSpace(resumeText)
	if len(text) > s.maxChars {
		text = text[:s.maxChars]
	}

	raw, err := s.llm.Ask(ctx, evaluatorSystem, evaluatorPrompt(text, interests, careerGoal))
	if err != nil {
		rec.Status = AnalysisStatusFailed
		rec.Error = err.Error()
		return rec
	}

	var result AnalysisResult
	if err := llm.DecodeObject(raw, &result); err != nil {
		rec.Status = AnalysisStatusFailed
		rec.Error = "failed to parse model JSON output: " + llm.StripFences(raw)
		return rec
	}
	rec.Result = normalizeAnalysis(result)
	return rec
}

func emptyAnalysis() AnalysisResult {
	return AnalysisResult{
		ExtractedSkills: []string{},
		RequiredSkills:  []string{},
		MissingSkills:   []string{},
		Recommendations: []string{},
	}
}

// normalizeAnalysis replaces nil slices with [] so the JSON shape stays
// stable regardless of which keys the model omitted.
func normalizeAnalysis(r AnalysisResult) AnalysisResult {
	if r.ExtractedSkills == nil {
		r.ExtractedSkills = []string{}
	}
	if r.RequiredSkills == nil {
		r.RequiredSkills = []string{}
	}
	if r.MissingSkills == nil {
		r.MissingSkills = []string{}
	}
	if r.Recommendations == nil {
		r.Recommendations = []string{}
	}
	return r
}
