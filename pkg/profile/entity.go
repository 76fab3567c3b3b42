package profile

import (
	"context"
	"errors"
	"time"
)

// AnalysisResult is the fixed six-field shape the evaluator asks the model
// to produce.
type AnalysisResult struct {
	ExtractedSkills      []string `json:"extracted_skills"`
	RequiredSkills       []string `json:"required_skills"`
	SkillMatchPercentage float64  `json:"skill_match_percentage"`
	SkillGapPercentage   float64  `json:"skill_gap_percentage"`
	MissingSkills        []string `json:"missing_skills"`
	Recommendations      []string `json:"recommendations"`
}

type AnalysisStatus string

const (
	AnalysisStatusOK     AnalysisStatus = "ok"
	AnalysisStatusFailed AnalysisStatus = "failed"
)

// AnalysisRecord wraps a result with its outcome so a parse failure stays
// distinguishable from a legitimate zero-skill analysis. On failure Error
// carries the raw model output (or the transport error) and Result keeps the
// zeroed shape.
type AnalysisRecord struct {
	Status    AnalysisStatus `json:"status"`
	Model     string         `json:"model"`
	Error     string         `json:"error,omitempty"`
	Result    AnalysisResult `json:"result"`
	CreatedAt time.Time      `json:"createdAt"`
}

// RoadmapItem is one ordered learning step. Message is set only on
// placeholder items (no input, or unparseable model output).
type RoadmapItem struct {
	Skill             string `json:"skill,omitempty"`
	RecommendedCourse string `json:"recommended_course,omitempty"`
	Platform          string `json:"platform,omitempty"`
	EstimatedDuration string `json:"estimated_duration,omitempty"`
	Message           string `json:"message,omitempty"`
}

// ProjectSuggestion is one suggested practice project, with the same
// placeholder convention as RoadmapItem.
type ProjectSuggestion struct {
	ProjectName       string `json:"project_name,omitempty"`
	Description       string `json:"description,omitempty"`
	EstimatedDuration string `json:"estimated_duration,omitempty"`
	Message           string `json:"message,omitempty"`
}

// Record is the persisted user profile, upserted wholesale and keyed by the
// identity-provider user id.
type Record struct {
	UserID     string          `json:"userId"`
	Email      string          `json:"email"`
	ResumeText string          `json:"resumeText"`
	Interests  []string        `json:"interests"`
	CareerGoal string          `json:"careerGoal"`
	Analysis   *AnalysisRecord `json:"analysis,omitempty"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

var ErrNotFound = errors.New("not found")

// Repository is the persistence port for user profiles.
type Repository interface {
	Upsert(ctx context.Context, rec Record) error
	Get(ctx context.Context, userID string) (Record, error)
}
