package profile

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubChat implements llm.ChatModel and counts calls.
type stubChat struct {
	reply string
	err   error
	calls int
}

func (s *stubChat) Ask(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func TestEvaluateParsesModelJSON(t *testing.T) {
	chat := &stubChat{reply: `{"extracted_skills":["Python"],"required_skills":["Python","SQL"],"skill_match_percentage":50,"skill_gap_percentage":50,"missing_skills":["SQL"],"recommendations":["Learn SQL"]}`}
	ev := NewEvaluator(chat, "test-model")

	rec := ev.Evaluate(context.Background(), "resume text", []string{"Data Science"}, "Data Scientist")

	require.Equal(t, AnalysisStatusOK, rec.Status)
	assert.Equal(t, "test-model", rec.Model)
	assert.Equal(t, []string{"SQL"}, rec.Result.MissingSkills)
	assert.Equal(t, 50.0, rec.Result.SkillGapPercentage)
	assert.Equal(t, 50.0, rec.Result.SkillMatchPercentage)
	assert.Equal(t, []string{"Python"}, rec.Result.ExtractedSkills)
	assert.Equal(t, 1, chat.calls)
}

func TestEvaluateFencedReplyEqualsPlain(t *testing.T) {
	raw := `{"extracted_skills":["Go"],"required_skills":["Go"],"skill_match_percentage":100,"skill_gap_percentage":0,"missing_skills":[],"recommendations":[]}`
	plain := NewEvaluator(&stubChat{reply: raw}, "m").Evaluate(context.Background(), "r", nil, "g")
	fenced := NewEvaluator(&stubChat{reply: "```json\n" + raw + "\n```"}, "m").Evaluate(context.Background(), "r", nil, "g")
	assert.Equal(t, plain.Result, fenced.Result)
}

func TestEvaluateMalformedReply(t *testing.T) {
	chat := &stubChat{reply: "not json"}
	rec := NewEvaluator(chat, "m").Evaluate(context.Background(), "resume", nil, "goal")

	assert.Equal(t, AnalysisStatusFailed, rec.Status)
	assert.Contains(t, rec.Error, "not json")
	// Fallback result keeps the zeroed shape with empty (non-nil) lists.
	assert.Empty(t, rec.Result.ExtractedSkills)
	assert.NotNil(t, rec.Result.ExtractedSkills)
	assert.Empty(t, rec.Result.MissingSkills)
	assert.NotNil(t, rec.Result.Recommendations)
	assert.Zero(t, rec.Result.SkillMatchPercentage)
	assert.Zero(t, rec.Result.SkillGapPercentage)
}

func TestEvaluateTransportError(t *testing.T) {
	chat := &stubChat{err: errors.New("model unavailable")}
	rec := NewEvaluator(chat, "m").Evaluate(context.Background(), "resume", nil, "goal")

	assert.Equal(t, AnalysisStatusFailed, rec.Status)
	assert.Contains(t, rec.Error, "model unavailable")
}

func TestEvaluateNormalizesOmittedKeys(t *testing.T) {
	chat := &stubChat{reply: `{"skill_match_percentage":10,"skill_gap_percentage":90}`}
	rec := NewEvaluator(chat, "m").Evaluate(context.Background(), "resume", nil, "goal")

	require.Equal(t, AnalysisStatusOK, rec.Status)
	assert.NotNil(t, rec.Result.ExtractedSkills)
	assert.NotNil(t, rec.Result.RequiredSkills)
	assert.NotNil(t, rec.Result.MissingSkills)
	assert.NotNil(t, rec.Result.Recommendations)
}
