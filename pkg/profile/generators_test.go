package profile

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoadmapEmptySkillsShortCircuits(t *testing.T) {
	chat := &stubChat{reply: `should never be asked`}
	items := NewRoadmapGenerator(chat).Generate(context.Background(), nil)

	require.Len(t, items, 1)
	assert.Equal(t, "No missing skills detected. No roadmap needed.", items[0].Message)
	assert.Equal(t, 0, chat.calls)
}

func TestRoadmapParsesArray(t *testing.T) {
	chat := &stubChat{reply: "```json\n[{\"skill\":\"SQL\",\"recommended_course\":\"SQL Bootcamp\",\"platform\":\"Udemy\",\"estimated_duration\":\"2-3 weeks\"}]\n```"}
	items := NewRoadmapGenerator(chat).Generate(context.Background(), []string{"SQL"})

	require.Len(t, items, 1)
	assert.Equal(t, "SQL", items[0].Skill)
	assert.Equal(t, "Udemy", items[0].Platform)
	assert.Empty(t, items[0].Message)
	assert.Equal(t, 1, chat.calls)
}

func TestRoadmapWrapsSingleObject(t *testing.T) {
	chat := &stubChat{reply: `{"skill":"SQL","recommended_course":"SQL Bootcamp","platform":"Coursera","estimated_duration":"1 month"}`}
	items := NewRoadmapGenerator(chat).Generate(context.Background(), []string{"SQL"})

	require.Len(t, items, 1)
	assert.Equal(t, "SQL", items[0].Skill)
}

func TestRoadmapMalformedReplyYieldsPlaceholder(t *testing.T) {
	chat := &stubChat{reply: "I'd be happy to help!"}
	items := NewRoadmapGenerator(chat).Generate(context.Background(), []string{"SQL"})

	require.Len(t, items, 1)
	assert.Contains(t, items[0].Message, "Failed to parse model JSON output")
	assert.Contains(t, items[0].Message, "I'd be happy to help!")
}

func TestProjectsNoGoalShortCircuits(t *testing.T) {
	chat := &stubChat{reply: `should never be asked`}
	projects := NewProjectRecommender(chat).Suggest(context.Background(), "")

	require.Len(t, projects, 1)
	assert.Equal(t, "No career goal provided. Cannot suggest projects.", projects[0].Message)
	assert.Equal(t, 0, chat.calls)
}

func TestProjectsParsesArray(t *testing.T) {
	chat := &stubChat{reply: `[{"project_name":"ETL Pipeline","description":"Build an ETL pipeline","estimated_duration":"3 weeks"}]`}
	projects := NewProjectRecommender(chat).Suggest(context.Background(), "Data Engineer")

	require.Len(t, projects, 1)
	assert.Equal(t, "ETL Pipeline", projects[0].ProjectName)
	assert.Equal(t, 1, chat.calls)
}

func TestProjectsMalformedReplyYieldsPlaceholder(t *testing.T) {
	chat := &stubChat{reply: "42"}
	projects := NewProjectRecommender(chat).Suggest(context.Background(), "Data Engineer")

	require.Len(t, projects, 1)
	assert.Contains(t, projects[0].Message, "Raw output: 42")
}

func TestGoalSuggester(t *testing.T) {
	t.Run("trims reply", func(t *testing.T) {
		chat := &stubChat{reply: "\"Data Scientist\"\n"}
		goal, err := NewGoalSuggester(chat).Suggest(context.Background(), "resume", []string{"Data Science"})
		require.NoError(t, err)
		assert.Equal(t, "Data Scientist", goal)
	})

	t.Run("empty resume rejected without model call", func(t *testing.T) {
		chat := &stubChat{reply: "anything"}
		_, err := NewGoalSuggester(chat).Suggest(context.Background(), "   ", nil)
		require.Error(t, err)
		assert.Equal(t, 0, chat.calls)
	})
}
