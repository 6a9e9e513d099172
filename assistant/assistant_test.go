package assistant

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flowmate/models"
)

func TestNewWithoutCredential(t *testing.T) {
	a, err := New(t.Context(), "", "gemini-2.0-flash")
	require.ErrorIs(t, err, ErrNoCredential)
	assert.Nil(t, a)
}

func TestNormalizeHandoffBeatsTopics(t *testing.T) {
	// the user asked for a person while mentioning a topic; the handoff
	// affordances must win on the generative path as well
	resp := normalize(
		"can I talk to a human about file cleanup",
		"Of course — I'll connect you with a real person.",
		models.UserContext{},
	)

	require.Len(t, resp.QuickActions, 2)
	assert.Equal(t, models.ActionBookAssessment, resp.QuickActions[0].Action)
	assert.Equal(t, models.ActionContactForm, resp.QuickActions[1].Action)
	assert.Empty(t, resp.ServiceRecommendations)
}

func TestNormalizeMatchesOnBothTexts(t *testing.T) {
	// the topic appears only in the model's reply, not the user text
	resp := normalize(
		"what would you suggest for me",
		"Sounds like our reporting service could rebuild that Excel workflow for you.",
		models.UserContext{},
	)

	assert.Contains(t, resp.ServiceRecommendations, models.CategoryReporting)
	assert.NotEmpty(t, resp.QuickActions)
}

func TestNormalizeCapsAndClosedEnum(t *testing.T) {
	known := map[models.QuickActionType]bool{
		models.ActionCalculateSavings: true,
		models.ActionBookAssessment:   true,
		models.ActionContactForm:      true,
		models.ActionServiceInfo:      true,
	}

	resp := normalize(
		"files emails reports websites pc setup pricing savings booking",
		"We can help with files, email, reports, websites and PC setup.",
		models.UserContext{CurrentPainPoints: []string{"files", "emails", "reports", "websites"}},
	)

	assert.LessOrEqual(t, len(resp.QuickActions), 3)
	assert.LessOrEqual(t, len(resp.ServiceRecommendations), 3)
	for _, qa := range resp.QuickActions {
		assert.True(t, known[qa.Action], "unknown action %q", qa.Action)
	}
}

func TestBuildSystemPromptEmbedsContext(t *testing.T) {
	prompt := buildSystemPrompt(models.UserContext{
		BusinessType:          "accounting firm",
		CurrentPainPoints:     []string{"weekly report takes all of Monday"},
		EstimatedTasksPerWeek: 12,
	})

	assert.Contains(t, prompt, "accounting firm")
	assert.Contains(t, prompt, "weekly report takes all of Monday")
	assert.Contains(t, prompt, "12")
	// 카탈로그 요약은 항상 포함된다.
	assert.Contains(t, prompt, "Basic Scripting & Automation")
}

func TestBuildSystemPromptWithoutContext(t *testing.T) {
	prompt := buildSystemPrompt(models.UserContext{})
	assert.False(t, strings.Contains(prompt, "What we know about this visitor"))
}

func TestBuildContentsOrdering(t *testing.T) {
	history := []models.Turn{
		{Role: "user", Content: "hello"},
		{Role: "assistant", Content: "hi there"},
	}
	contents := buildContents(history, "my inbox is a mess")

	require.Len(t, contents, 3)
	assert.Equal(t, "hello", contents[0].Parts[0].Text)
	assert.Equal(t, "hi there", contents[1].Parts[0].Text)
	assert.Equal(t, "my inbox is a mess", contents[2].Parts[0].Text)
}
