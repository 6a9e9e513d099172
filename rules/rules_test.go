package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flowmate/models"
)

func TestMatchGreetingRotatesThroughFixedSet(t *testing.T) {
	seen := map[string]bool{}
	for n := 0; n < len(greetings)*2; n++ {
		history := make([]models.ChatMessage, n)
		resp := Match("hello", models.UserContext{}, history)
		assert.Contains(t, greetings, resp.Content)
		seen[resp.Content] = true
	}
	// the rotation must cycle through every greeting
	assert.Len(t, seen, len(greetings))
}

func TestMatchGreetingQuickActions(t *testing.T) {
	resp := Match("hello", models.UserContext{}, nil)

	var hasCalculatorOrServices bool
	for _, qa := range resp.QuickActions {
		if qa.Action == models.ActionCalculateSavings || qa.Action == models.ActionServiceInfo {
			hasCalculatorOrServices = true
		}
	}
	assert.True(t, hasCalculatorOrServices)
}

func TestMatchIsDeterministic(t *testing.T) {
	inputs := []string{
		"my downloads folder is a mess",
		"how much do you charge",
		"I want to book a call",
		"tell me something",
	}
	for _, input := range inputs {
		first := Match(input, models.UserContext{}, nil)
		for i := 0; i < 5; i++ {
			again := Match(input, models.UserContext{}, nil)
			assert.Equal(t, first.Content, again.Content, "input %q", input)
			assert.Equal(t, first.QuickActions, again.QuickActions, "input %q", input)
			assert.Equal(t, first.ServiceRecommendations, again.ServiceRecommendations, "input %q", input)
		}
	}
}

func TestMatchFileCleanupRecommendsScripting(t *testing.T) {
	resp := Match("my downloads folder is a mess", models.UserContext{}, nil)

	require.Contains(t, resp.ServiceRecommendations, models.CategoryScripting)
	assert.Contains(t, resp.Content, "save")
	assert.Len(t, resp.QuickActions, 2)
}

func TestMatchHandoffBeatsTopicKeywords(t *testing.T) {
	resp := Match("I need to talk to a human about file cleanup", models.UserContext{}, nil)

	require.Len(t, resp.QuickActions, 2)
	assert.Equal(t, models.ActionBookAssessment, resp.QuickActions[0].Action)
	assert.Equal(t, models.ActionContactForm, resp.QuickActions[1].Action)
	assert.Empty(t, resp.ServiceRecommendations)
}

func TestMatchHandoffBeatsPricing(t *testing.T) {
	resp := Match("can I talk to a human about pricing", models.UserContext{}, nil)

	require.Len(t, resp.QuickActions, 2)
	assert.Equal(t, models.ActionBookAssessment, resp.QuickActions[0].Action)
	assert.Equal(t, models.ActionContactForm, resp.QuickActions[1].Action)
	assert.NotContains(t, resp.Content, "$")
}

func TestMatchTimeSavingsSolicitsTaskCount(t *testing.T) {
	resp := Match("how much time could I save", models.UserContext{}, nil)

	assert.Equal(t, "estimated_tasks_per_week", resp.ShouldCollectInfo)
	assert.NotEmpty(t, resp.Content)
}

func TestMatchPricingRendersPackageList(t *testing.T) {
	resp := Match("what does it cost", models.UserContext{}, nil)

	assert.Contains(t, resp.Content, "Basic Scripting")
	assert.Contains(t, resp.Content, "$")
	assert.Contains(t, resp.Content, "free assessment")
}

func TestMatchBooking(t *testing.T) {
	resp := Match("I'd like to schedule an appointment", models.UserContext{}, nil)

	require.NotEmpty(t, resp.QuickActions)
	assert.Equal(t, models.ActionBookAssessment, resp.QuickActions[0].Action)
}

func TestMatchFallbackUsesPainPoints(t *testing.T) {
	uc := models.UserContext{CurrentPainPoints: []string{"our inbox is overflowing"}}
	resp := Match("can you help us", uc, nil)

	assert.Contains(t, resp.ServiceRecommendations, models.CategoryEmailHygiene)

	var actions []models.QuickActionType
	for _, qa := range resp.QuickActions {
		actions = append(actions, qa.Action)
	}
	assert.Contains(t, actions, models.ActionCalculateSavings)
	assert.Contains(t, actions, models.ActionBookAssessment)
}

func TestMatchFallbackWithNoSignal(t *testing.T) {
	resp := Match("hmm", models.UserContext{}, nil)

	require.NotEmpty(t, resp.ServiceRecommendations)
	assert.LessOrEqual(t, len(resp.ServiceRecommendations), 3)
	assert.NotEmpty(t, resp.Content)
}
