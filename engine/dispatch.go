package engine

import (
	"context"
	"fmt"
	"strings"

	"flowmate/catalog"
	"flowmate/logger"
	"flowmate/models"
	"flowmate/savings"
)

// Dispatch executes a quick action the visitor clicked. Quick actions bypass
// the text pipeline: only the resulting bot message is appended to the
// session. Navigation and modal opening are the host page's job; this only
// emits the intent. Unknown action ids get a generic reply, never an error.
func (e *Engine) Dispatch(ctx context.Context, sessionID string, action models.QuickActionType, data map[string]any) (models.ChatMessage, error) {
	if _, err := e.store.Get(sessionID); err != nil {
		return models.ChatMessage{}, err
	}

	var resp models.ChatbotResponse
	switch action {
	case models.ActionCalculateSavings:
		resp = e.calculateSavings(sessionID, data)
	case models.ActionBookAssessment:
		resp = models.ChatbotResponse{
			Content: "Great choice. The booking window is opening now — pick any slot that suits you. The assessment is free, takes about 20 minutes, and you'll leave with a concrete list of what's automatable.",
			QuickActions: []models.QuickAction{
				{ID: "qa-contact-form", Label: "Send us a message instead", Action: models.ActionContactForm},
			},
		}
	case models.ActionContactForm:
		resp = models.ChatbotResponse{
			Content: "I'm taking you to the contact form. Tell us a little about the task you want off your plate and we'll reply within one business day.",
			QuickActions: []models.QuickAction{
				{ID: "qa-book-assessment", Label: "Book a call instead", Action: models.ActionBookAssessment},
			},
		}
	case models.ActionServiceInfo:
		resp = serviceOverviewResponse()
	default:
		logger.WarnWithFields("unknown quick action", logger.Fields{"session_id": sessionID, "action": string(action)})
		resp = models.ChatbotResponse{
			Content: "I'm not sure how to help with that one — but these two usually get people where they want to go.",
			QuickActions: []models.QuickAction{
				{ID: "qa-book-assessment", Label: "Book a free assessment", Action: models.ActionBookAssessment},
				{ID: "qa-service-info", Label: "See our services", Action: models.ActionServiceInfo},
			},
		}
	}

	botMsg := newBotMessage(resp)
	if _, err := e.store.Append(sessionID, botMsg); err != nil {
		return models.ChatMessage{}, err
	}
	return botMsg, nil
}

// calculateSavings is a two-turn sub-protocol with no persisted awaiting
// state: with all three numbers present the estimate is computed, otherwise
// the visitor is asked for them and the invoking UI re-submits.
func (e *Engine) calculateSavings(sessionID string, data map[string]any) models.ChatbotResponse {
	tasks, okTasks := numberField(data, "tasks_per_week")
	minutes, okMinutes := numberField(data, "minutes_per_task")
	rate, okRate := numberField(data, "hourly_rate")

	if !okTasks || !okMinutes || !okRate || rate <= 0 || tasks < 0 || minutes < 0 {
		return models.ChatbotResponse{
			Content: "Happy to run the numbers! I need three things: how many repetitive tasks you handle per week, roughly how many minutes each one takes, and your hourly rate.",
			QuickActions: []models.QuickAction{
				{ID: "qa-calculate-savings", Label: "Enter my numbers", Action: models.ActionCalculateSavings},
			},
			ShouldCollectInfo: "estimated_tasks_per_week",
		}
	}

	est := savings.Calculate(savings.Input{
		TasksPerWeek:          tasks,
		MinutesPerTask:        minutes,
		HourlyRate:            rate,
		ReferencePackagePrice: e.refPrice,
	})

	if err := e.store.UpdateContext(sessionID, func(uc *models.UserContext) {
		uc.EstimatedTasksPerWeek = int(tasks)
	}); err != nil {
		logger.WarnWithFields("user context update failed", logger.Fields{"session_id": sessionID, "error": err.Error()})
	}

	estimate := fmt.Sprintf("%.1f hours/week", est.HoursSavedPerWeek)
	var b strings.Builder
	fmt.Fprintf(&b, "Here's what automation could do for you:\n\n")
	fmt.Fprintf(&b, "• You currently spend about **%.1f hours/week** on these tasks\n", est.ManualHoursPerWeek)
	fmt.Fprintf(&b, "• Automation would give you back about **%s**\n", estimate)
	fmt.Fprintf(&b, "• That's worth **$%.0f/week**, or about **$%.0f/year**\n", est.ROIPerWeek, est.ROIPerYear)
	if est.PaybackWeeks > 0 {
		fmt.Fprintf(&b, "• A typical package pays for itself in about **%.1f weeks**\n", est.PaybackWeeks)
	}
	b.WriteString("\nWant to make that real? A free assessment will confirm the numbers for your exact workflow.")

	return models.ChatbotResponse{
		Content: b.String(),
		QuickActions: []models.QuickAction{
			{ID: "qa-book-assessment", Label: "Book a free assessment", Action: models.ActionBookAssessment},
			{ID: "qa-contact-form", Label: "Send us a message", Action: models.ActionContactForm},
		},
		TimeSavingsEstimate: estimate,
	}
}

func serviceOverviewResponse() models.ChatbotResponse {
	var b strings.Builder
	b.WriteString("Here's everything we do:\n\n")
	for _, info := range catalog.All() {
		fmt.Fprintf(&b, "• **%s** (%s) — %s\n", info.Name, info.PriceRange, info.Description)
	}
	b.WriteString("\nIf one of these sounds like your week, the free assessment is the fastest next step.")
	return models.ChatbotResponse{
		Content: b.String(),
		QuickActions: []models.QuickAction{
			{ID: "qa-book-assessment", Label: "Book a free assessment", Action: models.ActionBookAssessment},
			{ID: "qa-calculate-savings", Label: "Calculate my savings", Action: models.ActionCalculateSavings},
		},
	}
}

// numberField reads a numeric field from a decoded JSON payload, accepting
// the numeric types json.Unmarshal and callers realistically produce.
func numberField(data map[string]any, key string) (float64, bool) {
	if data == nil {
		return 0, false
	}
	switch v := data[key].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}
