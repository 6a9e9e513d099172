package rules

import (
	"strings"

	"flowmate/models"
)

func lowered(s string) string { return strings.ToLower(s) }

// Action constructors keep ids and labels identical on both response paths.

func calculateSavingsAction() models.QuickAction {
	return models.QuickAction{ID: "qa-calculate-savings", Label: "Calculate my savings", Action: models.ActionCalculateSavings}
}

func bookAssessmentAction() models.QuickAction {
	return models.QuickAction{ID: "qa-book-assessment", Label: "Book a free assessment", Action: models.ActionBookAssessment}
}

func contactFormAction() models.QuickAction {
	return models.QuickAction{ID: "qa-contact-form", Label: "Send us a message", Action: models.ActionContactForm}
}

func serviceInfoAction() models.QuickAction {
	return models.QuickAction{ID: "qa-service-info", Label: "See our services", Action: models.ActionServiceInfo}
}

// InferQuickActions synthesizes quick actions for free text produced by the
// generative path. It runs the same handoff predicate and keyword families as
// Match, most relevant first, capped at three. It never emits an action
// identifier outside the closed QuickActionType set.
func InferQuickActions(text string) []models.QuickAction {
	if IsHandoffRequest(text) {
		return []models.QuickAction{bookAssessmentAction(), contactFormAction()}
	}

	lower := lowered(text)
	var out []models.QuickAction
	seen := map[models.QuickActionType]bool{}
	push := func(a models.QuickAction) {
		if !seen[a.Action] && len(out) < 3 {
			seen[a.Action] = true
			out = append(out, a)
		}
	}

	if len(matchingCategories(lower)) > 0 {
		push(calculateSavingsAction())
		push(serviceInfoAction())
	}
	if timeSavingsPattern.MatchString(text) {
		push(calculateSavingsAction())
	}
	if pricingPattern.MatchString(text) || bookingPattern.MatchString(text) || projectStartPattern.MatchString(text) {
		push(bookAssessmentAction())
	}

	if len(out) == 0 {
		return []models.QuickAction{bookAssessmentAction(), serviceInfoAction()}
	}
	push(bookAssessmentAction())
	return out
}
