// Package rules is the deterministic response path of the chatbot. It never
// performs I/O and never calls external services; it is the availability
// guarantee when the generative path is down.
package rules

import (
	"fmt"
	"regexp"

	"flowmate/catalog"
	"flowmate/models"
)

// Intent patterns, evaluated strictly in the order of Match below.
var (
	greetingPattern     = regexp.MustCompile(`(?i)^\s*(hi|hello|hey|howdy|good\s+(morning|afternoon|evening))\b`)
	timeSavingsPattern  = regexp.MustCompile(`(?i)\b(save\s+time|time\s+sav|savings?|roi|hours?\s+(per|a)\s+week|how\s+much\s+time)\b`)
	pricingPattern      = regexp.MustCompile(`(?i)\b(price|pricing|cost|costs|how\s+much|packages?|quote|rates?)\b`)
	bookingPattern      = regexp.MustCompile(`(?i)\b(book|booking|schedule|appointment|assessment|consultation|call)\b`)
	projectStartPattern = regexp.MustCompile(`(?i)\b(get\s+started|start(ing)?\s+(a\s+)?project|sign\s+up|hire|work\s+with\s+you)\b`)
)

// greetings is the fixed rotation set. Rotation is driven by the history
// length so repeated greetings cycle without hidden randomness.
var greetings = []string{
	"Hi there! I'm the FlowMate assistant. We build small automations that give business owners their time back. What's eating up your week?",
	"Hello! Welcome to FlowMate. Tell me about a task you do over and over — odds are we can automate it.",
	"Hey! I help visitors figure out which of our automation services fits them. What kind of busywork are you dealing with?",
}

var familyReplies = map[models.ServiceCategory]string{
	models.CategoryScripting:    "Messy files and folders are exactly what our scripting service cleans up. A small script can sort, rename and de-duplicate automatically — most clients save 2–5 hours a week on file wrangling alone.",
	models.CategoryEmailHygiene: "An overflowing inbox is one of the most common time sinks we see. Our email & file hygiene service sets up rules that file attachments and keep your inbox organized by itself, typically saving 1–4 hours a week.",
	models.CategoryReporting:    "If you're building the same report or chart by hand every week, we can make it build itself. Our reporting automations pull from your data on schedule — clients usually get back 3–6 hours a week.",
	models.CategoryWebsites:     "We build simple, fast websites and landing pages with a contact form, ready in about one to two weeks and easy to update yourself.",
	models.CategoryPCSetup:      "Setting up machines by hand is slow and inconsistent. Our PC setup helpers install software and apply settings the same way every time — figure 1–3 hours saved per machine.",
}

// Match is the deterministic rule engine: a pure, first-match-wins pass over
// an ordered priority list. The ordering is a correctness requirement —
// handoff requests must short-circuit before any topic keyword so a request
// to reach a person is never answered with a service pitch.
func Match(text string, uc models.UserContext, history []models.ChatMessage) models.ChatbotResponse {
	// 1. Greetings.
	if greetingPattern.MatchString(text) {
		return models.ChatbotResponse{
			Content: greetings[len(history)%len(greetings)],
			QuickActions: []models.QuickAction{
				calculateSavingsAction(),
				serviceInfoAction(),
			},
		}
	}

	// 2. Human handoff, strictly before topic matching.
	if IsHandoffRequest(text) {
		return HandoffResponse()
	}

	// 3. Domain keyword families, fixed family order.
	lower := lowered(text)
	for i, fam := range keywordFamilies {
		if !fam.pattern.MatchString(lower) {
			continue
		}
		info, _ := catalog.Lookup(fam.category)
		second := calculateSavingsAction()
		if i%2 == 1 {
			second = serviceInfoAction()
		}
		return models.ChatbotResponse{
			Content:                familyReplies[fam.category],
			ServiceRecommendations: []models.ServiceCategory{fam.category},
			QuickActions:           []models.QuickAction{bookAssessmentAction(), second},
			TimeSavingsEstimate:    info.TypicalSavings,
		}
	}

	// 4. Time / savings / ROI.
	if timeSavingsPattern.MatchString(text) {
		return models.ChatbotResponse{
			Content: "Great question — the honest answer depends on how often the task comes up. As a rule of thumb, clients reclaim 20–40% of the time they spend on repetitive work. If you tell me roughly how many repetitive tasks you handle per week, I can give you a real estimate.",
			QuickActions: []models.QuickAction{
				calculateSavingsAction(),
				bookAssessmentAction(),
			},
			ShouldCollectInfo: "estimated_tasks_per_week",
		}
	}

	// 5. Pricing renders the current package list from the catalog.
	if pricingPattern.MatchString(text) {
		return models.ChatbotResponse{
			Content: catalog.PriceList(),
			QuickActions: []models.QuickAction{
				bookAssessmentAction(),
				calculateSavingsAction(),
			},
		}
	}

	// 6. Booking / project start.
	if bookingPattern.MatchString(text) {
		return models.ChatbotResponse{
			Content: "Booking a free assessment is the easiest way to start. It's a 20-minute call where we look at your workflow, point out what's automatable, and give you a fixed quote — no obligation.",
			QuickActions: []models.QuickAction{
				bookAssessmentAction(),
				contactFormAction(),
			},
		}
	}
	if projectStartPattern.MatchString(text) {
		return models.ChatbotResponse{
			Content: "Getting started is simple: free assessment first, then a fixed quote, then we build. Most projects are delivered within one to two weeks of kickoff.",
			QuickActions: []models.QuickAction{
				bookAssessmentAction(),
				serviceInfoAction(),
			},
		}
	}

	// 7. Fallback: recommend from the message plus accumulated pain points.
	recs := Recommend(text, uc.CurrentPainPoints)
	return models.ChatbotResponse{
		Content:                fallbackContent(recs),
		ServiceRecommendations: recs,
		QuickActions: []models.QuickAction{
			calculateSavingsAction(),
			bookAssessmentAction(),
		},
	}
}

// HandoffResponse is the fixed high-priority reply for human/agent requests,
// used identically by the rule engine and the generative post-processing.
func HandoffResponse() models.ChatbotResponse {
	return models.ChatbotResponse{
		Content: "Of course — I'll connect you with a real person. The fastest way is to book a free assessment call, or leave your details through the contact form and we'll get back to you within one business day.",
		QuickActions: []models.QuickAction{
			bookAssessmentAction(),
			contactFormAction(),
		},
	}
}

func fallbackContent(recs []models.ServiceCategory) string {
	if len(recs) == 1 {
		if info, ok := catalog.Lookup(recs[0]); ok {
			return fmt.Sprintf("I may not have caught every detail, but this sounds like a fit for our %s service (%s, typical savings %s). Want a quick estimate of what that could save you?", info.Name, info.PriceRange, info.TypicalSavings)
		}
	}
	return "I want to make sure I point you at the right service. Based on what you've shared so far, here are the offerings most owners in your situation start with — or try the savings calculator for a number you can take to the bank."
}
