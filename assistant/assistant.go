// Package assistant wraps the Gemini call behind the chatbot's generative
// response path. Every failure propagates unmodified to the selector; the
// selector, not this package, decides what the user sees.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"flowmate/models"
	"flowmate/rules"
)

// ErrNoCredential is returned by New when no API key is configured. The
// caller can then skip the generative path entirely instead of failing after
// a timeout on every turn.
var ErrNoCredential = errors.New("assistant: GEMINI_API_KEY is not set")

const (
	maxOutputTokens int32   = 512
	temperature     float32 = 0.7
)

type Assistant struct {
	client *genai.Client
	model  string
}

// New builds an Assistant with an explicit client handle. The API key is a
// typed precondition, not ambient global state.
func New(ctx context.Context, apiKey, model string) (*Assistant, error) {
	if apiKey == "" {
		return nil, ErrNoCredential
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, err
	}
	return &Assistant{client: client, model: model}, nil
}

func (a *Assistant) Model() string { return a.model }

// Generate sends the system prompt, the projected history and the new user
// message to Gemini and normalizes the free-text reply into the same
// ChatbotResponse shape the rule engine produces. The returned call log is
// non-nil whenever a request was actually attempted, including on error.
func (a *Assistant) Generate(ctx context.Context, userText string, history []models.Turn, uc models.UserContext) (models.ChatbotResponse, *models.ChatGenerationLog, error) {
	startTime := time.Now()

	systemPrompt := buildSystemPrompt(uc)
	contents := buildContents(history, userText)

	callLog := &models.ChatGenerationLog{
		ModelName:   a.model,
		InputPrompt: systemPrompt + "\n\n" + userText,
		RequestedAt: startTime,
	}

	result, err := a.client.Models.GenerateContent(
		ctx,
		a.model,
		contents,
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemPrompt}}},
			MaxOutputTokens:   maxOutputTokens,
			Temperature:       genai.Ptr(temperature),
		},
	)
	if err != nil {
		msg := err.Error()
		callLog.ErrorMessage = &msg
		callLog.CompletedAt = time.Now()
		callLog.DurationMs = time.Since(startTime).Milliseconds()
		return models.ChatbotResponse{}, callLog, err
	}

	reply := strings.TrimSpace(result.Text())
	if reply == "" {
		msg := "empty completion"
		callLog.ErrorMessage = &msg
		callLog.CompletedAt = time.Now()
		callLog.DurationMs = time.Since(startTime).Milliseconds()
		return models.ChatbotResponse{}, callLog, fmt.Errorf("assistant: empty completion from %s", a.model)
	}

	callLog.OutputResponse = reply
	callLog.ModelVersion = result.ModelVersion
	callLog.CompletedAt = time.Now()
	callLog.DurationMs = time.Since(startTime).Milliseconds()
	if result.UsageMetadata != nil {
		callLog.InputTokens = int64(result.UsageMetadata.PromptTokenCount)
		callLog.OutputTokens = int64(result.UsageMetadata.CandidatesTokenCount)
		callLog.TotalTokens = int64(result.UsageMetadata.TotalTokenCount)
	}

	return normalize(userText, reply, uc), callLog, nil
}

// normalize turns free text into the shared response shape by re-scanning the
// reply plus the original user text with the same handoff predicate and
// keyword families the rule engine uses.
func normalize(userText, reply string, uc models.UserContext) models.ChatbotResponse {
	combined := userText + "\n" + reply

	resp := models.ChatbotResponse{Content: reply}
	if rules.IsHandoffRequest(combined) {
		resp.QuickActions = rules.HandoffResponse().QuickActions
		return resp
	}

	resp.QuickActions = rules.InferQuickActions(combined)
	resp.ServiceRecommendations = rules.Recommend(combined, uc.CurrentPainPoints)
	return resp
}

func buildContents(history []models.Turn, userText string) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history)+1)
	for _, turn := range history {
		role := genai.RoleUser
		if turn.Role == "assistant" {
			role = genai.RoleModel
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []*genai.Part{{Text: turn.Content}},
		})
	}
	contents = append(contents, &genai.Content{
		Role:  genai.RoleUser,
		Parts: []*genai.Part{{Text: userText}},
	})
	return contents
}
