// Package engine is the response strategy selector: it owns the conversation
// turn, tries the generative path first and downgrades to the deterministic
// rule engine on any failure. A generative failure is expected and
// recoverable; it is logged for operators and never shown to the visitor.
package engine

import (
	"context"
	"time"

	"github.com/google/uuid"

	"flowmate/eventbus"
	"flowmate/events"
	"flowmate/logger"
	"flowmate/models"
	"flowmate/quota"
	"flowmate/rules"
	"flowmate/session"
)

// Generator is the generative response path. A nil Generator means no
// credential is configured and the selector goes straight to the rule engine.
type Generator interface {
	Generate(ctx context.Context, userText string, history []models.Turn, uc models.UserContext) (models.ChatbotResponse, *models.ChatGenerationLog, error)
	Model() string
}

// GenerationLogSink 은 생성형 호출 로그를 기록하는 저장소다. nil 이면 기록하지 않는다.
type GenerationLogSink interface {
	Insert(ctx context.Context, log models.ChatGenerationLog) error
}

const (
	defaultGenTimeout   = 12 * time.Second
	defaultHistoryLimit = 12
)

const welcomeMessage = "Hi! I'm the FlowMate assistant. Ask me anything about automating your busywork — or tell me what's eating up your week and I'll point you at the right service."

type Config struct {
	GenerationTimeout     time.Duration
	HistoryLimit          int
	ReferencePackagePrice float64
}

type Engine struct {
	store     *session.Store
	generator Generator
	limiter   *quota.ChatQuotaLimiter
	logs      GenerationLogSink
	bus       eventbus.Publisher

	genTimeout   time.Duration
	historyLimit int
	refPrice     float64
}

// New wires the selector. generator, limiter, logs and bus may each be nil;
// the engine degrades to rule-only, unmetered, unlogged, unpublished
// operation accordingly.
func New(store *session.Store, generator Generator, limiter *quota.ChatQuotaLimiter, logs GenerationLogSink, bus eventbus.Publisher, cfg Config) *Engine {
	if cfg.GenerationTimeout <= 0 {
		cfg.GenerationTimeout = defaultGenTimeout
	}
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = defaultHistoryLimit
	}
	if bus == nil {
		bus = eventbus.Nop{}
	}
	return &Engine{
		store:        store,
		generator:    generator,
		limiter:      limiter,
		logs:         logs,
		bus:          bus,
		genTimeout:   cfg.GenerationTimeout,
		historyLimit: cfg.HistoryLimit,
		refPrice:     cfg.ReferencePackagePrice,
	}
}

// StartSession opens a session and seeds it with the welcome message.
func (e *Engine) StartSession(ctx context.Context) (models.ChatSession, error) {
	sess := e.store.Create()

	welcome := newBotMessage(models.ChatbotResponse{
		Content: welcomeMessage,
		QuickActions: []models.QuickAction{
			{ID: "qa-calculate-savings", Label: "Calculate my savings", Action: models.ActionCalculateSavings},
			{ID: "qa-service-info", Label: "See our services", Action: models.ActionServiceInfo},
		},
	})
	snap, err := e.store.Append(sess.ID, welcome)
	if err != nil {
		return models.ChatSession{}, err
	}

	if err := e.bus.Publish(ctx, events.TopicChatEvents, events.NewChatSessionStarted(snap.ID)); err != nil {
		logger.ErrorWithFields("chat event publish failed", logger.Fields{"session_id": snap.ID, "error": err.Error()})
	}
	return snap, nil
}

// Session returns the current transcript snapshot.
func (e *Engine) Session(id string) (models.ChatSession, error) {
	return e.store.Get(id)
}

// ProduceReply runs one conversation turn: the user message is appended
// before any reply is requested, so a reply always sees its trigger in the
// history. The only error returned is an unknown session.
func (e *Engine) ProduceReply(ctx context.Context, sessionID, userText string) (models.ChatMessage, error) {
	userMsg := models.ChatMessage{
		ID:        uuid.NewString(),
		Type:      models.MessageTypeUser,
		Content:   userText,
		Timestamp: time.Now().UTC(),
	}
	snap, err := e.store.Append(sessionID, userMsg)
	if err != nil {
		return models.ChatMessage{}, err
	}

	// 방금 추가한 사용자 메시지를 제외한 이전 턴들이 대화 이력이 된다.
	prior := snap.Messages[:len(snap.Messages)-1]
	resp := e.respond(ctx, sessionID, userText, prior, snap.UserContext)

	e.rememberContext(sessionID, userText, resp)

	botMsg := newBotMessage(resp)
	if _, err := e.store.Append(sessionID, botMsg); err != nil {
		return models.ChatMessage{}, err
	}

	if rules.IsHandoffRequest(userText) {
		if err := e.bus.Publish(ctx, events.TopicChatEvents, events.NewChatHandoffRequested(sessionID, userText)); err != nil {
			logger.ErrorWithFields("chat event publish failed", logger.Fields{"session_id": sessionID, "error": err.Error()})
		}
	}
	return botMsg, nil
}

// respond tries the generative path, then the rule engine, then the fixed
// apology. It never returns an empty reply and never propagates a
// generative-path error.
func (e *Engine) respond(ctx context.Context, sessionID, userText string, prior []models.ChatMessage, uc models.UserContext) models.ChatbotResponse {
	if resp, ok := e.tryGenerate(ctx, sessionID, userText, prior, uc); ok {
		return resp
	}

	resp := rules.Match(userText, uc, prior)
	if resp.Content != "" {
		return resp
	}
	return apologyResponse()
}

func (e *Engine) tryGenerate(ctx context.Context, sessionID, userText string, prior []models.ChatMessage, uc models.UserContext) (models.ChatbotResponse, bool) {
	if e.generator == nil {
		return models.ChatbotResponse{}, false
	}

	if e.limiter != nil {
		ok, err := e.limiter.WaitAndReserve(ctx)
		if err != nil || !ok {
			if err != nil {
				logger.WarnWithFields("chat quota wait aborted", logger.Fields{"session_id": sessionID, "error": err.Error()})
			} else {
				logger.WarnWithFields("chat quota exhausted, using rule engine", logger.Fields{"session_id": sessionID})
			}
			return models.ChatbotResponse{}, false
		}
	}

	genCtx, cancel := context.WithTimeout(ctx, e.genTimeout)
	defer cancel()

	resp, callLog, err := e.generator.Generate(genCtx, userText, projectHistory(prior, e.historyLimit), uc)
	e.recordCall(sessionID, callLog)
	if err != nil {
		logger.ErrorWithFields("generative reply failed, using rule engine", logger.Fields{
			"session_id": sessionID,
			"model":      e.generator.Model(),
			"error":      err.Error(),
		})
		return models.ChatbotResponse{}, false
	}
	return resp, true
}

// recordCall 은 생성형 호출 로그를 best-effort 로 저장한다. 저장 실패가
// 대화 흐름을 막아서는 안 된다.
func (e *Engine) recordCall(sessionID string, callLog *models.ChatGenerationLog) {
	if e.logs == nil || callLog == nil {
		return
	}
	callLog.SessionID = sessionID

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := e.logs.Insert(ctx, *callLog); err != nil {
		logger.ErrorWithFields("generation log insert failed", logger.Fields{"session_id": sessionID, "error": err.Error()})
	}
}

// rememberContext fills the user context opportunistically from this turn.
func (e *Engine) rememberContext(sessionID, userText string, resp models.ChatbotResponse) {
	topic := rules.TopicDetected(userText)
	if !topic && len(resp.ServiceRecommendations) == 0 {
		return
	}
	err := e.store.UpdateContext(sessionID, func(uc *models.UserContext) {
		if topic {
			uc.CurrentPainPoints = append(uc.CurrentPainPoints, userText)
		}
		for _, cat := range resp.ServiceRecommendations {
			if !containsCategory(uc.InterestedServices, cat) {
				uc.InterestedServices = append(uc.InterestedServices, cat)
			}
		}
	})
	if err != nil {
		logger.WarnWithFields("user context update failed", logger.Fields{"session_id": sessionID, "error": err.Error()})
	}
}

// apologyResponse is the last-resort reply when both paths fail to produce
// content.
func apologyResponse() models.ChatbotResponse {
	return models.ChatbotResponse{
		Content: "Sorry — something went wrong on my end. A real person can pick this up: book a free assessment or take a look at our services.",
		QuickActions: []models.QuickAction{
			{ID: "qa-book-assessment", Label: "Book a free assessment", Action: models.ActionBookAssessment},
			{ID: "qa-service-info", Label: "See our services", Action: models.ActionServiceInfo},
		},
	}
}

func projectHistory(messages []models.ChatMessage, limit int) []models.Turn {
	if len(messages) > limit {
		messages = messages[len(messages)-limit:]
	}
	turns := make([]models.Turn, 0, len(messages))
	for _, msg := range messages {
		role := "user"
		if msg.Type == models.MessageTypeBot {
			role = "assistant"
		}
		turns = append(turns, models.Turn{Role: role, Content: msg.Content})
	}
	return turns
}

func newBotMessage(resp models.ChatbotResponse) models.ChatMessage {
	msg := models.ChatMessage{
		ID:        uuid.NewString(),
		Type:      models.MessageTypeBot,
		Content:   resp.Content,
		Timestamp: time.Now().UTC(),
	}
	if len(resp.QuickActions) > 0 || len(resp.ServiceRecommendations) > 0 || resp.TimeSavingsEstimate != "" {
		msg.Metadata = &models.MessageMetadata{
			QuickActions:           resp.QuickActions,
			ServiceRecommendations: resp.ServiceRecommendations,
			TimeSavingsEstimate:    resp.TimeSavingsEstimate,
		}
	}
	return msg
}

func containsCategory(list []models.ServiceCategory, cat models.ServiceCategory) bool {
	for _, c := range list {
		if c == cat {
			return true
		}
	}
	return false
}
