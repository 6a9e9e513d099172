package engine

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flowmate/models"
	"flowmate/session"
)

// failingGenerator always errors, standing in for an unreachable model.
type failingGenerator struct{}

func (failingGenerator) Generate(ctx context.Context, userText string, history []models.Turn, uc models.UserContext) (models.ChatbotResponse, *models.ChatGenerationLog, error) {
	callLog := &models.ChatGenerationLog{ModelName: "stub", RequestedAt: time.Now()}
	return models.ChatbotResponse{}, callLog, errors.New("model unreachable")
}

func (failingGenerator) Model() string { return "stub" }

// cannedGenerator returns a fixed reply and records what it was asked.
type cannedGenerator struct {
	mu       sync.Mutex
	lastText string
	history  []models.Turn
	resp     models.ChatbotResponse
}

func (g *cannedGenerator) Generate(ctx context.Context, userText string, history []models.Turn, uc models.UserContext) (models.ChatbotResponse, *models.ChatGenerationLog, error) {
	g.mu.Lock()
	g.lastText = userText
	g.history = history
	g.mu.Unlock()
	return g.resp, &models.ChatGenerationLog{ModelName: "stub", RequestedAt: time.Now()}, nil
}

func (g *cannedGenerator) Model() string { return "stub" }

type capturedLog struct {
	mu   sync.Mutex
	logs []models.ChatGenerationLog
}

func (c *capturedLog) Insert(ctx context.Context, log models.ChatGenerationLog) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.logs = append(c.logs, log)
	return nil
}

func newTestEngine(t *testing.T, gen Generator) (*Engine, *session.Store) {
	t.Helper()
	store := session.NewStore(0)
	return New(store, gen, nil, nil, nil, Config{ReferencePackagePrice: 499}), store
}

func TestStartSessionSeedsWelcome(t *testing.T) {
	eng, _ := newTestEngine(t, nil)

	sess, err := eng.StartSession(context.Background())
	require.NoError(t, err)
	require.Len(t, sess.Messages, 1)

	welcome := sess.Messages[0]
	assert.Equal(t, models.MessageTypeBot, welcome.Type)
	assert.NotEmpty(t, welcome.Content)
	require.NotNil(t, welcome.Metadata)
	assert.Len(t, welcome.Metadata.QuickActions, 2)
}

func TestProduceReplyWithoutGenerator(t *testing.T) {
	eng, _ := newTestEngine(t, nil)
	sess, err := eng.StartSession(context.Background())
	require.NoError(t, err)

	msg, err := eng.ProduceReply(context.Background(), sess.ID, "how much does it cost?")
	require.NoError(t, err)
	assert.Equal(t, models.MessageTypeBot, msg.Type)
	assert.Contains(t, msg.Content, "$")
}

func TestProduceReplyFallsBackOnGeneratorFailure(t *testing.T) {
	logs := &capturedLog{}
	store := session.NewStore(0)
	eng := New(store, failingGenerator{}, nil, logs, nil, Config{})

	sess, err := eng.StartSession(context.Background())
	require.NoError(t, err)

	msg, err := eng.ProduceReply(context.Background(), sess.ID, "my downloads folder is out of control")
	require.NoError(t, err, "a generative failure must never surface to the visitor")
	assert.NotEmpty(t, msg.Content)
	require.NotNil(t, msg.Metadata)
	assert.Contains(t, msg.Metadata.ServiceRecommendations, models.CategoryScripting)

	// the failed attempt is still logged for operators
	logs.mu.Lock()
	defer logs.mu.Unlock()
	require.Len(t, logs.logs, 1)
	assert.Equal(t, sess.ID, logs.logs[0].SessionID)
}

func TestProduceReplyAppendOnly(t *testing.T) {
	eng, _ := newTestEngine(t, nil)
	sess, err := eng.StartSession(context.Background())
	require.NoError(t, err)

	inputs := []string{"hello", "I drown in emails", "what do you charge?"}
	for _, text := range inputs {
		_, err := eng.ProduceReply(context.Background(), sess.ID, text)
		require.NoError(t, err)
	}

	snap, err := eng.Session(sess.ID)
	require.NoError(t, err)
	// welcome + one user/bot pair per turn
	require.Len(t, snap.Messages, 1+2*len(inputs))

	assert.Equal(t, "hello", snap.Messages[1].Content)
	assert.Equal(t, models.MessageTypeUser, snap.Messages[1].Type)
	assert.Equal(t, models.MessageTypeBot, snap.Messages[2].Type)
	assert.Equal(t, "I drown in emails", snap.Messages[3].Content)
}

func TestProduceReplyUnknownSession(t *testing.T) {
	eng, _ := newTestEngine(t, nil)
	_, err := eng.ProduceReply(context.Background(), "no-such-session", "hi")
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestGeneratorSeesHistoryWithoutCurrentMessage(t *testing.T) {
	gen := &cannedGenerator{resp: models.ChatbotResponse{Content: "sure thing"}}
	store := session.NewStore(0)
	eng := New(store, gen, nil, nil, nil, Config{HistoryLimit: 12})

	sess, err := eng.StartSession(context.Background())
	require.NoError(t, err)

	_, err = eng.ProduceReply(context.Background(), sess.ID, "tell me about reporting")
	require.NoError(t, err)

	gen.mu.Lock()
	defer gen.mu.Unlock()
	assert.Equal(t, "tell me about reporting", gen.lastText)
	// only the welcome message precedes this turn
	require.Len(t, gen.history, 1)
	assert.Equal(t, "assistant", gen.history[0].Role)
}

func TestRememberContextAccumulates(t *testing.T) {
	eng, _ := newTestEngine(t, nil)
	sess, err := eng.StartSession(context.Background())
	require.NoError(t, err)

	_, err = eng.ProduceReply(context.Background(), sess.ID, "renaming files by hand takes forever")
	require.NoError(t, err)

	snap, err := eng.Session(sess.ID)
	require.NoError(t, err)
	assert.Contains(t, snap.UserContext.CurrentPainPoints, "renaming files by hand takes forever")
	assert.Contains(t, snap.UserContext.InterestedServices, models.CategoryScripting)
}

func TestProjectHistoryTrimsOldest(t *testing.T) {
	msgs := make([]models.ChatMessage, 0, 6)
	for i := 0; i < 6; i++ {
		typ := models.MessageTypeUser
		if i%2 == 1 {
			typ = models.MessageTypeBot
		}
		msgs = append(msgs, models.ChatMessage{Type: typ, Content: string(rune('a' + i))})
	}

	turns := projectHistory(msgs, 4)
	require.Len(t, turns, 4)
	assert.Equal(t, "c", turns[0].Content)
	assert.Equal(t, "user", turns[0].Role)
	assert.Equal(t, "f", turns[3].Content)
	assert.Equal(t, "assistant", turns[3].Role)
}
