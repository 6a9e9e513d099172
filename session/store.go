// Package session keeps per-visitor conversation state in memory. Sessions
// are created lazily when the widget first opens and are never persisted;
// an idle sweeper reclaims sessions the widget stopped touching.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"flowmate/models"
)

var ErrNotFound = errors.New("session: not found")

const defaultTTL = 30 * time.Minute

// Store 는 세션 ID 로 키잉된 인메모리 세션 저장소다.
// 세션 변경은 전부 Store 메서드를 통해서만 일어난다.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*models.ChatSession
	ttl      time.Duration

	stopOnce sync.Once
	stop     chan struct{}
}

func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Store{
		sessions: make(map[string]*models.ChatSession),
		ttl:      ttl,
		stop:     make(chan struct{}),
	}
}

// Create opens a new session and returns a snapshot of it.
func (s *Store) Create() models.ChatSession {
	now := time.Now().UTC()
	sess := &models.ChatSession{
		ID:           uuid.NewString(),
		Messages:     []models.ChatMessage{},
		StartedAt:    now,
		LastActivity: now,
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	return snapshot(sess)
}

// Get returns a snapshot of the session, so callers can never mutate stored
// messages in place.
func (s *Store) Get(id string) (models.ChatSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return models.ChatSession{}, ErrNotFound
	}
	return snapshot(sess), nil
}

// Append adds one message to the session log and bumps lastActivity. The log
// is append-only; existing entries are never reordered or rewritten.
func (s *Store) Append(id string, msg models.ChatMessage) (models.ChatSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return models.ChatSession{}, ErrNotFound
	}
	sess.Messages = append(sess.Messages, msg)
	sess.LastActivity = time.Now().UTC()
	return snapshot(sess), nil
}

// UpdateContext applies fn to the session's user context. Mutations are
// last-write-wins, matching the single-writer model of one widget instance.
func (s *Store) UpdateContext(id string, fn func(*models.UserContext)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return ErrNotFound
	}
	fn(&sess.UserContext)
	sess.LastActivity = time.Now().UTC()
	return nil
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// StartSweeper 는 TTL 을 넘긴 유휴 세션을 주기적으로 정리하는 고루틴을 띄운다.
func (s *Store) StartSweeper(interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.sweep(time.Now().UTC())
			case <-s.stop:
				return
			}
		}
	}()
}

// Stop terminates the sweeper goroutine.
func (s *Store) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })
}

func (s *Store) sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, sess := range s.sessions {
		if now.Sub(sess.LastActivity) > s.ttl {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

func snapshot(sess *models.ChatSession) models.ChatSession {
	out := *sess
	out.Messages = make([]models.ChatMessage, len(sess.Messages))
	copy(out.Messages, sess.Messages)
	if sess.UserContext.CurrentPainPoints != nil {
		out.UserContext.CurrentPainPoints = append([]string(nil), sess.UserContext.CurrentPainPoints...)
	}
	if sess.UserContext.InterestedServices != nil {
		out.UserContext.InterestedServices = append([]models.ServiceCategory(nil), sess.UserContext.InterestedServices...)
	}
	return out
}
