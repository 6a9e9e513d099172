package session

import (
	"testing"
	"time"

	"flowmate/models"
)

func TestStoreCreateAndGet(t *testing.T) {
	s := NewStore(time.Minute)
	defer s.Stop()

	sess := s.Create()
	if sess.ID == "" {
		t.Fatal("expected generated session id")
	}
	if len(sess.Messages) != 0 {
		t.Fatalf("expected empty message log, got %d", len(sess.Messages))
	}

	got, err := s.Get(sess.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != sess.ID {
		t.Fatalf("expected id %s, got %s", sess.ID, got.ID)
	}
}

func TestStoreGetUnknownSession(t *testing.T) {
	s := NewStore(time.Minute)
	defer s.Stop()

	if _, err := s.Get("nope"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStoreAppendIsAppendOnly(t *testing.T) {
	s := NewStore(time.Minute)
	defer s.Stop()
	sess := s.Create()

	first := models.ChatMessage{ID: "m1", Type: models.MessageTypeUser, Content: "hello", Timestamp: time.Now()}
	snap, err := s.Append(sess.ID, first)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snap.Messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(snap.Messages))
	}

	second := models.ChatMessage{ID: "m2", Type: models.MessageTypeBot, Content: "hi"}
	snap, err = s.Append(sess.ID, second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snap.Messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(snap.Messages))
	}
	if snap.Messages[0].ID != "m1" || snap.Messages[1].ID != "m2" {
		t.Fatal("append order must equal conversational order")
	}
	if snap.Messages[0].Content != "hello" {
		t.Fatal("earlier message was mutated")
	}
}

func TestStoreSnapshotsAreIsolated(t *testing.T) {
	s := NewStore(time.Minute)
	defer s.Stop()
	sess := s.Create()

	if _, err := s.Append(sess.ID, models.ChatMessage{ID: "m1", Content: "original"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	snap, _ := s.Get(sess.ID)
	snap.Messages[0].Content = "tampered"

	again, _ := s.Get(sess.ID)
	if again.Messages[0].Content != "original" {
		t.Fatal("mutating a snapshot must not affect the stored session")
	}
}

func TestStoreUpdateContext(t *testing.T) {
	s := NewStore(time.Minute)
	defer s.Stop()
	sess := s.Create()

	err := s.UpdateContext(sess.ID, func(uc *models.UserContext) {
		uc.BusinessType = "accounting"
		uc.CurrentPainPoints = append(uc.CurrentPainPoints, "weekly reports")
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, _ := s.Get(sess.ID)
	if got.UserContext.BusinessType != "accounting" {
		t.Fatalf("expected business type to stick, got %q", got.UserContext.BusinessType)
	}
	if len(got.UserContext.CurrentPainPoints) != 1 {
		t.Fatalf("expected 1 pain point, got %d", len(got.UserContext.CurrentPainPoints))
	}
}

func TestStoreSweepRemovesIdleSessions(t *testing.T) {
	s := NewStore(10 * time.Millisecond)
	defer s.Stop()

	idle := s.Create()
	time.Sleep(30 * time.Millisecond)
	fresh := s.Create()

	removed := s.sweep(time.Now().UTC())
	if removed != 1 {
		t.Fatalf("expected 1 swept session, got %d", removed)
	}
	if _, err := s.Get(idle.ID); err != ErrNotFound {
		t.Fatalf("expected idle session to be gone, got %v", err)
	}
	if _, err := s.Get(fresh.ID); err != nil {
		t.Fatalf("fresh session must survive the sweep: %v", err)
	}
}
