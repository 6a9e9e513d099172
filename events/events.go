package events

import (
	"time"

	"github.com/google/uuid"
)

// EventType 이벤트 타입 정의
type EventType string

const (
	ChatSessionStarted   EventType = "chat.session_started"
	ChatHandoffRequested EventType = "chat.handoff_requested"
	LeadCaptured         EventType = "lead.captured"
)

// 전역 토픽 선언: 기능별 기본 토픽 이름을 한 곳에서 관리한다.
const (
	TopicChatEvents = "flowmate.chat.events"
	TopicLeadEvents = "flowmate.lead.events"
)

// BaseEvent 모든 이벤트의 기본 구조
type BaseEvent struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"`
	Version   string    `json:"version"`
}

func newBase(t EventType) BaseEvent {
	return BaseEvent{
		ID:        uuid.NewString(),
		Type:      t,
		Timestamp: time.Now().UTC(),
		Source:    "flowmate-api",
		Version:   "1.0",
	}
}

// ChatSessionStartedEvent 위젯이 처음 열려 세션이 생성되었을 때 발행된다.
type ChatSessionStartedEvent struct {
	BaseEvent
	SessionID string `json:"session_id"`
}

func NewChatSessionStarted(sessionID string) ChatSessionStartedEvent {
	return ChatSessionStartedEvent{BaseEvent: newBase(ChatSessionStarted), SessionID: sessionID}
}

// ChatHandoffRequestedEvent 방문자가 상담원 연결을 요청했을 때 발행된다.
// 영업팀 알림 파이프라인이 이 이벤트를 구독한다.
type ChatHandoffRequestedEvent struct {
	BaseEvent
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

func NewChatHandoffRequested(sessionID, message string) ChatHandoffRequestedEvent {
	return ChatHandoffRequestedEvent{BaseEvent: newBase(ChatHandoffRequested), SessionID: sessionID, Message: message}
}

// LeadCapturedEvent 문의/진단 예약 폼이 제출되었을 때 발행된다.
type LeadCapturedEvent struct {
	BaseEvent
	LeadID        string `json:"lead_id"`
	LeadSource    string `json:"lead_source"`
	Email         string `json:"email"`
	ChatSessionID string `json:"chat_session_id,omitempty"`
}

func NewLeadCaptured(leadID, leadSource, email, chatSessionID string) LeadCapturedEvent {
	return LeadCapturedEvent{
		BaseEvent:     newBase(LeadCaptured),
		LeadID:        leadID,
		LeadSource:    leadSource,
		Email:         email,
		ChatSessionID: chatSessionID,
	}
}
