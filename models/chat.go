package models

import "time"

// MessageType 은 채팅 메시지의 발신 주체를 구분한다.
// 세션 로그에 노출되는 타입은 user/bot 두 가지뿐이다.
type MessageType string

const (
	MessageTypeUser MessageType = "user"
	MessageTypeBot  MessageType = "bot"
)

// QuickActionType is the closed set of action identifiers shared by the rule
// engine, the generative post-processing and the dispatcher. Both response
// paths must never emit an identifier outside this set.
type QuickActionType string

const (
	ActionCalculateSavings QuickActionType = "calculate_savings"
	ActionBookAssessment   QuickActionType = "book_assessment"
	ActionContactForm      QuickActionType = "contact_form"
	ActionServiceInfo      QuickActionType = "service_info"
)

// QuickAction 은 봇 메시지에 첨부되는 클릭 가능한 선택지다.
type QuickAction struct {
	ID     string          `json:"id"`
	Label  string          `json:"label"`
	Action QuickActionType `json:"action"`
	Data   map[string]any  `json:"data,omitempty"`
}

// MessageMetadata carries the structured affordances of a bot message.
// User messages never have metadata.
type MessageMetadata struct {
	QuickActions           []QuickAction     `json:"quick_actions,omitempty"`
	ServiceRecommendations []ServiceCategory `json:"service_recommendations,omitempty"`
	TimeSavingsEstimate    string            `json:"time_savings_estimate,omitempty"`
}

// ChatMessage 는 생성 이후 불변이다. 세션은 append 로만 변경된다.
type ChatMessage struct {
	ID        string           `json:"id"`
	Type      MessageType      `json:"type"`
	Content   string           `json:"content"`
	Timestamp time.Time        `json:"timestamp"`
	Metadata  *MessageMetadata `json:"metadata,omitempty"`
}

// UserContext 는 대화가 진행되며 기회가 있을 때마다 채워지는 부분 레코드다.
// 필드가 비어 있으면 "아직 모름"을 의미한다.
type UserContext struct {
	BusinessType          string            `json:"business_type,omitempty"`
	CurrentPainPoints     []string          `json:"current_pain_points,omitempty"`
	InterestedServices    []ServiceCategory `json:"interested_services,omitempty"`
	EstimatedTasksPerWeek int               `json:"estimated_tasks_per_week,omitempty"`
}

// ChatSession holds one visitor conversation. Created lazily when the widget
// first opens, never shared across widget instances.
type ChatSession struct {
	ID           string        `json:"id"`
	Messages     []ChatMessage `json:"messages"`
	UserContext  UserContext   `json:"user_context"`
	StartedAt    time.Time     `json:"started_at"`
	LastActivity time.Time     `json:"last_activity"`
}

// ChatbotResponse is the normalized shape both response paths produce before
// it is wrapped into a bot ChatMessage. It is transient and never stored.
type ChatbotResponse struct {
	Content                string
	QuickActions           []QuickAction
	ServiceRecommendations []ServiceCategory
	// ShouldCollectInfo names the next UserContext field worth soliciting
	// (advisory only, collection is never enforced).
	ShouldCollectInfo   string
	TimeSavingsEstimate string
}

// Turn 은 생성형 어댑터에 전달되는 대화 이력의 한 줄이다.
// 메타데이터는 생성형 경로에 노출되지 않는다.
type Turn struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}
