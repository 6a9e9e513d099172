package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LeadSource 는 리드가 들어온 경로를 구분한다.
type LeadSource string

const (
	LeadSourceContactForm LeadSource = "contact_form"
	LeadSourceAssessment  LeadSource = "assessment"
	LeadSourceChatbot     LeadSource = "chatbot"
)

// Lead 는 문의/진단 예약 폼 제출 한 건이다.
// Collection: leads
type Lead struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string             `bson:"name" json:"name"`
	Email         string             `bson:"email" json:"email"`
	Company       string             `bson:"company,omitempty" json:"company,omitempty"`
	Message       string             `bson:"message,omitempty" json:"message,omitempty"`
	Source        LeadSource         `bson:"source" json:"source"`
	ChatSessionID string             `bson:"chat_session_id,omitempty" json:"chat_session_id,omitempty"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
}
