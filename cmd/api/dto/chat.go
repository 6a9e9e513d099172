package dto

import "flowmate/models"

type StartSessionResponseDTO struct {
	Session models.ChatSession `json:"session"`
}

type SendMessageRequestDTO struct {
	Message string `json:"message" binding:"required" example:"my downloads folder is a mess"`
}

type SendMessageResponseDTO struct {
	Message models.ChatMessage `json:"message"`
}

type DispatchActionRequestDTO struct {
	Action models.QuickActionType `json:"action" binding:"required" example:"calculate_savings"`
	Data   map[string]any         `json:"data,omitempty"`
}

type SessionResponseDTO struct {
	Session models.ChatSession `json:"session"`
}
