package dto

import "flowmate/models"

type CreateLeadRequestDTO struct {
	Name          string            `json:"name" binding:"required" example:"Dana Kim"`
	Email         string            `json:"email" binding:"required,email" example:"dana@example.com"`
	Company       string            `json:"company,omitempty" example:"Kim Accounting"`
	Message       string            `json:"message,omitempty" example:"We spend hours on weekly reports."`
	Source        models.LeadSource `json:"source" binding:"required" example:"contact_form"`
	ChatSessionID string            `json:"chat_session_id,omitempty"`
}

type CreateLeadResponseDTO struct {
	Lead models.Lead `json:"lead"`
}

type ListLeadsResponseDTO struct {
	Leads []models.Lead `json:"leads"`
}
