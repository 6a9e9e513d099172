package dto

import "flowmate/savings"

type EstimateRequestDTO struct {
	TasksPerWeek   float64 `json:"tasks_per_week" binding:"required,min=0" example:"10"`
	MinutesPerTask float64 `json:"minutes_per_task" binding:"required,min=0" example:"30"`
	HourlyRate     float64 `json:"hourly_rate" binding:"required,gt=0" example:"50"`

	// 계수를 생략하면 기본값(커버리지 0.7, 효율 0.8)을 사용한다.
	Coverage   float64 `json:"coverage,omitempty" binding:"omitempty,gt=0,lte=1"`
	Efficiency float64 `json:"efficiency,omitempty" binding:"omitempty,gt=0,lte=1"`
}

type EstimateResponseDTO struct {
	Estimate savings.Estimate `json:"estimate"`
}
