package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateConsultationTypeRequest struct {
	Name            string `json:"name" validate:"required,max=255"`
	DurationMinutes int    `json:"duration_minutes" validate:"required,min=5,max=480"`
	BufferBefore    int    `json:"buffer_before" validate:"min=0,max=120"`
	BufferAfter     int    `json:"buffer_after" validate:"min=0,max=120"`
	DisplayOrder    int    `json:"display_order" validate:"min=0"`
}

type UpdateConsultationTypeRequest struct {
	Name            string `json:"name" validate:"omitempty,max=255"`
	DurationMinutes *int   `json:"duration_minutes" validate:"omitempty,min=5,max=480"`
	BufferBefore    *int   `json:"buffer_before" validate:"omitempty,min=0,max=120"`
	BufferAfter     *int   `json:"buffer_after" validate:"omitempty,min=0,max=120"`
	DisplayOrder    *int   `json:"display_order" validate:"omitempty,min=0"`
}

// Response DTOs

type ConsultationTypeResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	DurationMinutes int       `json:"duration_minutes"`
	BufferBefore    int       `json:"buffer_before"`
	BufferAfter     int       `json:"buffer_after"`
	IsActive        bool      `json:"is_active"`
	DisplayOrder    int       `json:"display_order"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type ConsultationTypeListResponse struct {
	ConsultationTypes []ConsultationTypeResponse `json:"consultation_types"`
	Total             int                        `json:"total"`
}
