package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type SlotQueryRequest struct {
	ConsultationTypeID uuid.UUID `json:"consultation_type_id" validate:"required"`
	From               string    `json:"from" validate:"omitempty,datetime=2006-01-02"`
	To                 string    `json:"to" validate:"omitempty,datetime=2006-01-02"`
}

// Response DTOs

type SlotResponse struct {
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	StaffID   uuid.UUID `json:"staff_id"`
	StaffName string    `json:"staff_name"`
}

type SlotListResponse struct {
	Slots []SlotResponse `json:"slots"`
	Total int            `json:"total"`
}
