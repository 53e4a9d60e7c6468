package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateBookingRequest struct {
	ConsultationTypeID uuid.UUID `json:"consultation_type_id" validate:"required"`
	StaffID            uuid.UUID `json:"staff_id" validate:"required"`
	StartTime          string    `json:"start_time" validate:"required"` // RFC 3339
	CustomerName       string    `json:"customer_name" validate:"required,max=255"`
	CustomerEmail      string    `json:"customer_email" validate:"required,email"`
}

// Response DTOs

type BookingResponse struct {
	ID                 uuid.UUID `json:"id"`
	StaffID            uuid.UUID `json:"staff_id"`
	StaffName          string    `json:"staff_name,omitempty"`
	ConsultationTypeID uuid.UUID `json:"consultation_type_id"`
	ConsultationType   string    `json:"consultation_type,omitempty"`
	CustomerName       string    `json:"customer_name"`
	CustomerEmail      string    `json:"customer_email"`
	StartTime          time.Time `json:"start_time"`
	EndTime            time.Time `json:"end_time"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}
