package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateStaffRequest struct {
	DisplayName string `json:"display_name" validate:"required,max=255"`
	Email       string `json:"email" validate:"required,email"`
}

type UpdateStaffRequest struct {
	DisplayName string `json:"display_name" validate:"omitempty,max=255"`
	Email       string `json:"email" validate:"omitempty,email"`
}

type WorkingHoursRequest struct {
	Weekday   int    `json:"weekday" validate:"min=0,max=6"`
	OpenTime  string `json:"open_time" validate:"required"`  // HH:MM
	CloseTime string `json:"close_time" validate:"required"` // HH:MM
}

type SetWorkingHoursRequest struct {
	Hours []WorkingHoursRequest `json:"hours" validate:"dive"`
}

type CreateVacationRequest struct {
	StartDate string `json:"start_date" validate:"required"` // YYYY-MM-DD
	EndDate   string `json:"end_date" validate:"required"`   // YYYY-MM-DD
	Reason    string `json:"reason" validate:"omitempty,max=255"`
}

// Response DTOs

type WorkingHoursResponse struct {
	Weekday   int    `json:"weekday"`
	OpenTime  string `json:"open_time"`
	CloseTime string `json:"close_time"`
}

type VacationResponse struct {
	ID        int    `json:"id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason,omitempty"`
}

type StaffResponse struct {
	ID           uuid.UUID              `json:"id"`
	DisplayName  string                 `json:"display_name"`
	Email        string                 `json:"email"`
	IsActive     bool                   `json:"is_active"`
	WorkingHours []WorkingHoursResponse `json:"working_hours,omitempty"`
	Vacations    []VacationResponse     `json:"vacations,omitempty"`
	CreatedAt    time.Time              `json:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at"`
}

type StaffListResponse struct {
	Staff []StaffResponse `json:"staff"`
	Total int             `json:"total"`
}
