package entity

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

// Booking represents a customer appointment. Customer identity is captured on
// the booking itself (anonymous form submission, no customer accounts).
// Only confirmed and completed bookings block availability.
type Booking struct {
	ID                 uuid.UUID     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	StaffID            uuid.UUID     `gorm:"type:uuid;not null;index" json:"staff_id"`
	ConsultationTypeID uuid.UUID     `gorm:"type:uuid;not null;index" json:"consultation_type_id"`
	CustomerName       string        `gorm:"type:varchar(255);not null" json:"customer_name"`
	CustomerEmail      string        `gorm:"type:varchar(255);not null" json:"customer_email"`
	StartTime          time.Time     `gorm:"not null;index" json:"start_time"`
	EndTime            time.Time     `gorm:"not null" json:"end_time"`
	Status             BookingStatus `gorm:"type:varchar(20);not null;default:'confirmed';index" json:"status"`
	CreatedAt          time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time     `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Staff            StaffMember      `gorm:"foreignKey:StaffID" json:"staff,omitempty"`
	ConsultationType ConsultationType `gorm:"foreignKey:ConsultationTypeID" json:"consultation_type,omitempty"`
}

func (Booking) TableName() string {
	return "bookings"
}

// IsCancelled checks if booking is cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == BookingStatusCancelled
}

// BlocksAvailability reports whether this booking occupies its staff
// member's time for conflict purposes.
func (b *Booking) BlocksAvailability() bool {
	return b.Status == BookingStatusConfirmed || b.Status == BookingStatusCompleted
}

// Cancel changes booking status to cancelled
func (b *Booking) Cancel() {
	b.Status = BookingStatusCancelled
}

// Complete changes booking status to completed
func (b *Booking) Complete() {
	b.Status = BookingStatusCompleted
}
