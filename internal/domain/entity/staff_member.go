package entity

import (
	"time"

	"github.com/google/uuid"
)

// StaffMember represents a bookable staff member. Deactivation is soft:
// inactive staff are excluded from future availability computation while
// their existing bookings remain untouched.
type StaffMember struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	DisplayName string    `gorm:"type:varchar(255);not null" json:"display_name"`
	Email       string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	IsActive    bool      `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	WorkingHours []WorkingHours  `gorm:"foreignKey:StaffID" json:"working_hours,omitempty"`
	Vacations    []VacationRange `gorm:"foreignKey:StaffID" json:"vacations,omitempty"`
	Bookings     []Booking       `gorm:"foreignKey:StaffID" json:"bookings,omitempty"`
}

func (StaffMember) TableName() string {
	return "staff_members"
}
