package repository

import (
	"time"

	"appointment-booking/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingRepository interface {
	Create(db *gorm.DB, booking *entity.Booking) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Booking, error)
	FindAll(db *gorm.DB) ([]entity.Booking, error)
	// FindBlockingForStaffInRange returns confirmed and completed bookings for
	// one staff member whose window intersects [from, to). Cancelled bookings
	// never block availability and are excluded here.
	FindBlockingForStaffInRange(db *gorm.DB, staffID uuid.UUID, from, to time.Time) ([]entity.Booking, error)
	CancelBooking(db *gorm.DB, id uuid.UUID) (int64, error)
	CompleteBooking(db *gorm.DB, id uuid.UUID) (int64, error)
}
