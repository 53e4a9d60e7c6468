package repository

import (
	"errors"
	"time"

	"appointment-booking/internal/domain/entity"
	domainRepo "appointment-booking/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type bookingRepository struct{}

func NewBookingRepository() domainRepo.BookingRepository {
	return &bookingRepository{}
}

func (r *bookingRepository) Create(db *gorm.DB, booking *entity.Booking) error {
	return db.Create(booking).Error
}

func (r *bookingRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Booking, error) {
	var booking entity.Booking
	err := db.Preload("Staff").Preload("ConsultationType").Where("id = ?", id).First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindAll(db *gorm.DB) ([]entity.Booking, error) {
	var bookings []entity.Booking
	err := db.Preload("Staff").Preload("ConsultationType").
		Order("start_time DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// FindBlockingForStaffInRange returns confirmed/completed bookings whose
// window intersects [from, to). The half-open intersection test matches the
// one the availability calculator applies to candidate windows.
func (r *bookingRepository) FindBlockingForStaffInRange(db *gorm.DB, staffID uuid.UUID, from, to time.Time) ([]entity.Booking, error) {
	var bookings []entity.Booking
	err := db.Where("staff_id = ?", staffID).
		Where("status IN ?", []entity.BookingStatus{entity.BookingStatusConfirmed, entity.BookingStatusCompleted}).
		Where("start_time < ? AND end_time > ?", to, from).
		Order("start_time ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// CancelBooking atomically cancels a booking ONLY if it's not already
// cancelled. Returns affected rows: 1 = success, 0 = already cancelled.
func (r *bookingRepository) CancelBooking(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Model(&entity.Booking{}).
		Where("id = ? AND status != ?", id, entity.BookingStatusCancelled).
		Update("status", entity.BookingStatusCancelled)
	return result.RowsAffected, result.Error
}

// CompleteBooking marks a confirmed booking as completed. Completed bookings
// keep blocking availability for their window.
func (r *bookingRepository) CompleteBooking(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Model(&entity.Booking{}).
		Where("id = ? AND status = ?", id, entity.BookingStatusConfirmed).
		Update("status", entity.BookingStatusCompleted)
	return result.RowsAffected, result.Error
}
