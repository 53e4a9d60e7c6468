package usecase

import (
	"context"
	"errors"
	"time"

	"appointment-booking/config"
	"appointment-booking/internal/availability"
	"appointment-booking/internal/converter"
	"appointment-booking/internal/delivery/dto"
	"appointment-booking/internal/domain/entity"
	"appointment-booking/internal/domain/repository"
	"appointment-booking/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrBookingNotFound         = errors.New("booking not found")
	ErrBookingAlreadyCancelled = errors.New("booking is already cancelled")
	ErrBookingNotConfirmed     = errors.New("booking is not in confirmed status")
	ErrSlotInPast              = errors.New("cannot book a slot in the past")
	ErrSlotUnavailable         = errors.New("requested slot is not available")
	ErrInvalidStartTime        = errors.New("invalid start time, use RFC 3339")
)

type BookingUsecase interface {
	CreateBooking(ctx context.Context, req *dto.CreateBookingRequest) (*dto.BookingResponse, error)
	GetBooking(ctx context.Context, bookingID uuid.UUID) (*dto.BookingResponse, error)
	GetAllBookings(ctx context.Context) (*dto.BookingListResponse, error)
	CancelBooking(ctx context.Context, bookingID uuid.UUID) error
	CompleteBooking(ctx context.Context, bookingID uuid.UUID) error
}

type bookingUsecase struct {
	db                   *gorm.DB
	log                  *logrus.Logger
	bookingRepo          repository.BookingRepository
	staffRepo            repository.StaffRepository
	consultationTypeRepo repository.ConsultationTypeRepository
	calculator           *availability.Calculator
	cache                *service.SlotCache
	now                  func() time.Time
}

func NewBookingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	bookingRepo repository.BookingRepository,
	staffRepo repository.StaffRepository,
	consultationTypeRepo repository.ConsultationTypeRepository,
	cache *service.SlotCache,
	slotCfg config.SlotConfig,
) BookingUsecase {
	return &bookingUsecase{
		db:                   db,
		log:                  log,
		bookingRepo:          bookingRepo,
		staffRepo:            staffRepo,
		consultationTypeRepo: consultationTypeRepo,
		calculator:           availability.NewCalculator(slotCfg.GranularityMinutes, slotCfg.DayStart, slotCfg.DayEnd),
		cache:                cache,
		now:                  time.Now,
	}
}

// CreateBooking books a slot for an anonymous customer. The requested start
// is re-validated against the calculator before insert, so a slot that was
// taken (or never existed on the grid) between slot discovery and submission
// is rejected rather than double-booked.
func (u *bookingUsecase) CreateBooking(ctx context.Context, req *dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	now := u.now()

	start, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		return nil, ErrInvalidStartTime
	}
	if start.Before(now) {
		return nil, ErrSlotInPast
	}

	consultationType, err := u.consultationTypeRepo.FindByID(u.db.WithContext(ctx), req.ConsultationTypeID)
	if err != nil {
		u.log.Warnf("Failed to find consultation type: %+v", err)
		return nil, err
	}
	if consultationType == nil || !consultationType.IsActive {
		return nil, ErrConsultationTypeNotFound
	}

	staff, err := u.staffRepo.FindByID(u.db.WithContext(ctx), req.StaffID)
	if err != nil {
		u.log.Warnf("Failed to find staff member: %+v", err)
		return nil, err
	}
	if staff == nil || !staff.IsActive {
		return nil, ErrStaffNotFound
	}

	if err := u.verifySlotAvailable(ctx, staff, consultationType, start, now); err != nil {
		return nil, err
	}

	booking := &entity.Booking{
		StaffID:            staff.ID,
		ConsultationTypeID: consultationType.ID,
		CustomerName:       req.CustomerName,
		CustomerEmail:      req.CustomerEmail,
		StartTime:          start,
		EndTime:            start.Add(consultationType.Duration()),
		Status:             entity.BookingStatusConfirmed,
	}

	if err := u.bookingRepo.Create(u.db.WithContext(ctx), booking); err != nil {
		u.log.Warnf("Failed to create booking: %+v", err)
		return nil, err
	}

	u.cache.Invalidate(ctx)

	booking.Staff = *staff
	booking.ConsultationType = *consultationType
	return converter.BookingToResponse(booking), nil
}

func (u *bookingUsecase) GetBooking(ctx context.Context, bookingID uuid.UUID) (*dto.BookingResponse, error) {
	booking, err := u.bookingRepo.FindByID(u.db.WithContext(ctx), bookingID)
	if err != nil {
		u.log.Warnf("Failed to find booking: %+v", err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	return converter.BookingToResponse(booking), nil
}

func (u *bookingUsecase) GetAllBookings(ctx context.Context) (*dto.BookingListResponse, error) {
	bookings, err := u.bookingRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list bookings: %+v", err)
		return nil, err
	}

	return &dto.BookingListResponse{
		Bookings: converter.BookingsToResponses(bookings),
		Total:    len(bookings),
	}, nil
}

// CancelBooking releases a booking's window. The cancelled booking stops
// blocking availability immediately; the row itself is kept.
func (u *bookingUsecase) CancelBooking(ctx context.Context, bookingID uuid.UUID) error {
	booking, err := u.bookingRepo.FindByID(u.db.WithContext(ctx), bookingID)
	if err != nil {
		u.log.Warnf("Failed to find booking: %+v", err)
		return err
	}
	if booking == nil {
		return ErrBookingNotFound
	}

	affected, err := u.bookingRepo.CancelBooking(u.db.WithContext(ctx), bookingID)
	if err != nil {
		u.log.Warnf("Failed to cancel booking: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrBookingAlreadyCancelled
	}

	u.cache.Invalidate(ctx)
	return nil
}

func (u *bookingUsecase) CompleteBooking(ctx context.Context, bookingID uuid.UUID) error {
	booking, err := u.bookingRepo.FindByID(u.db.WithContext(ctx), bookingID)
	if err != nil {
		u.log.Warnf("Failed to find booking: %+v", err)
		return err
	}
	if booking == nil {
		return ErrBookingNotFound
	}

	affected, err := u.bookingRepo.CompleteBooking(u.db.WithContext(ctx), bookingID)
	if err != nil {
		u.log.Warnf("Failed to complete booking: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrBookingNotConfirmed
	}

	return nil
}

// verifySlotAvailable recomputes the staff member's candidates for the
// requested day and requires the exact start to be among them. This applies
// the grid, working hours, vacations and the buffer-padded overlap test in
// one place, the same rules slot discovery used.
func (u *bookingUsecase) verifySlotAvailable(
	ctx context.Context,
	staff *entity.StaffMember,
	consultationType *entity.ConsultationType,
	start time.Time,
	now time.Time,
) error {
	day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	rng := entity.SlotRange{From: day, To: day}

	bookings, err := u.bookingRepo.FindBlockingForStaffInRange(u.db.WithContext(ctx), staff.ID, day, day.AddDate(0, 0, 1))
	if err != nil {
		u.log.Warnf("Failed to fetch bookings for staff %s: %+v", staff.ID, err)
		return err
	}

	for _, candidate := range u.calculator.StaffCandidates(staff, consultationType, rng, bookings, now) {
		if candidate.Start.Equal(start) {
			return nil
		}
	}
	return ErrSlotUnavailable
}
