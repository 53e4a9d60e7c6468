package usecase

import (
	"context"
	"testing"
	"time"

	"appointment-booking/internal/availability"
	"appointment-booking/internal/delivery/dto"
	"appointment-booking/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBookingUsecase(
	bookingRepo *fakeBookingRepo,
	staffRepo *fakeStaffRepo,
	consultationTypeRepo *fakeConsultationTypeRepo,
	now time.Time,
) *bookingUsecase {
	cfg := testSlotConfig()
	return &bookingUsecase{
		db:                   testGormDB(),
		log:                  quietLogger(),
		bookingRepo:          bookingRepo,
		staffRepo:            staffRepo,
		consultationTypeRepo: consultationTypeRepo,
		calculator:           availability.NewCalculator(cfg.GranularityMinutes, cfg.DayStart, cfg.DayEnd),
		now:                  func() time.Time { return now },
	}
}

func bookingRequest(staffID, consultationTypeID uuid.UUID, start string) *dto.CreateBookingRequest {
	return &dto.CreateBookingRequest{
		ConsultationTypeID: consultationTypeID,
		StaffID:            staffID,
		StartTime:          start,
		CustomerName:       "Jamie Doe",
		CustomerEmail:      "jamie@example.com",
	}
}

func TestCreateBookingSuccess(t *testing.T) {
	staff := activeStaff("alice")
	consultationType := activeConsultationType()
	bookingRepo := &fakeBookingRepo{}

	u := newTestBookingUsecase(
		bookingRepo,
		&fakeStaffRepo{byID: map[uuid.UUID]*entity.StaffMember{staff.ID: &staff}},
		&fakeConsultationTypeRepo{consultationType: consultationType},
		time.Date(2026, 10, 5, 8, 0, 0, 0, time.UTC),
	)

	result, err := u.CreateBooking(context.Background(), bookingRequest(staff.ID, consultationType.ID, "2026-10-05T10:00:00Z"))

	require.NoError(t, err)
	assert.Equal(t, string(entity.BookingStatusConfirmed), result.Status)
	assert.Equal(t, time.Date(2026, 10, 5, 10, 30, 0, 0, time.UTC), result.EndTime)

	require.Len(t, bookingRepo.created, 1)
	assert.Equal(t, staff.ID, bookingRepo.created[0].StaffID)
}

func TestCreateBookingInvalidStartTime(t *testing.T) {
	staff := activeStaff("alice")
	consultationType := activeConsultationType()

	u := newTestBookingUsecase(
		&fakeBookingRepo{},
		&fakeStaffRepo{byID: map[uuid.UUID]*entity.StaffMember{staff.ID: &staff}},
		&fakeConsultationTypeRepo{consultationType: consultationType},
		time.Date(2026, 10, 5, 8, 0, 0, 0, time.UTC),
	)

	_, err := u.CreateBooking(context.Background(), bookingRequest(staff.ID, consultationType.ID, "2026-10-05 10:00"))

	assert.ErrorIs(t, err, ErrInvalidStartTime)
}

func TestCreateBookingInPast(t *testing.T) {
	staff := activeStaff("alice")
	consultationType := activeConsultationType()

	u := newTestBookingUsecase(
		&fakeBookingRepo{},
		&fakeStaffRepo{byID: map[uuid.UUID]*entity.StaffMember{staff.ID: &staff}},
		&fakeConsultationTypeRepo{consultationType: consultationType},
		time.Date(2026, 10, 5, 12, 0, 0, 0, time.UTC),
	)

	_, err := u.CreateBooking(context.Background(), bookingRequest(staff.ID, consultationType.ID, "2026-10-05T10:00:00Z"))

	assert.ErrorIs(t, err, ErrSlotInPast)
}

func TestCreateBookingConsultationTypeNotFound(t *testing.T) {
	staff := activeStaff("alice")

	u := newTestBookingUsecase(
		&fakeBookingRepo{},
		&fakeStaffRepo{byID: map[uuid.UUID]*entity.StaffMember{staff.ID: &staff}},
		&fakeConsultationTypeRepo{},
		time.Date(2026, 10, 5, 8, 0, 0, 0, time.UTC),
	)

	_, err := u.CreateBooking(context.Background(), bookingRequest(staff.ID, uuid.New(), "2026-10-05T10:00:00Z"))

	assert.ErrorIs(t, err, ErrConsultationTypeNotFound)
}

func TestCreateBookingStaffNotFound(t *testing.T) {
	consultationType := activeConsultationType()

	u := newTestBookingUsecase(
		&fakeBookingRepo{},
		&fakeStaffRepo{byID: map[uuid.UUID]*entity.StaffMember{}},
		&fakeConsultationTypeRepo{consultationType: consultationType},
		time.Date(2026, 10, 5, 8, 0, 0, 0, time.UTC),
	)

	_, err := u.CreateBooking(context.Background(), bookingRequest(uuid.New(), consultationType.ID, "2026-10-05T10:00:00Z"))

	assert.ErrorIs(t, err, ErrStaffNotFound)
}

func TestCreateBookingOffGridStart(t *testing.T) {
	staff := activeStaff("alice")
	consultationType := activeConsultationType()

	u := newTestBookingUsecase(
		&fakeBookingRepo{},
		&fakeStaffRepo{byID: map[uuid.UUID]*entity.StaffMember{staff.ID: &staff}},
		&fakeConsultationTypeRepo{consultationType: consultationType},
		time.Date(2026, 10, 5, 8, 0, 0, 0, time.UTC),
	)

	_, err := u.CreateBooking(context.Background(), bookingRequest(staff.ID, consultationType.ID, "2026-10-05T10:15:00Z"))

	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestCreateBookingOutsideWorkingHours(t *testing.T) {
	staff := activeStaff("alice")
	consultationType := activeConsultationType()

	u := newTestBookingUsecase(
		&fakeBookingRepo{},
		&fakeStaffRepo{byID: map[uuid.UUID]*entity.StaffMember{staff.ID: &staff}},
		&fakeConsultationTypeRepo{consultationType: consultationType},
		time.Date(2026, 10, 5, 6, 0, 0, 0, time.UTC),
	)

	_, err := u.CreateBooking(context.Background(), bookingRequest(staff.ID, consultationType.ID, "2026-10-05T08:00:00Z"))

	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestCreateBookingConflictingBooking(t *testing.T) {
	staff := activeStaff("alice")
	consultationType := activeConsultationType()

	bookingRepo := &fakeBookingRepo{
		bookings: map[uuid.UUID][]entity.Booking{
			staff.ID: {{
				StaffID:   staff.ID,
				StartTime: time.Date(2026, 10, 5, 10, 0, 0, 0, time.UTC),
				EndTime:   time.Date(2026, 10, 5, 10, 30, 0, 0, time.UTC),
				Status:    entity.BookingStatusConfirmed,
			}},
		},
	}

	u := newTestBookingUsecase(
		bookingRepo,
		&fakeStaffRepo{byID: map[uuid.UUID]*entity.StaffMember{staff.ID: &staff}},
		&fakeConsultationTypeRepo{consultationType: consultationType},
		time.Date(2026, 10, 5, 8, 0, 0, 0, time.UTC),
	)

	_, err := u.CreateBooking(context.Background(), bookingRequest(staff.ID, consultationType.ID, "2026-10-05T10:00:00Z"))
	assert.ErrorIs(t, err, ErrSlotUnavailable)

	// The neighbouring slot is still bookable.
	_, err = u.CreateBooking(context.Background(), bookingRequest(staff.ID, consultationType.ID, "2026-10-05T10:30:00Z"))
	assert.NoError(t, err)
}

func TestCreateBookingOnVacation(t *testing.T) {
	staff := activeStaff("alice")
	staff.Vacations = []entity.VacationRange{{
		StaffID:   staff.ID,
		StartDate: time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC),
	}}
	consultationType := activeConsultationType()

	u := newTestBookingUsecase(
		&fakeBookingRepo{},
		&fakeStaffRepo{byID: map[uuid.UUID]*entity.StaffMember{staff.ID: &staff}},
		&fakeConsultationTypeRepo{consultationType: consultationType},
		time.Date(2026, 10, 5, 8, 0, 0, 0, time.UTC),
	)

	_, err := u.CreateBooking(context.Background(), bookingRequest(staff.ID, consultationType.ID, "2026-10-05T10:00:00Z"))

	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestCancelBookingNotFound(t *testing.T) {
	u := newTestBookingUsecase(
		&fakeBookingRepo{byID: map[uuid.UUID]*entity.Booking{}},
		&fakeStaffRepo{},
		&fakeConsultationTypeRepo{},
		time.Date(2026, 10, 5, 8, 0, 0, 0, time.UTC),
	)

	err := u.CancelBooking(context.Background(), uuid.New())

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancelBookingAlreadyCancelled(t *testing.T) {
	booking := &entity.Booking{ID: uuid.New(), Status: entity.BookingStatusCancelled}

	u := newTestBookingUsecase(
		&fakeBookingRepo{byID: map[uuid.UUID]*entity.Booking{booking.ID: booking}, cancelAffected: 0},
		&fakeStaffRepo{},
		&fakeConsultationTypeRepo{},
		time.Date(2026, 10, 5, 8, 0, 0, 0, time.UTC),
	)

	err := u.CancelBooking(context.Background(), booking.ID)

	assert.ErrorIs(t, err, ErrBookingAlreadyCancelled)
}

func TestCancelBookingSuccess(t *testing.T) {
	booking := &entity.Booking{ID: uuid.New(), Status: entity.BookingStatusConfirmed}

	u := newTestBookingUsecase(
		&fakeBookingRepo{byID: map[uuid.UUID]*entity.Booking{booking.ID: booking}, cancelAffected: 1},
		&fakeStaffRepo{},
		&fakeConsultationTypeRepo{},
		time.Date(2026, 10, 5, 8, 0, 0, 0, time.UTC),
	)

	assert.NoError(t, u.CancelBooking(context.Background(), booking.ID))
}

func TestCompleteBookingNotConfirmed(t *testing.T) {
	booking := &entity.Booking{ID: uuid.New(), Status: entity.BookingStatusCancelled}

	u := newTestBookingUsecase(
		&fakeBookingRepo{byID: map[uuid.UUID]*entity.Booking{booking.ID: booking}, completeAffected: 0},
		&fakeStaffRepo{},
		&fakeConsultationTypeRepo{},
		time.Date(2026, 10, 5, 8, 0, 0, 0, time.UTC),
	)

	err := u.CompleteBooking(context.Background(), booking.ID)

	assert.ErrorIs(t, err, ErrBookingNotConfirmed)
}

func TestCompleteBookingSuccess(t *testing.T) {
	booking := &entity.Booking{ID: uuid.New(), Status: entity.BookingStatusConfirmed}

	u := newTestBookingUsecase(
		&fakeBookingRepo{byID: map[uuid.UUID]*entity.Booking{booking.ID: booking}, completeAffected: 1},
		&fakeStaffRepo{},
		&fakeConsultationTypeRepo{},
		time.Date(2026, 10, 5, 8, 0, 0, 0, time.UTC),
	)

	assert.NoError(t, u.CompleteBooking(context.Background(), booking.ID))
}
