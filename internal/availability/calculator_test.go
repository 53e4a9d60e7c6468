package availability

import (
	"testing"
	"time"

	"appointment-booking/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDay = time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC)

func testStaff(name string) *entity.StaffMember {
	return &entity.StaffMember{
		ID:          uuid.New(),
		DisplayName: name,
		IsActive:    true,
	}
}

func testConsultationType(durationMinutes, bufferBefore, bufferAfter int) *entity.ConsultationType {
	return &entity.ConsultationType{
		ID:              uuid.New(),
		Name:            "Consultation",
		DurationMinutes: durationMinutes,
		BufferBefore:    bufferBefore,
		BufferAfter:     bufferAfter,
		IsActive:        true,
	}
}

func blocking(staffID uuid.UUID, start, end time.Time, status entity.BookingStatus) entity.Booking {
	return entity.Booking{
		ID:        uuid.New(),
		StaffID:   staffID,
		StartTime: start,
		EndTime:   end,
		Status:    status,
	}
}

func startTimes(candidates []Candidate) []time.Time {
	times := make([]time.Time, len(candidates))
	for i, c := range candidates {
		times[i] = c.Start
	}
	return times
}

func TestWindowOverlaps(t *testing.T) {
	at := func(h, m int) time.Time { return testDay.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute) }
	booking := Window{Start: at(11, 0), End: at(11, 30)}

	t.Run("padded window touching booking start overlaps", func(t *testing.T) {
		padded := Window{Start: at(10, 25), End: at(11, 5)}
		assert.True(t, padded.Overlaps(booking))
	})

	t.Run("padded window ending exactly at booking start does not overlap", func(t *testing.T) {
		padded := Window{Start: at(10, 20), End: at(11, 0)}
		assert.False(t, padded.Overlaps(booking))
	})

	t.Run("window starting exactly at booking end does not overlap", func(t *testing.T) {
		padded := Window{Start: at(11, 30), End: at(12, 0)}
		assert.False(t, padded.Overlaps(booking))
	})
}

func TestStaffCandidatesFullDay(t *testing.T) {
	calc := NewCalculator(30, "09:00", "18:00")
	staff := testStaff("Alice")
	consultationType := testConsultationType(30, 0, 0)
	rng := entity.SlotRange{From: testDay, To: testDay}
	now := testDay.Add(-time.Hour)

	candidates := calc.StaffCandidates(staff, consultationType, rng, nil, now)

	require.Len(t, candidates, 18)
	assert.Equal(t, testDay.Add(9*time.Hour), candidates[0].Start)
	assert.Equal(t, testDay.Add(17*time.Hour+30*time.Minute), candidates[17].Start)
	for _, c := range candidates {
		assert.Equal(t, consultationType.Duration(), c.End.Sub(c.Start))
		assert.Equal(t, staff.ID, c.StaffID)
	}
}

func TestStaffCandidatesExistingBookings(t *testing.T) {
	calc := NewCalculator(30, "09:00", "18:00")
	staff := testStaff("Alice")
	consultationType := testConsultationType(30, 0, 0)
	rng := entity.SlotRange{From: testDay, To: testDay}
	now := testDay.Add(-time.Hour)

	tenAM := testDay.Add(10 * time.Hour)

	t.Run("confirmed booking removes its slot only", func(t *testing.T) {
		bookings := []entity.Booking{
			blocking(staff.ID, tenAM, tenAM.Add(30*time.Minute), entity.BookingStatusConfirmed),
		}

		candidates := calc.StaffCandidates(staff, consultationType, rng, bookings, now)

		require.Len(t, candidates, 17)
		assert.NotContains(t, startTimes(candidates), tenAM)
		assert.Contains(t, startTimes(candidates), testDay.Add(9*time.Hour+30*time.Minute))
		assert.Contains(t, startTimes(candidates), tenAM.Add(30*time.Minute))
	})

	t.Run("completed booking blocks the same way", func(t *testing.T) {
		bookings := []entity.Booking{
			blocking(staff.ID, tenAM, tenAM.Add(30*time.Minute), entity.BookingStatusCompleted),
		}

		candidates := calc.StaffCandidates(staff, consultationType, rng, bookings, now)

		require.Len(t, candidates, 17)
		assert.NotContains(t, startTimes(candidates), tenAM)
	})

	t.Run("cancelled booking does not block", func(t *testing.T) {
		bookings := []entity.Booking{
			blocking(staff.ID, tenAM, tenAM.Add(30*time.Minute), entity.BookingStatusCancelled),
		}

		candidates := calc.StaffCandidates(staff, consultationType, rng, bookings, now)

		require.Len(t, candidates, 18)
		assert.Contains(t, startTimes(candidates), tenAM)
	})
}

func TestStaffCandidatesBuffers(t *testing.T) {
	calc := NewCalculator(30, "09:00", "18:00")
	staff := testStaff("Alice")
	consultationType := testConsultationType(30, 5, 5)
	rng := entity.SlotRange{From: testDay, To: testDay}
	now := testDay.Add(-time.Hour)

	elevenAM := testDay.Add(11 * time.Hour)
	bookings := []entity.Booking{
		blocking(staff.ID, elevenAM, elevenAM.Add(30*time.Minute), entity.BookingStatusConfirmed),
	}

	candidates := calc.StaffCandidates(staff, consultationType, rng, bookings, now)
	starts := startTimes(candidates)

	// 10:30 pads to [10:25, 11:05) which collides with the booking, as do
	// the 11:00 and 11:30 grid slots. 10:00 pads to [09:55, 10:35) and
	// 12:00 pads to [11:55, 12:35), both clear.
	assert.NotContains(t, starts, testDay.Add(10*time.Hour+30*time.Minute))
	assert.NotContains(t, starts, elevenAM)
	assert.NotContains(t, starts, testDay.Add(11*time.Hour+30*time.Minute))
	assert.Contains(t, starts, testDay.Add(10*time.Hour))
	assert.Contains(t, starts, testDay.Add(12*time.Hour))
}

func TestStaffCandidatesBufferedOffersAreAlternatives(t *testing.T) {
	calc := NewCalculator(30, "09:00", "18:00")
	staff := testStaff("Alice")
	consultationType := testConsultationType(30, 5, 5)
	rng := entity.SlotRange{From: testDay, To: testDay}
	now := testDay.Add(-time.Hour)

	// On a free day every grid start is offered, including neighbors whose
	// padded windows would collide if both were booked. Candidates are
	// alternative offers for the same capacity, not reservations; only a
	// booking occupies time.
	starts := startTimes(calc.StaffCandidates(staff, consultationType, rng, nil, now))
	require.Len(t, starts, 18)
	assert.Contains(t, starts, testDay.Add(10*time.Hour))
	assert.Contains(t, starts, testDay.Add(10*time.Hour+30*time.Minute))

	// Booking one offer retires its padded neighbors on the next pass.
	tenAM := testDay.Add(10 * time.Hour)
	bookings := []entity.Booking{
		blocking(staff.ID, tenAM, tenAM.Add(30*time.Minute), entity.BookingStatusConfirmed),
	}
	starts = startTimes(calc.StaffCandidates(staff, consultationType, rng, bookings, now))
	assert.NotContains(t, starts, testDay.Add(9*time.Hour+30*time.Minute))
	assert.NotContains(t, starts, tenAM)
	assert.NotContains(t, starts, testDay.Add(10*time.Hour+30*time.Minute))
	assert.Contains(t, starts, testDay.Add(9*time.Hour))
	assert.Contains(t, starts, testDay.Add(11*time.Hour))
}

func TestStaffCandidatesPastCutoff(t *testing.T) {
	calc := NewCalculator(30, "09:00", "18:00")
	staff := testStaff("Alice")
	consultationType := testConsultationType(30, 0, 0)
	rng := entity.SlotRange{From: testDay, To: testDay}
	now := testDay.Add(12*time.Hour + 15*time.Minute)

	candidates := calc.StaffCandidates(staff, consultationType, rng, nil, now)

	require.NotEmpty(t, candidates)
	assert.Equal(t, testDay.Add(12*time.Hour+30*time.Minute), candidates[0].Start)
	require.Len(t, candidates, 11)
}

func TestStaffCandidatesVacation(t *testing.T) {
	calc := NewCalculator(30, "09:00", "18:00")
	staff := testStaff("Alice")
	staff.Vacations = []entity.VacationRange{
		{StaffID: staff.ID, StartDate: testDay, EndDate: testDay},
	}
	consultationType := testConsultationType(30, 0, 0)
	now := testDay.Add(-time.Hour)

	t.Run("vacation day yields nothing", func(t *testing.T) {
		rng := entity.SlotRange{From: testDay, To: testDay}
		candidates := calc.StaffCandidates(staff, consultationType, rng, nil, now)
		assert.Empty(t, candidates)
	})

	t.Run("following day is unaffected", func(t *testing.T) {
		nextDay := testDay.AddDate(0, 0, 1)
		rng := entity.SlotRange{From: nextDay, To: nextDay}
		candidates := calc.StaffCandidates(staff, consultationType, rng, nil, now)
		assert.Len(t, candidates, 18)
	})
}

func TestStaffCandidatesWorkingHoursTemplate(t *testing.T) {
	calc := NewCalculator(30, "09:00", "18:00")
	staff := testStaff("Alice")
	staff.WorkingHours = []entity.WorkingHours{
		{StaffID: staff.ID, Weekday: int(testDay.Weekday()), OpenTime: "10:00", CloseTime: "14:00"},
	}
	consultationType := testConsultationType(30, 0, 0)
	now := testDay.Add(-time.Hour)

	t.Run("template overrides the default window", func(t *testing.T) {
		rng := entity.SlotRange{From: testDay, To: testDay}
		candidates := calc.StaffCandidates(staff, consultationType, rng, nil, now)

		require.Len(t, candidates, 8)
		assert.Equal(t, testDay.Add(10*time.Hour), candidates[0].Start)
		assert.Equal(t, testDay.Add(13*time.Hour+30*time.Minute), candidates[7].Start)
	})

	t.Run("days without a template row use the default window", func(t *testing.T) {
		nextDay := testDay.AddDate(0, 0, 1)
		rng := entity.SlotRange{From: nextDay, To: nextDay}
		candidates := calc.StaffCandidates(staff, consultationType, rng, nil, now)

		require.Len(t, candidates, 18)
		assert.Equal(t, nextDay.Add(9*time.Hour), candidates[0].Start)
	})
}

func TestStaffCandidatesMultiDayOrdered(t *testing.T) {
	calc := NewCalculator(30, "09:00", "18:00")
	staff := testStaff("Alice")
	consultationType := testConsultationType(30, 0, 0)
	rng := entity.SlotRange{From: testDay, To: testDay.AddDate(0, 0, 1)}
	now := testDay.Add(-time.Hour)

	candidates := calc.StaffCandidates(staff, consultationType, rng, nil, now)

	require.Len(t, candidates, 36)
	for i := 1; i < len(candidates); i++ {
		assert.True(t, candidates[i-1].Start.Before(candidates[i].Start))
	}
}

func TestStaffCandidatesLongerDuration(t *testing.T) {
	calc := NewCalculator(30, "09:00", "18:00")
	staff := testStaff("Alice")
	consultationType := testConsultationType(60, 0, 0)
	rng := entity.SlotRange{From: testDay, To: testDay}
	now := testDay.Add(-time.Hour)

	candidates := calc.StaffCandidates(staff, consultationType, rng, nil, now)

	// Last start that still fits a full hour before 18:00 is 17:00.
	require.Len(t, candidates, 17)
	assert.Equal(t, testDay.Add(17*time.Hour), candidates[16].Start)
	assert.Equal(t, testDay.Add(18*time.Hour), candidates[16].End)
}
