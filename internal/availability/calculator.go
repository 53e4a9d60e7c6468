package availability

import (
	"time"

	"appointment-booking/internal/domain/entity"

	"github.com/google/uuid"
)

// Candidate is a raw bookable start produced for one staff member, before
// cross-staff aggregation.
type Candidate struct {
	Start     time.Time
	End       time.Time
	StaffID   uuid.UUID
	StaffName string
}

// Window is a half-open time interval [Start, End).
type Window struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether two half-open windows intersect.
func (w Window) Overlaps(o Window) bool {
	return w.Start.Before(o.End) && o.Start.Before(w.End)
}

// Calculator enumerates bookable start times for a single staff member.
// It is pure over its inputs plus the evaluation instant passed by the
// caller; it performs no I/O.
type Calculator struct {
	step     time.Duration
	dayOpen  int // minutes from midnight
	dayClose int
}

const (
	defaultDayOpen  = 9 * 60
	defaultDayClose = 18 * 60
	defaultStep     = 30 * time.Minute
)

// NewCalculator builds a Calculator from slot configuration. Zero or
// malformed values fall back to the 30-minute / 09:00-18:00 defaults.
func NewCalculator(granularityMinutes int, dayStart, dayEnd string) *Calculator {
	c := &Calculator{
		step:     defaultStep,
		dayOpen:  defaultDayOpen,
		dayClose: defaultDayClose,
	}
	if granularityMinutes > 0 {
		c.step = time.Duration(granularityMinutes) * time.Minute
	}
	if m, ok := parseMinuteOfDay(dayStart); ok {
		c.dayOpen = m
	}
	if m, ok := parseMinuteOfDay(dayEnd); ok {
		c.dayClose = m
	}
	return c
}

// StaffCandidates produces the ordered candidate slots for one staff member
// over an inclusive date range.
//
// A candidate survives when:
//   - it starts on the slot grid inside the staff member's working window,
//   - its whole duration fits before the window closes,
//   - its start is not in the past relative to now,
//   - it does not fall inside a vacation range,
//   - its buffer-padded window does not overlap any blocking booking.
func (c *Calculator) StaffCandidates(
	staff *entity.StaffMember,
	consultationType *entity.ConsultationType,
	rng entity.SlotRange,
	bookings []entity.Booking,
	now time.Time,
) []Candidate {
	duration := consultationType.Duration()
	bufferBefore := time.Duration(consultationType.BufferBefore) * time.Minute
	bufferAfter := time.Duration(consultationType.BufferAfter) * time.Minute

	busy := blockingWindows(bookings)
	template := weekdayTemplate(staff.WorkingHours)

	var candidates []Candidate

	firstDay := startOfDay(rng.From)
	lastDay := startOfDay(rng.To)
	for day := firstDay; !day.After(lastDay); day = day.AddDate(0, 0, 1) {
		open, close := c.dayOpen, c.dayClose
		if hours, ok := template[int(day.Weekday())]; ok {
			open, close = hours.open, hours.close
		}

		for minute := open; ; minute += int(c.step / time.Minute) {
			start := day.Add(time.Duration(minute) * time.Minute)
			end := start.Add(duration)
			if end.After(day.Add(time.Duration(close) * time.Minute)) {
				break
			}
			if start.Before(now) {
				continue
			}
			if onVacation(staff.Vacations, start) {
				continue
			}
			padded := Window{Start: start.Add(-bufferBefore), End: end.Add(bufferAfter)}
			if overlapsAny(padded, busy) {
				continue
			}
			candidates = append(candidates, Candidate{
				Start:     start,
				End:       end,
				StaffID:   staff.ID,
				StaffName: staff.DisplayName,
			})
		}
	}

	return candidates
}

type dayWindow struct {
	open  int
	close int
}

func weekdayTemplate(hours []entity.WorkingHours) map[int]dayWindow {
	template := make(map[int]dayWindow, len(hours))
	for _, h := range hours {
		open, okOpen := parseMinuteOfDay(h.OpenTime)
		close, okClose := parseMinuteOfDay(h.CloseTime)
		if !okOpen || !okClose || close <= open {
			continue
		}
		template[h.Weekday] = dayWindow{open: open, close: close}
	}
	return template
}

func blockingWindows(bookings []entity.Booking) []Window {
	windows := make([]Window, 0, len(bookings))
	for i := range bookings {
		if !bookings[i].BlocksAvailability() {
			continue
		}
		windows = append(windows, Window{Start: bookings[i].StartTime, End: bookings[i].EndTime})
	}
	return windows
}

func overlapsAny(w Window, busy []Window) bool {
	for _, b := range busy {
		if w.Overlaps(b) {
			return true
		}
	}
	return false
}

func onVacation(vacations []entity.VacationRange, start time.Time) bool {
	for i := range vacations {
		if vacations[i].Contains(start) {
			return true
		}
	}
	return false
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// parseMinuteOfDay converts "HH:MM" to minutes from midnight.
func parseMinuteOfDay(s string) (int, bool) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}
