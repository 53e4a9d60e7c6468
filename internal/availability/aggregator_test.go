package availability

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidateAt(staffID uuid.UUID, name string, start time.Time) Candidate {
	return Candidate{
		Start:     start,
		End:       start.Add(30 * time.Minute),
		StaffID:   staffID,
		StaffName: name,
	}
}

func TestAggregateEmpty(t *testing.T) {
	assert.Empty(t, Aggregate(nil))
}

func TestAggregateUniqueStartTimes(t *testing.T) {
	staffA := uuid.New()
	staffB := uuid.New()
	nineAM := testDay.Add(9 * time.Hour)

	slots := Aggregate([]Candidate{
		candidateAt(staffA, "Alice", nineAM),
		candidateAt(staffB, "Bob", nineAM),
		candidateAt(staffA, "Alice", nineAM.Add(30*time.Minute)),
	})

	require.Len(t, slots, 2)
	seen := make(map[int64]bool)
	for _, slot := range slots {
		assert.False(t, seen[slot.Start.UnixNano()], "start time emitted twice")
		seen[slot.Start.UnixNano()] = true
	}
}

func TestAggregateSortsByStartTime(t *testing.T) {
	staffA := uuid.New()
	nineAM := testDay.Add(9 * time.Hour)

	slots := Aggregate([]Candidate{
		candidateAt(staffA, "Alice", nineAM.Add(time.Hour)),
		candidateAt(staffA, "Alice", nineAM),
		candidateAt(staffA, "Alice", nineAM.Add(30*time.Minute)),
	})

	require.Len(t, slots, 3)
	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].Start.Before(slots[i].Start))
	}
}

func TestAggregateNeverAssignedTakesPriority(t *testing.T) {
	staffA := uuid.New()
	staffB := uuid.New()
	onePM := testDay.Add(13 * time.Hour)
	twoPM := testDay.Add(14 * time.Hour)

	// B picks up 13:00 alone; at 14:00 both are free and B was emitted
	// first, but A has no assignment yet in this pass.
	slots := Aggregate([]Candidate{
		candidateAt(staffB, "Bob", onePM),
		candidateAt(staffB, "Bob", twoPM),
		candidateAt(staffA, "Alice", twoPM),
	})

	require.Len(t, slots, 2)
	assert.Equal(t, staffB, slots[0].StaffID)
	assert.Equal(t, staffA, slots[1].StaffID)
	assert.Equal(t, "Alice", slots[1].StaffName)
}

func TestAggregateTieBreaksByStaffID(t *testing.T) {
	staffA := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	staffB := uuid.MustParse("22222222-2222-2222-2222-222222222222")
	nineAM := testDay.Add(9 * time.Hour)

	// Neither staff member has an assignment, so the lower staff ID keeps
	// the slot regardless of input order.
	slots := Aggregate([]Candidate{
		candidateAt(staffB, "Bob", nineAM),
		candidateAt(staffA, "Alice", nineAM),
	})

	require.Len(t, slots, 1)
	assert.Equal(t, staffA, slots[0].StaffID)
}

func TestAggregateRoundRobinDistribution(t *testing.T) {
	staffA := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	staffB := uuid.MustParse("22222222-2222-2222-2222-222222222222")
	nineAM := testDay.Add(9 * time.Hour)

	var candidates []Candidate
	for i := 0; i < 4; i++ {
		start := nineAM.Add(time.Duration(i) * 30 * time.Minute)
		candidates = append(candidates,
			candidateAt(staffA, "Alice", start),
			candidateAt(staffB, "Bob", start),
		)
	}

	slots := Aggregate(candidates)

	require.Len(t, slots, 4)
	assert.Equal(t, staffA, slots[0].StaffID)
	assert.Equal(t, staffB, slots[1].StaffID)
	assert.Equal(t, staffA, slots[2].StaffID)
	assert.Equal(t, staffB, slots[3].StaffID)
}

func TestAggregateDeterministic(t *testing.T) {
	staffA := uuid.New()
	staffB := uuid.New()
	staffC := uuid.New()
	nineAM := testDay.Add(9 * time.Hour)

	var candidates []Candidate
	for i := 0; i < 6; i++ {
		start := nineAM.Add(time.Duration(i) * 30 * time.Minute)
		candidates = append(candidates,
			candidateAt(staffA, "Alice", start),
			candidateAt(staffB, "Bob", start),
		)
		if i%2 == 0 {
			candidates = append(candidates, candidateAt(staffC, "Carol", start))
		}
	}

	first := Aggregate(candidates)
	second := Aggregate(candidates)

	assert.Equal(t, first, second)

	// The result does not depend on candidate input order.
	reversed := make([]Candidate, len(candidates))
	for i, c := range candidates {
		reversed[len(candidates)-1-i] = c
	}
	assert.Equal(t, first, Aggregate(reversed))
}

func TestAggregateDoesNotMutateInput(t *testing.T) {
	staffA := uuid.New()
	nineAM := testDay.Add(9 * time.Hour)

	candidates := []Candidate{
		candidateAt(staffA, "Alice", nineAM.Add(time.Hour)),
		candidateAt(staffA, "Alice", nineAM),
	}

	Aggregate(candidates)

	assert.Equal(t, nineAM.Add(time.Hour), candidates[0].Start)
	assert.Equal(t, nineAM, candidates[1].Start)
}
