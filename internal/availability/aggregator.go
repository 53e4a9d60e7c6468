package availability

import (
	"bytes"
	"sort"
	"time"

	"appointment-booking/internal/domain/entity"

	"github.com/google/uuid"
)

// Aggregate merges per-staff candidates into the public slot list: each
// distinct start time appears exactly once with exactly one staff member
// assigned.
//
// Assignment is a single left-to-right pass over the candidates after a
// sort by start time, ties broken by staff ID. The first candidate for a
// start time claims it; a later candidate for the same start steals it only
// when its staff member has gone strictly longer without an assignment in
// this pass than the holder had when the holder claimed (never-assigned
// counts as oldest). On exact ties the current holder keeps the slot.
//
// The staff ID tie-break makes the output independent of candidate input
// order, which is arbitrary when candidates are collected concurrently.
//
// Allocation state lives only inside this call.
func Aggregate(candidates []Candidate) []entity.TimeSlot {
	sorted := make([]Candidate, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].Start.Equal(sorted[j].Start) {
			return sorted[i].Start.Before(sorted[j].Start)
		}
		return bytes.Compare(sorted[i].StaffID[:], sorted[j].StaffID[:]) < 0
	})

	// claim tracks who holds an emitted start time and what the holder's
	// last assignment was before claiming it. A displaced holder is rolled
	// back to that prior value, otherwise one steal would make the holder
	// look most-recently-assigned everywhere and starve them for the rest
	// of the pass.
	type claim struct {
		index      int
		holderPrev time.Time
		holderHas  bool
	}

	slots := make([]entity.TimeSlot, 0, len(sorted))
	claims := make(map[int64]claim, len(sorted))
	lastAssigned := make(map[uuid.UUID]time.Time)

	for _, candidate := range sorted {
		key := candidate.Start.UnixNano()

		current, seen := claims[key]
		if !seen {
			prev, has := lastAssigned[candidate.StaffID]
			slots = append(slots, toSlot(candidate))
			claims[key] = claim{index: len(slots) - 1, holderPrev: prev, holderHas: has}
			lastAssigned[candidate.StaffID] = candidate.Start
			continue
		}

		candidateLast, candidateHas := lastAssigned[candidate.StaffID]
		if !assignedEarlier(candidateLast, candidateHas, current.holderPrev, current.holderHas) {
			continue
		}

		holder := slots[current.index]
		if current.holderHas {
			lastAssigned[holder.StaffID] = current.holderPrev
		} else {
			delete(lastAssigned, holder.StaffID)
		}

		slots[current.index] = toSlot(candidate)
		claims[key] = claim{index: current.index, holderPrev: candidateLast, holderHas: candidateHas}
		lastAssigned[candidate.StaffID] = candidate.Start
	}

	return slots
}

// assignedEarlier reports whether the candidate's last assignment is strictly
// older than the holder's. Never-assigned beats any assignment; two
// never-assigned staff tie, which keeps the holder (first-seen wins).
func assignedEarlier(candidateLast time.Time, candidateHas bool, holderLast time.Time, holderHas bool) bool {
	switch {
	case !candidateHas && holderHas:
		return true
	case candidateHas && holderHas:
		return candidateLast.Before(holderLast)
	default:
		return false
	}
}

func toSlot(c Candidate) entity.TimeSlot {
	return entity.TimeSlot{
		Start:     c.Start,
		End:       c.End,
		StaffID:   c.StaffID,
		StaffName: c.StaffName,
	}
}
