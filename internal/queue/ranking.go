package queue

import (
	"cmp"
	"math"
	"slices"
)

// Status tiers. Everything outside the active set shares the last tier.
const (
	tierDefending = iota
	tierPreparing
	tierWaiting
	tierInactive
)

// noSeat sorts entries without a position after every seated entry.
const noSeat = math.MaxInt

func tierOf(s Status) int {
	switch s {
	case StatusDefending:
		return tierDefending
	case StatusPreparing:
		return tierPreparing
	case StatusWaiting:
		return tierWaiting
	default:
		return tierInactive
	}
}

// Rank returns the entries in service order. The input slice is not modified.
//
// Order: defending, preparing, waiting, then everything else by join time only.
// Inside the waiting tier students on the lowest active lab with attempts left
// go first, as long as that cohort is no larger than cfg.PriorityCohortLimit.
// Remaining ties are broken by seat, then by join time; equal keys keep their
// relative order.
func Rank(entries []Entry, cfg Config) []Entry {
	ranked := make([]Entry, len(entries))
	copy(ranked, entries)

	minLab, cohort, ok := minActiveLab(entries)
	usePriority := ok && cfg.PriorityMinLabEnabled && cohort <= cfg.PriorityCohortLimit

	priority := func(e Entry) int {
		if usePriority && e.LabNumber == minLab && e.AttemptsUsed < cfg.MaxAttempts {
			return 0
		}
		return 1
	}

	slices.SortStableFunc(ranked, func(a, b Entry) int {
		ta, tb := tierOf(a.Status), tierOf(b.Status)
		if ta != tb {
			return cmp.Compare(ta, tb)
		}
		if ta == tierInactive {
			return a.JoinedAt.Compare(b.JoinedAt)
		}
		if ta == tierWaiting {
			if c := cmp.Compare(priority(a), priority(b)); c != 0 {
				return c
			}
		}
		if c := cmp.Compare(seat(a), seat(b)); c != 0 {
			return c
		}
		return a.JoinedAt.Compare(b.JoinedAt)
	})
	return ranked
}

func seat(e Entry) int {
	if e.Position == nil {
		return noSeat
	}
	return *e.Position
}
