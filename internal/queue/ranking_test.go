package queue

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var t0 = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func at(min int) time.Time { return t0.Add(time.Duration(min) * time.Minute) }

func seatPtr(p int) *int { return &p }

func ids(entries []Entry) []uint {
	out := make([]uint, len(entries))
	for i, e := range entries {
		out[i] = e.StudentID
	}
	return out
}

func TestRankStatusTiers(t *testing.T) {
	entries := []Entry{
		{StudentID: 1, LabNumber: 1, Status: StatusWaiting, JoinedAt: at(0)},
		{StudentID: 2, LabNumber: 1, Status: StatusCompleted, JoinedAt: at(1)},
		{StudentID: 3, LabNumber: 1, Status: StatusPreparing, JoinedAt: at(2)},
		{StudentID: 4, LabNumber: 1, Status: StatusDefending, JoinedAt: at(3)},
		{StudentID: 5, LabNumber: 1, Status: StatusSkipped, JoinedAt: at(-1)},
	}

	ranked := Rank(entries, DefaultConfig())

	assert.Equal(t, []uint{4, 3, 1, 5, 2}, ids(ranked))
	// input untouched
	assert.Equal(t, []uint{1, 2, 3, 4, 5}, ids(entries))
}

func TestRankInactiveTierIgnoresSeatAndPriority(t *testing.T) {
	entries := []Entry{
		{StudentID: 1, LabNumber: 1, Status: StatusFailed, JoinedAt: at(5), Position: seatPtr(1)},
		{StudentID: 2, LabNumber: 9, Status: StatusCompleted, JoinedAt: at(1)},
		{StudentID: 3, LabNumber: 1, Status: StatusSkipped, JoinedAt: at(3), Position: seatPtr(2)},
	}

	assert.Equal(t, []uint{2, 3, 1}, ids(Rank(entries, DefaultConfig())))
}

func TestRankPriorityMinLab(t *testing.T) {
	cfg := DefaultConfig()
	entries := []Entry{
		{StudentID: 1, LabNumber: 3, Status: StatusWaiting, JoinedAt: at(0)},
		{StudentID: 2, LabNumber: 2, Status: StatusWaiting, JoinedAt: at(1)},
		{StudentID: 3, LabNumber: 2, Status: StatusWaiting, JoinedAt: at(2), AttemptsUsed: 2},
		{StudentID: 4, LabNumber: 4, Status: StatusWaiting, JoinedAt: at(3)},
	}

	// 2 is on the min lab with attempts left; 3 has used all attempts.
	assert.Equal(t, []uint{2, 1, 3, 4}, ids(Rank(entries, cfg)))

	cfg.PriorityMinLabEnabled = false
	assert.Equal(t, []uint{1, 2, 3, 4}, ids(Rank(entries, cfg)))
}

func TestRankPriorityMinLabCountsAllActiveStatuses(t *testing.T) {
	entries := []Entry{
		{StudentID: 1, LabNumber: 2, Status: StatusWaiting, JoinedAt: at(0)},
		{StudentID: 2, LabNumber: 1, Status: StatusDefending, JoinedAt: at(1)},
		{StudentID: 3, LabNumber: 1, Status: StatusWaiting, JoinedAt: at(2)},
		{StudentID: 4, LabNumber: 0, Status: StatusCompleted, JoinedAt: at(3)},
	}

	// min lab is 1 (from the defending entry); completed lab 0 does not count.
	assert.Equal(t, []uint{2, 3, 1, 4}, ids(Rank(entries, DefaultConfig())))
}

func TestRankPriorityCohortLimit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PriorityCohortLimit = 2

	entries := []Entry{
		{StudentID: 1, LabNumber: 2, Status: StatusWaiting, JoinedAt: at(0)},
		{StudentID: 2, LabNumber: 1, Status: StatusWaiting, JoinedAt: at(1)},
		{StudentID: 3, LabNumber: 1, Status: StatusWaiting, JoinedAt: at(2)},
	}
	assert.Equal(t, []uint{2, 3, 1}, ids(Rank(entries, cfg)))

	// A third student on lab 1 makes the cohort too large; priority switches off.
	entries = append(entries, Entry{StudentID: 4, LabNumber: 1, Status: StatusPreparing, JoinedAt: at(3)})
	assert.Equal(t, []uint{4, 1, 2, 3}, ids(Rank(entries, cfg)))
}

func TestRankSeatThenJoinTime(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PriorityMinLabEnabled = false

	entries := []Entry{
		{StudentID: 1, LabNumber: 1, Status: StatusWaiting, JoinedAt: at(0)},
		{StudentID: 2, LabNumber: 1, Status: StatusWaiting, JoinedAt: at(1), Position: seatPtr(7)},
		{StudentID: 3, LabNumber: 1, Status: StatusWaiting, JoinedAt: at(2), Position: seatPtr(3)},
		{StudentID: 4, LabNumber: 1, Status: StatusWaiting, JoinedAt: at(-1)},
	}

	assert.Equal(t, []uint{3, 2, 4, 1}, ids(Rank(entries, cfg)))
}

func TestRankIsStableAndIdempotent(t *testing.T) {
	entries := []Entry{
		{StudentID: 1, LabNumber: 1, Status: StatusWaiting, JoinedAt: at(0)},
		{StudentID: 2, LabNumber: 1, Status: StatusWaiting, JoinedAt: at(0)},
		{StudentID: 3, LabNumber: 1, Status: StatusWaiting, JoinedAt: at(0)},
		{StudentID: 4, LabNumber: 2, Status: StatusDefending, JoinedAt: at(0)},
	}

	once := Rank(entries, DefaultConfig())
	twice := Rank(once, DefaultConfig())

	assert.Equal(t, []uint{4, 1, 2, 3}, ids(once))
	assert.Equal(t, once, twice)
}

func TestRankEmpty(t *testing.T) {
	assert.Empty(t, Rank(nil, DefaultConfig()))
}
