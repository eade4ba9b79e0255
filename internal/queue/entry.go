package queue

import (
	"strings"
	"time"
)

// Status of a single booking.
type Status string

const (
	StatusWaiting   Status = "waiting"
	StatusPreparing Status = "preparing"
	StatusDefending Status = "defending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusSkipped   Status = "skipped"
)

var statuses = []Status{
	StatusWaiting, StatusPreparing, StatusDefending,
	StatusCompleted, StatusFailed, StatusSkipped,
}

// ParseStatus accepts any known status, case-insensitively.
func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range statuses {
		if st == known {
			return st, nil
		}
	}
	return "", invalidArgument("status", "unknown status %q", s)
}

// Active reports whether the status is in play for ranking and the min-lab computation.
func (s Status) Active() bool {
	return s == StatusWaiting || s == StatusPreparing || s == StatusDefending
}

// Entry is one student's booking in a queue.
type Entry struct {
	StudentID    uint      `json:"student_id"`
	LabNumber    int       `json:"lab_number"`
	JoinedAt     time.Time `json:"joined_at"`
	Status       Status    `json:"status"`
	AttemptsUsed int       `json:"attempts_used"`
	Position     *int      `json:"position,omitempty"`
}

func (e Entry) clone() Entry {
	if e.Position != nil {
		p := *e.Position
		e.Position = &p
	}
	return e
}

// minActiveLab returns the lowest lab among active entries and how many active entries share it.
// ok is false when no entry is active.
func minActiveLab(entries []Entry) (minLab, count int, ok bool) {
	for _, e := range entries {
		if !e.Status.Active() {
			continue
		}
		switch {
		case !ok || e.LabNumber < minLab:
			minLab, count, ok = e.LabNumber, 1, true
		case e.LabNumber == minLab:
			count++
		}
	}
	return minLab, count, ok
}
