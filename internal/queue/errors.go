package queue

import (
	"fmt"

	"github.com/pkg/errors"
)

// Error kinds. Use errors.Is to classify anything returned by this package.
var (
	ErrQueueNotFound          = errors.New("queue not found")
	ErrQueueClosed            = errors.New("queue is closed")
	ErrDuplicateEntry         = errors.New("student is already in the queue")
	ErrLabNumberExceedsLimit  = errors.New("lab number exceeds the allowed limit")
	ErrEntryNotFound          = errors.New("entry not found")
	ErrUnauthorized           = errors.New("caller is not authorized")
	ErrInvalidArgument        = errors.New("invalid argument")
	ErrStudentNotFound        = errors.New("student not found")
	ErrSeatTaken              = errors.New("seat is already taken")
	ErrInvalidTransition      = errors.New("invalid status transition")
	ErrConcurrentModification = errors.New("queue was modified concurrently")
)

// LabLimitError reports a join rejected by the min+2 rule.
type LabLimitError struct {
	LabNumber  int
	MinLab     int
	MaxAllowed int
}

func (e *LabLimitError) Error() string {
	return fmt.Sprintf("lab %d is not allowed yet: maximum is %d (min: %d)", e.LabNumber, e.MaxAllowed, e.MinLab)
}

func (e *LabLimitError) Is(target error) bool { return target == ErrLabNumberExceedsLimit }

// ArgumentError names the offending argument.
type ArgumentError struct {
	Field  string
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ArgumentError) Is(target error) bool { return target == ErrInvalidArgument }

func invalidArgument(field, format string, args ...any) error {
	return &ArgumentError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// SeatTakenError reports a seat already claimed by an active entry.
type SeatTakenError struct {
	Position  int
	StudentID uint
}

func (e *SeatTakenError) Error() string {
	return fmt.Sprintf("seat %d is already taken", e.Position)
}

func (e *SeatTakenError) Is(target error) bool { return target == ErrSeatTaken }

// TransitionError is returned when strict transitions are enabled and the move is not in the graph.
type TransitionError struct {
	From Status
	To   Status
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("status cannot change from %s to %s", e.From, e.To)
}

func (e *TransitionError) Is(target error) bool { return target == ErrInvalidTransition }

// IsNotFound reports whether err means some referenced record does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrQueueNotFound) ||
		errors.Is(err, ErrEntryNotFound) ||
		errors.Is(err, ErrStudentNotFound)
}

// IsRejection reports whether err is a local validation outcome rather than an infrastructure failure.
func IsRejection(err error) bool {
	return IsNotFound(err) ||
		errors.Is(err, ErrQueueClosed) ||
		errors.Is(err, ErrDuplicateEntry) ||
		errors.Is(err, ErrLabNumberExceedsLimit) ||
		errors.Is(err, ErrUnauthorized) ||
		errors.Is(err, ErrInvalidArgument) ||
		errors.Is(err, ErrSeatTaken) ||
		errors.Is(err, ErrInvalidTransition)
}
