package queue

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestQueue(cfg Config) *Queue {
	q := New(1, cfg, t0)
	q.ID = 10
	return q
}

func TestCanJoin(t *testing.T) {
	q := newTestQueue(DefaultConfig())
	_, err := q.Join(1, 3, nil, at(0))
	require.NoError(t, err)

	t.Run("min plus two allowed", func(t *testing.T) {
		assert.NoError(t, CanJoin(q, 2, 5))
	})

	t.Run("min plus three rejected", func(t *testing.T) {
		err := CanJoin(q, 2, 6)
		require.ErrorIs(t, err, ErrLabNumberExceedsLimit)
		var limit *LabLimitError
		require.True(t, errors.As(err, &limit))
		assert.Equal(t, 5, limit.MaxAllowed)
		assert.Equal(t, 3, limit.MinLab)
		assert.Equal(t, 6, limit.LabNumber)
	})

	t.Run("lower labs always allowed", func(t *testing.T) {
		assert.NoError(t, CanJoin(q, 2, 1))
	})

	t.Run("duplicate", func(t *testing.T) {
		assert.ErrorIs(t, CanJoin(q, 1, 3), ErrDuplicateEntry)
	})

	t.Run("duplicate even after completion", func(t *testing.T) {
		c := q.Clone()
		_, err := c.ChangeStatus(1, StatusCompleted)
		require.NoError(t, err)
		assert.ErrorIs(t, CanJoin(c, 1, 3), ErrDuplicateEntry)
	})

	t.Run("closed", func(t *testing.T) {
		c := q.Clone()
		c.Toggle()
		assert.ErrorIs(t, CanJoin(c, 2, 3), ErrQueueClosed)
	})

	t.Run("rule disabled", func(t *testing.T) {
		c := q.Clone()
		c.Config.MinMaxRuleEnabled = false
		assert.NoError(t, CanJoin(c, 2, 40))
	})
}

func TestCanJoinIgnoresInactiveEntriesForMinLab(t *testing.T) {
	q := newTestQueue(DefaultConfig())
	_, err := q.Join(1, 1, nil, at(0))
	require.NoError(t, err)
	_, err = q.ChangeStatus(1, StatusCompleted)
	require.NoError(t, err)

	// No active entries left: any lab is fine.
	assert.NoError(t, CanJoin(q, 2, 9))
}

func TestJoinValidatesArguments(t *testing.T) {
	q := newTestQueue(DefaultConfig())

	_, err := q.Join(1, 0, nil, at(0))
	require.ErrorIs(t, err, ErrInvalidArgument)
	var argErr *ArgumentError
	require.True(t, errors.As(err, &argErr))
	assert.Equal(t, "lab_number", argErr.Field)

	_, err = q.Join(1, 1, seatPtr(0), at(0))
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = q.Join(1, 1, seatPtr(36), at(0))
	assert.ErrorIs(t, err, ErrInvalidArgument)

	assert.Empty(t, q.Entries)
}

func TestJoinSeatClaims(t *testing.T) {
	q := newTestQueue(DefaultConfig())
	_, err := q.Join(1, 1, seatPtr(4), at(0))
	require.NoError(t, err)

	_, err = q.Join(2, 1, seatPtr(4), at(1))
	require.ErrorIs(t, err, ErrSeatTaken)
	var taken *SeatTakenError
	require.True(t, errors.As(err, &taken))
	assert.Equal(t, uint(1), taken.StudentID)

	// A finished entry frees its seat.
	_, err = q.ChangeStatus(1, StatusCompleted)
	require.NoError(t, err)
	_, err = q.Join(2, 1, seatPtr(4), at(2))
	assert.NoError(t, err)
}

func TestJoinCopiesPosition(t *testing.T) {
	q := newTestQueue(DefaultConfig())
	p := 3
	e, err := q.Join(1, 1, &p, at(0))
	require.NoError(t, err)
	p = 9

	assert.Equal(t, 3, *e.Position)
	assert.Equal(t, 3, *q.Entries[0].Position)
	assert.Equal(t, StatusWaiting, e.Status)
	assert.Zero(t, e.AttemptsUsed)
	assert.Equal(t, at(0), e.JoinedAt)
}

func TestRemove(t *testing.T) {
	q := newTestQueue(DefaultConfig())
	for i := uint(1); i <= 3; i++ {
		_, err := q.Join(i, 1, nil, at(int(i)))
		require.NoError(t, err)
	}

	require.NoError(t, q.Remove(2))
	assert.Equal(t, []uint{1, 3}, ids(q.Entries))
	assert.ErrorIs(t, q.Remove(2), ErrEntryNotFound)
}

func TestChangeStatusReranks(t *testing.T) {
	q := newTestQueue(DefaultConfig())
	for i := uint(1); i <= 3; i++ {
		_, err := q.Join(i, 1, nil, at(int(i)))
		require.NoError(t, err)
	}

	_, err := q.ChangeStatus(3, StatusDefending)
	require.NoError(t, err)
	assert.Equal(t, []uint{3, 1, 2}, ids(q.Entries))

	_, err = q.ChangeStatus(9, StatusDefending)
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestAttemptCounting(t *testing.T) {
	q := newTestQueue(DefaultConfig())
	_, err := q.Join(1, 1, nil, at(0))
	require.NoError(t, err)

	steps := []struct {
		to       Status
		attempts int
	}{
		{StatusPreparing, 0},
		{StatusDefending, 0},
		{StatusFailed, 1},
		{StatusFailed, 1},
		{StatusWaiting, 1},
		{StatusCompleted, 1},
		{StatusFailed, 2},
	}
	for _, s := range steps {
		e, err := q.ChangeStatus(1, s.to)
		require.NoError(t, err)
		assert.Equal(t, s.attempts, e.AttemptsUsed, "after -> %s", s.to)
	}
}

func TestStrictTransitions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StrictTransitions = true
	q := newTestQueue(cfg)
	_, err := q.Join(1, 1, nil, at(0))
	require.NoError(t, err)

	_, err = q.ChangeStatus(1, StatusCompleted)
	require.ErrorIs(t, err, ErrInvalidTransition)
	var tr *TransitionError
	require.True(t, errors.As(err, &tr))
	assert.Equal(t, StatusWaiting, tr.From)
	assert.Equal(t, StatusCompleted, tr.To)

	for _, s := range []Status{StatusWaiting, StatusPreparing, StatusDefending, StatusFailed, StatusWaiting} {
		_, err := q.ChangeStatus(1, s)
		require.NoError(t, err, "-> %s", s)
	}
	e, _ := q.Entry(1)
	assert.Equal(t, 1, e.AttemptsUsed)
}

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(StatusWaiting, StatusSkipped))
	assert.True(t, CanTransition(StatusDefending, StatusFailed))
	assert.True(t, CanTransition(StatusCompleted, StatusCompleted))
	assert.False(t, CanTransition(StatusCompleted, StatusWaiting))
	assert.False(t, CanTransition(StatusWaiting, StatusDefending))
}

func TestToggle(t *testing.T) {
	q := newTestQueue(DefaultConfig())
	_, err := q.Join(1, 1, nil, at(0))
	require.NoError(t, err)

	assert.False(t, q.Toggle())
	assert.True(t, q.Toggle())
	assert.Len(t, q.Entries, 1)
}

func TestCloneIsDeep(t *testing.T) {
	q := newTestQueue(DefaultConfig())
	_, err := q.Join(1, 1, seatPtr(2), at(0))
	require.NoError(t, err)

	c := q.Clone()
	*c.Entries[0].Position = 5
	c.Entries[0].Status = StatusFailed

	assert.Equal(t, 2, *q.Entries[0].Position)
	assert.Equal(t, StatusWaiting, q.Entries[0].Status)
}

// A walks through the documented flow: join, cap, fail twice.
func TestDefenseScenario(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxAttempts = 2
	q := newTestQueue(cfg)
	const a, b = 1, 2

	_, err := q.Join(a, 3, nil, at(0))
	require.NoError(t, err)
	minLab, ok := q.MinActiveLab()
	require.True(t, ok)
	assert.Equal(t, 3, minLab)

	_, err = q.Join(b, 6, nil, at(1))
	var limit *LabLimitError
	require.True(t, errors.As(err, &limit))
	assert.Equal(t, 5, limit.MaxAllowed)

	_, err = q.Join(b, 5, nil, at(2))
	require.NoError(t, err)

	e, err := q.ChangeStatus(a, StatusFailed)
	require.NoError(t, err)
	assert.Equal(t, 1, e.AttemptsUsed)

	e, err = q.ChangeStatus(a, StatusFailed)
	require.NoError(t, err)
	assert.Equal(t, 1, e.AttemptsUsed)

	// A is out of the active set, so B is the only waiting entry and comes first.
	assert.Equal(t, []uint{b, a}, ids(q.Entries))
}

func TestParseStatus(t *testing.T) {
	s, err := ParseStatus(" Defending ")
	require.NoError(t, err)
	assert.Equal(t, StatusDefending, s)

	_, err = ParseStatus("done")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())

	cases := map[string]func(*Config){
		"config.max_slots":             func(c *Config) { c.MaxSlots = 0 },
		"config.max_attempts":          func(c *Config) { c.MaxAttempts = 101 },
		"config.priority_cohort_limit": func(c *Config) { c.PriorityCohortLimit = -1 },
	}
	for field, mutate := range cases {
		t.Run(field, func(t *testing.T) {
			cfg := DefaultConfig()
			mutate(&cfg)
			err := cfg.Validate()
			require.ErrorIs(t, err, ErrInvalidArgument)
			var argErr *ArgumentError
			require.True(t, errors.As(err, &argErr))
			assert.Equal(t, field, argErr.Field)
		})
	}
}

func TestErrorClassification(t *testing.T) {
	assert.True(t, IsNotFound(ErrEntryNotFound))
	assert.True(t, IsRejection(&LabLimitError{}))
	assert.True(t, IsRejection(errors.Wrap(ErrQueueClosed, "join")))
	assert.False(t, IsRejection(ErrConcurrentModification))
	assert.False(t, IsRejection(errors.New("disk full")))
}
