package queue

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// maxSaveAttempts bounds the re-read/re-validate loop after a lost version race.
const maxSaveAttempts = 3

// Store persists queues. Each queue is written as one unit.
type Store interface {
	// CreateSession deactivates every queue of q.SubjectID and inserts q in one transaction.
	// It fills q.ID and q.Version.
	CreateSession(ctx context.Context, q *Queue) error
	Get(ctx context.Context, id uint) (*Queue, error)
	// Latest returns the most recently created queue of the subject, active or not.
	Latest(ctx context.Context, subjectID uint) (*Queue, error)
	Active(ctx context.Context, subjectID uint) (*Queue, error)
	// List returns every queue of the subject, newest first.
	List(ctx context.Context, subjectID uint) ([]*Queue, error)
	// Save writes q only if the stored version still equals q.Version and then
	// increments q.Version. A stale version yields ErrConcurrentModification.
	Save(ctx context.Context, q *Queue) error
	ActiveCreatedBefore(ctx context.Context, t time.Time) ([]*Queue, error)
}

// SnapshotCache holds the last committed state of a queue for pollers.
// Load returns (nil, nil) on a miss.
type SnapshotCache interface {
	Load(ctx context.Context, id uint) (*Queue, error)
	// Store overwrites the cached state. Only committers call it.
	Store(ctx context.Context, q *Queue) error
	// Fill caches q only if nothing is cached for q.ID yet.
	Fill(ctx context.Context, q *Queue) error
}

type noCache struct{}

func (noCache) Load(context.Context, uint) (*Queue, error) { return nil, nil }
func (noCache) Store(context.Context, *Queue) error        { return nil }
func (noCache) Fill(context.Context, *Queue) error         { return nil }

// Service owns session lifecycle and serializes every mutation of a queue.
type Service struct {
	store  Store
	locker Locker
	cache  SnapshotCache
	log    *logrus.Logger
	now    func() time.Time
}

type Option func(*Service)

// WithLocker replaces the in-process lock, e.g. with a distributed one.
func WithLocker(l Locker) Option { return func(s *Service) { s.locker = l } }

func WithCache(c SnapshotCache) Option { return func(s *Service) { s.cache = c } }

func WithClock(now func() time.Time) Option { return func(s *Service) { s.now = now } }

func NewService(store Store, logger *logrus.Logger, opts ...Option) *Service {
	s := &Service{
		store:  store,
		locker: NewKeyedMutex(),
		cache:  noCache{},
		log:    logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func queueKey(id uint) string          { return fmt.Sprintf("queue:%d", id) }
func subjectKey(subjectID uint) string { return fmt.Sprintf("subject:%d", subjectID) }

// CreateSession opens a new queue for the subject and closes every earlier one.
func (s *Service) CreateSession(ctx context.Context, subjectID uint, cfg Config) (*Queue, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	unlock, err := s.locker.Lock(ctx, subjectKey(subjectID))
	if err != nil {
		return nil, errors.Wrap(err, "lock subject")
	}
	defer unlock()

	prev, err := s.store.Active(ctx, subjectID)
	if err != nil && !errors.Is(err, ErrQueueNotFound) {
		return nil, err
	}

	q := New(subjectID, cfg, s.now())
	if err := s.store.CreateSession(ctx, q); err != nil {
		return nil, err
	}
	s.remember(ctx, q)
	if prev != nil {
		// Pollers of the old session must see it closed.
		if closed, err := s.store.Get(ctx, prev.ID); err == nil {
			s.remember(ctx, closed)
		}
	}
	s.log.WithFields(logrus.Fields{"queue_id": q.ID, "subject_id": subjectID}).Info("session created")
	return q.Clone(), nil
}

// GetCurrentSession returns the newest queue of the subject regardless of state.
func (s *Service) GetCurrentSession(ctx context.Context, subjectID uint) (*Queue, error) {
	return s.store.Latest(ctx, subjectID)
}

// GetActiveSession returns the open queue of the subject or ErrQueueNotFound.
func (s *Service) GetActiveSession(ctx context.Context, subjectID uint) (*Queue, error) {
	return s.store.Active(ctx, subjectID)
}

func (s *Service) ListSessions(ctx context.Context, subjectID uint) ([]*Queue, error) {
	return s.store.List(ctx, subjectID)
}

// Snapshot returns the committed state of a queue. It does not take the queue lock.
func (s *Service) Snapshot(ctx context.Context, id uint) (*Queue, error) {
	cached, err := s.cache.Load(ctx, id)
	if err != nil {
		s.log.WithError(err).WithField("queue_id", id).Warn("snapshot cache read failed")
	}
	if cached != nil {
		return cached, nil
	}
	q, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	// A commit may have landed since Get; never replace its snapshot with ours.
	if err := s.cache.Fill(ctx, q.Clone()); err != nil {
		s.log.WithError(err).WithField("queue_id", id).Warn("snapshot cache fill failed")
	}
	return q, nil
}

func (s *Service) Join(ctx context.Context, id, studentID uint, labNumber int, position *int) (*Queue, Entry, error) {
	var joined Entry
	q, err := s.mutate(ctx, id, "join", studentID, func(q *Queue) error {
		e, err := q.Join(studentID, labNumber, position, s.now())
		joined = e
		return err
	})
	return q, joined, err
}

func (s *Service) Leave(ctx context.Context, id, studentID uint) (*Queue, error) {
	return s.mutate(ctx, id, "leave", studentID, func(q *Queue) error {
		return q.Remove(studentID)
	})
}

// Kick removes another student's entry. Authorization is checked by the caller.
func (s *Service) Kick(ctx context.Context, id, targetID uint) (*Queue, error) {
	return s.mutate(ctx, id, "kick", targetID, func(q *Queue) error {
		return q.Remove(targetID)
	})
}

func (s *Service) ChangeStatus(ctx context.Context, id, targetID uint, status Status) (*Queue, Entry, error) {
	var changed Entry
	q, err := s.mutate(ctx, id, "change_status", targetID, func(q *Queue) error {
		e, err := q.ChangeStatus(targetID, status)
		changed = e
		return err
	})
	return q, changed, err
}

// Toggle opens or closes the queue. Only the newest session of a subject may be
// reopened, so the subject lock is held to keep CreateSession out meanwhile.
func (s *Service) Toggle(ctx context.Context, id uint) (*Queue, error) {
	current, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	unlock, err := s.locker.Lock(ctx, subjectKey(current.SubjectID))
	if err != nil {
		return nil, errors.Wrap(err, "lock subject")
	}
	defer unlock()

	return s.mutate(ctx, id, "toggle", 0, func(q *Queue) error {
		if !q.IsActive {
			latest, err := s.store.Latest(ctx, q.SubjectID)
			if err != nil {
				return err
			}
			if latest.ID != q.ID {
				return errors.Wrapf(ErrQueueClosed, "session %d was superseded by %d", q.ID, latest.ID)
			}
		}
		q.Toggle()
		return nil
	})
}

// CloseStaleSessions deactivates open queues created more than maxAge ago.
func (s *Service) CloseStaleSessions(ctx context.Context, maxAge time.Duration) (int, error) {
	stale, err := s.store.ActiveCreatedBefore(ctx, s.now().Add(-maxAge))
	if err != nil {
		return 0, err
	}
	closed := 0
	for _, q := range stale {
		_, err := s.mutate(ctx, q.ID, "close_stale", 0, func(q *Queue) error {
			q.IsActive = false
			return nil
		})
		if err != nil {
			return closed, err
		}
		closed++
	}
	return closed, nil
}

// mutate runs read -> apply -> write for one queue inside its critical section.
// apply works on a copy, so a failed write leaves nothing half-modified.
func (s *Service) mutate(ctx context.Context, id uint, op string, studentID uint, apply func(*Queue) error) (*Queue, error) {
	logger := s.log.WithFields(logrus.Fields{"queue_id": id, "op": op, "student_id": studentID})

	unlock, err := s.locker.Lock(ctx, queueKey(id))
	if err != nil {
		return nil, errors.Wrap(err, "lock queue")
	}
	defer unlock()

	for attempt := 1; ; attempt++ {
		current, err := s.store.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		next := current.Clone()
		if err := apply(next); err != nil {
			logger.WithError(err).Debug("mutation rejected")
			return nil, err
		}

		err = s.store.Save(ctx, next)
		if errors.Is(err, ErrConcurrentModification) && attempt < maxSaveAttempts {
			logger.WithField("attempt", attempt).Warn("version conflict, retrying")
			continue
		}
		if err != nil {
			logger.WithError(err).Error("save failed")
			return nil, err
		}

		s.remember(ctx, next)
		logger.Info("queue updated")
		return next.Clone(), nil
	}
}

func (s *Service) remember(ctx context.Context, q *Queue) {
	if err := s.cache.Store(ctx, q.Clone()); err != nil {
		s.log.WithError(err).WithField("queue_id", q.ID).Warn("snapshot cache write failed")
	}
}
