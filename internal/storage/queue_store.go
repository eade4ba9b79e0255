package storage

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"labqueue/internal/models"
	"labqueue/internal/queue"
)

// QueueStore keeps each queue as one row; the ranked entries live in a JSON column.
type QueueStore struct {
	db *gorm.DB
}

func NewQueueStore(db *gorm.DB) *QueueStore {
	return &QueueStore{db: db}
}

var _ queue.Store = (*QueueStore)(nil)

func (s *QueueStore) CreateSession(ctx context.Context, q *queue.Queue) error {
	rec := toRecord(q)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Bumping the version makes in-flight writers on the old session lose their CAS.
		if err := tx.Model(&models.Queue{}).
			Where("subject_id = ? AND is_active = ?", q.SubjectID, true).
			Updates(map[string]any{"is_active": false, "version": gorm.Expr("version + 1")}).Error; err != nil {
			return err
		}
		return tx.Create(&rec).Error
	})
	if err != nil {
		return errors.Wrap(err, "storage: create session")
	}
	q.ID = rec.ID
	q.Version = rec.Version
	q.CreatedAt = rec.CreatedAt.UTC()
	return nil
}

func (s *QueueStore) Get(ctx context.Context, id uint) (*queue.Queue, error) {
	var rec models.Queue
	if err := s.db.WithContext(ctx).First(&rec, id).Error; err != nil {
		return nil, notFound(err, "get queue")
	}
	return toDomain(rec), nil
}

func (s *QueueStore) Latest(ctx context.Context, subjectID uint) (*queue.Queue, error) {
	var rec models.Queue
	err := s.db.WithContext(ctx).
		Where("subject_id = ?", subjectID).
		Order("id DESC").
		First(&rec).Error
	if err != nil {
		return nil, notFound(err, "latest queue")
	}
	return toDomain(rec), nil
}

func (s *QueueStore) Active(ctx context.Context, subjectID uint) (*queue.Queue, error) {
	var rec models.Queue
	err := s.db.WithContext(ctx).
		Where("subject_id = ? AND is_active = ?", subjectID, true).
		Order("id DESC").
		First(&rec).Error
	if err != nil {
		return nil, notFound(err, "active queue")
	}
	return toDomain(rec), nil
}

func (s *QueueStore) List(ctx context.Context, subjectID uint) ([]*queue.Queue, error) {
	var recs []models.Queue
	err := s.db.WithContext(ctx).
		Where("subject_id = ?", subjectID).
		Order("id DESC").
		Find(&recs).Error
	if err != nil {
		return nil, errors.Wrap(err, "storage: list queues")
	}
	return toDomainList(recs), nil
}

func (s *QueueStore) ActiveCreatedBefore(ctx context.Context, t time.Time) ([]*queue.Queue, error) {
	var recs []models.Queue
	err := s.db.WithContext(ctx).
		Where("is_active = ? AND created_at < ?", true, t).
		Find(&recs).Error
	if err != nil {
		return nil, errors.Wrap(err, "storage: stale queues")
	}
	return toDomainList(recs), nil
}

func (s *QueueStore) Save(ctx context.Context, q *queue.Queue) error {
	rec := toRecord(q)
	res := s.db.WithContext(ctx).
		Model(&models.Queue{}).
		Where("id = ? AND version = ?", q.ID, q.Version).
		Updates(map[string]any{
			"is_active": rec.IsActive,
			"entries":   rec.Entries,
			"version":   gorm.Expr("version + 1"),
		})
	if res.Error != nil {
		return errors.Wrap(res.Error, "storage: save queue")
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := s.db.WithContext(ctx).Model(&models.Queue{}).Where("id = ?", q.ID).Count(&count).Error; err != nil {
			return errors.Wrap(err, "storage: save queue")
		}
		if count == 0 {
			return queue.ErrQueueNotFound
		}
		return queue.ErrConcurrentModification
	}
	q.Version++
	return nil
}

func notFound(err error, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return queue.ErrQueueNotFound
	}
	return errors.Wrap(err, "storage: "+op)
}

func toRecord(q *queue.Queue) models.Queue {
	entries := make([]models.QueueEntry, 0, len(q.Entries))
	for _, e := range q.Entries {
		entries = append(entries, models.QueueEntry{
			UserID:       e.StudentID,
			LabNumber:    e.LabNumber,
			JoinedAt:     e.JoinedAt,
			Status:       string(e.Status),
			AttemptsUsed: e.AttemptsUsed,
			Position:     e.Position,
		})
	}
	rec := models.Queue{
		SubjectID:           q.SubjectID,
		IsActive:            q.IsActive,
		Version:             q.Version,
		MaxSlots:            q.Config.MaxSlots,
		MinMaxRule:          q.Config.MinMaxRuleEnabled,
		PriorityMinLab:      q.Config.PriorityMinLabEnabled,
		MaxAttempts:         q.Config.MaxAttempts,
		PriorityCohortLimit: q.Config.PriorityCohortLimit,
		StrictTransitions:   q.Config.StrictTransitions,
		Entries:             datatypes.JSONSlice[models.QueueEntry](entries),
	}
	rec.ID = q.ID
	rec.CreatedAt = q.CreatedAt
	return rec
}

func toDomain(rec models.Queue) *queue.Queue {
	entries := make([]queue.Entry, 0, len(rec.Entries))
	for _, e := range rec.Entries {
		entries = append(entries, queue.Entry{
			StudentID:    e.UserID,
			LabNumber:    e.LabNumber,
			JoinedAt:     e.JoinedAt.UTC(),
			Status:       queue.Status(e.Status),
			AttemptsUsed: e.AttemptsUsed,
			Position:     e.Position,
		})
	}
	return &queue.Queue{
		ID:        rec.ID,
		SubjectID: rec.SubjectID,
		IsActive:  rec.IsActive,
		Config: queue.Config{
			MaxSlots:              rec.MaxSlots,
			MinMaxRuleEnabled:     rec.MinMaxRule,
			PriorityMinLabEnabled: rec.PriorityMinLab,
			MaxAttempts:           rec.MaxAttempts,
			PriorityCohortLimit:   rec.PriorityCohortLimit,
			StrictTransitions:     rec.StrictTransitions,
		},
		Entries:   entries,
		CreatedAt: rec.CreatedAt.UTC(),
		Version:   rec.Version,
	}
}

func toDomainList(recs []models.Queue) []*queue.Queue {
	out := make([]*queue.Queue, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toDomain(rec))
	}
	return out
}
