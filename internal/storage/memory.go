package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"labqueue/internal/queue"
)

// MemoryQueueStore is a process-local queue.Store for DB_DRIVER=memory and tests.
type MemoryQueueStore struct {
	mu     sync.RWMutex
	nextID uint
	queues map[uint]*queue.Queue
}

func NewMemoryQueueStore() *MemoryQueueStore {
	return &MemoryQueueStore{queues: make(map[uint]*queue.Queue)}
}

var _ queue.Store = (*MemoryQueueStore)(nil)

func (s *MemoryQueueStore) CreateSession(_ context.Context, q *queue.Queue) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.queues {
		if existing.SubjectID == q.SubjectID && existing.IsActive {
			existing.IsActive = false
			existing.Version++
		}
	}
	s.nextID++
	q.ID = s.nextID
	q.Version = 0
	s.queues[q.ID] = q.Clone()
	return nil
}

func (s *MemoryQueueStore) Get(_ context.Context, id uint) (*queue.Queue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	q, ok := s.queues[id]
	if !ok {
		return nil, queue.ErrQueueNotFound
	}
	return q.Clone(), nil
}

func (s *MemoryQueueStore) Latest(ctx context.Context, subjectID uint) (*queue.Queue, error) {
	list, _ := s.List(ctx, subjectID)
	if len(list) == 0 {
		return nil, queue.ErrQueueNotFound
	}
	return list[0], nil
}

func (s *MemoryQueueStore) Active(ctx context.Context, subjectID uint) (*queue.Queue, error) {
	list, _ := s.List(ctx, subjectID)
	for _, q := range list {
		if q.IsActive {
			return q, nil
		}
	}
	return nil, queue.ErrQueueNotFound
}

func (s *MemoryQueueStore) List(_ context.Context, subjectID uint) ([]*queue.Queue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*queue.Queue
	for _, q := range s.queues {
		if q.SubjectID == subjectID {
			out = append(out, q.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (s *MemoryQueueStore) ActiveCreatedBefore(_ context.Context, t time.Time) ([]*queue.Queue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*queue.Queue
	for _, q := range s.queues {
		if q.IsActive && q.CreatedAt.Before(t) {
			out = append(out, q.Clone())
		}
	}
	return out, nil
}

func (s *MemoryQueueStore) Save(_ context.Context, q *queue.Queue) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.queues[q.ID]
	if !ok {
		return queue.ErrQueueNotFound
	}
	if stored.Version != q.Version {
		return queue.ErrConcurrentModification
	}
	q.Version++
	s.queues[q.ID] = q.Clone()
	return nil
}
