package queue_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labqueue/internal/queue"
	"labqueue/internal/storage"
)

func newService(t *testing.T, store queue.Store, opts ...queue.Option) *queue.Service {
	t.Helper()
	logger, _ := test.NewNullLogger()
	return queue.NewService(store, logger, opts...)
}

func TestCreateSessionKeepsOneActive(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryQueueStore()
	svc := newService(t, store)

	first, err := svc.CreateSession(ctx, 7, queue.DefaultConfig())
	require.NoError(t, err)
	_, _, err = svc.Join(ctx, first.ID, 1, 2, nil)
	require.NoError(t, err)

	second, err := svc.CreateSession(ctx, 7, queue.DefaultConfig())
	require.NoError(t, err)

	sessions, err := svc.ListSessions(ctx, 7)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, second.ID, sessions[0].ID)

	active := 0
	for _, q := range sessions {
		if q.IsActive {
			active++
			assert.Equal(t, second.ID, q.ID)
		}
	}
	assert.Equal(t, 1, active)

	old, err := svc.Snapshot(ctx, first.ID)
	require.NoError(t, err)
	assert.False(t, old.IsActive)
	require.Len(t, old.Entries, 1)
	assert.Equal(t, uint(1), old.Entries[0].StudentID)

	current, err := svc.GetCurrentSession(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, second.ID, current.ID)
}

func TestCreateSessionRejectsBadConfig(t *testing.T) {
	svc := newService(t, storage.NewMemoryQueueStore())
	cfg := queue.DefaultConfig()
	cfg.MaxSlots = 0

	_, err := svc.CreateSession(context.Background(), 1, cfg)
	assert.ErrorIs(t, err, queue.ErrInvalidArgument)
}

func TestCurrentVersusActiveSession(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, storage.NewMemoryQueueStore())

	_, err := svc.GetActiveSession(ctx, 3)
	assert.ErrorIs(t, err, queue.ErrQueueNotFound)

	q, err := svc.CreateSession(ctx, 3, queue.DefaultConfig())
	require.NoError(t, err)
	_, err = svc.Toggle(ctx, q.ID)
	require.NoError(t, err)

	_, err = svc.GetActiveSession(ctx, 3)
	assert.ErrorIs(t, err, queue.ErrQueueNotFound)

	current, err := svc.GetCurrentSession(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, q.ID, current.ID)
	assert.False(t, current.IsActive)
}

func TestMutationsOnUnknownQueue(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, storage.NewMemoryQueueStore())

	_, _, err := svc.Join(ctx, 99, 1, 1, nil)
	assert.ErrorIs(t, err, queue.ErrQueueNotFound)
	_, err = svc.Leave(ctx, 99, 1)
	assert.ErrorIs(t, err, queue.ErrQueueNotFound)
	_, err = svc.Toggle(ctx, 99)
	assert.ErrorIs(t, err, queue.ErrQueueNotFound)
	_, err = svc.Snapshot(ctx, 99)
	assert.ErrorIs(t, err, queue.ErrQueueNotFound)
}

func TestRejectedMutationLeavesStateUntouched(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, storage.NewMemoryQueueStore())
	q, err := svc.CreateSession(ctx, 1, queue.DefaultConfig())
	require.NoError(t, err)
	_, _, err = svc.Join(ctx, q.ID, 1, 1, nil)
	require.NoError(t, err)

	before, err := svc.Snapshot(ctx, q.ID)
	require.NoError(t, err)

	_, _, err = svc.Join(ctx, q.ID, 2, 9, nil)
	require.ErrorIs(t, err, queue.ErrLabNumberExceedsLimit)
	_, err = svc.Kick(ctx, q.ID, 5)
	require.ErrorIs(t, err, queue.ErrEntryNotFound)

	after, err := svc.Snapshot(ctx, q.ID)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestConcurrentJoinsRespectMinPlusTwo(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, storage.NewMemoryQueueStore())
	q, err := svc.CreateSession(ctx, 1, queue.DefaultConfig())
	require.NoError(t, err)
	_, _, err = svc.Join(ctx, q.ID, 1, 1, nil)
	require.NoError(t, err)

	// Students 2..21 ask for lab 3 (allowed), 22..41 for lab 4 (rejected).
	const n = 40
	var wg sync.WaitGroup
	results := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			lab := 3
			if i >= n/2 {
				lab = 4
			}
			_, _, results[i] = svc.Join(ctx, q.ID, uint(i+2), lab, nil)
		}(i)
	}
	wg.Wait()

	ok := 0
	for i, err := range results {
		if err == nil {
			ok++
			continue
		}
		assert.ErrorIs(t, err, queue.ErrLabNumberExceedsLimit, "student %d", i+2)
	}
	assert.Equal(t, n/2, ok)

	final, err := svc.Snapshot(ctx, q.ID)
	require.NoError(t, err)
	assert.Len(t, final.Entries, n/2+1)
	seen := map[uint]bool{}
	for _, e := range final.Entries {
		assert.False(t, seen[e.StudentID], "duplicate %d", e.StudentID)
		seen[e.StudentID] = true
		assert.LessOrEqual(t, e.LabNumber, 3)
	}
}

func TestConcurrentDuplicateJoins(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, storage.NewMemoryQueueStore())
	q, err := svc.CreateSession(ctx, 1, queue.DefaultConfig())
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make(chan error, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := svc.Join(ctx, q.ID, 42, 1, nil)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	ok := 0
	for err := range errs {
		if err == nil {
			ok++
		} else {
			assert.ErrorIs(t, err, queue.ErrDuplicateEntry)
		}
	}
	assert.Equal(t, 1, ok)
}

func TestConcurrentJoinAndLeave(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, storage.NewMemoryQueueStore())
	q, err := svc.CreateSession(ctx, 1, queue.DefaultConfig())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 1; i <= 30; i++ {
		wg.Add(1)
		go func(id uint) {
			defer wg.Done()
			_, _, err := svc.Join(ctx, q.ID, id, 1, nil)
			assert.NoError(t, err)
			if id%2 == 0 {
				_, err = svc.Leave(ctx, q.ID, id)
				assert.NoError(t, err)
			}
		}(uint(i))
	}
	wg.Wait()

	final, err := svc.Snapshot(ctx, q.ID)
	require.NoError(t, err)
	assert.Len(t, final.Entries, 15)
	for _, e := range final.Entries {
		assert.Equal(t, uint(1), e.StudentID%2)
	}
}

func TestChangeStatusThroughService(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, storage.NewMemoryQueueStore())
	q, err := svc.CreateSession(ctx, 1, queue.DefaultConfig())
	require.NoError(t, err)
	_, _, err = svc.Join(ctx, q.ID, 1, 1, nil)
	require.NoError(t, err)
	_, _, err = svc.Join(ctx, q.ID, 2, 1, nil)
	require.NoError(t, err)

	updated, entry, err := svc.ChangeStatus(ctx, q.ID, 2, queue.StatusDefending)
	require.NoError(t, err)
	assert.Equal(t, queue.StatusDefending, entry.Status)
	assert.Equal(t, uint(2), updated.Entries[0].StudentID)
	assert.Greater(t, updated.Version, q.Version)
}

func TestCloseStaleSessions(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	svc := newService(t, storage.NewMemoryQueueStore(), queue.WithClock(clock))

	old, err := svc.CreateSession(ctx, 1, queue.DefaultConfig())
	require.NoError(t, err)
	now = now.Add(5 * time.Hour)
	fresh, err := svc.CreateSession(ctx, 2, queue.DefaultConfig())
	require.NoError(t, err)

	closed, err := svc.CloseStaleSessions(ctx, 3*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, closed)

	q, err := svc.Snapshot(ctx, old.ID)
	require.NoError(t, err)
	assert.False(t, q.IsActive)
	q, err = svc.Snapshot(ctx, fresh.ID)
	require.NoError(t, err)
	assert.True(t, q.IsActive)
}

// conflictStore loses the version race a fixed number of times.
type conflictStore struct {
	*storage.MemoryQueueStore
	mu        sync.Mutex
	conflicts int
	saves     int
}

func (s *conflictStore) Save(ctx context.Context, q *queue.Queue) error {
	s.mu.Lock()
	s.saves++
	if s.conflicts > 0 {
		s.conflicts--
		s.mu.Unlock()
		return queue.ErrConcurrentModification
	}
	s.mu.Unlock()
	return s.MemoryQueueStore.Save(ctx, q)
}

func TestSaveConflictIsRetried(t *testing.T) {
	ctx := context.Background()
	store := &conflictStore{MemoryQueueStore: storage.NewMemoryQueueStore()}
	svc := newService(t, store)
	q, err := svc.CreateSession(ctx, 1, queue.DefaultConfig())
	require.NoError(t, err)

	store.conflicts = 2
	_, _, err = svc.Join(ctx, q.ID, 1, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, store.saves)

	store.conflicts = 3
	_, _, err = svc.Join(ctx, q.ID, 2, 1, nil)
	assert.ErrorIs(t, err, queue.ErrConcurrentModification)
}

// failingStore refuses every write.
type failingStore struct {
	*storage.MemoryQueueStore
}

func (failingStore) Save(context.Context, *queue.Queue) error {
	return errors.New("disk full")
}

func TestSaveFailureLeavesNothingBehind(t *testing.T) {
	ctx := context.Background()
	store := failingStore{storage.NewMemoryQueueStore()}
	svc := newService(t, store)
	q, err := svc.CreateSession(ctx, 1, queue.DefaultConfig())
	require.NoError(t, err)

	_, _, err = svc.Join(ctx, q.ID, 1, 1, nil)
	require.Error(t, err)

	snap, err := svc.Snapshot(ctx, q.ID)
	require.NoError(t, err)
	assert.Empty(t, snap.Entries)
}

// mapCache is an in-memory SnapshotCache.
type mapCache struct {
	mu    sync.Mutex
	items map[uint]*queue.Queue
}

func (c *mapCache) Load(_ context.Context, id uint) (*queue.Queue, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if q, ok := c.items[id]; ok {
		return q.Clone(), nil
	}
	return nil, nil
}

func (c *mapCache) Store(_ context.Context, q *queue.Queue) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[q.ID] = q.Clone()
	return nil
}

func (c *mapCache) Fill(_ context.Context, q *queue.Queue) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[q.ID]; !ok {
		c.items[q.ID] = q.Clone()
	}
	return nil
}

func TestSnapshotCacheRefreshedOnCommit(t *testing.T) {
	ctx := context.Background()
	cache := &mapCache{items: map[uint]*queue.Queue{}}
	svc := newService(t, storage.NewMemoryQueueStore(), queue.WithCache(cache))

	first, err := svc.CreateSession(ctx, 1, queue.DefaultConfig())
	require.NoError(t, err)
	_, _, err = svc.Join(ctx, first.ID, 1, 1, nil)
	require.NoError(t, err)

	cached, _ := cache.Load(ctx, first.ID)
	require.NotNil(t, cached)
	assert.Len(t, cached.Entries, 1)

	_, err = svc.CreateSession(ctx, 1, queue.DefaultConfig())
	require.NoError(t, err)
	cached, _ = cache.Load(ctx, first.ID)
	require.NotNil(t, cached)
	assert.False(t, cached.IsActive, "superseded session must show closed")
}

func TestDifferentQueuesProceedIndependently(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, storage.NewMemoryQueueStore())

	var queues []*queue.Queue
	for s := uint(1); s <= 5; s++ {
		q, err := svc.CreateSession(ctx, s, queue.DefaultConfig())
		require.NoError(t, err)
		queues = append(queues, q)
	}

	var wg sync.WaitGroup
	for _, q := range queues {
		for st := uint(1); st <= 10; st++ {
			wg.Add(1)
			go func(id, student uint) {
				defer wg.Done()
				_, _, err := svc.Join(ctx, id, student, 1, nil)
				assert.NoError(t, err, fmt.Sprintf("queue %d student %d", id, student))
			}(q.ID, st)
		}
	}
	wg.Wait()

	for _, q := range queues {
		snap, err := svc.Snapshot(ctx, q.ID)
		require.NoError(t, err)
		assert.Len(t, snap.Entries, 10)
	}
}

func TestToggleCannotReopenSupersededSession(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, storage.NewMemoryQueueStore())

	first, err := svc.CreateSession(ctx, 1, queue.DefaultConfig())
	require.NoError(t, err)
	second, err := svc.CreateSession(ctx, 1, queue.DefaultConfig())
	require.NoError(t, err)

	_, err = svc.Toggle(ctx, first.ID)
	assert.ErrorIs(t, err, queue.ErrQueueClosed)

	sessions, err := svc.ListSessions(ctx, 1)
	require.NoError(t, err)
	active := 0
	for _, q := range sessions {
		if q.IsActive {
			active++
		}
	}
	assert.Equal(t, 1, active)

	_, _, err = svc.Join(ctx, first.ID, 1, 1, nil)
	assert.ErrorIs(t, err, queue.ErrQueueClosed)

	// The newest session still closes and reopens.
	closed, err := svc.Toggle(ctx, second.ID)
	require.NoError(t, err)
	assert.False(t, closed.IsActive)
	reopened, err := svc.Toggle(ctx, second.ID)
	require.NoError(t, err)
	assert.True(t, reopened.IsActive)

	current, err := svc.GetActiveSession(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, second.ID, current.ID)
}

// interleavingStore runs afterGet once, right after a Get has read its copy.
type interleavingStore struct {
	queue.Store
	afterGet func()
}

func (s *interleavingStore) Get(ctx context.Context, id uint) (*queue.Queue, error) {
	q, err := s.Store.Get(ctx, id)
	if f := s.afterGet; f != nil {
		s.afterGet = nil
		f()
	}
	return q, err
}

func TestSnapshotMissDoesNotOverwriteNewerCommit(t *testing.T) {
	ctx := context.Background()
	cache := &mapCache{items: map[uint]*queue.Queue{}}
	store := &interleavingStore{Store: storage.NewMemoryQueueStore()}
	svc := newService(t, store, queue.WithCache(cache))

	q, err := svc.CreateSession(ctx, 1, queue.DefaultConfig())
	require.NoError(t, err)
	cache.items = map[uint]*queue.Queue{}

	store.afterGet = func() {
		_, _, err := svc.Join(ctx, q.ID, 1, 1, nil)
		require.NoError(t, err)
	}
	stale, err := svc.Snapshot(ctx, q.ID)
	require.NoError(t, err)
	assert.Empty(t, stale.Entries)

	cached, _ := cache.Load(ctx, q.ID)
	require.NotNil(t, cached)
	assert.Len(t, cached.Entries, 1)

	fresh, err := svc.Snapshot(ctx, q.ID)
	require.NoError(t, err)
	assert.Len(t, fresh.Entries, 1)
}
