package storage

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"labqueue/internal/queue"
)

// SnapshotCache keeps the last committed state of each queue for pollers.
type SnapshotCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSnapshotCache(client *redis.Client, ttl time.Duration) *SnapshotCache {
	return &SnapshotCache{client: client, ttl: ttl}
}

var _ queue.SnapshotCache = (*SnapshotCache)(nil)

func snapshotKey(id uint) string {
	return "queue_snapshot_" + strconv.FormatUint(uint64(id), 10)
}

func (c *SnapshotCache) Load(ctx context.Context, id uint) (*queue.Queue, error) {
	data, err := c.client.Get(ctx, snapshotKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "storage: read snapshot")
	}
	var q queue.Queue
	if err := json.Unmarshal(data, &q); err != nil {
		return nil, errors.Wrap(err, "storage: decode snapshot")
	}
	return &q, nil
}

func (c *SnapshotCache) Store(ctx context.Context, q *queue.Queue) error {
	data, err := json.Marshal(q)
	if err != nil {
		return errors.Wrap(err, "storage: encode snapshot")
	}
	return errors.Wrap(c.client.Set(ctx, snapshotKey(q.ID), data, c.ttl).Err(), "storage: write snapshot")
}

// Fill uses SETNX so a read-through never overwrites a newer commit.
func (c *SnapshotCache) Fill(ctx context.Context, q *queue.Queue) error {
	data, err := json.Marshal(q)
	if err != nil {
		return errors.Wrap(err, "storage: encode snapshot")
	}
	return errors.Wrap(c.client.SetNX(ctx, snapshotKey(q.ID), data, c.ttl).Err(), "storage: fill snapshot")
}

// unlockScript deletes the lock only if it still holds our token.
var unlockScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`)

// RedisLocker extends the per-queue critical section across server processes.
// Waiters in the same process queue on a local mutex first.
type RedisLocker struct {
	client *redis.Client
	local  *queue.KeyedMutex
	ttl    time.Duration
	retry  time.Duration
}

func NewRedisLocker(client *redis.Client, ttl time.Duration) *RedisLocker {
	return &RedisLocker{
		client: client,
		local:  queue.NewKeyedMutex(),
		ttl:    ttl,
		retry:  25 * time.Millisecond,
	}
}

var _ queue.Locker = (*RedisLocker)(nil)

func (l *RedisLocker) Lock(ctx context.Context, key string) (func(), error) {
	unlockLocal, err := l.local.Lock(ctx, key)
	if err != nil {
		return nil, err
	}

	redisKey := "lock_" + key
	token := uuid.NewString()
	for {
		ok, err := l.client.SetNX(ctx, redisKey, token, l.ttl).Result()
		if err != nil {
			unlockLocal()
			return nil, errors.Wrap(err, "storage: acquire lock")
		}
		if ok {
			break
		}
		select {
		case <-ctx.Done():
			unlockLocal()
			return nil, ctx.Err()
		case <-time.After(l.retry):
		}
	}

	return func() {
		// The request context may already be cancelled; release regardless.
		_ = unlockScript.Run(context.Background(), l.client, []string{redisKey}, token).Err()
		unlockLocal()
	}, nil
}
