package schedule

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store persists one serialized draft per user. Absence is (nil, nil), never
// an error; corruption is the caller's problem to tolerate.
type Store interface {
	Load(ctx context.Context, userID string) ([]byte, error)
	Save(ctx context.Context, userID string, raw []byte) error
	Delete(ctx context.Context, userID string) error
}

const keyPrefix = "schedule:"

// Drafts are working state, not records; let abandoned ones age out.
const draftTTL = 90 * 24 * time.Hour

type redisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) Store {
	return &redisStore{client: client}
}

func (r *redisStore) Load(ctx context.Context, userID string) ([]byte, error) {
	raw, err := r.client.Get(ctx, keyPrefix+userID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	return raw, nil
}

func (r *redisStore) Save(ctx context.Context, userID string, raw []byte) error {
	return r.client.Set(ctx, keyPrefix+userID, raw, draftTTL).Err()
}

func (r *redisStore) Delete(ctx context.Context, userID string) error {
	return r.client.Del(ctx, keyPrefix+userID).Err()
}

// MemoryStore is the in-process fallback used by tests.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (m *MemoryStore) Load(_ context.Context, userID string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	raw, ok := m.data[userID]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(raw))
	copy(out, raw)
	return out, nil
}

func (m *MemoryStore) Save(_ context.Context, userID string, raw []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]byte, len(raw))
	copy(cp, raw)
	m.data[userID] = cp
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, userID)
	return nil
}
