package store

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// Fixed keys the console persists under.
const (
	KeyUser     = "superapp_user"
	KeyProducts = "superapp_products"
	KeySettings = "superapp_settings"
)

var ErrNotFound = errors.New("key-not-found")

// KV is the flat key-value capability everything persists through. A ttl of
// zero means the entry never expires.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

type RedisKV struct {
	Client *redis.Client
}

func NewRedisKV(client *redis.Client) *RedisKV {
	return &RedisKV{Client: client}
}

func (r *RedisKV) Get(ctx context.Context, key string) (string, error) {
	val, err := r.Client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", ErrNotFound
	}
	return val, err
}

func (r *RedisKV) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return r.Client.Set(ctx, key, value, ttl).Err()
}

func (r *RedisKV) Del(ctx context.Context, key string) error {
	return r.Client.Del(ctx, key).Err()
}

// MemoryKV backs DEV_MODE and the tests.
type MemoryKV struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	value    string
	deadline time.Time
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{entries: map[string]memoryEntry{}}
}

func (m *MemoryKV) Get(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.entries[key]
	if !ok {
		return "", ErrNotFound
	}
	if !entry.deadline.IsZero() && time.Now().After(entry.deadline) {
		delete(m.entries, key)
		return "", ErrNotFound
	}
	return entry.value, nil
}

func (m *MemoryKV) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry := memoryEntry{value: value}
	if ttl > 0 {
		entry.deadline = time.Now().Add(ttl)
	}
	m.entries[key] = entry
	return nil
}

func (m *MemoryKV) Del(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}

// Store serializes values to JSON on save and parses them back on load.
type Store struct {
	kv KV
}

func New(kv KV) *Store {
	return &Store{kv: kv}
}

// Load reports false when the key is absent or its payload does not parse; out
// is left untouched so the caller keeps its fallback.
func (s *Store) Load(ctx context.Context, key string, out interface{}) bool {
	raw, err := s.kv.Get(ctx, key)
	if err != nil {
		if err != ErrNotFound {
			log.Println(err)
		}
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		log.Println(err)
		return false
	}
	return true
}

// Save is synchronous write-through; there is no buffering or batching.
func (s *Store) Save(ctx context.Context, key string, v interface{}) error {
	return s.SaveTTL(ctx, key, v, 0)
}

func (s *Store) SaveTTL(ctx context.Context, key string, v interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, key, string(raw), ttl)
}

func (s *Store) Remove(ctx context.Context, key string) error {
	return s.kv.Del(ctx, key)
}
