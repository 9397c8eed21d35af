package store

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v8"
	"gotest.tools/assert"
)

func TestMemoryKV(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()

	// missing key
	_, err := kv.Get(ctx, "missing")
	assert.Equal(t, ErrNotFound, err)

	// set then get
	err = kv.Set(ctx, "k", "v", 0)
	assert.Equal(t, nil, err)

	val, err := kv.Get(ctx, "k")
	assert.Equal(t, nil, err)
	assert.Equal(t, "v", val)

	// expired entry behaves like a missing key
	err = kv.Set(ctx, "short", "v", time.Millisecond)
	assert.Equal(t, nil, err)
	time.Sleep(5 * time.Millisecond)

	_, err = kv.Get(ctx, "short")
	assert.Equal(t, ErrNotFound, err)

	// delete
	err = kv.Del(ctx, "k")
	assert.Equal(t, nil, err)

	_, err = kv.Get(ctx, "k")
	assert.Equal(t, ErrNotFound, err)
}

func TestRedisKV(t *testing.T) {
	ctx := context.Background()
	client, mock := redismock.NewClientMock()
	kv := NewRedisKV(client)

	// redis.Nil maps to ErrNotFound
	mock.ExpectGet("missing").RedisNil()
	_, err := kv.Get(ctx, "missing")
	assert.Equal(t, ErrNotFound, err)

	mock.ExpectSet("k", "v", 0).SetVal("OK")
	err = kv.Set(ctx, "k", "v", 0)
	assert.Equal(t, nil, err)

	mock.ExpectGet("k").SetVal("v")
	val, err := kv.Get(ctx, "k")
	assert.Equal(t, nil, err)
	assert.Equal(t, "v", val)

	mock.ExpectDel("k").SetVal(1)
	err = kv.Del(ctx, "k")
	assert.Equal(t, nil, err)
}

func TestStoreLoadFallback(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	s := New(kv)

	type settings struct {
		PerPage int `json:"perPage"`
	}

	// absent key leaves the fallback value untouched
	out := settings{PerPage: 6}
	assert.Equal(t, false, s.Load(ctx, KeySettings, &out))
	assert.Equal(t, 6, out.PerPage)

	// corrupt payload is silently recovered the same way
	err := kv.Set(ctx, KeySettings, "{not-json", 0)
	assert.Equal(t, nil, err)

	out = settings{PerPage: 6}
	assert.Equal(t, false, s.Load(ctx, KeySettings, &out))
	assert.Equal(t, 6, out.PerPage)

	// round trip
	err = s.Save(ctx, KeySettings, settings{PerPage: 12})
	assert.Equal(t, nil, err)

	out = settings{}
	assert.Equal(t, true, s.Load(ctx, KeySettings, &out))
	assert.Equal(t, 12, out.PerPage)

	// removed key is gone
	err = s.Remove(ctx, KeySettings)
	assert.Equal(t, nil, err)
	assert.Equal(t, false, s.Load(ctx, KeySettings, &out))
}
