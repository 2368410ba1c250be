package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

func newTestCache(t *testing.T, ttl time.Duration) (*RedisValueCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisValueCache(client, ttl), mr
}

func TestRedisValueCache_SetGet(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)
	ctx := context.Background()

	if _, ok, err := c.Get(ctx, "XRO"); err != nil || ok {
		t.Fatalf("expected miss, got ok=%v err=%v", ok, err)
	}

	want := decimal.RequireFromString("46.6666666666666667")
	if stored, err := c.Set(ctx, "XRO", 0, want); err != nil || !stored {
		t.Fatalf("Set: stored=%v err=%v", stored, err)
	}
	got, ok, err := c.Get(ctx, "XRO")
	if err != nil || !ok {
		t.Fatalf("expected hit, got ok=%v err=%v", ok, err)
	}
	if !got.Equal(want) {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestRedisValueCache_Invalidate(t *testing.T) {
	c, mr := newTestCache(t, 0)
	ctx := context.Background()

	_, _ = c.Set(ctx, "XRO", 0, decimal.NewFromInt(30))
	_, _ = c.Set(ctx, "IBM", 0, decimal.NewFromInt(60))

	if err := c.Invalidate(ctx, "XRO"); err != nil {
		t.Fatalf("Invalidate: %v", err)
	}
	if mr.Exists("stockvalue:XRO") {
		t.Fatalf("XRO should be gone")
	}
	if !mr.Exists("stockvalue:IBM") {
		t.Fatalf("IBM should still be cached")
	}
	if err := c.Invalidate(ctx); err != nil {
		t.Fatalf("empty Invalidate: %v", err)
	}
	if gen, err := c.Generation(ctx, "XRO"); err != nil || gen != 1 {
		t.Fatalf("XRO generation=%d err=%v, want 1", gen, err)
	}
	if gen, err := c.Generation(ctx, "IBM"); err != nil || gen != 0 {
		t.Fatalf("IBM generation=%d err=%v, want 0", gen, err)
	}
}

func TestRedisValueCache_SetGenerations(t *testing.T) {
	c, mr := newTestCache(t, time.Minute)
	ctx := context.Background()

	gen, err := c.Generation(ctx, "XRO")
	if err != nil || gen != 0 {
		t.Fatalf("initial generation=%d err=%v", gen, err)
	}
	if err := c.Invalidate(ctx, "XRO"); err != nil {
		t.Fatalf("Invalidate: %v", err)
	}

	cases := []struct {
		name   string
		gen    int64
		stored bool
	}{
		{name: "generation read before invalidate", gen: gen, stored: false},
		{name: "current generation", gen: gen + 1, stored: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mr.Del("stockvalue:XRO")
			stored, err := c.Set(ctx, "XRO", tc.gen, decimal.NewFromInt(20))
			if err != nil {
				t.Fatalf("Set: %v", err)
			}
			if stored != tc.stored || mr.Exists("stockvalue:XRO") != tc.stored {
				t.Fatalf("stored=%v exists=%v, want %v", stored, mr.Exists("stockvalue:XRO"), tc.stored)
			}
		})
	}

	if ttl := mr.TTL("stockvalue:XRO"); ttl <= 0 || ttl > time.Minute {
		t.Fatalf("unexpected ttl %v", ttl)
	}
}

func TestRedisValueCache_TTL(t *testing.T) {
	c, mr := newTestCache(t, time.Second)
	ctx := context.Background()

	_, _ = c.Set(ctx, "XRO", 0, decimal.NewFromInt(30))
	mr.FastForward(2 * time.Second)

	if _, ok, _ := c.Get(ctx, "XRO"); ok {
		t.Fatalf("expected entry to expire")
	}
}

func TestRedisValueCache_CorruptValue(t *testing.T) {
	c, mr := newTestCache(t, 0)
	if err := mr.Set("stockvalue:XRO", "not-a-number"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, ok, err := c.Get(context.Background(), "XRO"); err == nil || ok {
		t.Fatalf("expected decode error, got ok=%v err=%v", ok, err)
	}
}

func TestRedisValueCache_ServerDown(t *testing.T) {
	c, mr := newTestCache(t, 0)
	mr.Close()
	ctx := context.Background()

	if _, _, err := c.Get(ctx, "XRO"); err == nil {
		t.Fatalf("expected Get error with server down")
	}
	if _, err := c.Generation(ctx, "XRO"); err == nil {
		t.Fatalf("expected Generation error with server down")
	}
	if _, err := c.Set(ctx, "XRO", 0, decimal.NewFromInt(1)); err == nil {
		t.Fatalf("expected Set error with server down")
	}
	if err := c.Invalidate(ctx, "XRO"); err == nil {
		t.Fatalf("expected Invalidate error with server down")
	}
}
