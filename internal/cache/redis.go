package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const (
	keyPrefix = "stockvalue:"
	genPrefix = "stockgen:"
)

// ValueCache stores computed average prices keyed by ticker symbol.
//
// Every Invalidate bumps the symbol's generation. Set only stores a value
// computed under the generation the caller read before computing it, so a
// read that races a write cannot re-populate the entry with an old average.
type ValueCache interface {
	Get(ctx context.Context, symbol string) (decimal.Decimal, bool, error)
	Generation(ctx context.Context, symbol string) (int64, error)
	Set(ctx context.Context, symbol string, gen int64, value decimal.Decimal) (bool, error)
	Invalidate(ctx context.Context, symbols ...string) error
}

// setIfCurrent writes KEYS[1] only while the generation in KEYS[2] equals ARGV[1].
// ARGV[3] is the ttl in milliseconds; 0 keeps the entry until invalidated.
var setIfCurrent = redis.NewScript(`
local g = redis.call('GET', KEYS[2]) or '0'
if g ~= ARGV[1] then
  return 0
end
if tonumber(ARGV[3]) > 0 then
  redis.call('SET', KEYS[1], ARGV[2], 'PX', ARGV[3])
else
  redis.call('SET', KEYS[1], ARGV[2])
end
return 1
`)

// RedisValueCache keeps one string key per symbol holding the decimal value.
type RedisValueCache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ ValueCache = (*RedisValueCache)(nil)

// NewRedisValueCache creates a cache over client. A zero ttl keeps entries until invalidated.
func NewRedisValueCache(client *redis.Client, ttl time.Duration) *RedisValueCache {
	return &RedisValueCache{client: client, ttl: ttl}
}

func key(symbol string) string {
	return keyPrefix + symbol
}

func genKey(symbol string) string {
	return genPrefix + symbol
}

// Get returns the cached value for symbol. ok is false on a cache miss.
func (c *RedisValueCache) Get(ctx context.Context, symbol string) (decimal.Decimal, bool, error) {
	raw, err := c.client.Get(ctx, key(symbol)).Result()
	if errors.Is(err, redis.Nil) {
		return decimal.Decimal{}, false, nil
	}
	if err != nil {
		return decimal.Decimal{}, false, fmt.Errorf("redis get %s: %w", symbol, err)
	}

	v, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, false, fmt.Errorf("decode cached value for %s: %w", symbol, err)
	}
	return v, true, nil
}

// Generation returns the current invalidation counter of symbol, 0 if it was never invalidated.
func (c *RedisValueCache) Generation(ctx context.Context, symbol string) (int64, error) {
	gen, err := c.client.Get(ctx, genKey(symbol)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("redis get generation %s: %w", symbol, err)
	}
	return gen, nil
}

// Set caches value for symbol if symbol is still at generation gen.
// stored is false when an Invalidate happened in between.
func (c *RedisValueCache) Set(ctx context.Context, symbol string, gen int64, value decimal.Decimal) (bool, error) {
	n, err := setIfCurrent.Run(ctx, c.client,
		[]string{key(symbol), genKey(symbol)},
		strconv.FormatInt(gen, 10), value.String(), c.ttl.Milliseconds(),
	).Int()
	if err != nil {
		return false, fmt.Errorf("redis set %s: %w", symbol, err)
	}
	return n == 1, nil
}

// Invalidate drops the cached values of symbols and bumps their generations
// in one MULTI/EXEC block.
func (c *RedisValueCache) Invalidate(ctx context.Context, symbols ...string) error {
	if len(symbols) == 0 {
		return nil
	}
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, s := range symbols {
			pipe.Incr(ctx, genKey(s))
			pipe.Del(ctx, key(s))
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis invalidate: %w", err)
	}
	return nil
}
