package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Compile-time interface check.
var _ Store = (*RedisStore)(nil)

// casScript swaps the stored record only when it still matches the expected
// value. An empty expected value means the key must not exist.
var casScript = redis.NewScript(`
local cur = redis.call('GET', KEYS[1])
if (cur == false and ARGV[1] == '') or cur == ARGV[1] then
    redis.call('SET', KEYS[1], ARGV[2], 'PX', ARGV[3])
    return 1
end
return 0
`)

// RedisStore keeps rate-limit records in redis. Keys carry a TTL of twice the
// window, so stale identities evict themselves.
type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, window time.Duration) *RedisStore {
	if window <= 0 {
		window = DefaultWindow
	}
	return &RedisStore{
		client: client,
		prefix: "tradeops:ratelimit:",
		ttl:    2 * window,
	}
}

func (s *RedisStore) Get(ctx context.Context, identity string) (Record, error) {
	val, err := s.client.Get(ctx, s.prefix+identity).Result()
	if err == redis.Nil {
		return Record{}, nil
	}
	if err != nil {
		return Record{}, fmt.Errorf("ratelimit redis get: %w", err)
	}
	return decodeRecord(val)
}

func (s *RedisStore) CompareAndSwap(ctx context.Context, identity string, old, next Record) (bool, error) {
	res, err := casScript.Run(ctx, s.client,
		[]string{s.prefix + identity},
		encodeRecord(old), encodeRecord(next), s.ttl.Milliseconds(),
	).Int()
	if err != nil {
		return false, fmt.Errorf("ratelimit redis cas: %w", err)
	}
	return res == 1, nil
}

func encodeRecord(rec Record) string {
	if rec.IsZero() {
		return ""
	}
	return fmt.Sprintf("%d:%d", rec.WindowStart.UnixMilli(), rec.Count)
}

func decodeRecord(val string) (Record, error) {
	start, count, ok := strings.Cut(val, ":")
	if !ok {
		return Record{}, fmt.Errorf("ratelimit: malformed record %q", val)
	}
	ms, err := strconv.ParseInt(start, 10, 64)
	if err != nil {
		return Record{}, fmt.Errorf("ratelimit: malformed record %q", val)
	}
	n, err := strconv.Atoi(count)
	if err != nil {
		return Record{}, fmt.Errorf("ratelimit: malformed record %q", val)
	}
	return Record{WindowStart: time.UnixMilli(ms), Count: n}, nil
}
