package credential

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrNoKeys is returned by Acquire when the ring was built without any keys.
var ErrNoKeys = errors.New("no api keys configured")

const (
	keyUsePrefix    = "credential:keyuse:"
	keyUseTTL       = 24 * time.Hour
	redisTimeout    = 150 * time.Millisecond
	failureCooldown = 2 * time.Minute
)

// KeyRing rotates vendor calls across a static pool of API keys, always
// handing out the least-used key. Auth failures sideline a key for a cooldown
// window. Use counts are mirrored to Redis so replicas converge on the same
// rotation; the in-process counters stay authoritative when Redis is down.
type KeyRing struct {
	mu      sync.Mutex
	keys    []string
	uses    []int64
	benched []time.Time

	cooldown time.Duration
	rdb      *redis.Client
	now      func() time.Time
}

// NewKeyRing builds a ring over the given keys. Blank entries are dropped.
// The Redis client is optional.
func NewKeyRing(keys []string, rdb *redis.Client) *KeyRing {
	clean := make([]string, 0, len(keys))
	for _, k := range keys {
		if k != "" {
			clean = append(clean, k)
		}
	}
	return &KeyRing{
		keys:     clean,
		uses:     make([]int64, len(clean)),
		benched:  make([]time.Time, len(clean)),
		cooldown: failureCooldown,
		rdb:      rdb,
		now:      time.Now,
	}
}

// Len reports how many keys the ring holds.
func (r *KeyRing) Len() int {
	return len(r.keys)
}

// Primary returns the first configured key, or "" when the ring is empty.
// The direct rung of the session ladder uses it to bypass rotation.
func (r *KeyRing) Primary() string {
	if len(r.keys) == 0 {
		return ""
	}
	return r.keys[0]
}

// Acquire returns the least-used key that is not sidelined and counts the
// use. Ties keep configuration order. When every key is sidelined the
// least-used key is returned anyway so the caller can still try the vendor.
func (r *KeyRing) Acquire(ctx context.Context) (string, error) {
	if len(r.keys) == 0 {
		return "", ErrNoKeys
	}
	shared := r.fetchShared(ctx)

	r.mu.Lock()
	now := r.now()
	idx := r.pick(now, shared, false)
	if idx < 0 {
		idx = r.pick(now, shared, true)
	}
	r.uses[idx]++
	key := r.keys[idx]
	r.mu.Unlock()

	r.mirrorUse(ctx, key)
	return key, nil
}

// MarkFailure sidelines a key for the cooldown window. Unknown keys are
// ignored.
func (r *KeyRing) MarkFailure(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, k := range r.keys {
		if k == key {
			r.benched[i] = r.now().Add(r.cooldown)
			return
		}
	}
}

func (r *KeyRing) pick(now time.Time, shared []int64, includeBenched bool) int {
	best := -1
	var bestCount int64
	for i := range r.keys {
		if !includeBenched && now.Before(r.benched[i]) {
			continue
		}
		count := r.uses[i]
		if shared != nil && shared[i] > count {
			count = shared[i]
		}
		if best < 0 || count < bestCount {
			best = i
			bestCount = count
		}
	}
	return best
}

// fetchShared reads the mirrored counters. Any Redis problem returns nil and
// the local counters decide alone.
func (r *KeyRing) fetchShared(ctx context.Context) []int64 {
	if r.rdb == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, redisTimeout)
	defer cancel()

	fields := make([]string, len(r.keys))
	for i, k := range r.keys {
		fields[i] = keyUsePrefix + Fingerprint(k)
	}
	vals, err := r.rdb.MGet(ctx, fields...).Result()
	if err != nil || len(vals) != len(r.keys) {
		return nil
	}
	out := make([]int64, len(r.keys))
	for i, v := range vals {
		if s, ok := v.(string); ok {
			if n, err := strconv.ParseInt(s, 10, 64); err == nil {
				out[i] = n
			}
		}
	}
	return out
}

// mirrorUse bumps the shared counter for a key. Best effort only.
func (r *KeyRing) mirrorUse(ctx context.Context, key string) {
	if r.rdb == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, redisTimeout)
	defer cancel()

	field := keyUsePrefix + Fingerprint(key)
	pipe := r.rdb.Pipeline()
	pipe.Incr(ctx, field)
	pipe.Expire(ctx, field, keyUseTTL)
	_, _ = pipe.Exec(ctx)
}

// Fingerprint derives a short stable identifier for a key so raw secrets
// never appear in Redis or logs.
func Fingerprint(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])[:12]
}
