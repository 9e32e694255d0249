package middleware

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// IdempotencyTTL is how long a response stays paired to its idempotency key.
const IdempotencyTTL = 24 * time.Hour

const redisIdemPrefix = "hackathons:idem:"

var (
	_ IdempotencyCacher = (*IdemResMap)(nil)
	_ IdempotencyCacher = IdemResRedis{}
)

// An IdempotencyCacher can store responses paired to idempotency keys.
//
// Get reports false when key is paired to nothing.
type IdempotencyCacher interface {
	Get(ctx context.Context, key string) (IdemRes, bool)
	Set(ctx context.Context, key string, idemRes IdemRes)
}

// An IdemResMap keeps IdemRes in memory, so a restart forgets them.
// It serves a single process and is meant for development.
type IdemResMap struct {
	mu   sync.Mutex
	ttl  time.Duration
	vals map[string]idemResMapVal
}

type idemResMapVal struct {
	IdemRes

	at time.Time
}

// NewIdemResMap constructs an empty *IdemResMap whose entries expire after IdempotencyTTL.
func NewIdemResMap() *IdemResMap { return NewIdemResMapTTL(IdempotencyTTL) }

// NewIdemResMapTTL constructs an empty *IdemResMap whose entries expire after ttl.
func NewIdemResMapTTL(ttl time.Duration) *IdemResMap {
	return &IdemResMap{ttl: ttl, vals: make(map[string]idemResMapVal)}
}

// Get retrieves the IdemRes paired to key, unless it expired.
func (m *IdemResMap) Get(ctx context.Context, key string) (IdemRes, bool) {
	if key == "" || ctx.Err() != nil {
		return IdemRes{}, false
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.vals[key]
	if !ok || m.expired(v) {
		return IdemRes{}, false
	}

	return v.IdemRes, true
}

// Len reports how many keys are held, expired or not.
func (m *IdemResMap) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.vals)
}

// Set pairs idemRes to key, evicting every expired key along the way.
func (m *IdemResMap) Set(ctx context.Context, key string, idemRes IdemRes) {
	if ctx.Err() != nil {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for k, v := range m.vals {
		if m.expired(v) {
			delete(m.vals, k)
		}
	}

	m.vals[key] = idemResMapVal{IdemRes: idemRes, at: time.Now()}
}

func (m *IdemResMap) expired(v idemResMapVal) bool {
	return time.Since(v.at) > m.ttl
}

// An IdemResRedis keeps IdemRes in Redis, shared by every instance of the front.
// Keys are namespaced under "hackathons:idem:" and expire after IdempotencyTTL.
type IdemResRedis struct {
	client *redis.Client
}

// NewRedisCache constructs an IdemResRedis with the options passed in.
func NewRedisCache(opts *redis.Options) IdemResRedis {
	return IdemResRedis{client: redis.NewClient(opts)}
}

// Get retrieves the IdemRes paired to key.
// Anything Redis fails at, or holds undecodable, counts as absent.
func (c IdemResRedis) Get(ctx context.Context, key string) (IdemRes, bool) {
	if key == "" || ctx.Err() != nil {
		return IdemRes{}, false
	}

	b, err := c.client.Get(ctx, redisIdemPrefix+key).Bytes()
	if err != nil {
		return IdemRes{}, false
	}

	var ir IdemRes
	if err := ir.GobDecode(b); err != nil {
		return IdemRes{}, false
	}

	return ir, true
}

// Set pairs idemRes to key in Redis.
func (c IdemResRedis) Set(ctx context.Context, key string, idemRes IdemRes) {
	if ctx.Err() != nil {
		return
	}

	b, err := idemRes.GobEncode()
	if err != nil {
		return
	}

	c.client.Set(ctx, redisIdemPrefix+key, b, IdempotencyTTL)
}
