package cache

import (
	"sync"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/singleflight"
)

type outcome[V any] struct {
	val V
	err error
}

type shard[V any] struct {
	mu    sync.RWMutex
	store map[string]outcome[V]
}

// Keyed is an unbounded concurrent compute-once table keyed by caller
// supplied strings. Storage is sharded by key hash; in-flight
// computations are coalesced per key via singleflight.
type Keyed[V any] struct {
	group  singleflight.Group
	shards []*shard[V]
}

// NewKeyed returns an empty table with the given number of shards.
func NewKeyed[V any](numShards int) *Keyed[V] {
	if numShards <= 0 {
		panic("cache: numShards should be greater than 0")
	}
	shards := make([]*shard[V], numShards)
	for i := range shards {
		shards[i] = &shard[V]{store: make(map[string]outcome[V])}
	}
	return &Keyed[V]{shards: shards}
}

func (k *Keyed[V]) shardOf(key string) *shard[V] {
	if len(k.shards) == 1 {
		return k.shards[0]
	}
	return k.shards[xxhash.Sum64String(key)%uint64(len(k.shards))]
}

// GetOrCompute returns the outcome for key, running compute at most
// once per key. Outcomes are cached errors included, so a failing
// computation is not retried on later calls with an equal key.
func (k *Keyed[V]) GetOrCompute(key string, compute func() (V, error)) (V, error, Outcome) {
	sh := k.shardOf(key)

	// Fast path: already cached.
	sh.mu.RLock()
	if out, ok := sh.store[key]; ok {
		sh.mu.RUnlock()
		return out.val, out.err, Hit
	}
	sh.mu.RUnlock()

	// Slow path: singleflight dedup.
	computed := false
	res, _, shared := k.group.Do(key, func() (any, error) {
		// Double-check: another goroutine may have cached while we
		// waited on the flight group.
		sh.mu.RLock()
		if out, ok := sh.store[key]; ok {
			sh.mu.RUnlock()
			return out, nil
		}
		sh.mu.RUnlock()

		val, err := compute()
		out := outcome[V]{val: val, err: err}

		sh.mu.Lock()
		sh.store[key] = out
		sh.mu.Unlock()

		computed = true
		return out, nil
	})

	out := res.(outcome[V])
	switch {
	case computed:
		return out.val, out.err, Computed
	case shared:
		return out.val, out.err, Coalesced
	default:
		return out.val, out.err, Hit
	}
}
