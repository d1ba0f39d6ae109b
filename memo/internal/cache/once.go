// Package cache holds the concurrent compute-once tables backing the
// memo package. A table serializes computation per key: racing callers
// for the same key block on the first caller's outcome instead of
// recomputing.
package cache

import "sync"

// Outcome reports how a GetOrCompute call was satisfied.
type Outcome int

const (
	// Computed means this caller ran the compute function.
	Computed Outcome = iota
	// Hit means the outcome was already cached.
	Hit
	// Coalesced means the caller blocked on another caller's
	// in-flight computation and shares its outcome.
	Coalesced
)

type call[V any] struct {
	done     chan struct{}
	val      V
	err      error
	panicked any
}

// Once is an unbounded concurrent compute-once table keyed by a
// comparable key. Entries live for the lifetime of the table; there is
// no expiry or eviction.
type Once[K comparable, V any] struct {
	mu    sync.Mutex
	calls map[K]*call[V]
}

// NewOnce returns an empty table.
func NewOnce[K comparable, V any]() *Once[K, V] {
	return &Once[K, V]{calls: make(map[K]*call[V])}
}

// GetOrCompute returns the outcome for key, running compute at most
// once per key for the lifetime of the table. Whatever compute
// produced, value or error, is replayed to every later caller with an
// equal key. A panic inside compute is replayed to waiters as well.
func (o *Once[K, V]) GetOrCompute(key K, compute func() (V, error)) (V, error, Outcome) {
	o.mu.Lock()
	if c, ok := o.calls[key]; ok {
		o.mu.Unlock()
		return wait(c)
	}
	c := &call[V]{done: make(chan struct{})}
	o.calls[key] = c
	o.mu.Unlock()

	panicked := true
	defer func() {
		if panicked {
			c.panicked = recover()
			close(c.done)
			panic(c.panicked)
		}
		close(c.done)
	}()
	c.val, c.err = compute()
	panicked = false

	return c.val, c.err, Computed
}

// Len reports the number of keys ever computed or in flight.
func (o *Once[K, V]) Len() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.calls)
}

func wait[V any](c *call[V]) (V, error, Outcome) {
	outcome := Hit
	select {
	case <-c.done:
	default:
		outcome = Coalesced
		<-c.done
	}
	if c.panicked != nil {
		panic(c.panicked)
	}
	return c.val, c.err, outcome
}
