package memo

import "github.com/rickb777/date/v2/timespan"

// Observer receives memoizer lifecycle events. Implementations must be
// safe for concurrent use when the memoized function is called from
// multiple goroutines.
type Observer interface {
	On(eventData EventData)
}

// Event represents a memoizer event type.
type Event int

const (
	// EventHit is emitted when a call finds a cached outcome.
	EventHit Event = iota
	// EventMiss is emitted when a call runs the source computation.
	EventMiss
	// EventCoalesced is emitted when a caller blocks on another
	// caller's in-flight computation and shares its outcome.
	EventCoalesced
)

// EventData carries the details of a memoizer event.
type EventData struct {
	Event Event
	// MemoID identifies the memoized function value the event belongs to.
	MemoID string
	// Key is the rendered argument tuple. It is for observability only
	// and plays no role in cache identity.
	Key string
	// Span is the time span of the source computation. It is the zero
	// span except on EventMiss.
	Span timespan.TimeSpan
}
