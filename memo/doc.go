// Package memo wraps checked functions with per-argument caching.
//
// Memoize is not just a utility to avoid recomputation.
// Memoize is a tool that *forces the developer to ask*:
//
//	→ "Is this function really pure?"
//	→ "Can this computation be treated as a lazy table?"
//
// The Memoize0 through Memoize4 constructors take an fn.FnN and return
// a function of the same shape and the same observable behavior,
// except that the underlying computation runs at most once per
// distinct argument tuple. Racing callers for the same tuple block on
// the first caller's computation and share its outcome rather than
// recomputing.
//
// Outcomes are cached, failures included: whatever (value, error) the
// first computation for a tuple produced is replayed to every later
// caller with an equal tuple. A memoized function therefore performs
// its side effects exactly once per distinct tuple, never on a cache
// hit.
//
// Each memoized function value owns its cache; the cache is dropped
// with it. The cache is unbounded — there is no expiry or eviction.
// Do not memoize functions whose arguments form an unbounded key
// space unless the process lifetime is bounded too.
//
// MemoizeN requires comparable argument types because the argument
// tuple is the cache key. For argument types that are not comparable,
// ByKeyN lets the caller derive a string key instead.
//
// An optional Observer receives hit/miss/coalesce events, including
// the time span of each computation; NewZapObserver adapts a
// zap.Logger into one.
//
// WARNING: Do not memoize impure functions (e.g., those depending on
// time, I/O, etc).
package memo
