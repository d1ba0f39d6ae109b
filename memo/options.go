package memo

const defaultNumShards = 8

type config struct {
	observer  Observer
	numShards int
}

func newConfig(opts []Option) config {
	cfg := config{numShards: defaultNumShards}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Option configures a memoized function at construction time.
type Option func(*config)

// WithObserver attaches an Observer that receives hit, miss, and
// coalesce events for the lifetime of the memoized function.
func WithObserver(o Observer) Option {
	return func(cfg *config) {
		cfg.observer = o
	}
}

// WithNumShards sets the shard count of the string-keyed cache used by
// the ByKey constructors. It has no effect on MemoizeN. Panics at
// construction if n is not positive.
func WithNumShards(n int) Option {
	return func(cfg *config) {
		cfg.numShards = n
	}
}
