package engine

import (
	"qwixx/metrics"

	"golang.org/x/exp/rand"
)

type Option func(e *Engine)

// WithSeed makes dice rolls and shuffling reproducible.
func WithSeed(seed uint64) Option {
	return func(e *Engine) {
		e.rng = rand.New(rand.NewSource(seed))
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) {
		if rng != nil {
			e.rng = rng
		}
	}
}

// WithSharedLocks gives every board the same locked-color set, so a row locked by
// one player is closed for everyone.
func WithSharedLocks() Option {
	return func(e *Engine) {
		e.sharedLocks = true
	}
}

// WithShuffledOrder plays in a random order instead of registration order.
func WithShuffledOrder() Option {
	return func(e *Engine) {
		e.shuffle = true
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(e *Engine) {
		if collector != nil {
			e.metrics = collector
		}
	}
}
