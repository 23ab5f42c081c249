// Package engine implements the profile summarization pipeline: keyword
// extraction, duration math, skill-experience aggregation, role
// classification, narrative composition, and template-based project text
// generation. All operations are synchronous pure functions over their
// inputs, except that ongoing-project durations read the injected clock and
// template rendering draws from the injected random source.
package engine

import (
	"math/rand"
	"time"
)

// DefaultTopSkills caps the skill-experience breakdown length.
const DefaultTopSkills = 15

// Engine evaluates profiles. The zero value is not usable; construct with
// New.
type Engine struct {
	now  func() time.Time
	intn func(n int) int
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock injects the time source used for ongoing-project durations.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// WithRand injects the random source used for template selection.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) {
		if r != nil {
			e.intn = r.Intn
		}
	}
}

// New constructs an Engine with the wall clock and a time-seeded random
// source unless overridden.
func New(opts ...Option) *Engine {
	e := &Engine{
		now:  time.Now,
		intn: rand.New(rand.NewSource(time.Now().UnixNano())).Intn,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}
