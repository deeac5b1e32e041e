package playback

import (
	"time"

	"k8s.io/utils/clock"

	"github.com/katalvlaran/graphwalk/core"
)

// DefaultInterval is the delay between two ticks.
const DefaultInterval = 700 * time.Millisecond

// Sequence yields steps one at a time. dfs.Walker and bfs.Walker satisfy it.
type Sequence interface {
	Next() (core.Step, bool)
}

// sliceSequence adapts a precomputed step list.
type sliceSequence struct {
	steps []core.Step
	pos   int
}

// Steps returns a Sequence over a fixed slice. The slice is not copied.
func Steps(steps []core.Step) Sequence {
	return &sliceSequence{steps: steps}
}

func (s *sliceSequence) Next() (core.Step, bool) {
	if s.pos >= len(s.steps) {
		return core.Step{}, false
	}
	st := s.steps[s.pos]
	s.pos++

	return st, true
}

// Option configures a Player.
type Option func(*Options)

// Options holds Player configuration.
type Options struct {
	Clock      clock.WithTicker
	Interval   time.Duration
	OnStep     func(core.Step)
	OnComplete func(result string)
}

// DefaultOptions returns the real clock, DefaultInterval and no-op handlers.
func DefaultOptions() Options {
	return Options{
		Clock:      clock.RealClock{},
		Interval:   DefaultInterval,
		OnStep:     func(core.Step) {},
		OnComplete: func(string) {},
	}
}

// WithClock injects the time source used by Run.
func WithClock(c clock.WithTicker) Option {
	return func(o *Options) {
		if c != nil {
			o.Clock = c
		}
	}
}

// WithInterval sets the tick period. Non-positive values are ignored.
func WithInterval(d time.Duration) Option {
	return func(o *Options) {
		if d > 0 {
			o.Interval = d
		}
	}
}

// OnStep installs the per-step handler.
func OnStep(fn func(core.Step)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// OnComplete installs the completion handler.
func OnComplete(fn func(result string)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnComplete = fn
		}
	}
}
