package playback

import (
	"context"
	"sync"
)

// Player replays one sequence of steps.
type Player struct {
	mu       sync.Mutex
	seq      Sequence
	result   string
	opts     Options
	emitted  int
	done     bool
	stopped  bool
	stopOnce sync.Once
	stopCh   chan struct{}
}

// New creates a Player for seq. result is delivered on completion.
func New(seq Sequence, result string, opts ...Option) *Player {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if seq == nil {
		seq = Steps(nil)
	}

	return &Player{
		seq:    seq,
		result: result,
		opts:   o,
		stopCh: make(chan struct{}),
	}
}

// Tick performs one cadence unit and reports whether playback is over.
// It emits the next step, or completes when the sequence is exhausted.
// After completion or Stop it does nothing and returns true.
func (p *Player) Tick() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.done || p.stopped {
		return true
	}
	if s, ok := p.seq.Next(); ok {
		p.emitted++
		p.opts.OnStep(s)

		return false
	}
	p.done = true
	p.opts.OnComplete(p.result)

	return true
}

// Run ticks every interval until playback completes, Stop is called, or ctx
// is done. It returns ctx.Err() in the last case and nil otherwise.
func (p *Player) Run(ctx context.Context) error {
	if p.Done() || p.Stopped() {
		return nil
	}
	ticker := p.opts.Clock.NewTicker(p.opts.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-p.stopCh:
			return nil
		case <-ticker.C():
			if p.Tick() {
				return nil
			}
		}
	}
}

// Stop cancels playback. It is idempotent. Once Stop returns, neither handler
// will be invoked again.
func (p *Player) Stop() {
	p.mu.Lock()
	p.stopped = true
	p.mu.Unlock()
	p.stopOnce.Do(func() { close(p.stopCh) })
}

// Emitted returns how many steps have been handed to OnStep.
func (p *Player) Emitted() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.emitted
}

// Done reports whether the completion handler has run.
func (p *Player) Done() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.done
}

// Stopped reports whether Stop was called before completion.
func (p *Player) Stopped() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.stopped && !p.done
}

// Drain ticks synchronously until playback is over and returns the number of
// ticks taken. Useful when no cadence is wanted.
func (p *Player) Drain() int {
	n := 0
	for {
		n++
		if p.Tick() {
			return n
		}
	}
}
