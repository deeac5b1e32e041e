package playback_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	testingclock "k8s.io/utils/clock/testing"

	"github.com/katalvlaran/graphwalk/core"
	"github.com/katalvlaran/graphwalk/playback"
)

// recorder collects handler invocations.
type recorder struct {
	mu      sync.Mutex
	steps   []core.Step
	results []string
}

func (r *recorder) onStep(s core.Step) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.steps = append(r.steps, s)
}

func (r *recorder) onComplete(res string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results = append(r.results, res)
}

func (r *recorder) counts() (int, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.steps), len(r.results)
}

func threeSteps() []core.Step {
	return []core.Step{
		{Edge: 1, From: 1, To: 2, Weight: 1},
		{Edge: 2, From: 2, To: 3, Weight: 2},
		{Edge: 4, From: 3, To: 4, Weight: 1},
	}
}

func TestPlayer_TickOrder(t *testing.T) {
	rec := &recorder{}
	p := playback.New(playback.Steps(threeSteps()), "DONE",
		playback.OnStep(rec.onStep), playback.OnComplete(rec.onComplete))

	for i := 0; i < 3; i++ {
		assert.False(t, p.Tick(), "tick %d", i)
	}
	assert.True(t, p.Tick())
	assert.True(t, p.Tick(), "ticks after completion are no-ops")

	assert.Equal(t, threeSteps(), rec.steps)
	assert.Equal(t, []string{"DONE"}, rec.results)
	assert.Equal(t, 3, p.Emitted())
	assert.True(t, p.Done())
	assert.False(t, p.Stopped())
}

func TestPlayer_EmptySequenceCompletesOnFirstTick(t *testing.T) {
	rec := &recorder{}
	p := playback.New(playback.Steps(nil), "B=1", playback.OnComplete(rec.onComplete))
	assert.Equal(t, 1, p.Drain())
	assert.Equal(t, []string{"B=1"}, rec.results)
}

func TestPlayer_StopSuppressesCompletion(t *testing.T) {
	for k := 0; k <= 3; k++ {
		rec := &recorder{}
		p := playback.New(playback.Steps(threeSteps()), "DONE",
			playback.OnStep(rec.onStep), playback.OnComplete(rec.onComplete))
		for i := 0; i < k; i++ {
			p.Tick()
		}
		p.Stop()
		p.Stop()
		p.Tick()
		p.Tick()

		steps, results := rec.counts()
		assert.Equal(t, k, steps, "k=%d", k)
		assert.Zero(t, results, "k=%d", k)
		assert.True(t, p.Stopped())
	}
}

func TestPlayer_RunWithFakeClock(t *testing.T) {
	fc := testingclock.NewFakeClock(time.Unix(0, 0))
	rec := &recorder{}
	p := playback.New(playback.Steps(threeSteps()), "DONE",
		playback.WithClock(fc),
		playback.OnStep(rec.onStep), playback.OnComplete(rec.onComplete))

	errCh := make(chan error, 1)
	go func() { errCh <- p.Run(context.Background()) }()

	for i := 1; i <= 4; i++ {
		require.Eventually(t, fc.HasWaiters, time.Second, time.Millisecond)
		fc.Step(playback.DefaultInterval)
		want := i
		if want > 3 {
			want = 3
		}
		require.Eventually(t, func() bool {
			s, _ := rec.counts()
			return s == want
		}, time.Second, time.Millisecond)
	}

	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after completion")
	}
	_, results := rec.counts()
	assert.Equal(t, 1, results)
}

func TestPlayer_RunStops(t *testing.T) {
	fc := testingclock.NewFakeClock(time.Unix(0, 0))
	rec := &recorder{}
	p := playback.New(playback.Steps(threeSteps()), "DONE",
		playback.WithClock(fc), playback.WithInterval(time.Second),
		playback.OnStep(rec.onStep), playback.OnComplete(rec.onComplete))

	errCh := make(chan error, 1)
	go func() { errCh <- p.Run(context.Background()) }()

	require.Eventually(t, fc.HasWaiters, time.Second, time.Millisecond)
	fc.Step(time.Second)
	require.Eventually(t, func() bool { s, _ := rec.counts(); return s == 1 }, time.Second, time.Millisecond)

	p.Stop()
	require.NoError(t, <-errCh)
	fc.Step(10 * time.Second)

	steps, results := rec.counts()
	assert.Equal(t, 1, steps)
	assert.Zero(t, results)
}

func TestPlayer_RunContextCancelled(t *testing.T) {
	fc := testingclock.NewFakeClock(time.Unix(0, 0))
	p := playback.New(playback.Steps(threeSteps()), "DONE", playback.WithClock(fc))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, p.Run(ctx), context.Canceled)
	assert.Zero(t, p.Emitted())
}
