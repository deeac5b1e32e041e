package session

import (
	"sync"

	"github.com/google/uuid"

	"github.com/katalvlaran/graphwalk/core"
	"github.com/katalvlaran/graphwalk/playback"
)

// Run is one execution of an algorithm.
type Run struct {
	ID        uuid.UUID
	Algorithm Algorithm

	mu        sync.Mutex
	state     State
	start     core.VertexID
	result    string
	events    chan Event
	player    *playback.Player
	closeOnce sync.Once
}

func newRun(a Algorithm) *Run {
	return &Run{ID: uuid.New(), Algorithm: a, state: StateSelectStart}
}

// State returns the current lifecycle state.
func (r *Run) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.state
}

// Start returns the chosen start vertex, or zero before PickStart.
func (r *Run) Start() core.VertexID {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.start
}

// Result returns the result string. It is set when the run starts playing
// and is shown once the run terminates.
func (r *Run) Result() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.result
}

// DisplayText returns the text shown for the current state.
func (r *Run) DisplayText() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.displayTextLocked()
}

func (r *Run) displayTextLocked() string {
	switch r.state {
	case StateSelectStart:
		return selectStartText
	case StateRunning:
		return runningText
	case StateTerminated:
		return r.result
	}

	return ""
}

// Events returns the channel of playback events. It exists once the start
// vertex has been picked; before that, and for runs stopped in SelectStart,
// a closed channel is returned. The channel is closed when the run ends.
func (r *Run) Events() <-chan Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.events == nil {
		ch := make(chan Event)
		close(ch)

		return ch
	}

	return r.events
}

// transition moves the run to st and returns the matching event. Callers
// hold r.mu.
func (r *Run) transitionLocked(st State) Event {
	r.state = st

	return Event{Kind: StateChanged, Run: r, State: st, Text: r.displayTextLocked()}
}

// publish sends ev on the events channel. The channel is sized so that
// sends never block.
func (r *Run) publish(ev Event) {
	r.mu.Lock()
	ch := r.events
	r.mu.Unlock()
	if ch != nil {
		ch <- ev
	}
}

func (r *Run) closeEvents() {
	r.closeOnce.Do(func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		if r.events != nil {
			close(r.events)
		}
	})
}
