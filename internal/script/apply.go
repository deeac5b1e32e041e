package script

import (
	"context"
	"fmt"

	"github.com/katalvlaran/graphwalk/core"
	"github.com/katalvlaran/graphwalk/internal/input"
	"github.com/katalvlaran/graphwalk/internal/logging"
	"github.com/katalvlaran/graphwalk/session"
)

// Observer receives every event produced while a script is applied.
type Observer func(session.Event)

// applier tracks script-local keys.
type applier struct {
	sess     *session.Session
	observe  Observer
	vertices map[string]core.VertexID
	edges    map[string]core.EdgeID
}

// Apply replays sc against sess. Edit steps switch to their mode first when
// needed. Start steps wait for the run to end unless wait is false; waiting
// ends early if ctx is cancelled, since the run's playback is bound to ctx.
func Apply(ctx context.Context, sess *session.Session, sc *Script, observe Observer) error {
	if observe == nil {
		observe = func(session.Event) {}
	}
	a := &applier{
		sess:     sess,
		observe:  observe,
		vertices: make(map[string]core.VertexID),
		edges:    make(map[string]core.EdgeID),
	}
	log := logging.FromContext(ctx)

	for i, st := range sc.Steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		log.Debug("applying script step", "index", i+1, "kind", string(st.Kind))
		if err := a.apply(ctx, st); err != nil {
			return fmt.Errorf("script: step %d (%s): %w", i+1, st.Kind, err)
		}
	}

	return nil
}

func (a *applier) emit(evs []session.Event) {
	for _, ev := range evs {
		a.observe(ev)
	}
}

func (a *applier) ensureMode(m session.Mode) {
	if a.sess.Mode() != m {
		a.emit(a.sess.SetMode(m))
	}
}

func (a *applier) vertex(key string) (core.VertexID, error) {
	v, ok := a.vertices[key]
	if !ok {
		return 0, fmt.Errorf("unknown vertex key %q", key)
	}

	return v, nil
}

func (a *applier) apply(ctx context.Context, st Step) error {
	switch st.Kind {
	case KindMode:
		m, err := session.ParseMode(st.Value)
		if err != nil {
			return err
		}
		a.emit(a.sess.SetMode(m))

	case KindReset:
		a.emit(a.sess.SetMode(session.ModeReset))
		clear(a.vertices)
		clear(a.edges)

	case KindVertex:
		if err := input.ValidateLabel(st.Label); err != nil {
			return err
		}
		if _, dup := a.vertices[st.Key]; dup {
			return fmt.Errorf("vertex key %q already used", st.Key)
		}
		a.ensureMode(session.ModeAddVertex)
		v, err := a.sess.AddVertex(st.Label)
		if err != nil {
			return err
		}
		a.vertices[st.Key] = v

	case KindEdge:
		w, err := input.ParseWeight(st.Weight)
		if err != nil {
			return err
		}
		from, err := a.vertex(st.From)
		if err != nil {
			return err
		}
		to, err := a.vertex(st.To)
		if err != nil {
			return err
		}
		a.ensureMode(session.ModeAddEdge)
		e, err := a.sess.AddEdge(from, to, w)
		if err != nil {
			return err
		}
		if st.Key != "" {
			a.edges[st.Key] = e
		}

	case KindRemoveVertex:
		v, err := a.vertex(st.Key)
		if err != nil {
			return err
		}
		a.ensureMode(session.ModeRemoveVertex)
		removed, err := a.sess.RemoveVertex(v)
		if err != nil {
			return err
		}
		delete(a.vertices, st.Key)
		for k, e := range a.edges {
			for _, r := range removed {
				if e == r {
					delete(a.edges, k)
				}
			}
		}

	case KindRemoveEdge:
		e, ok := a.edges[st.Key]
		if !ok {
			return fmt.Errorf("unknown edge key %q", st.Key)
		}
		a.ensureMode(session.ModeRemoveEdge)
		if err := a.sess.RemoveEdge(e); err != nil {
			return err
		}
		delete(a.edges, st.Key)

	case KindAlgorithm:
		alg, err := session.ParseAlgorithm(st.Value)
		if err != nil {
			return err
		}
		evs, err := a.sess.StartAlgorithm(alg)
		if err != nil {
			return err
		}
		a.emit(evs)

	case KindStart:
		v, err := a.vertex(st.Key)
		if err != nil {
			return err
		}
		evs, err := a.sess.PickStart(ctx, v)
		if err != nil {
			return err
		}
		a.emit(evs)
		if st.Waits() {
			for ev := range a.sess.Current().Events() {
				a.observe(ev)
			}
		}

	case KindStop:
		a.emit(a.sess.Stop())

	default:
		return fmt.Errorf("unknown kind %q", st.Kind)
	}

	return nil
}
