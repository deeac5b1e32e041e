// Package render prints session events and graph snapshots to a terminal.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/graphwalk/core"
	"github.com/katalvlaran/graphwalk/session"
)

// Palette. Selected items use the accent, visited vertices the secondary.
var (
	ColorAccent    = lipgloss.Color("#2CD7C7")
	ColorSecondary = lipgloss.Color("#1D9EA3")
	ColorMuted     = lipgloss.Color("#2C4A54")
	ColorWarning   = lipgloss.Color("#F4D03F")
	ColorError     = lipgloss.Color("#E74C3C")
)

// Styles groups the lipgloss styles used by a Printer.
type Styles struct {
	Mode     lipgloss.Style
	Status   lipgloss.Style
	Result   lipgloss.Style
	Step     lipgloss.Style
	Stopped  lipgloss.Style
	Selected lipgloss.Style
	Visited  lipgloss.Style
	Muted    lipgloss.Style
	Error    lipgloss.Style
	Box      lipgloss.Style
}

// DefaultStyles returns the colored style set.
func DefaultStyles() Styles {
	return Styles{
		Mode:     lipgloss.NewStyle().Foreground(ColorSecondary),
		Status:   lipgloss.NewStyle().Bold(true),
		Result:   lipgloss.NewStyle().Bold(true).Foreground(ColorAccent),
		Step:     lipgloss.NewStyle().Foreground(ColorAccent),
		Stopped:  lipgloss.NewStyle().Foreground(ColorWarning),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(ColorAccent),
		Visited:  lipgloss.NewStyle().Foreground(ColorSecondary),
		Muted:    lipgloss.NewStyle().Foreground(ColorMuted),
		Error:    lipgloss.NewStyle().Foreground(ColorError),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorSecondary).
			Padding(0, 1),
	}
}

// PlainStyles returns styles that render text unchanged.
func PlainStyles() Styles {
	s := lipgloss.NewStyle()

	return Styles{s, s, s, s, s, s, s, s, s, s}
}

// Printer writes one line per event.
type Printer struct {
	w      io.Writer
	styles Styles
	boxed  bool
}

// NewPrinter returns a Printer writing to w. Snapshots are boxed only when
// boxed is true.
func NewPrinter(w io.Writer, styles Styles, boxed bool) *Printer {
	return &Printer{w: w, styles: styles, boxed: boxed}
}

// Event prints ev. It has the shape of script.Observer.
func (p *Printer) Event(ev session.Event) {
	var line string
	switch ev.Kind {
	case session.ModeChanged:
		line = p.styles.Mode.Render(ev.Text)
	case session.GraphCleared:
		line = p.styles.Muted.Render("graph cleared")
	case session.StepPlayed:
		line = p.styles.Muted.Render("  step ") + p.styles.Step.Render(ev.Text)
	case session.StateChanged:
		line = p.stateLine(ev)
	default:
		return
	}
	fmt.Fprintln(p.w, line)
}

func (p *Printer) stateLine(ev session.Event) string {
	tag := "[" + ev.Run.Algorithm.Tag() + "] "
	switch ev.State {
	case session.StateTerminated:
		return tag + p.styles.Result.Render(ev.Text)
	case session.StateStopped:
		return tag + p.styles.Stopped.Render("stopped")
	}

	return tag + p.styles.Status.Render(ev.Text)
}

// Error prints err in the error style.
func (p *Printer) Error(err error) {
	fmt.Fprintln(p.w, p.styles.Error.Render("error: "+err.Error()))
}

// Snapshot prints every vertex with its neighbors, marking selected and
// visited vertices and selected edges.
//
//	A* : B(1)* C(4)
//	B+ : A(1)* C(2)
//
// A trailing * marks selection, + a visited but unselected vertex.
func (p *Printer) Snapshot(snap core.Snapshot) {
	fmt.Fprintln(p.w, p.FormatSnapshot(snap))
}

// FormatSnapshot renders snap without writing it.
func (p *Printer) FormatSnapshot(snap core.Snapshot) string {
	byID := make(map[core.VertexID]core.VertexState, len(snap.Vertices))
	for _, vs := range snap.Vertices {
		byID[vs.ID] = vs
	}
	adj := make(map[core.VertexID][]core.EdgeState)
	for _, es := range snap.Edges {
		adj[es.From] = append(adj[es.From], es)
		adj[es.To] = append(adj[es.To], es)
	}

	lines := make([]string, 0, len(snap.Vertices))
	for _, vs := range snap.Vertices {
		var b strings.Builder
		b.WriteString(p.vertex(vs))
		b.WriteString(" :")
		for _, es := range adj[vs.ID] {
			other := es.To
			if other == vs.ID {
				other = es.From
			}
			b.WriteByte(' ')
			b.WriteString(p.edge(byID[other].Label, es))
		}
		lines = append(lines, b.String())
	}
	if len(lines) == 0 {
		lines = append(lines, p.styles.Muted.Render("(empty graph)"))
	}
	out := strings.Join(lines, "\n")
	if p.boxed {
		out = p.styles.Box.Render(out)
	}

	return out
}

func (p *Printer) vertex(vs core.VertexState) string {
	switch {
	case vs.Selected:
		return p.styles.Selected.Render(vs.Label + "*")
	case vs.Visited:
		return p.styles.Visited.Render(vs.Label + "+")
	}

	return vs.Label
}

func (p *Printer) edge(label string, es core.EdgeState) string {
	s := label + "(" + strconv.FormatInt(es.Weight, 10) + ")"
	if es.Selected {
		return p.styles.Selected.Render(s + "*")
	}

	return s
}
