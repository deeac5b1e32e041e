package core

import "strings"

// Step is one discovery step: the traversal of Edge from an already reached
// vertex to a newly reached one. It is the unit of playback.
type Step struct {
	Edge   EdgeID
	From   VertexID
	To     VertexID
	Weight int64
}

// traceSeparator joins labels in traversal result strings.
const traceSeparator = " -> "

// FormatTrace renders a traversal result: "<algo> : <start>" followed by
// " -> l1 -> l2 ..." when labels is non-empty.
func FormatTrace(algo, start string, labels []string) string {
	var b strings.Builder
	b.WriteString(algo)
	b.WriteString(" : ")
	b.WriteString(start)
	for _, l := range labels {
		b.WriteString(traceSeparator)
		b.WriteString(l)
	}

	return b.String()
}

// DestinationLabels maps steps to the labels of their destination vertices.
func (g *Graph) DestinationLabels(steps []Step) []string {
	out := make([]string, 0, len(steps))
	for _, s := range steps {
		out = append(out, g.MustLabel(s.To))
	}

	return out
}
