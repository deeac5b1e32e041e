// Package session drives one graph through edit modes and algorithm runs.
//
// A Session owns a core.Graph, the current edit Mode and at most one active
// Run. Starting an algorithm switches the mode to None and opens a Run in
// SelectStart; picking a start vertex computes the engine result, moves the
// run to Running and plays its steps back on a separate goroutine. A run
// ends Terminated when playback completes, or Stopped when the mode changes
// or Stop is called first.
//
// Transitions caused by a call are returned by that call as Events.
// Transitions caused by playback (steps, termination) are delivered on the
// run's Events channel, which is closed when the run ends.
//
// Edit operations are accepted only in their own mode, so the graph cannot
// be edited while a run is active.
package session
