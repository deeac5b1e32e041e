// Package playback turns an engine's discovery steps into a timed sequence of
// observable events.
//
// A Player owns a step source and a result string. Each Tick either hands one
// step to the OnStep handler or, once the source is exhausted, hands the
// result to the OnComplete handler exactly once. Run drives Tick from a
// ticker of an injectable clock (k8s.io/utils/clock), so tests can advance
// time by hand with a fake clock. Stop cancels playback: after it returns no
// further handler is invoked, and a stopped player never completes.
//
// Concurrency: Tick, Stop and the accessors are safe to call from any
// goroutine. Handlers run while the player's lock is held; they must not call
// back into the same Player.
package playback
