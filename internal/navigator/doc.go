// Package navigator owns the learner's current selection and walks it through
// the mitotic phases.
//
// A [Navigator] is a small state machine with two play states, Idle and
// Playing. Stepping wraps around the phase cycle in both directions, and
// autoplay advances one phase per period through a host-provided [Scheduler].
// Every successful mutation recomputes the quantity statistics and notifies
// observers exactly once before the call returns.
//
// # Thread Safety
//
// Navigator instances are NOT thread-safe. All calls, including scheduled
// autoplay ticks, must be delivered on a single event loop: the bubbletea
// update loop in the TUI, or a [Loop] for headless hosts.
package navigator
