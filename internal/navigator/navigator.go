package navigator

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/san-kum/mitosim/internal/logging"
	"github.com/san-kum/mitosim/internal/mitosis"
)

// DefaultPeriod is the autoplay tick period.
const DefaultPeriod = 3000 * time.Millisecond

// State is the learner's current selection.
type State struct {
	CellType    mitosis.CellType    `yaml:"cell_type" json:"cell_type"`
	Composition mitosis.Composition `yaml:"composition" json:"composition"`
	Phase       mitosis.Phase       `yaml:"phase" json:"phase"`
}

func DefaultState() State {
	return State{
		CellType:    mitosis.Animal,
		Composition: mitosis.Diploid4,
		Phase:       mitosis.Prophase,
	}
}

// Validate checks each field and that the cell type permits the composition.
func (s State) Validate() error {
	if !s.CellType.Valid() {
		return fmt.Errorf("cell type %q: %w", s.CellType, mitosis.ErrInvalidInput)
	}
	if !s.Composition.Valid() {
		return fmt.Errorf("composition %q: %w", s.Composition, mitosis.ErrInvalidInput)
	}
	if !s.CellType.Allows(s.Composition) {
		return fmt.Errorf("composition %s not available for %s cells: %w", s.Composition, s.CellType, mitosis.ErrInvalidInput)
	}
	if !s.Phase.Valid() {
		return fmt.Errorf("phase %q: %w", s.Phase, mitosis.ErrInvalidInput)
	}
	return nil
}

// Snapshot is what observers receive after each transition.
type Snapshot struct {
	State   State
	Stats   mitosis.Stats
	Playing bool
}

type Observer func(Snapshot)

type Option func(*Navigator)

func WithPeriod(d time.Duration) Option {
	return func(n *Navigator) {
		if d > 0 {
			n.period = d
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(n *Navigator) {
		if logger != nil {
			n.logger = logger
		}
	}
}

func WithObserver(o Observer) Option {
	return func(n *Navigator) {
		if o != nil {
			n.observers = append(n.observers, o)
		}
	}
}

// WithInitialState replaces the default (animal, 2n=4, prophase) selection.
func WithInitialState(s State) Option {
	return func(n *Navigator) {
		n.state = s
	}
}

// Navigator holds the selection, the play state and the autoplay handle.
type Navigator struct {
	state     State
	stats     mitosis.Stats
	sched     Scheduler
	period    time.Duration
	handle    Handle
	gen       uint64
	observers []Observer
	logger    *slog.Logger
}

// New builds an idle navigator. sched hosts the autoplay timer.
func New(sched Scheduler, opts ...Option) (*Navigator, error) {
	if sched == nil {
		return nil, fmt.Errorf("navigator: nil scheduler")
	}
	n := &Navigator{
		state:  DefaultState(),
		sched:  sched,
		period: DefaultPeriod,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(n)
	}
	if err := n.state.Validate(); err != nil {
		return nil, fmt.Errorf("navigator: initial state: %w", err)
	}
	stats, err := mitosis.ComputeStats(n.state.Composition, n.state.Phase)
	if err != nil {
		return nil, err
	}
	n.stats = stats
	return n, nil
}

// Subscribe adds an observer for subsequent transitions.
func (n *Navigator) Subscribe(o Observer) {
	if o != nil {
		n.observers = append(n.observers, o)
	}
}

func (n *Navigator) State() State { return n.state }

func (n *Navigator) Stats() mitosis.Stats { return n.stats }

func (n *Navigator) IsPlaying() bool { return n.handle != nil }

func (n *Navigator) Period() time.Duration { return n.period }

func (n *Navigator) Snapshot() Snapshot {
	return Snapshot{State: n.state, Stats: n.stats, Playing: n.IsPlaying()}
}

// Step moves one phase forward (+1) or back (-1), wrapping around the cycle.
func (n *Navigator) Step(direction int) error {
	if direction != 1 && direction != -1 {
		return fmt.Errorf("step direction %d: %w", direction, mitosis.ErrInvalidInput)
	}
	next := n.state
	next.Phase = n.state.Phase.Shift(direction)
	return n.apply("step", next)
}

// SetPhase jumps directly to p.
func (n *Navigator) SetPhase(p mitosis.Phase) error {
	if !p.Valid() {
		return fmt.Errorf("set phase %q: %w", p, mitosis.ErrInvalidInput)
	}
	next := n.state
	next.Phase = p
	return n.apply("set_phase", next)
}

// SetCellType selects a cell type and resets the composition to the first
// one it permits. Phase and play state are kept.
func (n *Navigator) SetCellType(c mitosis.CellType) error {
	comp, err := mitosis.DefaultComposition(c)
	if err != nil {
		return fmt.Errorf("set cell type: %w", err)
	}
	next := n.state
	next.CellType = c
	next.Composition = comp
	return n.apply("set_cell_type", next)
}

// SetComposition selects a composition permitted by the current cell type.
func (n *Navigator) SetComposition(c mitosis.Composition) error {
	if !c.Valid() {
		return fmt.Errorf("set composition %q: %w", c, mitosis.ErrInvalidInput)
	}
	if !n.state.CellType.Allows(c) {
		return fmt.Errorf("set composition: %s not available for %s cells: %w", c, n.state.CellType, mitosis.ErrInvalidInput)
	}
	next := n.state
	next.Composition = c
	return n.apply("set_composition", next)
}

// StartAutoplay schedules a forward step every period. It does nothing when
// already playing.
func (n *Navigator) StartAutoplay() {
	if n.handle != nil {
		return
	}
	n.gen++
	gen := n.gen
	n.handle = n.sched.Every(n.period, func() { n.tick(gen) })
	n.logger.Debug("autoplay started", "period", n.period, "phase", n.state.Phase)
	n.notify()
}

// StopAutoplay cancels the scheduled steps. It does nothing when idle.
func (n *Navigator) StopAutoplay() {
	if n.handle == nil {
		return
	}
	n.cancel()
	n.logger.Debug("autoplay stopped", "phase", n.state.Phase)
	n.notify()
}

// TogglePlay starts autoplay when idle and stops it when playing.
func (n *Navigator) TogglePlay() {
	if n.IsPlaying() {
		n.StopAutoplay()
		return
	}
	n.StartAutoplay()
}

// Close is the host teardown: it cancels any active timer without notifying
// observers. It is safe to call more than once.
func (n *Navigator) Close() {
	if n.handle != nil {
		n.cancel()
		n.logger.Debug("autoplay cancelled on close")
	}
}

func (n *Navigator) cancel() {
	n.handle.Cancel()
	n.handle = nil
	n.gen++
}

func (n *Navigator) tick(gen uint64) {
	if n.handle == nil || gen != n.gen {
		n.logger.Debug("stale autoplay tick dropped", "gen", gen)
		return
	}
	if err := n.Step(1); err != nil {
		n.logger.Error("autoplay step failed", "error", err)
	}
}

func (n *Navigator) apply(op string, next State) error {
	if err := next.Validate(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	stats, err := mitosis.ComputeStats(next.Composition, next.Phase)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	n.state = next
	n.stats = stats
	n.logger.Debug("transition", "op", op, "cell", next.CellType, "composition", next.Composition, "phase", next.Phase)
	n.notify()
	return nil
}

func (n *Navigator) notify() {
	snap := n.Snapshot()
	for _, o := range n.observers {
		o(snap)
	}
}
