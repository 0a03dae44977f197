package tui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/mitosim/internal/chart"
	"github.com/san-kum/mitosim/internal/content"
	"github.com/san-kum/mitosim/internal/logging"
	"github.com/san-kum/mitosim/internal/mitosis"
	"github.com/san-kum/mitosim/internal/navigator"
)

type Options struct {
	State       navigator.State
	Period      time.Duration
	Autostart   bool
	Lang        content.Lang
	ChartWidth  int
	ChartHeight int
	Color       bool
	Logger      *slog.Logger
}

// Model is the bubbletea model. The navigator and scheduler are shared by
// every copy bubbletea makes of the model.
type Model struct {
	nav       *navigator.Navigator
	sched     *tickScheduler
	logger    *slog.Logger
	lang      content.Lang
	showChart bool
	chartW    int
	chartH    int
	color     bool
	width     int
	height    int
	err       error
	quitting  bool
}

func NewApp(opts Options) (Model, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	state := opts.State
	if state == (navigator.State{}) {
		state = navigator.DefaultState()
	}
	lang := opts.Lang
	if lang == "" {
		lang = content.Zh
	}

	sched := &tickScheduler{}
	nav, err := navigator.New(sched,
		navigator.WithInitialState(state),
		navigator.WithPeriod(opts.Period),
		navigator.WithLogger(logger),
	)
	if err != nil {
		return Model{}, err
	}
	if opts.Autostart {
		nav.StartAutoplay()
	}

	return Model{
		nav:       nav,
		sched:     sched,
		logger:    logger,
		lang:      lang,
		showChart: true,
		chartW:    opts.ChartWidth,
		chartH:    opts.ChartHeight,
		color:     opts.Color,
		width:     80,
		height:    24,
	}, nil
}

func (m Model) Navigator() *navigator.Navigator { return m.nav }

func (m Model) Init() tea.Cmd { return m.sched.cmd() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		var cmd tea.Cmd
		m, cmd = m.handleKey(msg)
		if cmd != nil {
			return m, cmd
		}
		return m, m.sched.cmd()
	case autoplayTickMsg:
		m.sched.fire(msg)
		return m, m.sched.cmd()
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	m.err = nil
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.nav.Close()
		m.quitting = true
		return m, tea.Quit
	case "left", "h":
		m.err = m.nav.Step(-1)
	case "right", "l":
		m.err = m.nav.Step(1)
	case " ", "p":
		m.nav.TogglePlay()
	case "1", "2", "3", "4":
		phase, err := mitosis.PhaseAt(int(msg.String()[0] - '1'))
		if err == nil {
			err = m.nav.SetPhase(phase)
		}
		m.err = err
	case "c":
		m.err = m.nav.SetCellType(nextCellType(m.nav.State().CellType))
	case "m":
		m.err = m.cycleComposition()
	case "g":
		m.showChart = !m.showChart
	case "L":
		if m.lang == content.En {
			m.lang = content.Zh
		} else {
			m.lang = content.En
		}
	}
	if m.err != nil {
		m.logger.Warn("key rejected", "key", msg.String(), "error", m.err)
	}
	return m, nil
}

func nextCellType(c mitosis.CellType) mitosis.CellType {
	types := mitosis.CellTypes()
	for i, t := range types {
		if t == c {
			return types[(i+1)%len(types)]
		}
	}
	return types[0]
}

func (m Model) cycleComposition() error {
	s := m.nav.State()
	list, err := mitosis.CompositionsFor(s.CellType)
	if err != nil {
		return err
	}
	next := list[0]
	for i, c := range list {
		if c == s.Composition {
			next = list[(i+1)%len(list)]
			break
		}
	}
	return m.nav.SetComposition(next)
}

func (m Model) labels() (chromosomes, dna, chromatids string) {
	if m.lang == content.En {
		return "chromosomes", "nuclear DNA", "chromatids"
	}
	return "染色体", "核DNA", "染色单体"
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	snap := m.nav.Snapshot()
	s := snap.State
	lang := m.lang

	var b strings.Builder

	status := StatusIdle.Render("○ idle")
	if snap.Playing {
		status = StatusPlaying.Render(fmt.Sprintf("● playing %s", m.nav.Period()))
	}
	b.WriteString("\n  " + TitleStyle.Render("m i t o s i m") + "  " + status + "\n")

	idx := s.Phase.Index()
	b.WriteString(fmt.Sprintf("  %s  %s  %s %s\n\n",
		content.CellTypeLabel(s.CellType, lang),
		content.CompositionLabel(s.Composition, lang),
		PhaseTrack(idx, 4, 6),
		Subtle.Render(fmt.Sprintf("(%d/4)", idx+1))))

	desc, err := content.Describe(s.Phase, s.CellType, lang)
	if err != nil {
		return ErrorStyle.Render(err.Error())
	}
	img, _ := content.ImagePath(s.CellType, s.Composition, s.Phase)

	var left strings.Builder
	left.WriteString(PhaseTitle.Render(desc.Title) + "\n")
	left.WriteString(Subtle.Render(img) + "\n\n")
	chr, dna, ctd := m.labels()
	perCell := lang.PerCell()
	left.WriteString(MetricLabel.Render(chr) + MetricValue.Render(snap.Stats.Chromosomes.Format(perCell)) + "\n")
	left.WriteString(MetricLabel.Render(dna) + MetricValue.Render(snap.Stats.DNA.Format(perCell)) + "\n")
	left.WriteString(MetricLabel.Render(ctd) + MetricValue.Render(snap.Stats.Chromatids.Format(perCell)) + "\n\n")
	left.WriteString(Mnemonic.Render("「"+desc.Mnemonic+"」") + "\n")

	textWidth := m.width - 40
	if textWidth < 30 {
		textWidth = 30
	}
	var right strings.Builder
	right.WriteString(Subtle.Render(desc.Analogy) + "\n\n")
	for _, f := range desc.Features {
		right.WriteString("• " + f + "\n")
	}
	right.WriteString("\n" + desc.Definition)

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		Panel.Render(left.String()),
		Panel.Width(textWidth).Render(right.String())))
	b.WriteString("\n")

	if m.showChart {
		if c, err := chart.New(s.Composition, lang); err == nil {
			b.WriteString("\n" + c.Render(chart.RenderOptions{
				Width:  m.chartW,
				Height: m.chartH,
				Marker: s.Phase,
				Color:  m.color,
			}) + "\n")
		}
	}

	if m.err != nil {
		b.WriteString("\n  " + ErrorStyle.Render(m.err.Error()) + "\n")
	}
	b.WriteString("\n" + KeyHint.Render("  ←→ step  space play  1-4 phase  c cell  m composition  g chart  L lang  q quit") + "\n")
	return b.String()
}

// Run starts the TUI and cancels any autoplay when it exits.
func Run(opts Options) error {
	m, err := NewApp(opts)
	if err != nil {
		return err
	}
	defer m.nav.Close()
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
