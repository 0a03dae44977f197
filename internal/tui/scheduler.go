package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/mitosim/internal/navigator"
)

type autoplayTickMsg struct {
	gen uint64
}

// tickScheduler hosts autoplay on the bubbletea event loop. Each scheduled
// task is a chain of tea.Tick commands tagged with a generation; a tick whose
// generation no longer matches was cancelled and is ignored.
type tickScheduler struct {
	gen     uint64
	period  time.Duration
	fn      func()
	pending bool
}

func (s *tickScheduler) Every(period time.Duration, fn func()) navigator.Handle {
	s.gen++
	s.period = period
	s.fn = fn
	s.pending = true
	return &tickHandle{s: s, gen: s.gen}
}

type tickHandle struct {
	s   *tickScheduler
	gen uint64
}

func (h *tickHandle) Cancel() {
	if h.s.gen != h.gen {
		return
	}
	h.s.gen++
	h.s.fn = nil
	h.s.pending = false
}

// cmd returns the next tick command when one needs to be armed.
func (s *tickScheduler) cmd() tea.Cmd {
	if !s.pending || s.fn == nil {
		return nil
	}
	s.pending = false
	gen := s.gen
	return tea.Tick(s.period, func(time.Time) tea.Msg {
		return autoplayTickMsg{gen: gen}
	})
}

func (s *tickScheduler) fire(msg autoplayTickMsg) {
	if msg.gen != s.gen || s.fn == nil {
		return
	}
	s.pending = true
	s.fn()
}
