package navigator_test

import (
	"time"

	"github.com/san-kum/mitosim/internal/navigator"
)

// manualScheduler fires tasks only when the test advances its clock.
type manualScheduler struct {
	tasks []*manualTask
}

type manualTask struct {
	period    time.Duration
	elapsed   time.Duration
	fn        func()
	cancelled bool
}

func (t *manualTask) Cancel() { t.cancelled = true }

func (s *manualScheduler) Every(period time.Duration, fn func()) navigator.Handle {
	t := &manualTask{period: period, fn: fn}
	s.tasks = append(s.tasks, t)
	return t
}

func (s *manualScheduler) Advance(d time.Duration) {
	tasks := append([]*manualTask(nil), s.tasks...)
	for _, t := range tasks {
		if t.cancelled {
			continue
		}
		t.elapsed += d
		for t.elapsed >= t.period && !t.cancelled {
			t.elapsed -= t.period
			t.fn()
		}
	}
}

func (s *manualScheduler) Active() int {
	n := 0
	for _, t := range s.tasks {
		if !t.cancelled {
			n++
		}
	}
	return n
}
