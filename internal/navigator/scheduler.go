package navigator

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Scheduler runs fn every period until the returned handle is cancelled.
// Implementations must invoke fn on the host event loop and must never invoke
// it after Cancel has returned.
type Scheduler interface {
	Every(period time.Duration, fn func()) Handle
}

type Handle interface {
	Cancel()
}

// Loop is a single-goroutine event loop. Functions posted to it run one at a
// time, in order, on the goroutine that called Run. A Loop runs once.
type Loop struct {
	events chan func()
	done   chan struct{}
	once   sync.Once
}

func NewLoop() *Loop {
	return &Loop{
		events: make(chan func(), 16),
		done:   make(chan struct{}),
	}
}

// Post queues fn. It reports false once the loop has stopped.
func (l *Loop) Post(fn func()) bool {
	select {
	case <-l.done:
		return false
	default:
	}
	select {
	case <-l.done:
		return false
	case l.events <- fn:
		return true
	}
}

// Run processes posted functions until ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	defer l.once.Do(func() { close(l.done) })
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-l.events:
			fn()
		}
	}
}

// Every implements Scheduler. Ticks are posted onto the loop; a tick already
// queued when the handle is cancelled is dropped when it reaches the front.
func (l *Loop) Every(period time.Duration, fn func()) Handle {
	h := &loopHandle{stop: make(chan struct{})}
	tick := func() {
		if h.cancelled.Load() {
			return
		}
		fn()
	}

	go func() {
		ticker := time.NewTicker(period)
		defer ticker.Stop()
		for {
			select {
			case <-h.stop:
				return
			case <-l.done:
				return
			case <-ticker.C:
			}
			select {
			case l.events <- tick:
			case <-h.stop:
				return
			case <-l.done:
				return
			}
		}
	}()
	return h
}

type loopHandle struct {
	cancelled atomic.Bool
	stop      chan struct{}
	once      sync.Once
}

func (h *loopHandle) Cancel() {
	h.cancelled.Store(true)
	h.once.Do(func() { close(h.stop) })
}
