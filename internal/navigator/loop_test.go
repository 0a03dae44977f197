package navigator_test

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/mitosim/internal/mitosis"
	"github.com/san-kum/mitosim/internal/navigator"
)

var _ = Describe("Loop", func() {
	var (
		loop   *navigator.Loop
		cancel context.CancelFunc
		done   chan error
	)

	BeforeEach(func() {
		loop = navigator.NewLoop()
		var ctx context.Context
		ctx, cancel = context.WithCancel(context.Background())
		done = make(chan error, 1)
		go func() { done <- loop.Run(ctx) }()
	})

	AfterEach(func() {
		cancel()
		Eventually(done).Should(Receive())
	})

	It("runs posted functions in order", func() {
		var order []int
		finished := make(chan []int, 1)
		for i := 0; i < 5; i++ {
			i := i
			Expect(loop.Post(func() { order = append(order, i) })).To(BeTrue())
		}
		loop.Post(func() { finished <- order })
		Eventually(finished).Should(Receive(Equal([]int{0, 1, 2, 3, 4})))
	})

	It("never fires a cancelled task", func() {
		var fired atomic.Int32
		loop.Post(func() {
			var h navigator.Handle
			h = loop.Every(time.Millisecond, func() {
				fired.Add(1)
				h.Cancel()
			})
		})
		Eventually(fired.Load).Should(Equal(int32(1)))
		Consistently(fired.Load, 50*time.Millisecond).Should(Equal(int32(1)))
	})

	It("hosts navigator autoplay", func() {
		phases := make(chan mitosis.Phase, 8)
		loop.Post(func() {
			defer GinkgoRecover()
			nav, err := navigator.New(loop,
				navigator.WithPeriod(5*time.Millisecond),
				navigator.WithObserver(func(s navigator.Snapshot) {
					if !s.Playing {
						return
					}
					phases <- s.State.Phase
				}))
			Expect(err).NotTo(HaveOccurred())
			nav.Subscribe(func(s navigator.Snapshot) {
				if s.State.Phase == mitosis.Anaphase {
					nav.StopAutoplay()
				}
			})
			nav.StartAutoplay()
		})

		Eventually(phases).Should(Receive(Equal(mitosis.Prophase)))
		Eventually(phases).Should(Receive(Equal(mitosis.Metaphase)))
		Eventually(phases).Should(Receive(Equal(mitosis.Anaphase)))
		Consistently(phases, 40*time.Millisecond).ShouldNot(Receive(Equal(mitosis.Telophase)))
	})

	It("refuses posts after the loop stops", func() {
		cancel()
		var err error
		Eventually(done).Should(Receive(&err))
		Expect(errors.Is(err, context.Canceled)).To(BeTrue())
		Expect(loop.Post(func() {})).To(BeFalse())
		done <- nil
	})
})
