package navigator_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/mitosim/internal/mitosis"
	"github.com/san-kum/mitosim/internal/navigator"
)

var _ = Describe("Navigator", func() {
	var (
		sched *manualScheduler
		nav   *navigator.Navigator
		snaps []navigator.Snapshot
	)

	BeforeEach(func() {
		sched = &manualScheduler{}
		snaps = nil
		var err error
		nav, err = navigator.New(sched, navigator.WithObserver(func(s navigator.Snapshot) {
			snaps = append(snaps, s)
		}))
		Expect(err).NotTo(HaveOccurred())
	})

	It("starts idle at animal, 2n=4, prophase", func() {
		Expect(nav.State()).To(Equal(navigator.DefaultState()))
		Expect(nav.IsPlaying()).To(BeFalse())
		Expect(nav.Stats().Chromosomes).To(Equal(mitosis.Plain(4)))
		Expect(nav.Period()).To(Equal(3000 * time.Millisecond))
	})

	It("rejects a nil scheduler", func() {
		_, err := navigator.New(nil)
		Expect(err).To(HaveOccurred())
	})

	It("rejects an invalid initial state", func() {
		_, err := navigator.New(sched, navigator.WithInitialState(navigator.State{
			CellType: mitosis.Animal, Composition: mitosis.Triploid6, Phase: mitosis.Prophase,
		}))
		Expect(err).To(MatchError(mitosis.ErrInvalidInput))
	})

	Describe("stepping", func() {
		It("returns to prophase after four forward steps", func() {
			for i := 0; i < 4; i++ {
				Expect(nav.Step(1)).To(Succeed())
			}
			Expect(nav.State().Phase).To(Equal(mitosis.Prophase))
			Expect(snaps).To(HaveLen(4))
		})

		It("wraps backwards from prophase to telophase", func() {
			Expect(nav.Step(-1)).To(Succeed())
			Expect(nav.State().Phase).To(Equal(mitosis.Telophase))
			Expect(nav.Stats().Chromosomes.String()).To(Equal("8 → 4/细胞"))
			Expect(nav.Stats().Chromatids).To(Equal(mitosis.Plain(0)))
		})

		It("rejects directions other than ±1 without notifying", func() {
			Expect(nav.Step(2)).To(MatchError(mitosis.ErrInvalidInput))
			Expect(nav.Step(0)).To(MatchError(mitosis.ErrInvalidInput))
			Expect(nav.State().Phase).To(Equal(mitosis.Prophase))
			Expect(snaps).To(BeEmpty())
		})

		It("does not change the play state", func() {
			nav.StartAutoplay()
			Expect(nav.Step(1)).To(Succeed())
			Expect(nav.IsPlaying()).To(BeTrue())
		})
	})

	Describe("direct selection", func() {
		It("jumps to a phase", func() {
			Expect(nav.SetPhase(mitosis.Anaphase)).To(Succeed())
			Expect(nav.State().Phase).To(Equal(mitosis.Anaphase))
			Expect(nav.Stats().Chromosomes).To(Equal(mitosis.Plain(8)))
			Expect(snaps).To(HaveLen(1))
		})

		It("rejects an unknown phase", func() {
			Expect(nav.SetPhase(mitosis.Phase("interphase"))).To(MatchError(mitosis.ErrInvalidInput))
			Expect(snaps).To(BeEmpty())
		})

		It("resets the composition when the cell type changes", func() {
			Expect(nav.SetPhase(mitosis.Metaphase)).To(Succeed())
			Expect(nav.SetCellType(mitosis.Plant)).To(Succeed())
			Expect(nav.State()).To(Equal(navigator.State{
				CellType: mitosis.Plant, Composition: mitosis.Diploid6, Phase: mitosis.Metaphase,
			}))
			Expect(nav.Stats().DNA).To(Equal(mitosis.Plain(12)))

			Expect(nav.SetComposition(mitosis.Triploid6)).To(Succeed())
			Expect(nav.SetCellType(mitosis.Animal)).To(Succeed())
			Expect(nav.State().Composition).To(Equal(mitosis.Diploid4))
			Expect(snaps).To(HaveLen(4))
		})

		It("resets to the first plant composition even when re-selecting plant", func() {
			Expect(nav.SetCellType(mitosis.Plant)).To(Succeed())
			Expect(nav.SetComposition(mitosis.Triploid6)).To(Succeed())
			Expect(nav.SetCellType(mitosis.Plant)).To(Succeed())
			Expect(nav.State().Composition).To(Equal(mitosis.Diploid6))
		})

		It("rejects a composition the cell type does not permit and leaves state unchanged", func() {
			before := nav.Snapshot()
			err := nav.SetComposition(mitosis.Triploid6)
			Expect(err).To(MatchError(mitosis.ErrInvalidInput))
			Expect(nav.Snapshot()).To(Equal(before))
			Expect(snaps).To(BeEmpty())
		})

		It("rejects an unknown cell type", func() {
			Expect(nav.SetCellType(mitosis.CellType("fungus"))).To(MatchError(mitosis.ErrInvalidInput))
			Expect(nav.State().CellType).To(Equal(mitosis.Animal))
		})
	})

	Describe("autoplay", func() {
		It("advances one phase per period", func() {
			nav.StartAutoplay()
			Expect(nav.IsPlaying()).To(BeTrue())
			Expect(sched.Active()).To(Equal(1))

			sched.Advance(2999 * time.Millisecond)
			Expect(nav.State().Phase).To(Equal(mitosis.Prophase))
			sched.Advance(time.Millisecond)
			Expect(nav.State().Phase).To(Equal(mitosis.Metaphase))
			sched.Advance(9 * time.Second)
			Expect(nav.State().Phase).To(Equal(mitosis.Prophase))
		})

		It("keeps a single timer when started twice", func() {
			nav.StartAutoplay()
			nav.StartAutoplay()
			Expect(sched.tasks).To(HaveLen(1))
			Expect(snaps).To(HaveLen(1))
			Expect(snaps[0].Playing).To(BeTrue())
		})

		It("stops stepping once stopped", func() {
			nav.StartAutoplay()
			sched.Advance(3 * time.Second)
			nav.StopAutoplay()
			Expect(nav.IsPlaying()).To(BeFalse())
			Expect(sched.Active()).To(Equal(0))

			sched.Advance(30 * time.Second)
			Expect(nav.State().Phase).To(Equal(mitosis.Metaphase))
		})

		It("drops a stale tick delivered after cancellation", func() {
			nav.StartAutoplay()
			stale := sched.tasks[0].fn
			nav.StopAutoplay()
			stale()
			Expect(nav.State().Phase).To(Equal(mitosis.Prophase))
		})

		It("ignores stop when idle", func() {
			nav.StopAutoplay()
			Expect(snaps).To(BeEmpty())
		})

		It("toggles", func() {
			nav.TogglePlay()
			Expect(nav.IsPlaying()).To(BeTrue())
			nav.TogglePlay()
			Expect(nav.IsPlaying()).To(BeFalse())
			Expect(snaps).To(HaveLen(2))
		})

		It("cancels on close without notifying", func() {
			nav.StartAutoplay()
			snaps = nil
			nav.Close()
			nav.Close()
			Expect(nav.IsPlaying()).To(BeFalse())
			Expect(sched.Active()).To(Equal(0))
			Expect(snaps).To(BeEmpty())
		})

		It("uses the configured period", func() {
			n, err := navigator.New(sched, navigator.WithPeriod(500*time.Millisecond))
			Expect(err).NotTo(HaveOccurred())
			n.StartAutoplay()
			sched.Advance(time.Second)
			Expect(n.State().Phase).To(Equal(mitosis.Anaphase))
		})
	})

	It("notifies exactly once per transition with the new stats", func() {
		Expect(nav.SetCellType(mitosis.Plant)).To(Succeed())
		Expect(nav.SetComposition(mitosis.Triploid6)).To(Succeed())
		Expect(nav.SetPhase(mitosis.Anaphase)).To(Succeed())

		Expect(snaps).To(HaveLen(3))
		last := snaps[2]
		Expect(last.State.Composition).To(Equal(mitosis.Triploid6))
		Expect(last.Stats.Chromosomes).To(Equal(mitosis.Plain(12)))
		Expect(last.Stats.DNA).To(Equal(mitosis.Plain(12)))
		Expect(last.Stats.Chromatids).To(Equal(mitosis.Plain(0)))
	})
})
