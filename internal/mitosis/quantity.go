package mitosis

import (
	"fmt"
	"strconv"
)

// PerCellZh is the per-cell suffix used by Count.String.
const PerCellZh = "/细胞"

// Count is a quantity shown to the learner. During telophase the cytoplasm
// divides, so chromosome and DNA counts are a transition from the doubled
// value to the per-daughter-cell value rather than a single number.
type Count struct {
	Value      int
	After      int
	Transition bool
}

func Plain(v int) Count { return Count{Value: v} }

// Split describes a count of before that redistributes to after per cell.
func Split(before, after int) Count {
	return Count{Value: before, After: after, Transition: true}
}

// Final returns the count that holds once the phase completes.
func (c Count) Final() int {
	if c.Transition {
		return c.After
	}
	return c.Value
}

func (c Count) String() string { return c.Format(PerCellZh) }

// Format renders the count, appending perCell to transition labels.
func (c Count) Format(perCell string) string {
	if !c.Transition {
		return strconv.Itoa(c.Value)
	}
	return fmt.Sprintf("%d → %d%s", c.Value, c.After, perCell)
}

// Stats holds the derived counts for one composition and phase.
type Stats struct {
	Chromosomes Count
	DNA         Count
	Chromatids  Count
}

// ComputeStats derives chromosome, DNA and chromatid counts. It is pure: the
// result depends only on its arguments.
func ComputeStats(comp Composition, phase Phase) (Stats, error) {
	if !comp.Valid() {
		return Stats{}, fmt.Errorf("compute stats: composition %q: %w", comp, ErrInvalidInput)
	}
	total := comp.Total()

	switch phase {
	case Prophase, Metaphase:
		// two sister chromatids per chromosome, one DNA molecule each
		return Stats{
			Chromosomes: Plain(total),
			DNA:         Plain(total * 2),
			Chromatids:  Plain(total * 2),
		}, nil
	case Anaphase:
		// centromeres split: every chromatid is now a chromosome
		return Stats{
			Chromosomes: Plain(total * 2),
			DNA:         Plain(total * 2),
			Chromatids:  Plain(0),
		}, nil
	case Telophase:
		return Stats{
			Chromosomes: Split(total*2, total),
			DNA:         Split(total*2, total),
			Chromatids:  Plain(0),
		}, nil
	}
	return Stats{}, fmt.Errorf("compute stats: phase %q: %w", phase, ErrInvalidInput)
}
