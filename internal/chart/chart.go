// Package chart models the fixed cell-cycle quantity chart: how chromosome,
// nuclear DNA and chromatid counts change from interphase through telophase.
package chart

import (
	"fmt"

	"github.com/san-kum/mitosim/internal/content"
	"github.com/san-kum/mitosim/internal/mitosis"
)

// Point is a vertex on the cell-cycle timeline, t in [0, 1]. A series holds
// the previous value until the next point, except that a Ramp point is
// reached by linear interpolation (DNA replication in S phase).
type Point struct {
	T    float64
	V    float64
	Ramp bool
}

type Series struct {
	Name   string
	Color  string
	Dashed bool
	Points []Point
}

// ValueAt returns the series value at t. When several points share the same
// t, the last one wins, which encodes an instantaneous drop.
func (s Series) ValueAt(t float64) float64 {
	pts := s.Points
	if len(pts) == 0 {
		return 0
	}
	if t <= pts[0].T {
		return pts[0].V
	}
	for i := 1; i < len(pts); i++ {
		p, prev := pts[i], pts[i-1]
		if t < p.T {
			if p.Ramp && p.T > prev.T {
				return prev.V + (p.V-prev.V)*(t-prev.T)/(p.T-prev.T)
			}
			return prev.V
		}
	}
	return pts[len(pts)-1].V
}

// Span is a labelled stretch of the timeline. Phase is empty for interphase.
type Span struct {
	Label      string
	Phase      mitosis.Phase
	Start, End float64
}

func (s Span) Mid() float64 { return (s.Start + s.End) / 2 }

// Timeline boundaries: interphase takes the first half of the cycle.
var boundaries = []float64{0, 0.5, 0.7, 0.8, 0.9, 1.0}

// Series shapes in units of the composition's chromosome total.
var (
	chromosomeShape = []Point{{0, 1, false}, {0.5, 1, false}, {0.8, 2, false}, {0.9, 2, false}, {1.0, 1, false}}
	dnaShape        = []Point{{0, 1, false}, {0.3, 1, false}, {0.4, 2, true}, {0.9, 2, false}, {1.0, 1, false}}
	chromatidShape  = []Point{{0, 0, false}, {0.3, 0, false}, {0.4, 2, true}, {0.8, 2, false}, {0.8, 0, false}, {1.0, 0, false}}
)

const (
	ColorChromosome = "#ff6b6b"
	ColorDNA        = "#4ecdc4"
	ColorChromatid  = "#45b7d1"
)

// Chart is the quantity chart for one composition.
type Chart struct {
	Composition mitosis.Composition
	Lang        content.Lang
	Series      []Series
	Spans       []Span
}

// New builds the chart scaled to comp. The classic textbook chart uses 2n=4.
func New(comp mitosis.Composition, lang content.Lang) (*Chart, error) {
	if !comp.Valid() {
		return nil, fmt.Errorf("chart: composition %q: %w", comp, mitosis.ErrInvalidInput)
	}
	total := float64(comp.Total())

	names := []string{"染色体", "核DNA", "染色单体"}
	spanLabels := []string{"间期", "前期", "中期", "后期", "末期"}
	if lang == content.En {
		names = []string{"chromosomes", "nuclear DNA", "chromatids"}
		spanLabels = []string{"Inter", "Pro", "Meta", "Ana", "Telo"}
	}

	c := &Chart{
		Composition: comp,
		Lang:        lang,
		Series: []Series{
			{Name: names[0], Color: ColorChromosome, Points: scale(chromosomeShape, total)},
			{Name: names[1], Color: ColorDNA, Points: scale(dnaShape, total)},
			{Name: names[2], Color: ColorChromatid, Dashed: true, Points: scale(chromatidShape, total)},
		},
	}

	phases := append([]mitosis.Phase{""}, mitosis.Phases()...)
	for i, label := range spanLabels {
		c.Spans = append(c.Spans, Span{
			Label: label,
			Phase: phases[i],
			Start: boundaries[i],
			End:   boundaries[i+1],
		})
	}
	return c, nil
}

func scale(shape []Point, k float64) []Point {
	out := make([]Point, len(shape))
	for i, p := range shape {
		out[i] = Point{T: p.T, V: p.V * k, Ramp: p.Ramp}
	}
	return out
}

// Max is the largest value any series reaches.
func (c *Chart) Max() float64 {
	return float64(2 * c.Composition.Total())
}

func (c *Chart) Title() string {
	if c.Lang == content.En {
		return fmt.Sprintf("Quantity changes during mitosis (%s)", c.Composition)
	}
	return fmt.Sprintf("有丝分裂过程中数量变化图 (以%s为例)", c.Composition)
}

// SpanOf returns the timeline span of a phase.
func (c *Chart) SpanOf(p mitosis.Phase) (Span, bool) {
	for _, s := range c.Spans {
		if s.Phase != "" && s.Phase == p {
			return s, true
		}
	}
	return Span{}, false
}

// Sample evaluates every series at n evenly spaced points from t=0 to t=1.
func (c *Chart) Sample(n int) [][]float64 {
	if n < 2 {
		n = 2
	}
	out := make([][]float64, len(c.Series))
	for i, s := range c.Series {
		row := make([]float64, n)
		for j := range row {
			row[j] = s.ValueAt(float64(j) / float64(n-1))
		}
		out[i] = row
	}
	return out
}
