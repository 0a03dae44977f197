package mitosis

import (
	"fmt"
	"strings"
)

type CellType string

const (
	Animal CellType = "animal"
	Plant  CellType = "plant"
)

// CellTypes lists the cell types in presentation order.
func CellTypes() []CellType {
	return []CellType{Animal, Plant}
}

func (c CellType) Valid() bool {
	return c == Animal || c == Plant
}

func ParseCellType(s string) (CellType, error) {
	c := CellType(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("unknown cell type %q: %w", s, ErrInvalidInput)
	}
	return c, nil
}

// Composition is a fixed chromosome configuration written in the textbook
// notation ploidy·n = total.
type Composition string

const (
	Diploid4  Composition = "2n=4"
	Diploid6  Composition = "2n=6"
	Triploid6 Composition = "3n=6"
)

type compositionInfo struct {
	base   int
	ploidy int
	alias  string
}

var compositions = map[Composition]compositionInfo{
	Diploid4:  {base: 2, ploidy: 2, alias: "diploid-4"},
	Diploid6:  {base: 3, ploidy: 2, alias: "diploid-6"},
	Triploid6: {base: 2, ploidy: 3, alias: "triploid-6"},
}

var compositionsByCell = map[CellType][]Composition{
	Animal: {Diploid4},
	Plant:  {Diploid6, Triploid6},
}

// AllCompositions lists every composition in presentation order.
func AllCompositions() []Composition {
	return []Composition{Diploid4, Diploid6, Triploid6}
}

// CompositionsFor returns the compositions a cell type permits. The first
// entry is the default selected when the cell type changes.
func CompositionsFor(c CellType) ([]Composition, error) {
	list, ok := compositionsByCell[c]
	if !ok {
		return nil, fmt.Errorf("unknown cell type %q: %w", c, ErrInvalidInput)
	}
	out := make([]Composition, len(list))
	copy(out, list)
	return out, nil
}

// DefaultComposition returns the first composition valid for the cell type.
func DefaultComposition(c CellType) (Composition, error) {
	list, ok := compositionsByCell[c]
	if !ok {
		return "", fmt.Errorf("unknown cell type %q: %w", c, ErrInvalidInput)
	}
	return list[0], nil
}

// Allows reports whether the cell type permits the composition.
func (c CellType) Allows(comp Composition) bool {
	for _, v := range compositionsByCell[c] {
		if v == comp {
			return true
		}
	}
	return false
}

func (c Composition) Valid() bool {
	_, ok := compositions[c]
	return ok
}

// BaseNumber is the haploid chromosome count n.
func (c Composition) BaseNumber() int { return compositions[c].base }

func (c Composition) Ploidy() int { return compositions[c].ploidy }

// Total is the chromosome count of a non-dividing cell, base number times ploidy.
func (c Composition) Total() int {
	info := compositions[c]
	return info.base * info.ploidy
}

// Alias returns the descriptive name, e.g. "triploid-6".
func (c Composition) Alias() string { return compositions[c].alias }

// ParseComposition accepts the notation ("3n=6") or the alias ("triploid-6").
func ParseComposition(s string) (Composition, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if c := Composition(v); c.Valid() {
		return c, nil
	}
	for c, info := range compositions {
		if info.alias == v {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown composition %q: %w", s, ErrInvalidInput)
}

type Phase string

const (
	Prophase  Phase = "prophase"
	Metaphase Phase = "metaphase"
	Anaphase  Phase = "anaphase"
	Telophase Phase = "telophase"
)

var phaseOrder = []Phase{Prophase, Metaphase, Anaphase, Telophase}

// Phases returns the phases in division order.
func Phases() []Phase {
	out := make([]Phase, len(phaseOrder))
	copy(out, phaseOrder)
	return out
}

// Index returns the position of p in division order, or -1.
func (p Phase) Index() int {
	for i, v := range phaseOrder {
		if v == p {
			return i
		}
	}
	return -1
}

func (p Phase) Valid() bool { return p.Index() >= 0 }

// Shift moves around the phase cycle by delta steps, wrapping in both
// directions. An invalid phase is returned unchanged.
func (p Phase) Shift(delta int) Phase {
	i := p.Index()
	if i < 0 {
		return p
	}
	n := len(phaseOrder)
	return phaseOrder[((i+delta)%n+n)%n]
}

func (p Phase) Next() Phase { return p.Shift(1) }

// PhaseAt returns the phase at a zero-based position in division order.
func PhaseAt(i int) (Phase, error) {
	if i < 0 || i >= len(phaseOrder) {
		return "", fmt.Errorf("phase index %d: %w", i, ErrInvalidInput)
	}
	return phaseOrder[i], nil
}

func ParsePhase(s string) (Phase, error) {
	p := Phase(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("unknown phase %q: %w", s, ErrInvalidInput)
	}
	return p, nil
}
