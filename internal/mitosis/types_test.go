package mitosis

import (
	"errors"
	"testing"
)

func TestComposition_Numbers(t *testing.T) {
	tests := []struct {
		comp         Composition
		base, ploidy int
		total        int
	}{
		{Diploid4, 2, 2, 4},
		{Diploid6, 3, 2, 6},
		{Triploid6, 2, 3, 6},
	}

	for _, tt := range tests {
		if tt.comp.BaseNumber() != tt.base || tt.comp.Ploidy() != tt.ploidy || tt.comp.Total() != tt.total {
			t.Errorf("%s: got n=%d ploidy=%d total=%d", tt.comp, tt.comp.BaseNumber(), tt.comp.Ploidy(), tt.comp.Total())
		}
	}
}

func TestParseComposition(t *testing.T) {
	tests := []struct {
		in   string
		want Composition
		ok   bool
	}{
		{"2n=4", Diploid4, true},
		{" 3N=6 ", Triploid6, true},
		{"diploid-6", Diploid6, true},
		{"triploid-6", Triploid6, true},
		{"2n=8", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, err := ParseComposition(tt.in)
		if tt.ok && (err != nil || got != tt.want) {
			t.Errorf("ParseComposition(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
		if !tt.ok && !errors.Is(err, ErrInvalidInput) {
			t.Errorf("ParseComposition(%q) err = %v, want ErrInvalidInput", tt.in, err)
		}
	}
}

func TestCompositionsFor(t *testing.T) {
	animal, err := CompositionsFor(Animal)
	if err != nil || len(animal) != 1 || animal[0] != Diploid4 {
		t.Errorf("animal = %v, %v", animal, err)
	}

	plant, err := CompositionsFor(Plant)
	if err != nil || len(plant) != 2 || plant[0] != Diploid6 || plant[1] != Triploid6 {
		t.Errorf("plant = %v, %v", plant, err)
	}

	if _, err := CompositionsFor(CellType("fungus")); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("fungus err = %v", err)
	}

	if Animal.Allows(Triploid6) {
		t.Error("animal should not allow 3n=6")
	}
	if !Plant.Allows(Triploid6) {
		t.Error("plant should allow 3n=6")
	}
}

func TestPhase_Shift(t *testing.T) {
	tests := []struct {
		from  Phase
		delta int
		want  Phase
	}{
		{Prophase, 1, Metaphase},
		{Telophase, 1, Prophase},
		{Prophase, -1, Telophase},
		{Metaphase, -1, Prophase},
		{Prophase, 4, Prophase},
		{Anaphase, -6, Prophase},
	}

	for _, tt := range tests {
		if got := tt.from.Shift(tt.delta); got != tt.want {
			t.Errorf("%s.Shift(%d) = %s, want %s", tt.from, tt.delta, got, tt.want)
		}
	}

	p := Prophase
	for i := 0; i < 4; i++ {
		p = p.Next()
	}
	if p != Prophase {
		t.Errorf("four Next() calls = %s, want prophase", p)
	}
}

func TestParsePhase(t *testing.T) {
	if p, err := ParsePhase("Anaphase"); err != nil || p != Anaphase {
		t.Errorf("ParsePhase(Anaphase) = %q, %v", p, err)
	}
	if _, err := ParsePhase("interphase"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("interphase err = %v", err)
	}
	if _, err := PhaseAt(4); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("PhaseAt(4) err = %v", err)
	}
	if _, err := ParseCellType("fungus"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("ParseCellType(fungus) err = %v", err)
	}
}
