package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/mitosim/internal/chart"
	"github.com/san-kum/mitosim/internal/content"
	"github.com/san-kum/mitosim/internal/mitosis"
)

func TestChartToSVG(t *testing.T) {
	c, err := chart.New(mitosis.Diploid4, content.Zh)
	if err != nil {
		t.Fatal(err)
	}
	svg := ChartToSVG(c, 800, 400)

	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>") {
		t.Fatal("not a complete svg document")
	}
	if got := strings.Count(svg, "<path fill=\"none\" stroke=\"#"); got != 4 {
		t.Errorf("expected 3 series paths plus the axis path, got %d", got)
	}
	for _, want := range []string{"有丝分裂过程中数量变化图 (以2n=4为例)", "间期", "末期", "核DNA", `stroke-dasharray="8,8"`, chart.ColorChromosome} {
		if !strings.Contains(svg, want) {
			t.Errorf("svg missing %q", want)
		}
	}
}

func TestChartToSVG_TooSmall(t *testing.T) {
	c, _ := chart.New(mitosis.Diploid4, content.Zh)
	if ChartToSVG(c, 100, 100) != "" {
		t.Error("expected empty output for a canvas smaller than the padding")
	}
	if ChartToSVG(nil, 800, 400) != "" {
		t.Error("expected empty output for nil chart")
	}
}

func TestWriteChartSVG(t *testing.T) {
	c, _ := chart.New(mitosis.Triploid6, content.En)
	path := filepath.Join(t.TempDir(), "chart.svg")

	if err := WriteChartSVG(path, c, 800, 400); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "3n=6") {
		t.Error("expected composition in the title")
	}

	if err := WriteChartSVG(path, c, 10, 10); err == nil {
		t.Error("expected error for tiny chart")
	}
}
