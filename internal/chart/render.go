package chart

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/mitosim/internal/mitosis"
)

const (
	DefaultWidth  = 60
	DefaultHeight = 12
)

type RenderOptions struct {
	Width int
	// Height is an upper bound; see Rows.
	Height int
	// Marker, when set, draws ▲ under the phase on the axis row.
	Marker mitosis.Phase
	Color  bool
}

// Render plots the chart with asciigraph and appends the phase axis row.
func (c *Chart) Render(opts RenderOptions) string {
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = DefaultHeight
	}
	rows := c.Rows(opts.Height)

	legends := make([]string, len(c.Series))
	for i, s := range c.Series {
		legends[i] = s.Name
	}

	plotOpts := []asciigraph.Option{
		asciigraph.Height(rows),
		asciigraph.Width(opts.Width),
		asciigraph.Precision(0),
		asciigraph.LowerBound(0),
		asciigraph.UpperBound(c.Max()),
		asciigraph.Caption(c.Title()),
	}
	// asciigraph colours every legend entry, so plain output draws its own
	if opts.Color {
		plotOpts = append(plotOpts,
			asciigraph.SeriesColors(asciigraph.Red, asciigraph.Turquoise, asciigraph.Blue),
			asciigraph.SeriesLegends(legends...))
	}

	graph := asciigraph.PlotMany(c.Sample(opts.Width), plotOpts...)
	gutter := axisGutter(graph)

	var b strings.Builder
	lines := strings.Split(graph, "\n")
	// caption and legend follow the plot rows; the axis goes between them
	plotRows := rows + 1
	if plotRows > len(lines) {
		plotRows = len(lines)
	}
	for _, l := range lines[:plotRows] {
		b.WriteString(l + "\n")
	}
	pad := strings.Repeat(" ", gutter)
	b.WriteString(pad + c.Axis(opts.Width) + "\n")
	if opts.Marker != "" {
		b.WriteString(pad + c.MarkerRow(opts.Width, opts.Marker) + "\n")
	}
	for _, l := range lines[plotRows:] {
		b.WriteString(l + "\n")
	}
	if !opts.Color {
		b.WriteString("\n" + pad + plainLegend(legends) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// Rows returns the largest plot height not above limit that divides the
// chart maximum, so every y label is a distinct whole count.
func (c *Chart) Rows(limit int) int {
	top := int(c.Max())
	if limit > top {
		limit = top
	}
	for h := limit; h > 1; h-- {
		if top%h == 0 {
			return h
		}
	}
	return 1
}

func plainLegend(names []string) string {
	items := make([]string, len(names))
	for i, n := range names {
		items[i] = "■ " + n
	}
	return strings.Join(items, "   ")
}

// axisGutter measures the label column asciigraph puts left of the plot.
func axisGutter(graph string) int {
	for _, line := range strings.Split(graph, "\n") {
		for _, axis := range []string{"┤", "┼"} {
			if i := strings.Index(line, axis); i >= 0 {
				return lipgloss.Width(line[:i]) + 1
			}
		}
	}
	return 0
}

// Axis returns a row of span labels centred over width columns.
func (c *Chart) Axis(width int) string {
	var b strings.Builder
	col := 0
	for _, s := range c.Spans {
		label := s.Label
		w := lipgloss.Width(label)
		start := int(s.Mid()*float64(width-1)) - w/2
		if start < col {
			start = col
		}
		if start+w > width {
			continue
		}
		b.WriteString(strings.Repeat(" ", start-col))
		b.WriteString(label)
		col = start + w
	}
	return b.String()
}

// MarkerRow returns a row with ▲ under the middle of the phase's span.
func (c *Chart) MarkerRow(width int, p mitosis.Phase) string {
	s, ok := c.SpanOf(p)
	if !ok || width <= 0 {
		return ""
	}
	pos := int(s.Mid() * float64(width-1))
	return strings.Repeat(" ", pos) + "▲"
}
