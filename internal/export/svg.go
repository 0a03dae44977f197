package export

import (
	"fmt"
	"html"
	"os"
	"strings"

	"github.com/san-kum/mitosim/internal/chart"
	"github.com/san-kum/mitosim/internal/content"
)

const (
	svgPadding    = 60.0
	svgHeadroom   = 1.025 // keeps the top line off the frame
	svgLineWidth  = 3.0
	svgPointR     = 5.0
	svgFontFamily = `"Noto Sans SC", sans-serif`
)

// ChartToSVG draws the quantity chart: axes, grid, dashed phase separators,
// phase labels, one stepped line per series with point markers, a legend and
// the title.
func ChartToSVG(c *chart.Chart, width, height int) string {
	if c == nil || width <= 2*svgPadding || height <= 2*svgPadding {
		return ""
	}

	w, h := float64(width), float64(height)
	chartW := w - 2*svgPadding
	chartH := h - 2*svgPadding
	maxValue := c.Max() * svgHeadroom

	toX := func(t float64) float64 { return svgPadding + t*chartW }
	toY := func(v float64) float64 { return h - svgPadding - v/maxValue*chartH }

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" font-family='%s' font-size="14">
<rect width="100%%" height="100%%" fill="#ffffff"/>
`, width, height, width, height, svgFontFamily))

	// grid and y labels on every other integer step of the unit
	unit := c.Max() / 8
	sb.WriteString(`<g stroke="#e0e0e0" stroke-width="1">` + "\n")
	for i := 0; i <= 8; i++ {
		y := toY(float64(i) * unit)
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>`+"\n", svgPadding, y, w-svgPadding, y))
	}
	sb.WriteString("</g>\n")
	sb.WriteString(`<g fill="#666666" text-anchor="end">` + "\n")
	for i := 0; i <= 8; i += 2 {
		y := toY(float64(i) * unit)
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f">%s</text>`+"\n", svgPadding-10, y+5, trimFloat(float64(i)*unit)))
	}
	sb.WriteString("</g>\n")

	sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="#333333" stroke-width="2" d="M%.1f,%.1f L%.1f,%.1f L%.1f,%.1f"/>`+"\n",
		svgPadding, svgPadding, svgPadding, h-svgPadding, w-svgPadding, h-svgPadding))

	sb.WriteString(`<g stroke="#cccccc" stroke-width="1" stroke-dasharray="5,5">` + "\n")
	for _, s := range c.Spans[1:] {
		x := toX(s.Start)
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>`+"\n", x, svgPadding, x, h-svgPadding))
	}
	sb.WriteString("</g>\n")

	sb.WriteString(`<g fill="#333333" text-anchor="middle">` + "\n")
	for _, s := range c.Spans {
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f">%s</text>`+"\n", toX(s.Mid()), h-svgPadding+25, html.EscapeString(s.Label)))
	}
	sb.WriteString("</g>\n")

	// small offsets keep coincident lines distinguishable
	offsets := []struct{ dx, dy float64 }{{0, 0}, {0.002, 0.0125}, {-0.002, -0.0125}}
	for i, s := range c.Series {
		off := offsets[i%len(offsets)]
		getX := func(t float64) float64 { return toX(t + off.dx) }
		getY := func(v float64) float64 { return toY(v + off.dy*c.Max()) }
		sb.WriteString(seriesPath(s, getX, getY))
	}

	legendY := 45.0
	legendX := w/2 - 150
	for i, s := range c.Series {
		x := legendX + float64(i)*100
		if s.Dashed {
			sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="2" stroke-dasharray="4,4"/>`+"\n",
				x, legendY-5, x+20, legendY-5, s.Color))
		} else {
			sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="20" height="10" fill="%s"/>`+"\n", x, legendY-10, s.Color))
		}
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="#333333">%s</text>`+"\n", x+25, legendY, html.EscapeString(s.Name)))
	}

	sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="30" font-size="16" text-anchor="middle" fill="#333333">%s</text>`+"\n",
		w/2, html.EscapeString(c.Title())))
	sb.WriteString(fmt.Sprintf(`<text transform="translate(20,%.1f) rotate(-90)" text-anchor="middle" fill="#333333">%s</text>`+"\n",
		h/2, axisTitle(c)))

	sb.WriteString("</svg>")
	return sb.String()
}

// seriesPath draws horizontal-then-vertical steps between points, and a
// straight segment into ramp points.
func seriesPath(s chart.Series, getX, getY func(float64) float64) string {
	if len(s.Points) < 2 {
		return ""
	}
	var sb strings.Builder

	dash := ""
	if s.Dashed {
		dash = ` stroke-dasharray="8,8"`
	}
	first := s.Points[0]
	sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="%.0f"%s d="M%.1f,%.1f`,
		s.Color, svgLineWidth, dash, getX(first.T), getY(first.V)))
	for i := 1; i < len(s.Points); i++ {
		prev, cur := s.Points[i-1], s.Points[i]
		if cur.Ramp {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", getX(cur.T), getY(cur.V)))
			continue
		}
		x := getX(cur.T)
		sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, getY(prev.V)))
		if cur.V != prev.V {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, getY(cur.V)))
		}
	}
	sb.WriteString(`"/>` + "\n")

	sb.WriteString(fmt.Sprintf(`<g fill="%s">`+"\n", s.Color))
	for _, p := range s.Points {
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.0f"/>`+"\n", getX(p.T), getY(p.V), svgPointR))
	}
	sb.WriteString("</g>\n")
	return sb.String()
}

func axisTitle(c *chart.Chart) string {
	if c.Lang == content.En {
		return "count"
	}
	return "数量"
}

func trimFloat(v float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
}

// WriteChartSVG renders the chart and writes it to path.
func WriteChartSVG(path string, c *chart.Chart, width, height int) error {
	svg := ChartToSVG(c, width, height)
	if svg == "" {
		return fmt.Errorf("export: chart too small (%dx%d)", width, height)
	}
	return os.WriteFile(path, []byte(svg), 0644)
}
