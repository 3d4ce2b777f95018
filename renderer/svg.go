package renderer

import (
	"fmt"
	"html"
	"io"
	"math"
	"strings"

	"github.com/Rudhira-web/tracker"
)

// Pie geometry. The legend sits right of the pie, one row per wedge.
const (
	svgWidth  = 640
	svgHeight = 420

	pieCenterX = 210
	pieCenterY = 210
	pieRadius  = 170

	legendX      = 410
	legendY      = 60
	legendStep   = 26
	legendSwatch = 14
)

// BreakdownSVG writes the breakdown as a standalone SVG pie chart with a
// legend. Wedge angles follow the breakdown layout: degrees counter-clockwise
// from 3 o'clock.
func BreakdownSVG(w io.Writer, b tracker.Breakdown, currency string) error {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		svgWidth, svgHeight, svgWidth, svgHeight)
	fmt.Fprintf(&sb, `  <text x="%d" y="32" font-family="sans-serif" font-size="20" font-weight="bold">Expense Breakdown</text>`+"\n", pieCenterX-pieRadius)

	if b.Empty() {
		fmt.Fprintf(&sb, `  <text x="%d" y="%d" font-family="sans-serif" font-size="16" text-anchor="middle">No expense data to display</text>`+"\n",
			svgWidth/2, svgHeight/2)
	}

	for _, wedge := range b.Wedges {
		if wedge.Sweep <= 0 {
			continue
		}
		if wedge.Sweep >= 360 {
			fmt.Fprintf(&sb, `  <circle cx="%d" cy="%d" r="%d" fill="%s"/>`+"\n",
				pieCenterX, pieCenterY, pieRadius, wedge.Color.Hex())
			continue
		}
		x1, y1 := piePoint(wedge.Start)
		x2, y2 := piePoint(wedge.Start + wedge.Sweep)
		largeArc := 0
		if wedge.Sweep > 180 {
			largeArc = 1
		}
		// sweep-flag 0 draws the arc counter-clockwise on screen.
		fmt.Fprintf(&sb, `  <path d="M %d,%d L %.2f,%.2f A %d,%d 0 %d,0 %.2f,%.2f Z" fill="%s" stroke="#fff" stroke-width="1"/>`+"\n",
			pieCenterX, pieCenterY, x1, y1, pieRadius, pieRadius, largeArc, x2, y2, wedge.Color.Hex())
	}

	for i, wedge := range b.Wedges {
		y := legendY + i*legendStep
		fmt.Fprintf(&sb, `  <rect x="%d" y="%d" width="%d" height="%d" fill="%s"/>`+"\n",
			legendX, y, legendSwatch, legendSwatch, wedge.Color.Hex())
		fmt.Fprintf(&sb, `  <text x="%d" y="%d" font-family="sans-serif" font-size="14">%s %s</text>`+"\n",
			legendX+legendSwatch+6, y+legendSwatch-2, html.EscapeString(wedge.Category), html.EscapeString(Money(wedge.Total, currency)))
	}

	sb.WriteString("</svg>\n")

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("failed to write chart: %w", err)
	}
	return nil
}

// piePoint returns the point on the pie edge at the given angle in degrees.
// The SVG y axis grows downward, hence the negative sine.
func piePoint(deg int) (x, y float64) {
	rad := float64(deg) * math.Pi / 180
	return pieCenterX + pieRadius*math.Cos(rad), pieCenterY - pieRadius*math.Sin(rad)
}
