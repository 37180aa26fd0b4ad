package chart

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"
)

const (
	defaultWidth  = 1000
	defaultHeight = 500

	marginLeft   = 70
	marginRight  = 20
	marginTop    = 50
	marginBottom = 130

	barColor  = "fill:lightblue;stroke:steelblue;stroke-width:1"
	axisStyle = "stroke:black;stroke-width:1"
)

// SVG draws a vertical bar chart: labels on the x axis, values on the y axis.
type SVG struct {
	Width  int
	Height int
}

// NewSVG returns an SVG renderer, falling back to 1000x500 for non-positive sizes.
func NewSVG(width, height int) *SVG {
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	return &SVG{Width: width, Height: height}
}

// Render writes a complete SVG document to w.
func (c *SVG) Render(w io.Writer, title string, bars []Bar) error {
	if err := checkBars(bars); err != nil {
		return err
	}

	plotW := max(c.Width-marginLeft-marginRight, len(bars))
	plotH := max(c.Height-marginTop-marginBottom, 1)
	originX := marginLeft
	originY := marginTop + plotH

	slot := plotW / len(bars)
	barW := max(slot*7/10, 1)
	top := max(maxValue(bars), 1)

	canvas := svg.New(w)
	canvas.Start(c.Width, c.Height)
	canvas.Title(title)
	canvas.Rect(0, 0, c.Width, c.Height, "fill:white")
	canvas.Text(c.Width/2, marginTop/2, title, "text-anchor:middle;font-size:18px;font-family:sans-serif")

	canvas.Line(originX, marginTop, originX, originY, axisStyle)
	canvas.Line(originX, originY, originX+plotW, originY, axisStyle)

	for _, tick := range ticks(top) {
		y := originY - scale(tick, top, plotH)
		canvas.Line(originX-4, y, originX, y, axisStyle)
		canvas.Text(originX-8, y+4, fmt.Sprintf("%d", tick), "text-anchor:end;font-size:11px;font-family:sans-serif")
	}

	for i, b := range bars {
		h := scale(b.Value, top, plotH)
		x := originX + i*slot + (slot-barW)/2
		canvas.Rect(x, originY-h, barW, h, barColor)

		// rotated 45 degrees so long names do not overlap
		canvas.TranslateRotate(x+barW/2, originY+12, 45)
		canvas.Text(0, 0, b.Label, "font-size:11px;font-family:sans-serif")
		canvas.Gend()
	}

	canvas.Text(originX+plotW/2, c.Height-10, "Product Names", "text-anchor:middle;font-size:13px;font-family:sans-serif")
	canvas.TranslateRotate(18, marginTop+plotH/2, -90)
	canvas.Text(0, 0, "Quantities", "text-anchor:middle;font-size:13px;font-family:sans-serif")
	canvas.Gend()

	canvas.End()
	return nil
}

// ticks returns up to six evenly spaced integer tick values from 0 to top.
func ticks(top int) []int {
	step := max(top/5, 1)
	out := make([]int, 0, 7)
	for v := 0; ; v += step {
		out = append(out, v)
		if v > top-step {
			break
		}
	}
	if out[len(out)-1] != top {
		out = append(out, top)
	}
	return out
}
