// Package chart renders stock levels as bar charts.
package chart

import (
	"io"

	producterrors "github.com/abgdnv/stockroom/internal/product/errors"
)

// Bar is one labelled value of a chart, in display order.
type Bar struct {
	Label string
	Value int
}

// Renderer draws bars onto w.
// Implementations return ErrNoChartData and write nothing when bars is empty.
type Renderer interface {
	Render(w io.Writer, title string, bars []Bar) error
}

// maxValue returns the largest bar value, never less than zero.
func maxValue(bars []Bar) int {
	largest := 0
	for _, b := range bars {
		largest = max(largest, b.Value)
	}
	return largest
}

// scale maps value onto [0, length] relative to top. The ratio is taken in
// floating point so large quantities cannot overflow.
func scale(value, top, length int) int {
	if value <= 0 || top <= 0 || length <= 0 {
		return 0
	}
	n := int(float64(value) / float64(top) * float64(length))
	return min(max(n, 0), length)
}

func checkBars(bars []Bar) error {
	if len(bars) == 0 {
		return producterrors.ErrNoChartData
	}
	return nil
}
