package chart

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

const defaultTextWidth = 40

// Text draws a horizontal bar chart with one row per bar.
type Text struct {
	Width int // widest bar, in characters
}

// NewText returns a Text renderer whose longest bar is width characters wide.
func NewText(width int) *Text {
	if width <= 0 {
		width = defaultTextWidth
	}
	return &Text{Width: width}
}

// Render writes the title followed by one "label | ### value" row per bar.
func (c *Text) Render(w io.Writer, title string, bars []Bar) error {
	if err := checkBars(bars); err != nil {
		return err
	}

	labelW := 0
	for _, b := range bars {
		labelW = max(labelW, utf8.RuneCountInString(b.Label))
	}
	top := max(maxValue(bars), 1)

	var sb strings.Builder
	sb.WriteString(title)
	sb.WriteString("\n")
	for _, b := range bars {
		n := scale(b.Value, top, c.Width)
		if b.Value > 0 && n == 0 {
			n = 1
		}
		pad := labelW - utf8.RuneCountInString(b.Label)
		fmt.Fprintf(&sb, "%s%s | %s %d\n", b.Label, strings.Repeat(" ", pad), strings.Repeat("#", n), b.Value)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
