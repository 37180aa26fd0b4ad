package config

import (
	"fmt"
	"log"
	"strings"
)

// ChartConfig controls the stock visualization output.
type ChartConfig struct {
	Output    string `koanf:"output"`
	Width     int    `koanf:"width"`
	Height    int    `koanf:"height"`
	TextWidth int    `koanf:"textwidth"`
}

const (
	defaultChartOutput    = "stock.svg"
	defaultChartWidth     = 1000
	defaultChartHeight    = 500
	defaultChartTextWidth = 40
)

// String returns a string representation of the ChartConfig.
func (c *ChartConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- Chart ---\n")
	b.WriteString(fmt.Sprintf("  output: %s\n", c.Output))
	b.WriteString(fmt.Sprintf("  width: %d\n", c.Width))
	b.WriteString(fmt.Sprintf("  height: %d\n", c.Height))
	b.WriteString(fmt.Sprintf("  textwidth: %d\n", c.TextWidth))
	return b.String()
}

func (c *ChartConfig) Validate() error {
	if c.Output == "" {
		log.Println("Using default value for chart output")
		c.Output = defaultChartOutput
	}
	if c.Width < 0 || c.Height < 0 || c.TextWidth < 0 {
		return fmt.Errorf("chart dimensions must not be negative: width=%d height=%d textwidth=%d", c.Width, c.Height, c.TextWidth)
	}
	if c.Width == 0 {
		c.Width = defaultChartWidth
	}
	if c.Height == 0 {
		c.Height = defaultChartHeight
	}
	if c.TextWidth == 0 {
		c.TextWidth = defaultChartTextWidth
	}
	return nil
}
