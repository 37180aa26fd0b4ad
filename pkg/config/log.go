package config

import (
	"fmt"
	"log"
	"strings"
)

type LogConfig struct {
	Level  string `koanf:"level"`
	Output string `koanf:"output"`
}

const defaultLogOutput = "stderr"

var validLogLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// String returns a string representation of the log configuration.
func (c *LogConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- Log ---\n")
	b.WriteString(fmt.Sprintf("  level: %s\n", c.Level))
	b.WriteString(fmt.Sprintf("  output: %s\n", c.Output))
	return b.String()
}

func (c *LogConfig) Validate() error {
	if c.Level == "" {
		log.Println("Using default value for log level")
		c.Level = "info"
	}
	if !validLogLevels[c.Level] {
		return fmt.Errorf("invalid log level: %q", c.Level)
	}
	if c.Output == "" {
		c.Output = defaultLogOutput
	}
	return nil
}
