package config

import (
	"strings"

	"github.com/abgdnv/stockroom/pkg/config"
	"github.com/abgdnv/stockroom/pkg/config/configloader"
)

var _ configloader.Validator = (*Config)(nil)

type Config struct {
	Log     config.LogConfig     `koanf:"log"`
	Storage config.StorageConfig `koanf:"storage"`
	Chart   config.ChartConfig   `koanf:"chart"`
}

func (c *Config) String() string {
	var b strings.Builder
	b.WriteString(c.Storage.String())
	b.WriteString(c.Chart.String())
	b.WriteString(c.Log.String())
	return b.String()
}

// Validate checks if the configuration values are valid and fills in defaults.
func (c *Config) Validate() error {
	if err := c.Log.Validate(); err != nil {
		return err
	}
	if err := c.Storage.Validate(); err != nil {
		return err
	}
	if err := c.Chart.Validate(); err != nil {
		return err
	}
	return nil
}
