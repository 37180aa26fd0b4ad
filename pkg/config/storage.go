package config

import (
	"fmt"
	"log"
	"strings"
)

// StorageConfig points at the flat file the catalog is loaded from and saved to.
type StorageConfig struct {
	File     string `koanf:"file"`
	AutoLoad bool   `koanf:"autoload"`
	AutoSave bool   `koanf:"autosave"`
}

const defaultStorageFile = "inventory.txt"

// String returns a string representation of the StorageConfig.
func (c *StorageConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- Storage ---\n")
	b.WriteString(fmt.Sprintf("  file: %s\n", c.File))
	b.WriteString(fmt.Sprintf("  autoload: %t\n", c.AutoLoad))
	b.WriteString(fmt.Sprintf("  autosave: %t\n", c.AutoSave))
	return b.String()
}

func (c *StorageConfig) Validate() error {
	if c.File == "" {
		log.Println("Using default value for storage file")
		c.File = defaultStorageFile
	}
	return nil
}
