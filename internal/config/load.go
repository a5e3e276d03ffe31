package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Load reads, parses, normalizes, and validates a config file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	file, err := Parse(data)
	if err != nil {
		return Config{}, err
	}
	Normalize(&file)
	return Validate(file, filepath.Dir(path))
}
