package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileName is the config file looked up in the working directory.
const FileName = ".quizrun.yml"

// FindConfigPath returns the config file in dir, or "" when there is none.
// An empty dir means the working directory.
func FindConfigPath(dir string) (string, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		dir = wd
	}
	path := filepath.Join(dir, FileName)
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("stat config path %q: %w", path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("config path %q is a directory", path)
	}
	return path, nil
}
