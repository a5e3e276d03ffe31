package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"quizrun/internal/questiondb"
)

// Issue captures a validation problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates config validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

// issueCollector accumulates validation issues.
type issueCollector struct {
	issues []Issue
}

func (c *issueCollector) add(field, message string) {
	c.issues = append(c.issues, Issue{Field: field, Message: message})
}

func (c *issueCollector) result() error {
	if len(c.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: c.issues}
}

// Validate checks a normalized file and resolves it against baseDir, the
// directory holding the config file.
func Validate(file File, baseDir string) (Config, error) {
	collector := &issueCollector{}
	cfg := Default()

	switch file.Version {
	case 0:
		collector.add("version", "is required")
	case 1:
	default:
		collector.add("version", fmt.Sprintf("unsupported version %d", file.Version))
	}

	if file.Questions != "" {
		cfg.Questions = file.Questions
		if !filepath.IsAbs(cfg.Questions) && baseDir != "" {
			cfg.Questions = filepath.Join(baseDir, cfg.Questions)
		}
	}

	if file.Table != "" {
		if _, err := questiondb.TableName(file.Table); err != nil {
			collector.add("table", "must be a plain identifier")
		}
		cfg.Table = file.Table
	}

	if strings.EqualFold(file.TimeLimit, NoLimit) {
		cfg.NoTimeLimit = true
	} else if file.TimeLimit != "" {
		limit, err := time.ParseDuration(file.TimeLimit)
		switch {
		case err != nil:
			collector.add("time_limit", fmt.Sprintf("invalid duration %q (use a Go duration or %q)", file.TimeLimit, NoLimit))
		case limit < 0:
			collector.add("time_limit", "must not be negative")
		default:
			cfg.TimeLimit = limit
		}
	}

	switch file.UI {
	case UIAuto, UILive, UIPlain:
		cfg.UI = file.UI
	default:
		collector.add("ui", fmt.Sprintf("unsupported mode %q (want auto, live, or plain)", file.UI))
	}

	cfg.Shuffle = file.Shuffle
	cfg.NoColor = file.NoColor
	if file.WaitForReady != nil {
		cfg.WaitForReady = *file.WaitForReady
	}

	if err := collector.result(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
