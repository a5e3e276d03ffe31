package cli

import (
	"flag"
	"fmt"
	"path/filepath"
	"strings"

	"quizrun/internal/config"
	"quizrun/internal/question"
	"quizrun/internal/questiondb"
)

// DefaultQuestionsFile is used when neither flags nor config name a source.
const DefaultQuestionsFile = "problems.csv"

// loadSettings reads the config at path, or the working directory's
// .quizrun.yml when path is empty, falling back to defaults.
func loadSettings(path string) (config.Config, error) {
	if strings.TrimSpace(path) == "" {
		found, err := config.FindConfigPath("")
		if err != nil {
			return config.Config{}, err
		}
		if found == "" {
			return config.Default(), nil
		}
		path = found
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// newSource picks the question source for path by extension.
func newSource(path, table string) question.Source {
	if isDuckDBPath(path) {
		return questiondb.Source{Path: path, Table: table}
	}
	return question.FileSource{Path: path}
}

func isDuckDBPath(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".duckdb")
}

func questionsPath(cfg config.Config) string {
	if cfg.Questions == "" {
		return DefaultQuestionsFile
	}
	return cfg.Questions
}

// visited returns the names of flags set on the command line.
func visited(fs *flag.FlagSet) map[string]bool {
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return set
}
