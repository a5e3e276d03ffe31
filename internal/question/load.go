package question

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileSource loads questions from a CSV, XLSX, YAML, or JSON file.
type FileSource struct {
	Path string
}

// Load reads and parses the file selected by its extension.
func (source FileSource) Load(ctx context.Context) ([]Pair, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return LoadFile(source.Path)
}

// LoadFile reads, parses, and validates a question file.
func LoadFile(path string) ([]Pair, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read questions: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		spec, err := parseJSONSpec(data)
		if err != nil {
			return nil, err
		}
		return validatedPairs(spec)
	case ".yml", ".yaml":
		spec, err := parseYAMLSpec(data)
		if err != nil {
			return nil, err
		}
		return validatedPairs(spec)
	case ".xlsx":
		return ParseXLSX(data)
	default:
		return ParseCSV(data)
	}
}

func validatedPairs(spec Spec) ([]Pair, error) {
	normalized, err := NormalizeSpec(spec)
	if err != nil {
		return nil, err
	}
	if normalized.Questions == nil {
		return []Pair{}, nil
	}
	return normalized.Questions, nil
}

func parseJSONSpec(data []byte) (Spec, error) {
	var spec Spec
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&spec); err != nil {
		return Spec{}, fmt.Errorf("parse json: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Spec{}, fmt.Errorf("parse json: multiple documents are not supported")
		}
		return Spec{}, fmt.Errorf("parse json: %w", err)
	}
	return spec, nil
}

func parseYAMLSpec(data []byte) (Spec, error) {
	var spec Spec
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return Spec{}, fmt.Errorf("parse yaml: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Spec{}, fmt.Errorf("parse yaml: multiple documents are not supported")
		}
		return Spec{}, fmt.Errorf("parse yaml: %w", err)
	}
	return spec, nil
}
