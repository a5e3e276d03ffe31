package question

import (
	"fmt"
	"strings"
)

// Issue captures a validation problem in a question file.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("question file validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// NormalizeSpec trims question text and validates a question file.
// Answers are kept verbatim; matching normalizes them later.
// An empty question list is valid.
func NormalizeSpec(spec Spec) (Spec, error) {
	collector := &issueCollector{}
	if spec.Version == 0 {
		collector.add("version", "is required")
	} else if spec.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", spec.Version))
	}

	for i, pair := range spec.Questions {
		prefix := fmt.Sprintf("questions[%d]", i)
		pair.Question = strings.TrimSpace(pair.Question)
		if pair.Question == "" {
			collector.add(prefix+".question", "is required")
		}
		spec.Questions[i] = pair
	}

	if err := collector.result(); err != nil {
		return Spec{}, err
	}
	return spec, nil
}
