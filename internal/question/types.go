package question

import "context"

// Pair is a single question with its expected answer.
type Pair struct {
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
}

// Spec defines the question file schema loaded from JSON or YAML.
type Spec struct {
	Version   int    `json:"version" yaml:"version"`
	Questions []Pair `json:"questions" yaml:"questions"`
}

// Source yields an ordered list of question pairs.
type Source interface {
	Load(ctx context.Context) ([]Pair, error)
}
