package session

import (
	"context"
	"io"
	"strings"
	"sync"

	"quizrun/internal/question"
)

// inputStep is one scripted ReadLine result.
type inputStep struct {
	line string
	err  error
	wait <-chan struct{}
}

// scriptedInput replays steps, then blocks until release is closed or
// returns io.EOF when release is nil.
type scriptedInput struct {
	mu      sync.Mutex
	steps   []inputStep
	release chan struct{}
	reads   int
}

func lines(values ...string) []inputStep {
	steps := make([]inputStep, 0, len(values))
	for _, value := range values {
		steps = append(steps, inputStep{line: value})
	}
	return steps
}

func newScriptedInput(steps ...inputStep) *scriptedInput {
	return &scriptedInput{steps: steps}
}

// blockAfterSteps makes reads past the script block until the returned func is called.
func (s *scriptedInput) blockAfterSteps() func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.release = make(chan struct{})
	var once sync.Once
	release := s.release
	return func() { once.Do(func() { close(release) }) }
}

func (s *scriptedInput) ReadLine() (string, error) {
	s.mu.Lock()
	s.reads++
	if len(s.steps) == 0 {
		release := s.release
		s.mu.Unlock()
		if release != nil {
			<-release
		}
		return "", io.EOF
	}
	step := s.steps[0]
	s.steps = s.steps[1:]
	s.mu.Unlock()
	if step.wait != nil {
		<-step.wait
	}
	return step.line, step.err
}

func (s *scriptedInput) readCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reads
}

type panicInput struct{}

func (panicInput) ReadLine() (string, error) {
	panic("input device vanished")
}

// recordingOutput captures written lines.
type recordingOutput struct {
	mu    sync.Mutex
	lines []string
}

func (r *recordingOutput) WriteLine(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, text)
}

func (r *recordingOutput) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.lines...)
}

func (r *recordingOutput) count(text string) int {
	total := 0
	for _, line := range r.Lines() {
		if line == text {
			total++
		}
	}
	return total
}

func (r *recordingOutput) prompts() []string {
	var out []string
	for _, line := range r.Lines() {
		if strings.HasPrefix(line, "Question #") {
			out = append(out, line)
		}
	}
	return out
}

// recordingObserver captures observer callbacks.
type recordingObserver struct {
	mu      sync.Mutex
	starts  []SessionInfo
	events  []QuestionEvent
	results []Result
}

func (r *recordingObserver) OnSessionStart(info SessionInfo) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.starts = append(r.starts, info)
}

func (r *recordingObserver) OnQuestionEvent(event QuestionEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recordingObserver) OnSessionEnd(result Result) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results = append(r.results, result)
}

func (r *recordingObserver) eventTypes() []QuestionEventType {
	r.mu.Lock()
	defer r.mu.Unlock()
	types := make([]QuestionEventType, 0, len(r.events))
	for _, event := range r.events {
		types = append(types, event.Type)
	}
	return types
}

// staticSource returns fixed pairs or a fixed error.
type staticSource struct {
	pairs []question.Pair
	err   error
}

func (s staticSource) Load(context.Context) ([]question.Pair, error) {
	if s.err != nil {
		return nil, s.err
	}
	return append([]question.Pair(nil), s.pairs...), nil
}

func arithmeticPairs() []question.Pair {
	return []question.Pair{
		{Question: "1+1", Answer: "2"},
		{Question: "2+2", Answer: "4"},
	}
}
