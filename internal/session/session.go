package session

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"quizrun/internal/question"
)

// ReadyPrompt is written before the timer starts when WaitForReady is set.
const ReadyPrompt = "Press Enter when ready"

// RunParams configures a single quiz session.
type RunParams struct {
	Source   question.Source
	Input    LineReader
	Output   LineWriter
	Observer Observer
	// Duration is the time limit. A zero or negative limit ends the session
	// as soon as it starts, unless NoTimeLimit is set.
	Duration     time.Duration
	NoTimeLimit  bool
	Shuffle      bool
	WaitForReady bool
	// Rand drives shuffling; nil uses the package-level source.
	Rand *rand.Rand
	// SessionID overrides the generated session id.
	SessionID string
}

// Run loads the questions, races the question loop against the timer, and
// returns the score once the first SessionOver arrives. Only setup failures
// are returned as errors; no goroutine is started when they occur.
func Run(ctx context.Context, params RunParams) (Result, error) {
	if err := validateParams(params); err != nil {
		return Result{}, err
	}
	pairs, err := params.Source.Load(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("load questions: %w", err)
	}

	set := question.NewSet(pairs)
	if params.Shuffle {
		set.Shuffle(params.Rand)
	}
	total := set.Len()

	sessionID := params.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	observer := params.Observer
	if observer == nil {
		observer = Observers(nil)
	}

	if params.WaitForReady {
		params.Output.WriteLine(ReadyPrompt)
		_, _ = params.Input.ReadLine()
	}

	sessionCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	startedAt := time.Now()
	observer.OnSessionStart(SessionInfo{
		ID:        sessionID,
		Total:     total,
		Limit:     params.Duration,
		Timed:     !params.NoTimeLimit,
		StartedAt: startedAt,
	})

	signals := make(chan Signal)
	var timer *Timer
	if !params.NoTimeLimit {
		timer = StartTimer(sessionCtx, params.Duration, signals)
	}

	runnerDone := make(chan struct{})
	questionRunner := QuestionRunner{
		Set:       set,
		Input:     params.Input,
		Output:    params.Output,
		Observer:  observer,
		SessionID: sessionID,
	}
	go func() {
		defer close(runnerDone)
		questionRunner.Run(sessionCtx, signals)
	}()
	go closeWhenDone(signals, runnerDone, timer)

	correct, outcome := receive(ctx, signals, timer)
	result := Result{
		SessionID: sessionID,
		Correct:   correct,
		Total:     total,
		Outcome:   outcome,
		Elapsed:   time.Since(startedAt),
	}
	observer.OnSessionEnd(result)
	return result, nil
}

func validateParams(params RunParams) error {
	switch {
	case params.Source == nil:
		return errors.New("question source is required")
	case params.Input == nil:
		return errors.New("input reader is required")
	case params.Output == nil:
		return errors.New("output writer is required")
	}
	return nil
}

// receive drains signals until the first SessionOver, a closed channel, or
// cancellation of the caller context.
func receive(ctx context.Context, signals <-chan Signal, timer *Timer) (int, Outcome) {
	correct := 0
	for {
		select {
		case <-ctx.Done():
			return correct, OutcomeCanceled
		case sig, ok := <-signals:
			if !ok {
				if ctx.Err() != nil {
					return correct, OutcomeCanceled
				}
				return correct, OutcomeInterrupted
			}
			switch sig {
			case CorrectAnswer:
				correct++
			case SessionOver:
				if timer.Expired() {
					return correct, OutcomeTimedOut
				}
				return correct, OutcomeCompleted
			}
		}
	}
}

// closeWhenDone closes signals once every producer has exited.
func closeWhenDone(signals chan<- Signal, runnerDone <-chan struct{}, timer *Timer) {
	<-runnerDone
	if timer != nil {
		<-timer.Done()
	}
	close(signals)
}
