package session

import (
	"context"
	"fmt"
	"time"
)

// Signal is a message sent by the timer or the question runner to the coordinator.
type Signal int

const (
	// CorrectAnswer increments the running score.
	CorrectAnswer Signal = iota + 1
	// SessionOver ends the receive loop.
	SessionOver
)

// String returns the signal name.
func (s Signal) String() string {
	switch s {
	case CorrectAnswer:
		return "correct_answer"
	case SessionOver:
		return "session_over"
	default:
		return fmt.Sprintf("signal(%d)", int(s))
	}
}

// Outcome describes how a session ended.
type Outcome string

const (
	// OutcomeCompleted marks a session whose question loop ended first.
	OutcomeCompleted Outcome = "completed"
	// OutcomeTimedOut marks a session ended by the time limit.
	OutcomeTimedOut Outcome = "timed_out"
	// OutcomeInterrupted marks a signal stream that closed without SessionOver.
	OutcomeInterrupted Outcome = "interrupted"
	// OutcomeCanceled marks a session whose caller context was canceled.
	OutcomeCanceled Outcome = "canceled"
)

// Result is the final score of one session.
type Result struct {
	SessionID string
	Correct   int
	Total     int
	Outcome   Outcome
	Elapsed   time.Duration
}

// Score formats the result as correct/total.
func (r Result) Score() string {
	return fmt.Sprintf("%d/%d", r.Correct, r.Total)
}

// send delivers sig unless the session context is already done. A dropped
// send means the coordinator has stopped receiving.
func send(ctx context.Context, signals chan<- Signal, sig Signal) bool {
	if ctx.Err() != nil {
		return false
	}
	select {
	case signals <- sig:
		return true
	case <-ctx.Done():
		return false
	}
}
