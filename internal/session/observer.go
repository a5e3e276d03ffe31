package session

import "time"

// QuestionEventType identifies a question status update for observers.
type QuestionEventType string

const (
	// QuestionAsked marks a prompt written to the output.
	QuestionAsked QuestionEventType = "asked"
	// QuestionCorrect marks a matching answer.
	QuestionCorrect QuestionEventType = "correct"
	// QuestionIncorrect marks a non-matching answer.
	QuestionIncorrect QuestionEventType = "incorrect"
	// QuestionReadError marks a transient input failure that will be retried.
	QuestionReadError QuestionEventType = "read_error"
	// QuestionInputClosed marks input that ended before the question was answered.
	QuestionInputClosed QuestionEventType = "input_closed"
	// QuestionRunnerPanic marks a recovered panic in the question loop.
	QuestionRunnerPanic QuestionEventType = "runner_panic"
)

// QuestionEvent carries a single status update for a question.
type QuestionEvent struct {
	SessionID string
	Index     int
	Text      string
	Type      QuestionEventType
	Answer    string
	Error     string
	EmittedAt time.Time
}

// SessionInfo describes a session that is about to start asking questions.
type SessionInfo struct {
	ID        string
	Total     int
	Limit     time.Duration
	Timed     bool
	StartedAt time.Time
}

// Observer receives session lifecycle events for UI or logging.
// OnQuestionEvent is called from the question goroutine.
type Observer interface {
	// OnSessionStart signals that the timer and question loop are starting.
	OnSessionStart(info SessionInfo)
	// OnQuestionEvent delivers a question status update.
	OnQuestionEvent(event QuestionEvent)
	// OnSessionEnd delivers the final result.
	OnSessionEnd(result Result)
}

// Observers fans events out to each non-nil observer in order.
type Observers []Observer

// OnSessionStart forwards to every observer.
func (list Observers) OnSessionStart(info SessionInfo) {
	for _, observer := range list {
		if observer != nil {
			observer.OnSessionStart(info)
		}
	}
}

// OnQuestionEvent forwards to every observer.
func (list Observers) OnQuestionEvent(event QuestionEvent) {
	for _, observer := range list {
		if observer != nil {
			observer.OnQuestionEvent(event)
		}
	}
}

// OnSessionEnd forwards to every observer.
func (list Observers) OnSessionEnd(result Result) {
	for _, observer := range list {
		if observer != nil {
			observer.OnSessionEnd(result)
		}
	}
}
