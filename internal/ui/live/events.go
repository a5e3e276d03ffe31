package live

import "quizrun/internal/session"

// EventKind identifies the type of live UI event.
type EventKind int

const (
	// EventSessionStart signals that questions are about to be asked.
	EventSessionStart EventKind = iota
	// EventLine delivers a line written by the session.
	EventLine
	// EventQuestion delivers a question status update.
	EventQuestion
	// EventSessionEnd delivers the final result.
	EventSessionEnd
)

// Event carries a UI update payload.
type Event struct {
	Kind     EventKind
	Text     string
	Session  session.SessionInfo
	Question session.QuestionEvent
	Result   session.Result
}
