package live

import "quizrun/internal/session"

// maxLogLines bounds the scrollback kept for display.
const maxLogLines = 12

// State holds the live UI view of a session.
type State struct {
	SessionID  string
	Total      int
	Current    int
	Prompt     string
	Correct    int
	Incorrect  int
	ReadErrors int
	Lines      []string
	Finished   bool
	Result     session.Result
}

// Reduce applies a question event to the UI state.
func Reduce(state State, event session.QuestionEvent) State {
	switch event.Type {
	case session.QuestionAsked:
		state.Current = event.Index + 1
		state.Prompt = event.Text
	case session.QuestionCorrect:
		state.Correct++
	case session.QuestionIncorrect:
		state.Incorrect++
	case session.QuestionReadError:
		state.ReadErrors++
	}
	return state
}

// appendLine adds a line to the scrollback, dropping the oldest beyond maxLogLines.
func appendLine(state State, line string) State {
	state.Lines = append(state.Lines, line)
	if overflow := len(state.Lines) - maxLogLines; overflow > 0 {
		state.Lines = append([]string(nil), state.Lines[overflow:]...)
	}
	return state
}
