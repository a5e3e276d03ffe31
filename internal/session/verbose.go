package session

import (
	"fmt"
	"io"
	"sync"
	"time"

	"quizrun/internal/console"
)

const verbosePrefix = "[verbose]"

const (
	ansiReset = "\x1b[0m"
	ansiBold  = "\x1b[1m"
	ansiDim   = "\x1b[2m"
	ansiGray  = "\x1b[90m"
	ansiGreen = "\x1b[32m"
	ansiRed   = "\x1b[31m"
	ansiBlue  = "\x1b[34m"
)

type verboseStyle int

const (
	styleDefault verboseStyle = iota
	styleSession
	styleScore
	styleError
)

// VerboseObserver logs session events as prefixed lines.
type VerboseObserver struct {
	mu      sync.Mutex
	w       io.Writer
	palette verbosePalette
}

// NewVerboseObserver logs to w, with ANSI styling when w is a terminal and
// noColor is false.
func NewVerboseObserver(w io.Writer, noColor bool) *VerboseObserver {
	return &VerboseObserver{w: w, palette: verbosePalette{enabled: console.UseStyling(w, noColor)}}
}

// OnSessionStart logs the question count and limit.
func (v *VerboseObserver) OnSessionStart(info SessionInfo) {
	limit := "none"
	if info.Timed {
		limit = info.Limit.String()
	}
	v.logf(styleSession, "session %s started: questions=%d limit=%s", info.ID, info.Total, limit)
}

// OnQuestionEvent logs question status updates.
func (v *VerboseObserver) OnQuestionEvent(event QuestionEvent) {
	switch event.Type {
	case QuestionAsked:
		v.logf(styleDefault, "question %d asked", event.Index+1)
	case QuestionCorrect, QuestionIncorrect:
		v.logf(styleDefault, "question %d %s answer=%q", event.Index+1, event.Type, event.Answer)
	case QuestionRunnerPanic:
		v.logf(styleError, "question loop panicked: %s", event.Error)
	case QuestionReadError, QuestionInputClosed:
		v.logf(styleError, "question %d %s: %s", event.Index+1, event.Type, event.Error)
	default:
		v.logf(styleDefault, "question %d %s", event.Index+1, event.Type)
	}
}

// OnSessionEnd logs the final score.
func (v *VerboseObserver) OnSessionEnd(result Result) {
	v.logf(styleScore, "session %s %s: score=%s elapsed=%s", result.SessionID, result.Outcome, result.Score(), result.Elapsed.Round(time.Millisecond))
}

func (v *VerboseObserver) logf(style verboseStyle, format string, args ...any) {
	if v == nil || v.w == nil {
		return
	}
	line := fmt.Sprintf(format, args...)
	v.mu.Lock()
	defer v.mu.Unlock()
	fmt.Fprintf(v.w, "%s %s\n", v.palette.prefix(verbosePrefix), v.palette.apply(style, line))
}

type verbosePalette struct {
	enabled bool
}

func (p verbosePalette) prefix(text string) string {
	if !p.enabled {
		return text
	}
	return ansiDim + ansiGray + text + ansiReset
}

func (p verbosePalette) apply(style verboseStyle, text string) string {
	if !p.enabled {
		return text
	}
	switch style {
	case styleSession:
		return ansiBold + ansiBlue + text + ansiReset
	case styleScore:
		return ansiBold + ansiGreen + text + ansiReset
	case styleError:
		return ansiBold + ansiRed + text + ansiReset
	default:
		return text
	}
}
