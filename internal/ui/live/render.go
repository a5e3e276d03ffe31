package live

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	title   lipgloss.Style
	clock   lipgloss.Style
	good    lipgloss.Style
	bad     lipgloss.Style
	muted   lipgloss.Style
	summary lipgloss.Style
}

func newStyles(noColor bool) styles {
	if noColor {
		plain := lipgloss.NewStyle()
		return styles{title: plain, clock: plain, good: plain, bad: plain, muted: plain, summary: plain}
	}
	return styles{
		title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		clock:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220")),
		good:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		bad:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		summary: lipgloss.NewStyle().Bold(true),
	}
}

// renderHeader shows the session id and remaining time.
func renderHeader(state State, remaining string, st styles) string {
	id := state.SessionID
	if len(id) > 8 {
		id = id[:8]
	}
	parts := []string{st.title.Render("quizrun")}
	if id != "" {
		parts = append(parts, st.muted.Render("session "+id))
	}
	if remaining != "" {
		parts = append(parts, st.clock.Render("time left "+remaining))
	}
	return strings.Join(parts, "  ")
}

// renderSummary shows progress and running counts.
func renderSummary(state State, st styles) string {
	progress := fmt.Sprintf("Question %d/%d", state.Current, state.Total)
	correct := st.good.Render(fmt.Sprintf("correct %d", state.Correct))
	incorrect := st.bad.Render(fmt.Sprintf("incorrect %d", state.Incorrect))
	line := st.summary.Render(progress) + "  " + correct + "  " + incorrect
	if state.ReadErrors > 0 {
		line += "  " + st.muted.Render(fmt.Sprintf("read errors %d", state.ReadErrors))
	}
	return line
}

// renderLog shows recent session output.
func renderLog(state State) string {
	return strings.Join(state.Lines, "\n")
}

// renderFooter shows key hints or the final score.
func renderFooter(state State, st styles) string {
	if state.Finished {
		return st.summary.Render(fmt.Sprintf("Finished (%s): %s", state.Result.Outcome, state.Result.Score()))
	}
	return st.muted.Render("enter submit  ctrl+c quit")
}
