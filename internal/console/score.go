package console

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	scoreStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	timeUpStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// FormatScore renders the final score line.
func FormatScore(correct, total int, styled bool) string {
	text := fmt.Sprintf("You scored %d/%d", correct, total)
	if !styled {
		return text
	}
	return scoreStyle.Render(text)
}

// FormatTimeUp renders the notice printed when the time limit ends a session.
func FormatTimeUp(styled bool) string {
	const text = "Time's up!"
	if !styled {
		return text
	}
	return timeUpStyle.Render(text)
}

// FormatWarning renders a warning line.
func FormatWarning(text string, styled bool) string {
	if !styled {
		return text
	}
	return warningStyle.Render(text)
}
