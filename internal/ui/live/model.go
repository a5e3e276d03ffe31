package live

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Model renders a live console UI using Bubble Tea.
type Model struct {
	state     State
	input     textinput.Model
	countdown timer.Model
	timed     bool
	events    <-chan Event
	submit    func(string)
	abort     func()
	styles    styles
}

// Options configures the live UI model.
type Options struct {
	NoColor bool
	// OnAbort runs when the user quits before the session has finished.
	OnAbort func()
}

// NewModel constructs a live UI model reading session events and passing
// submitted answers to submit.
func NewModel(events <-chan Event, submit func(string), opts Options) Model {
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "answer"
	input.Focus()
	if submit == nil {
		submit = func(string) {}
	}
	abort := opts.OnAbort
	if abort == nil {
		abort = func() {}
	}
	return Model{
		state:  State{},
		input:  input,
		events: events,
		submit: submit,
		abort:  abort,
		styles: newStyles(opts.NoColor),
	}
}

// State returns the current UI state.
func (m Model) State() State {
	return m.state
}

// Init starts the cursor blink and waits for the first event.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, waitForEvent(m.events))
}

// Update consumes session events, key presses, and countdown ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.input.Width = max(typed.Width-4, 10)
		return m, nil
	case tea.KeyMsg:
		switch typed.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			if !m.state.Finished {
				m.abort()
			}
			return m, tea.Quit
		case tea.KeyEnter:
			if m.state.Finished {
				return m, tea.Quit
			}
			value := m.input.Value()
			m.input.Reset()
			m.state = appendLine(m.state, "> "+value)
			m.submit(value)
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	case EventMsg:
		var cmd tea.Cmd
		m, cmd = applyEvent(m, typed.Event)
		return m, tea.Batch(cmd, waitForEvent(m.events))
	case timer.TickMsg, timer.StartStopMsg, timer.TimeoutMsg:
		var cmd tea.Cmd
		m.countdown, cmd = m.countdown.Update(msg)
		return m, cmd
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the live UI.
func (m Model) View() string {
	remaining := ""
	if m.timed {
		remaining = m.countdown.View()
	}
	sections := []string{
		renderHeader(m.state, remaining, m.styles),
		renderSummary(m.state, m.styles),
		"",
		renderLog(m.state),
	}
	if !m.state.Finished {
		sections = append(sections, m.input.View())
	}
	sections = append(sections, renderFooter(m.state, m.styles))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// EventMsg wraps a UI event for Bubble Tea.
type EventMsg struct {
	Event Event
}

// waitForEvent blocks until a UI event is available.
func waitForEvent(events <-chan Event) tea.Cmd {
	return func() tea.Msg {
		if events == nil {
			return nil
		}
		event, ok := <-events
		if !ok {
			return tea.Quit()
		}
		return EventMsg{Event: event}
	}
}

// applyEvent mutates model state based on a UI event.
func applyEvent(m Model, event Event) (Model, tea.Cmd) {
	switch event.Kind {
	case EventSessionStart:
		m.state.SessionID = event.Session.ID
		m.state.Total = event.Session.Total
		if event.Session.Timed {
			m.timed = true
			m.countdown = timer.NewWithInterval(event.Session.Limit, time.Second)
			return m, m.countdown.Init()
		}
	case EventLine:
		m.state = appendLine(m.state, event.Text)
	case EventQuestion:
		m.state = Reduce(m.state, event.Question)
	case EventSessionEnd:
		m.state.Finished = true
		m.state.Result = event.Result
		if m.timed {
			return m, m.countdown.Stop()
		}
	}
	return m, nil
}
