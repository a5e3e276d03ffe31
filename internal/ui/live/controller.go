package live

import (
	"io"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"quizrun/internal/session"
)

// Controller runs the live UI and serves as the session's input, output,
// and observer.
type Controller struct {
	mu        sync.Mutex
	closed    bool
	events    chan Event
	answers   chan string
	inputOnce sync.Once
	program   *tea.Program
	done      chan struct{}
}

// Start launches a live UI reading keys from stdin and drawing to stdout.
func Start(stdin io.Reader, stdout io.Writer, opts Options) *Controller {
	if stdin == nil {
		stdin = os.Stdin
	}
	if stdout == nil {
		stdout = os.Stdout
	}
	controller := newController()
	model := NewModel(controller.events, controller.submit, opts)
	controller.program = tea.NewProgram(model, tea.WithInput(stdin), tea.WithOutput(stdout), tea.WithAltScreen())
	go func() {
		defer close(controller.done)
		defer controller.closeInput()
		_, _ = controller.program.Run()
	}()
	return controller
}

func newController() *Controller {
	return &Controller{
		events:  make(chan Event, 256),
		answers: make(chan string, 16),
		done:    make(chan struct{}),
	}
}

// ReadLine blocks until an answer is submitted. It returns io.EOF once the
// UI has exited.
func (c *Controller) ReadLine() (string, error) {
	answer, ok := <-c.answers
	if !ok {
		return "", io.EOF
	}
	return answer, nil
}

// WriteLine shows a line of session output.
func (c *Controller) WriteLine(text string) {
	c.send(Event{Kind: EventLine, Text: text})
}

// OnSessionStart starts the countdown.
func (c *Controller) OnSessionStart(info session.SessionInfo) {
	c.send(Event{Kind: EventSessionStart, Session: info})
}

// OnQuestionEvent forwards question status updates to the UI.
func (c *Controller) OnQuestionEvent(event session.QuestionEvent) {
	c.send(Event{Kind: EventQuestion, Question: event})
}

// OnSessionEnd shows the final score and closes the UI.
func (c *Controller) OnSessionEnd(result session.Result) {
	c.send(Event{Kind: EventSessionEnd, Result: result})
	c.Close()
}

// Close stops delivering events; the UI quits after draining them.
func (c *Controller) Close() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.events)
}

// Wait blocks until the UI has exited.
func (c *Controller) Wait() {
	if c == nil {
		return
	}
	<-c.done
}

// submit hands an answer to a pending ReadLine without blocking the UI.
func (c *Controller) submit(answer string) {
	select {
	case c.answers <- answer:
	default:
	}
}

// closeInput makes pending and future reads return io.EOF.
func (c *Controller) closeInput() {
	c.inputOnce.Do(func() {
		close(c.answers)
	})
}

// send enqueues an event without blocking the caller. Events after Close are dropped.
func (c *Controller) send(event Event) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	select {
	case c.events <- event:
	default:
	}
}
