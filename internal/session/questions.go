package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"quizrun/internal/question"
)

// RetryNotice is written when reading an answer fails and the question is re-read.
const RetryNotice = "Problem reading answer, try again."

// QuestionRunner asks each question of a set in order and reports correct answers.
type QuestionRunner struct {
	Set       *question.Set
	Input     LineReader
	Output    LineWriter
	Observer  Observer
	SessionID string
}

type readStatus int

const (
	readOK readStatus = iota
	readClosed
	readCanceled
)

// Run asks every question then sends SessionOver. It returns without
// SessionOver when ctx is canceled or when the input or output panics.
func (r QuestionRunner) Run(ctx context.Context, signals chan<- Signal) {
	defer func() {
		if recovered := recover(); recovered != nil {
			r.emit(-1, question.Pair{}, QuestionRunnerPanic, "", fmt.Sprint(recovered))
		}
	}()

	for index, pair := range r.Set.All() {
		if ctx.Err() != nil {
			return
		}
		r.Output.WriteLine(fmt.Sprintf("Question #%d: %s", index+1, pair.Question))
		r.emit(index, pair, QuestionAsked, "", "")

		answer, status := r.readAnswer(ctx, index, pair)
		if status == readCanceled {
			return
		}
		if status == readClosed {
			break
		}
		if !question.Matches(pair.Answer, answer) {
			r.emit(index, pair, QuestionIncorrect, answer, "")
			continue
		}
		r.emit(index, pair, QuestionCorrect, answer, "")
		if !send(ctx, signals, CorrectAnswer) {
			return
		}
	}
	send(ctx, signals, SessionOver)
}

// readAnswer blocks for one line, re-reading on transient failures.
func (r QuestionRunner) readAnswer(ctx context.Context, index int, pair question.Pair) (string, readStatus) {
	for {
		line, err := r.Input.ReadLine()
		if err == nil {
			return line, readOK
		}
		if errors.Is(err, io.EOF) {
			r.emit(index, pair, QuestionInputClosed, "", err.Error())
			return "", readClosed
		}
		if ctx.Err() != nil {
			return "", readCanceled
		}
		r.emit(index, pair, QuestionReadError, "", err.Error())
		r.Output.WriteLine(RetryNotice)
	}
}

func (r QuestionRunner) emit(index int, pair question.Pair, eventType QuestionEventType, answer, errText string) {
	if r.Observer == nil {
		return
	}
	r.Observer.OnQuestionEvent(QuestionEvent{
		SessionID: r.SessionID,
		Index:     index,
		Text:      pair.Question,
		Type:      eventType,
		Answer:    answer,
		Error:     errText,
		EmittedAt: time.Now(),
	})
}
