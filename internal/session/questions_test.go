package session

import (
	"context"
	"testing"
	"time"

	"quizrun/internal/question"
	"quizrun/internal/testutil"
)

// TestQuestionRunnerSignalOrder verifies correct answers precede the single SessionOver.
func TestQuestionRunnerSignalOrder(t *testing.T) {
	ctx := testutil.Context(t, 0)
	signals := make(chan Signal, 8)
	output := &recordingOutput{}
	runner := QuestionRunner{
		Set:    question.NewSet(append(arithmeticPairs(), question.Pair{Question: "Capital of France?", Answer: "Paris"})),
		Input:  newScriptedInput(lines("2", "four", "PARIS")...),
		Output: output,
	}
	runner.Run(ctx, signals)
	close(signals)

	var got []Signal
	for sig := range signals {
		got = append(got, sig)
	}
	want := []Signal{CorrectAnswer, CorrectAnswer, SessionOver}
	if len(got) != len(want) {
		t.Fatalf("expected signals %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("signal %d = %s, want %s", i, got[i], want[i])
		}
	}
	if prompts := output.prompts(); len(prompts) != 3 || prompts[2] != "Question #3: Capital of France?" {
		t.Fatalf("unexpected prompts %v", prompts)
	}
}

// TestQuestionRunnerEvents verifies observers see asked and scored events per question.
func TestQuestionRunnerEvents(t *testing.T) {
	ctx := testutil.Context(t, 0)
	observer := &recordingObserver{}
	runner := QuestionRunner{
		Set:       question.NewSet(arithmeticPairs()),
		Input:     newScriptedInput(lines("2", "5")...),
		Output:    &recordingOutput{},
		Observer:  observer,
		SessionID: "abc",
	}
	runner.Run(ctx, make(chan Signal, 4))

	want := []QuestionEventType{QuestionAsked, QuestionCorrect, QuestionAsked, QuestionIncorrect}
	got := observer.eventTypes()
	if len(got) != len(want) {
		t.Fatalf("expected events %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("event %d = %s, want %s", i, got[i], want[i])
		}
	}
	if observer.events[3].Answer != "5" || observer.events[3].SessionID != "abc" {
		t.Fatalf("unexpected event payload %+v", observer.events[3])
	}
}

// TestQuestionRunnerStopsWhenCanceled verifies no prompt is written after the session ended.
func TestQuestionRunnerStopsWhenCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	output := &recordingOutput{}
	runner := QuestionRunner{
		Set:    question.NewSet(arithmeticPairs()),
		Input:  newScriptedInput(lines("2", "4")...),
		Output: output,
	}
	runner.Run(ctx, make(chan Signal))
	if lines := output.Lines(); len(lines) != 0 {
		t.Fatalf("expected no prompts, got %v", lines)
	}
}

// TestQuestionRunnerDropsSendAfterReceiverGone verifies a send after the session
// ended neither blocks nor panics.
func TestQuestionRunnerDropsSendAfterReceiverGone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	answered := make(chan struct{})
	runner := QuestionRunner{
		Set:    question.NewSet(arithmeticPairs()),
		Input:  newScriptedInput(inputStep{line: "2", wait: answered}),
		Output: &recordingOutput{},
	}
	done := make(chan struct{})
	go func() {
		defer close(done)
		runner.Run(ctx, make(chan Signal))
	}()

	cancel()
	close(answered)
	testutil.WaitClosed(t, done, time.Second)
}
