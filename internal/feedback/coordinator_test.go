package feedback

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

type memStore struct {
	plate   string
	pending bool
	setErr  error
}

func (s *memStore) PendingFeedback() (string, bool) {
	return s.plate, s.pending
}

func (s *memStore) SetPendingFeedback(plate string) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.plate, s.pending = plate, true
	return nil
}

func (s *memStore) ClearPendingFeedback() error {
	s.plate, s.pending = "", false
	return nil
}

type recordingJudge struct {
	sent    []bool
	plates  []string
	sendErr error
}

func (j *recordingJudge) SendFeedback(ctx context.Context, license string, relevant bool) error {
	if j.sendErr != nil {
		return j.sendErr
	}
	j.plates = append(j.plates, license)
	j.sent = append(j.sent, relevant)
	return nil
}

type recordingPrompter struct {
	shown  []string
	hidden int
}

func (p *recordingPrompter) ShowPrompt(plate string) { p.shown = append(p.shown, plate) }
func (p *recordingPrompter) HidePrompt()             { p.hidden++ }

func newTestCoordinator() (*Coordinator, *memStore, *recordingJudge, *recordingPrompter) {
	store := &memStore{}
	judge := &recordingJudge{}
	prompter := &recordingPrompter{}
	return NewCoordinator(store, judge, prompter, zerolog.Nop()), store, judge, prompter
}

func TestPrompt_PersistsMarkerAndShows(t *testing.T) {
	c, store, _, prompter := newTestCoordinator()

	c.Prompt("AB12345")

	if plate, ok := store.PendingFeedback(); !ok || plate != "AB12345" {
		t.Errorf("expected persisted marker AB12345, got %q ok=%v", plate, ok)
	}
	if len(prompter.shown) != 1 || prompter.shown[0] != "AB12345" {
		t.Errorf("expected prompt shown for AB12345, got %v", prompter.shown)
	}
}

func TestPrompt_OverwritesPreviousMarker(t *testing.T) {
	c, store, _, _ := newTestCoordinator()

	c.Prompt("AB12345")
	c.Prompt("CD67890")

	if plate, _ := store.PendingFeedback(); plate != "CD67890" {
		t.Errorf("expected marker overwritten, got %q", plate)
	}
}

func TestResume_RedisplaysWithoutSending(t *testing.T) {
	c, store, judge, prompter := newTestCoordinator()
	store.plate, store.pending = "AB12345", true

	c.Resume()

	if len(prompter.shown) != 1 || prompter.shown[0] != "AB12345" {
		t.Errorf("expected re-displayed prompt, got %v", prompter.shown)
	}
	if len(judge.plates) != 0 {
		t.Errorf("resume must not send anything, sent %v", judge.plates)
	}
	if _, ok := store.PendingFeedback(); !ok {
		t.Error("resume must not clear the marker")
	}
}

func TestResume_NoMarkerIsNoop(t *testing.T) {
	c, _, _, prompter := newTestCoordinator()

	c.Resume()

	if len(prompter.shown) != 0 {
		t.Errorf("expected no prompt, got %v", prompter.shown)
	}
}

func TestJudge_SendsAndClearsMarker(t *testing.T) {
	c, store, judge, prompter := newTestCoordinator()
	c.Prompt("AB12345")

	if err := c.Judge(context.Background(), true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(judge.plates) != 1 || judge.plates[0] != "AB12345" || !judge.sent[0] {
		t.Errorf("unexpected judgment %v %v", judge.plates, judge.sent)
	}
	if _, ok := store.PendingFeedback(); ok {
		t.Error("expected marker cleared after accepted judgment")
	}
	if prompter.hidden != 1 {
		t.Errorf("expected prompt hidden once, got %d", prompter.hidden)
	}
}

func TestJudge_SendFailureKeepsMarker(t *testing.T) {
	c, store, judge, prompter := newTestCoordinator()
	judge.sendErr = errors.New("backend down")
	c.Prompt("AB12345")

	if err := c.Judge(context.Background(), false); err == nil {
		t.Fatal("expected error from failed send")
	}

	if _, ok := store.PendingFeedback(); !ok {
		t.Error("a failed send must keep the marker for the next start")
	}
	if prompter.hidden != 1 {
		t.Errorf("the prompt still hides on a failed send, got %d", prompter.hidden)
	}
}

func TestJudge_UsesPersistedMarkerAfterRestart(t *testing.T) {
	// A fresh coordinator with no active prompt falls back to the persisted
	// marker, matching the answer-after-restart flow.
	store := &memStore{plate: "AB12345", pending: true}
	judge := &recordingJudge{}
	c := NewCoordinator(store, judge, nil, zerolog.Nop())

	if err := c.Judge(context.Background(), true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(judge.plates) != 1 || judge.plates[0] != "AB12345" {
		t.Errorf("expected judgment for persisted plate, got %v", judge.plates)
	}
}

func TestJudge_NothingPendingIsNoop(t *testing.T) {
	c, _, judge, _ := newTestCoordinator()

	if err := c.Judge(context.Background(), true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(judge.plates) != 0 {
		t.Errorf("expected no judgment, got %v", judge.plates)
	}
}

func TestDismiss_HidesButKeepsMarker(t *testing.T) {
	c, store, judge, prompter := newTestCoordinator()
	c.Prompt("AB12345")

	c.Dismiss()

	if prompter.hidden != 1 {
		t.Errorf("expected prompt hidden, got %d", prompter.hidden)
	}
	if plate, ok := store.PendingFeedback(); !ok || plate != "AB12345" {
		t.Error("dismissing must leave the persisted marker in place")
	}
	if len(judge.plates) != 0 {
		t.Errorf("dismissing must not send a judgment, got %v", judge.plates)
	}
}
