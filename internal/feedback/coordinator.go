/*
Package feedback manages the durable relevance prompt.

After every successful lookup the user is asked whether the plate was
relevant. The open question is persisted the moment the prompt appears, so a
crash or restart never loses it: on the next start the prompt is re-displayed
from the persisted marker. Answering sends the judgment to the assist backend
and clears the marker; dismissing the prompt by interacting outside it hides
the prompt but deliberately leaves the marker set, so the question returns on
the next start.
*/
package feedback

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

// FeedbackStore is the slice of the persistent store the coordinator needs.
type FeedbackStore interface {
	PendingFeedback() (string, bool)
	SetPendingFeedback(plate string) error
	ClearPendingFeedback() error
}

// Judge delivers relevance judgments to the assist backend.
type Judge interface {
	SendFeedback(ctx context.Context, license string, relevant bool) error
}

// Prompter displays and hides the prompt affordance. Implementations are the
// terminal prompt and the HTTP pending-feedback surface.
type Prompter interface {
	// ShowPrompt displays the relevant / not-relevant question for a plate.
	ShowPrompt(plate string)

	// HidePrompt removes the prompt.
	HidePrompt()
}

// Coordinator owns the pending-feedback record and the prompt lifecycle.
type Coordinator struct {
	store    FeedbackStore
	judge    Judge
	prompter Prompter
	logger   zerolog.Logger

	mu     sync.Mutex
	active string
}

// NewCoordinator creates a feedback coordinator.
func NewCoordinator(store FeedbackStore, judge Judge, prompter Prompter, logger zerolog.Logger) *Coordinator {
	return &Coordinator{
		store:    store,
		judge:    judge,
		prompter: prompter,
		logger:   logger.With().Str("component", "feedback").Logger(),
	}
}

// Prompt shows the relevance question for a plate and persists the pending
// marker before any user action, so the question survives a restart. A prompt
// for a different plate simply overwrites the marker; at most one pending
// feedback exists at a time.
func (c *Coordinator) Prompt(plate string) {
	c.mu.Lock()
	c.active = plate
	c.mu.Unlock()

	if err := c.store.SetPendingFeedback(plate); err != nil {
		c.logger.Warn().Err(err).Str("plate", plate).Msg("failed to persist pending feedback")
	}
	if c.prompter != nil {
		c.prompter.ShowPrompt(plate)
	}
}

// Resume re-displays the prompt for a persisted marker on start.
// No request of any kind is sent.
func (c *Coordinator) Resume() {
	plate, ok := c.store.PendingFeedback()
	if !ok {
		return
	}

	c.mu.Lock()
	c.active = plate
	c.mu.Unlock()

	if c.prompter != nil {
		c.prompter.ShowPrompt(plate)
	}
}

// Pending returns the plate awaiting judgment, if any.
func (c *Coordinator) Pending() (string, bool) {
	return c.store.PendingFeedback()
}

// Judge answers the active prompt. The prompt is removed immediately; the
// persisted marker is cleared only once the backend accepts the judgment, so
// a failed send keeps the question alive for the next start.
func (c *Coordinator) Judge(ctx context.Context, relevant bool) error {
	c.mu.Lock()
	plate := c.active
	c.active = ""
	c.mu.Unlock()

	if plate == "" {
		var ok bool
		if plate, ok = c.store.PendingFeedback(); !ok {
			return nil
		}
	}

	if c.prompter != nil {
		c.prompter.HidePrompt()
	}

	if err := c.judge.SendFeedback(ctx, plate, relevant); err != nil {
		c.logger.Warn().Err(err).Str("plate", plate).Msg("failed to send feedback")
		return err
	}

	if err := c.store.ClearPendingFeedback(); err != nil {
		c.logger.Warn().Err(err).Str("plate", plate).Msg("failed to clear pending feedback")
	}
	c.logger.Debug().Str("plate", plate).Bool("relevant", relevant).Msg("feedback sent")
	return nil
}

// Dismiss handles an interaction outside the prompt: the prompt hides, but
// the persisted marker stays and no judgment is sent, so the prompt
// reappears on the next start.
func (c *Coordinator) Dismiss() {
	c.mu.Lock()
	c.active = ""
	c.mu.Unlock()

	if c.prompter != nil {
		c.prompter.HidePrompt()
	}
}
