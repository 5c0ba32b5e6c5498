/*
Package suggest implements the autocomplete suggestion engine.

Each input change drives one prediction request carrying the partial text,
the most-frequent interest snapshot, and the full search history. Responses
render with confidence-tier markers; the engine guards against out-of-order
responses with a per-request generation counter so a fast typist never sees
suggestions for an earlier, shorter prefix overwrite newer ones.
*/
package suggest

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/skovgaard/platepilot/internal/assist"
	"github.com/skovgaard/platepilot/internal/vehicle"
)

// State is the engine state for the input field.
type State int

const (
	// StateIdle means the input is empty and nothing is rendered.
	StateIdle State = iota

	// StatePending means a prediction request is in flight.
	StatePending

	// StateRendered means suggestions for the current input are shown.
	StateRendered
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateRendered:
		return "rendered"
	default:
		return "idle"
	}
}

// Predictor issues ranked-completion requests.
type Predictor interface {
	Predict(ctx context.Context, req assist.PredictRequest) (assist.PredictResponse, error)
}

// ProfileSource supplies the most-frequent interest snapshot.
type ProfileSource interface {
	MostFrequent() map[string]string
}

// HistorySource supplies the search-history snapshot.
type HistorySource interface {
	Snapshot() []string
}

// Engine drives the suggestion area for one input field.
type Engine struct {
	predictor Predictor
	profiles  ProfileSource
	history   HistorySource
	logger    zerolog.Logger

	mu    sync.Mutex
	state State
	gen   uint64
	view  View
}

// NewEngine creates a suggestion engine.
func NewEngine(predictor Predictor, profiles ProfileSource, history HistorySource, logger zerolog.Logger) *Engine {
	return &Engine{
		predictor: predictor,
		profiles:  profiles,
		history:   history,
		logger:    logger.With().Str("component", "suggest").Logger(),
	}
}

// OnInput handles one change of the partial input.
//
// An empty partial clears suggestions and warnings and returns to Idle.
// Otherwise the normalized partial, interest snapshot, and history snapshot
// go to the predictor; a new input supersedes any in-flight request, whose
// response is then discarded on arrival.
//
// The returned view is what the input field should show after this event.
// On request failure the previous view is returned untouched together with
// the error; the failure is logged and nothing is cleared.
func (e *Engine) OnInput(ctx context.Context, partial string) (View, error) {
	partial = vehicle.NormalizePlate(partial)

	e.mu.Lock()
	if partial == "" {
		// Clearing supersedes any in-flight request just like a keystroke
		// does; its response must not repopulate the cleared area.
		e.gen++
		e.state = StateIdle
		e.view = View{Placeholder: e.view.Placeholder}
		view := e.view
		e.mu.Unlock()
		return view, nil
	}

	prevState := e.state
	e.state = StatePending
	e.gen++
	gen := e.gen
	req := assist.PredictRequest{
		Partial:      partial,
		MostFrequent: e.profiles.MostFrequent(),
		History:      e.history.Snapshot(),
	}
	e.mu.Unlock()

	resp, err := e.predictor.Predict(ctx, req)

	e.mu.Lock()
	defer e.mu.Unlock()

	if gen != e.gen {
		// A newer keystroke superseded this request; its response owns the
		// suggestion area now.
		e.logger.Debug().Str("partial", partial).Msg("discarding stale prediction response")
		return e.view, nil
	}

	if err != nil {
		// Non-fatal: log, clear nothing, wait for the next keystroke.
		e.logger.Warn().Err(err).Str("partial", partial).Msg("prediction request failed")
		e.state = prevState
		return e.view, err
	}

	e.view = render(resp.Predictions, e.view.Placeholder)
	e.state = StateRendered
	return e.view, nil
}

// Activate reports a candidate activation: the input takes the plate and the
// suggestion area clears. It does not submit a lookup. Activation supersedes
// any in-flight request, since the input no longer holds the partial that
// request was issued for.
func (e *Engine) Activate(plate string) View {
	plate = vehicle.NormalizePlate(plate)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.gen++
	e.state = StateRendered
	e.view = View{Placeholder: e.view.Placeholder}
	e.logger.Debug().Str("plate", plate).Msg("suggestion activated")
	return e.view
}

// State returns the current engine state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Current returns the last rendered view.
func (e *Engine) Current() View {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.view
}
