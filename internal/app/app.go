/*
Package app wires the personalization engine together and owns the lookup
flow.

A successful lookup fans out to every interested component in one turn:
history, last-search restore state, the interest profile, the durable vehicle
cache and its search index, backend analytics, and finally the relevance
prompt. Only the registry call itself can fail the flow; everything after it
is best-effort and logged.
*/
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/skovgaard/platepilot/internal/assist"
	"github.com/skovgaard/platepilot/internal/config"
	"github.com/skovgaard/platepilot/internal/feedback"
	"github.com/skovgaard/platepilot/internal/history"
	"github.com/skovgaard/platepilot/internal/ocr"
	"github.com/skovgaard/platepilot/internal/profile"
	"github.com/skovgaard/platepilot/internal/search"
	"github.com/skovgaard/platepilot/internal/store"
	"github.com/skovgaard/platepilot/internal/suggest"
	"github.com/skovgaard/platepilot/internal/vehicle"
)

// App is the assembled personalization engine.
type App struct {
	Store      store.Store
	Vehicles   *vehicle.Client
	Assist     *assist.Client
	Tracker    *profile.Tracker
	History    *history.Manager
	Suggest    *suggest.Engine
	Feedback   *feedback.Coordinator
	Recognizer *ocr.Recognizer
	Index      *search.Indexer

	logger zerolog.Logger
}

// New assembles the engine from configuration. The prompter receives the
// feedback prompt affordance; pass nil for surfaces that poll instead.
func New(cfg *config.Config, prompter feedback.Prompter, logger zerolog.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	timeout := time.Duration(cfg.Settings.TimeoutSeconds) * time.Second

	var st *store.SQLiteStore
	if cfg.Settings.StoragePath != "" {
		st = store.NewAt(cfg.Settings.StoragePath, logger)
	} else {
		st = store.New(logger)
	}
	if err := st.Init(); err != nil {
		// The store degrades to defaults; personalization is simply inert.
		logger.Warn().Err(err).Msg("profile storage unavailable")
	}

	index, err := search.NewIndexer(logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create search index: %w", err)
	}
	cached, err := st.CachedVehicles()
	if err != nil {
		logger.Warn().Err(err).Msg("failed to load vehicle cache")
	}
	if err := index.Rebuild(cached); err != nil {
		logger.Warn().Err(err).Msg("failed to rebuild search index")
	}

	vehicles := vehicle.NewClient(cfg.VehicleAPI.BaseURL, cfg.VehicleAPI.AuthToken, timeout, logger)
	assistClient := assist.NewClient(cfg.AssistAPI.BaseURL, timeout, logger)

	tracker := profile.NewTracker(st, logger)
	historyMgr := history.NewManager(st, logger)
	engine := suggest.NewEngine(assistClient, tracker, historyMgr, logger)
	coordinator := feedback.NewCoordinator(st, assistClient, prompter, logger)

	return &App{
		Store:      st,
		Vehicles:   vehicles,
		Assist:     assistClient,
		Tracker:    tracker,
		History:    historyMgr,
		Suggest:    engine,
		Feedback:   coordinator,
		Recognizer: ocr.NewRecognizer(cfg.OCR.Binary, cfg.OCR.Languages, logger),
		Index:      index,
		logger:     logger.With().Str("component", "app").Logger(),
	}, nil
}

// Lookup runs the full lookup flow for raw plate input.
//
// Validation and registry failures are returned to the caller and leave
// every persisted record untouched. On success all state mutations are
// applied before this call returns, so a same-turn reader observes them.
func (a *App) Lookup(ctx context.Context, raw string) (vehicle.Record, error) {
	plate, err := vehicle.ValidatePlate(raw)
	if err != nil {
		return vehicle.Record{}, err
	}

	rec, err := a.Vehicles.Lookup(ctx, plate)
	if err != nil {
		return vehicle.Record{}, err
	}

	a.History.Record(plate)
	if err := a.Store.SaveLastSearch(store.LastSearch{License: plate, Record: rec}); err != nil {
		a.logger.Warn().Err(err).Msg("failed to persist last search")
	}
	a.Tracker.Absorb(rec)

	if err := a.Store.CacheVehicle(plate, rec); err != nil {
		a.logger.Warn().Err(err).Str("plate", plate).Msg("failed to cache vehicle record")
	}
	if err := a.Index.IndexVehicle(plate, rec); err != nil {
		a.logger.Warn().Err(err).Str("plate", plate).Msg("failed to index vehicle record")
	}

	a.reportLookup(ctx, plate, rec)
	a.Feedback.Prompt(plate)

	return rec, nil
}

// reportLookup ships analytics to the assist backend and mirrors the event
// locally. Best-effort: every failure is logged and swallowed.
func (a *App) reportLookup(ctx context.Context, plate string, rec vehicle.Record) {
	if err := a.Store.RecordLookup(store.LookupEvent{
		EventID:   uuid.NewString(),
		Plate:     plate,
		Valid:     true,
		Timestamp: time.Now(),
	}); err != nil {
		a.logger.Warn().Err(err).Msg("failed to record lookup event")
	}

	if err := a.Assist.Ping(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("assist backend unreachable, skipping analytics")
		return
	}
	if err := a.Assist.CacheVehicle(ctx, plate, rec); err != nil {
		a.logger.Warn().Err(err).Msg("failed to upload vehicle record")
	}
	if err := a.Assist.RecordLookup(ctx, plate, true); err != nil {
		a.logger.Warn().Err(err).Msg("failed to report lookup")
	}
}

// OnInput forwards one input change to the suggestion engine.
func (a *App) OnInput(ctx context.Context, partial string) (suggest.View, error) {
	return a.Suggest.OnInput(ctx, partial)
}

// Scan extracts a plate candidate from an image.
func (a *App) Scan(ctx context.Context, imagePath string) (ocr.Result, error) {
	return a.Recognizer.Recognize(ctx, imagePath)
}

// SearchCached searches the locally cached vehicle records.
func (a *App) SearchCached(query string) ([]search.Hit, error) {
	return a.Index.Search(query)
}

// Forget erases every persisted record and the search index. Idempotent.
func (a *App) Forget() error {
	if err := a.Store.EraseAll(); err != nil {
		return fmt.Errorf("failed to erase profile: %w", err)
	}
	if err := a.Index.Clear(); err != nil {
		a.logger.Warn().Err(err).Msg("failed to clear search index")
	}
	a.logger.Info().Msg("user preferences have been forgotten")
	return nil
}

// Close releases the store and index.
func (a *App) Close() error {
	if err := a.Index.Close(); err != nil {
		a.logger.Warn().Err(err).Msg("failed to close search index")
	}
	return a.Store.Close()
}
