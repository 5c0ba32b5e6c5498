package profile

import (
	"github.com/rs/zerolog"

	"github.com/skovgaard/platepilot/internal/vehicle"
)

// InterestStore is the slice of the persistent store the tracker needs.
type InterestStore interface {
	// Interests returns the stored profile, substituting the empty profile
	// for missing or malformed data.
	Interests() Interests

	// SaveInterests persists the whole profile as a single write.
	SaveInterests(in Interests) error
}

// Tracker accumulates interest counts from vehicle records.
type Tracker struct {
	store  InterestStore
	logger zerolog.Logger
}

// NewTracker creates a tracker backed by the given store.
func NewTracker(store InterestStore, logger zerolog.Logger) *Tracker {
	return &Tracker{
		store:  store,
		logger: logger.With().Str("component", "profile").Logger(),
	}
}

// Absorb folds one vehicle record into the persisted profile.
// The read-modify-write covers the whole profile in one store write, so a
// same-turn reader always observes either the old or the new profile, never
// a partially updated one.
func (t *Tracker) Absorb(rec vehicle.Record) {
	updated := t.store.Interests().Add(rec)
	if err := t.store.SaveInterests(updated); err != nil {
		t.logger.Warn().Err(err).Msg("failed to persist interest profile")
	}
}

// Interests returns the current persisted profile.
func (t *Tracker) Interests() Interests {
	return t.store.Interests()
}

// MostFrequent returns the per-category top values of the persisted profile.
func (t *Tracker) MostFrequent() map[string]string {
	return t.store.Interests().MostFrequent()
}
