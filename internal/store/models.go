package store

import (
	"time"

	"github.com/skovgaard/platepilot/internal/vehicle"
)

// Logical record keys in profile_records.
const (
	keySearchHistory   = "searchHistory"
	keyLastSearch      = "lastSearch"
	keyInterests       = "userInterests"
	keyPendingFeedback = "pendingFeedback"
)

// LastSearch is the single last successful lookup, overwritten wholesale on
// every hit. It exists only to restore the UI after a restart.
type LastSearch struct {
	// License is the plate that was looked up.
	License string `json:"license"`

	// Record is the vehicle record the lookup returned.
	Record vehicle.Record `json:"data"`
}

// LookupEvent is a lookup analytics entry.
type LookupEvent struct {
	// EventID is a unique identifier for this lookup (UUID).
	EventID string `json:"event_id"`

	// Plate is the normalized plate that was looked up.
	Plate string `json:"plate"`

	// Valid indicates whether the registry returned a record.
	Valid bool `json:"valid"`

	// Timestamp is when the lookup happened.
	Timestamp time.Time `json:"timestamp"`
}
