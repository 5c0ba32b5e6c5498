/*
Package history maintains the bounded, de-duplicated search history.

The list is most-recent-first by first occurrence: re-searching a plate that
is already listed neither reorders nor re-inserts it. At most five entries
are kept; older entries fall off the end.
*/
package history

import (
	"github.com/rs/zerolog"
)

// maxEntries bounds the history length.
const maxEntries = 5

// HistoryStore is the slice of the persistent store the manager needs.
type HistoryStore interface {
	SearchHistory() []string
	SaveSearchHistory(history []string) error
}

// Manager owns all mutation of the search-history record.
type Manager struct {
	store  HistoryStore
	logger zerolog.Logger

	// onChange, when set, is invoked with the new snapshot after every
	// mutation so the visible history list can re-render.
	onChange func(entries []string)
}

// NewManager creates a history manager backed by the given store.
func NewManager(store HistoryStore, logger zerolog.Logger) *Manager {
	return &Manager{
		store:  store,
		logger: logger.With().Str("component", "history").Logger(),
	}
}

// OnChange registers the re-render callback.
func (m *Manager) OnChange(fn func(entries []string)) {
	m.onChange = fn
}

// Record adds a plate to the history after a successful lookup.
// An already-listed plate is a no-op apart from the re-render; otherwise the
// plate is prepended and the list truncated to the bound.
func (m *Manager) Record(plate string) {
	entries := m.store.SearchHistory()

	if !contains(entries, plate) {
		entries = append([]string{plate}, entries...)
		if len(entries) > maxEntries {
			entries = entries[:maxEntries]
		}
		if err := m.store.SaveSearchHistory(entries); err != nil {
			m.logger.Warn().Err(err).Msg("failed to persist search history")
		}
	}

	if m.onChange != nil {
		m.onChange(entries)
	}
}

// Snapshot returns the current history, most-recent-first.
func (m *Manager) Snapshot() []string {
	return m.store.SearchHistory()
}

func contains(entries []string, plate string) bool {
	for _, e := range entries {
		if e == plate {
			return true
		}
	}
	return false
}
