package store

import (
	"database/sql"

	"github.com/goccy/go-json"

	"github.com/skovgaard/platepilot/internal/profile"
)

// readRecord loads the raw JSON for a logical key. A missing row, a query
// error, or a disabled store all report !ok; callers substitute the default.
func (s *SQLiteStore) readRecord(key string) (raw []byte, ok bool) {
	if !s.enabled || s.db == nil {
		return nil, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var value string
	err := s.db.QueryRow("SELECT value FROM profile_records WHERE key = ?", key).Scan(&value)
	if err != nil {
		if err != sql.ErrNoRows {
			s.logger.Warn().Err(err).Str("key", key).Msg("failed to read record")
		}
		return nil, false
	}
	return []byte(value), true
}

// writeRecord upserts the JSON value for a logical key.
func (s *SQLiteStore) writeRecord(key string, value any) error {
	if !s.enabled || s.db == nil {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err = s.db.Exec(`
		INSERT INTO profile_records (key, value, updated_at) VALUES (?, ?, datetime('now'))
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, string(data))
	return err
}

// deleteRecord removes the row for a logical key, if present.
func (s *SQLiteStore) deleteRecord(key string) error {
	if !s.enabled || s.db == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec("DELETE FROM profile_records WHERE key = ?", key)
	return err
}

// SearchHistory returns the stored history, most-recent-first.
// Malformed content decodes to the empty history.
func (s *SQLiteStore) SearchHistory() []string {
	raw, ok := s.readRecord(keySearchHistory)
	if !ok {
		return []string{}
	}
	var history []string
	if err := json.Unmarshal(raw, &history); err != nil {
		s.logger.Warn().Err(err).Msg("malformed search history, using default")
		return []string{}
	}
	return history
}

// SaveSearchHistory persists the whole history list.
func (s *SQLiteStore) SaveSearchHistory(history []string) error {
	return s.writeRecord(keySearchHistory, history)
}

// LastSearch returns the last successful search, if any.
func (s *SQLiteStore) LastSearch() (LastSearch, bool) {
	raw, ok := s.readRecord(keyLastSearch)
	if !ok {
		return LastSearch{}, false
	}
	var ls LastSearch
	if err := json.Unmarshal(raw, &ls); err != nil {
		s.logger.Warn().Err(err).Msg("malformed last search, using default")
		return LastSearch{}, false
	}
	return ls, ls.License != ""
}

// SaveLastSearch overwrites the last-search record wholesale.
func (s *SQLiteStore) SaveLastSearch(ls LastSearch) error {
	return s.writeRecord(keyLastSearch, ls)
}

// Interests returns the stored interest profile.
// Missing or malformed content decodes to the all-categories-empty profile.
func (s *SQLiteStore) Interests() profile.Interests {
	raw, ok := s.readRecord(keyInterests)
	if !ok {
		return profile.NewInterests()
	}
	var in profile.Interests
	if err := json.Unmarshal(raw, &in); err != nil {
		s.logger.Warn().Err(err).Msg("malformed interest profile, using default")
		return profile.NewInterests()
	}
	// Fill any categories a partial decode left out.
	return in.Normalized()
}

// SaveInterests persists the whole profile as a single write.
func (s *SQLiteStore) SaveInterests(in profile.Interests) error {
	return s.writeRecord(keyInterests, in)
}

// PendingFeedback returns the outstanding feedback plate, if any.
func (s *SQLiteStore) PendingFeedback() (string, bool) {
	raw, ok := s.readRecord(keyPendingFeedback)
	if !ok {
		return "", false
	}
	var plate string
	if err := json.Unmarshal(raw, &plate); err != nil {
		s.logger.Warn().Err(err).Msg("malformed pending feedback, using default")
		return "", false
	}
	return plate, plate != ""
}

// SetPendingFeedback persists the outstanding feedback plate.
func (s *SQLiteStore) SetPendingFeedback(plate string) error {
	return s.writeRecord(keyPendingFeedback, plate)
}

// ClearPendingFeedback removes the outstanding feedback marker.
func (s *SQLiteStore) ClearPendingFeedback() error {
	return s.deleteRecord(keyPendingFeedback)
}

// EraseAll resets every personalization record to its default and drops the
// vehicle cache and lookup analytics. Idempotent; never fails on an already
// empty store.
func (s *SQLiteStore) EraseAll() error {
	if !s.enabled || s.db == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, stmt := range []string{
		"DELETE FROM profile_records",
		"DELETE FROM vehicle_cache",
		"DELETE FROM lookup_events",
	} {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
