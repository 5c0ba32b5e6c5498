package store

import (
	"time"

	"github.com/goccy/go-json"

	"github.com/skovgaard/platepilot/internal/vehicle"
)

// CacheVehicle durably caches a fetched vehicle record, replacing any
// previous record for the same plate.
func (s *SQLiteStore) CacheVehicle(plate string, rec vehicle.Record) error {
	if !s.enabled || s.db == nil {
		return nil
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err = s.db.Exec(`
		INSERT INTO vehicle_cache (plate, record, cached_at) VALUES (?, ?, datetime('now'))
		ON CONFLICT(plate) DO UPDATE SET record = excluded.record, cached_at = excluded.cached_at
	`, plate, string(data))
	return err
}

// CachedVehicle returns the cached record for a plate.
// Malformed rows report a cache miss.
func (s *SQLiteStore) CachedVehicle(plate string) (vehicle.Record, bool) {
	if !s.enabled || s.db == nil {
		return vehicle.Record{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var raw string
	err := s.db.QueryRow("SELECT record FROM vehicle_cache WHERE plate = ?", plate).Scan(&raw)
	if err != nil {
		return vehicle.Record{}, false
	}

	var rec vehicle.Record
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		s.logger.Warn().Err(err).Str("plate", plate).Msg("malformed cached vehicle record")
		return vehicle.Record{}, false
	}
	return rec, true
}

// CachedVehicles returns all cached records keyed by plate, skipping any
// malformed rows.
func (s *SQLiteStore) CachedVehicles() (map[string]vehicle.Record, error) {
	records := make(map[string]vehicle.Record)
	if !s.enabled || s.db == nil {
		return records, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query("SELECT plate, record FROM vehicle_cache")
	if err != nil {
		return records, err
	}
	defer rows.Close()

	for rows.Next() {
		var plate, raw string
		if err := rows.Scan(&plate, &raw); err != nil {
			return records, err
		}
		var rec vehicle.Record
		if err := json.Unmarshal([]byte(raw), &rec); err != nil {
			s.logger.Warn().Err(err).Str("plate", plate).Msg("skipping malformed cached vehicle record")
			continue
		}
		records[plate] = rec
	}
	return records, rows.Err()
}

// RecordLookup appends a lookup analytics event.
func (s *SQLiteStore) RecordLookup(ev LookupEvent) error {
	if !s.enabled || s.db == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	valid := 0
	if ev.Valid {
		valid = 1
	}

	_, err := s.db.Exec(`
		INSERT INTO lookup_events (event_id, plate, valid, timestamp) VALUES (?, ?, ?, ?)
	`, ev.EventID, ev.Plate, valid, ev.Timestamp.Format(time.RFC3339))
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to record lookup event")
	}
	return nil
}
