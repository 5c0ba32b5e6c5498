/*
Package store implements the durable profile storage layer.

This package provides SQLite-based storage for the four personalization
records (search history, last search, interest profile, pending feedback)
plus the local vehicle cache and lookup analytics, with graceful degradation
if the database is unavailable.

The database is stored at ~/.platepilot/profile.db and uses
modernc.org/sqlite (a pure Go, CGo-free implementation).

Each of the four records has a fixed default shape. Reads that find no stored
value, or malformed stored content, return the default instead of failing;
the store never surfaces decode errors to callers. Writes are synchronous and
last-write-wins; each record is mutated by exactly one component, so no
cross-record transactionality is needed.
*/
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"github.com/skovgaard/platepilot/internal/profile"
	"github.com/skovgaard/platepilot/internal/vehicle"
)

// Store defines the interface for persistent personalization storage.
type Store interface {
	// Init opens the database and runs migrations.
	Init() error

	// SearchHistory returns the stored history, most-recent-first.
	SearchHistory() []string

	// SaveSearchHistory persists the whole history list.
	SaveSearchHistory(history []string) error

	// LastSearch returns the last successful search, if any.
	LastSearch() (LastSearch, bool)

	// SaveLastSearch overwrites the last-search record wholesale.
	SaveLastSearch(ls LastSearch) error

	// Interests returns the stored interest profile.
	Interests() profile.Interests

	// SaveInterests persists the whole profile as a single write.
	SaveInterests(in profile.Interests) error

	// PendingFeedback returns the outstanding feedback plate, if any.
	PendingFeedback() (string, bool)

	// SetPendingFeedback persists the outstanding feedback plate.
	SetPendingFeedback(plate string) error

	// ClearPendingFeedback removes the outstanding feedback marker.
	ClearPendingFeedback() error

	// CacheVehicle durably caches a fetched vehicle record.
	CacheVehicle(plate string, rec vehicle.Record) error

	// CachedVehicle returns the cached record for a plate.
	CachedVehicle(plate string) (vehicle.Record, bool)

	// CachedVehicles returns all cached records keyed by plate.
	CachedVehicles() (map[string]vehicle.Record, error)

	// RecordLookup appends a lookup analytics event.
	RecordLookup(ev LookupEvent) error

	// EraseAll resets every record to its default and drops the vehicle
	// cache and analytics. Idempotent.
	EraseAll() error

	// Close closes the database connection.
	Close() error
}

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db       *sql.DB
	dbPath   string
	enabled  bool
	logger   zerolog.Logger
	mu       sync.Mutex
	initOnce sync.Once
}

// New creates a SQLite store at the default path, ~/.platepilot/profile.db.
// If the home directory cannot be resolved, the store is disabled and every
// operation degrades to the documented defaults.
func New(logger zerolog.Logger) *SQLiteStore {
	home, err := os.UserHomeDir()
	if err != nil {
		logger.Warn().Err(err).Msg("failed to resolve home directory, storage disabled")
		return &SQLiteStore{enabled: false, logger: logger}
	}
	return NewAt(filepath.Join(home, ".platepilot", "profile.db"), logger)
}

// NewAt creates a SQLite store at an explicit path.
func NewAt(dbPath string, logger zerolog.Logger) *SQLiteStore {
	return &SQLiteStore{
		dbPath:  dbPath,
		enabled: true,
		logger:  logger.With().Str("component", "store").Logger(),
	}
}

// Init opens the database and runs migrations.
//
// If initialization fails, the store is disabled and subsequent reads return
// defaults while writes become no-ops (graceful degradation).
func (s *SQLiteStore) Init() error {
	if !s.enabled {
		return nil
	}

	var initErr error
	s.initOnce.Do(func() {
		if err := os.MkdirAll(filepath.Dir(s.dbPath), 0o755); err != nil {
			initErr = fmt.Errorf("failed to create db directory: %w", err)
			s.enabled = false
			return
		}

		db, err := sql.Open("sqlite", s.dbPath)
		if err != nil {
			initErr = fmt.Errorf("failed to open database: %w", err)
			s.enabled = false
			s.logger.Warn().Err(initErr).Msg("storage disabled")
			return
		}
		s.db = db

		if err := db.Ping(); err != nil {
			initErr = fmt.Errorf("failed to ping database: %w", err)
			s.enabled = false
			s.logger.Warn().Err(initErr).Msg("storage disabled")
			return
		}

		if err := s.runMigrations(); err != nil {
			initErr = fmt.Errorf("failed to run migrations: %w", err)
			s.enabled = false
			s.logger.Warn().Err(initErr).Msg("storage disabled")
			return
		}
	})

	return initErr
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if !s.enabled || s.db == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	s.db = nil
	return nil
}
