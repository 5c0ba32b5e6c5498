/*
Package search provides full-text search over locally cached vehicle records.

Every successful lookup is cached durably; this index makes those past
lookups findable by make, model, fuel type, color, or year ("that Toyota I
looked up last week"). The index is in-memory and rebuilt from the cache on
start.
*/
package search

import (
	"fmt"
	"sync"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/mapping"
	"github.com/blevesearch/bleve/v2/search/query"
	"github.com/rs/zerolog"

	"github.com/skovgaard/platepilot/internal/vehicle"
)

// maxResults caps a single search.
const maxResults = 25

// Hit is one search result.
type Hit struct {
	// Plate is the cached plate.
	Plate string `json:"plate"`

	// Score is bleve's relevance score.
	Score float64 `json:"score"`
}

// Indexer manages the search index over cached vehicle records.
type Indexer struct {
	bleveIndex bleve.Index
	logger     zerolog.Logger
	mu         sync.RWMutex
}

// NewIndexer creates an in-memory index.
func NewIndexer(logger zerolog.Logger) (*Indexer, error) {
	index, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("failed to create bleve index: %w", err)
	}
	return &Indexer{
		bleveIndex: index,
		logger:     logger.With().Str("component", "search").Logger(),
	}, nil
}

// buildIndexMapping creates the bleve index mapping for vehicle documents.
func buildIndexMapping() mapping.IndexMapping {
	vehicleMapping := bleve.NewDocumentMapping()

	for _, field := range []string{"plate", "make", "model", "variant", "fuel_type", "color", "year"} {
		vehicleMapping.AddFieldMappingsAt(field, bleve.NewTextFieldMapping())
	}

	indexMapping := bleve.NewIndexMapping()
	indexMapping.AddDocumentMapping("_default", vehicleMapping)
	return indexMapping
}

// document flattens a record into indexable fields.
func document(plate string, rec vehicle.Record) map[string]interface{} {
	year := rec.FirstRegistration
	if len(year) > 4 {
		year = year[:4]
	}
	return map[string]interface{}{
		"plate":     plate,
		"make":      rec.Make,
		"model":     rec.Model,
		"variant":   rec.Variant,
		"fuel_type": rec.FuelType,
		"color":     rec.Color,
		"year":      year,
	}
}

// IndexVehicle adds or replaces the document for one cached record.
func (i *Indexer) IndexVehicle(plate string, rec vehicle.Record) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if err := i.bleveIndex.Index(plate, document(plate, rec)); err != nil {
		return fmt.Errorf("failed to index vehicle %s: %w", plate, err)
	}
	return nil
}

// Rebuild re-indexes the whole cache in one batch.
func (i *Indexer) Rebuild(records map[string]vehicle.Record) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	batch := i.bleveIndex.NewBatch()
	for plate, rec := range records {
		if err := batch.Index(plate, document(plate, rec)); err != nil {
			i.logger.Warn().Err(err).Str("plate", plate).Msg("failed to index cached vehicle")
		}
	}
	if err := i.bleveIndex.Batch(batch); err != nil {
		return fmt.Errorf("failed to batch index vehicles: %w", err)
	}
	return nil
}

// Search runs a free-text query over the cached records.
func (i *Indexer) Search(text string) ([]Hit, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	searchRequest := bleve.NewSearchRequestOptions(i.buildQuery(text), maxResults, 0, false)
	results, err := i.bleveIndex.Search(searchRequest)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	hits := make([]Hit, 0, len(results.Hits))
	for _, hit := range results.Hits {
		hits = append(hits, Hit{Plate: hit.ID, Score: hit.Score})
	}
	return hits, nil
}

// buildQuery combines a match query with a prefix query so both whole words
// ("toyota") and partial plates ("AB1") hit.
func (i *Indexer) buildQuery(text string) query.Query {
	match := bleve.NewMatchQuery(text)
	prefix := bleve.NewPrefixQuery(text)
	return bleve.NewDisjunctionQuery(match, prefix)
}

// Remove drops the document for a plate.
func (i *Indexer) Remove(plate string) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.bleveIndex.Delete(plate)
}

// Count returns the number of indexed records.
func (i *Indexer) Count() (uint64, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	docCount, err := i.bleveIndex.DocCount()
	if err != nil {
		return 0, fmt.Errorf("failed to get doc count: %w", err)
	}
	return docCount, nil
}

// Clear drops every document, used by the forget-preferences flow.
func (i *Indexer) Clear() error {
	i.mu.Lock()
	defer i.mu.Unlock()

	searchRequest := bleve.NewSearchRequestOptions(bleve.NewMatchAllQuery(), 10000, 0, false)
	results, err := i.bleveIndex.Search(searchRequest)
	if err != nil {
		return fmt.Errorf("failed to enumerate index: %w", err)
	}

	batch := i.bleveIndex.NewBatch()
	for _, hit := range results.Hits {
		batch.Delete(hit.ID)
	}
	if err := i.bleveIndex.Batch(batch); err != nil {
		return fmt.Errorf("failed to batch delete: %w", err)
	}
	return nil
}

// Close closes the index and releases resources.
func (i *Indexer) Close() error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.bleveIndex != nil {
		return i.bleveIndex.Close()
	}
	return nil
}
