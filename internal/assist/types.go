/*
Package assist is the client for the remote assist backend.

The backend owns plate prediction, relevance feedback, server-side vehicle
caching, and lookup analytics. Its internals are opaque; only the
request/response contracts below matter here. Every call carries a bounded
timeout, and failures are logged and otherwise swallowed; the assist backend
being down never breaks a lookup.
*/
package assist

// PredictRequest asks the backend for ranked plate completions.
type PredictRequest struct {
	// Partial is the normalized partial plate text.
	Partial string `json:"license"`

	// MostFrequent maps singular category names to the user's top value.
	// Categories with no observations are omitted.
	MostFrequent map[string]string `json:"most_frequent_interests"`

	// History is the full search-history snapshot, most-recent-first.
	History []string `json:"search_history"`
}

// Prediction is one ranked candidate completion.
type Prediction struct {
	// Plate is the candidate plate.
	Plate string `json:"plate"`

	// Confidence is the backend's 0-100 score for the candidate.
	Confidence float64 `json:"confidence"`
}

// PredictResponse is the backend's ranked candidate list. Order is
// significant and preserved verbatim when rendering.
type PredictResponse struct {
	Predictions []Prediction `json:"predictions"`
}

// feedbackRequest reports a relevance judgment.
type feedbackRequest struct {
	License  string `json:"license"`
	Relevant bool   `json:"relevant"`
}

// recordRequest reports a lookup outcome for analytics.
type recordRequest struct {
	License string `json:"license"`
	Valid   bool   `json:"valid"`
}

// cacheCarRequest uploads a fetched vehicle record.
type cacheCarRequest struct {
	License string `json:"license"`
	CarData any    `json:"car_data"`
}
