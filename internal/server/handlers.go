package server

import (
	"errors"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/skovgaard/platepilot/internal/vehicle"
)

// writeJSON encodes a response body with the given status.
func (s *Service) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Warn().Err(err).Msg("failed to encode response")
	}
}

// writeError sends a user-visible error message.
func (s *Service) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}

func (s *Service) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "running"})
}

type lookupRequest struct {
	License string `json:"license"`
}

func (s *Service) handleLookup(w http.ResponseWriter, r *http.Request) {
	var req lookupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	rec, err := s.app.Lookup(r.Context(), req.License)
	switch {
	case errors.Is(err, vehicle.ErrInvalidPlate):
		s.writeError(w, http.StatusBadRequest, err)
		return
	case errors.Is(err, vehicle.ErrNotFound):
		s.writeError(w, http.StatusNotFound, err)
		return
	case err != nil:
		s.writeError(w, http.StatusBadGateway, err)
		return
	}

	pending, _ := s.app.Feedback.Pending()
	s.writeJSON(w, http.StatusOK, map[string]any{
		"license":          vehicle.NormalizePlate(req.License),
		"data":             rec,
		"history":          s.app.History.Snapshot(),
		"feedback_pending": pending,
	})
}

func (s *Service) handleSuggest(w http.ResponseWriter, r *http.Request) {
	partial := r.URL.Query().Get("partial")

	// A failed prediction request clears nothing: the previous view goes
	// back unchanged and the failure stays in the log.
	view, _ := s.app.OnInput(r.Context(), partial)
	s.writeJSON(w, http.StatusOK, view)
}

type activateRequest struct {
	Plate string `json:"plate"`
}

func (s *Service) handleActivate(w http.ResponseWriter, r *http.Request) {
	var req activateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}
	view := s.app.Suggest.Activate(req.Plate)
	s.writeJSON(w, http.StatusOK, map[string]any{
		"license": req.Plate,
		"view":    view,
	})
}

func (s *Service) handleHistory(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{"history": s.app.History.Snapshot()})
}

func (s *Service) handleInterests(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"interests":     s.app.Tracker.Interests(),
		"most_frequent": s.app.Tracker.MostFrequent(),
	})
}

func (s *Service) handleLastSearch(w http.ResponseWriter, r *http.Request) {
	ls, ok := s.app.Store.LastSearch()
	if !ok {
		s.writeJSON(w, http.StatusOK, map[string]any{})
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"license": ls.License, "data": ls.Record})
}

func (s *Service) handlePendingFeedback(w http.ResponseWriter, r *http.Request) {
	plate, ok := s.app.Feedback.Pending()
	s.writeJSON(w, http.StatusOK, map[string]any{"pending": ok, "license": plate})
}

type feedbackRequest struct {
	Relevant bool `json:"relevant"`
}

func (s *Service) handleFeedback(w http.ResponseWriter, r *http.Request) {
	var req feedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	if err := s.app.Feedback.Judge(r.Context(), req.Relevant); err != nil {
		// The judgment is lost for now but the marker survives, so the
		// prompt returns on the next start.
		s.writeError(w, http.StatusBadGateway, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "feedback recorded"})
}

func (s *Service) handleDismissFeedback(w http.ResponseWriter, r *http.Request) {
	s.app.Feedback.Dismiss()
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "dismissed"})
}

func (s *Service) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		s.writeError(w, http.StatusBadRequest, errors.New("missing query parameter q"))
		return
	}
	hits, err := s.app.SearchCached(q)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"hits": hits})
}

func (s *Service) handleForget(w http.ResponseWriter, r *http.Request) {
	if err := s.app.Forget(); err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "forgotten"})
}
