package assist

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/skovgaard/platepilot/internal/vehicle"
)

func newTestClient(srv *httptest.Server) *Client {
	return NewClient(srv.URL, 5*time.Second, zerolog.Nop())
}

func TestPredict_SendsProfileAndDecodesRanking(t *testing.T) {
	var got PredictRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/predict" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		json.NewEncoder(w).Encode(PredictResponse{Predictions: []Prediction{
			{Plate: "AB123", Confidence: 95},
			{Plate: "AB124", Confidence: 70},
		}})
	}))
	defer srv.Close()

	resp, err := newTestClient(srv).Predict(context.Background(), PredictRequest{
		Partial:      "AB1",
		MostFrequent: map[string]string{"make": "Toyota"},
		History:      []string{"AB12345"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Partial != "AB1" || got.MostFrequent["make"] != "Toyota" || len(got.History) != 1 {
		t.Errorf("unexpected request payload %+v", got)
	}
	if len(resp.Predictions) != 2 || resp.Predictions[0].Plate != "AB123" {
		t.Errorf("unexpected response %+v", resp)
	}
}

func TestPredict_NonOKIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	if _, err := newTestClient(srv).Predict(context.Background(), PredictRequest{Partial: "AB"}); err == nil {
		t.Error("expected error on 500")
	}
}

func TestSendFeedback(t *testing.T) {
	var got feedbackRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/feedback" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&got)
		w.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	if err := newTestClient(srv).SendFeedback(context.Background(), "AB12345", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.License != "AB12345" || !got.Relevant {
		t.Errorf("unexpected payload %+v", got)
	}
}

func TestRecordLookup(t *testing.T) {
	var got recordRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/record" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&got)
	}))
	defer srv.Close()

	if err := newTestClient(srv).RecordLookup(context.Background(), "AB12345", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.License != "AB12345" || !got.Valid {
		t.Errorf("unexpected payload %+v", got)
	}
}

func TestCacheVehicle(t *testing.T) {
	var got cacheCarRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/cache_car" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&got)
	}))
	defer srv.Close()

	rec := vehicle.Record{RegistrationNumber: "AB12345", Make: "Toyota"}
	if err := newTestClient(srv).CacheVehicle(context.Background(), "AB12345", rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.License != "AB12345" {
		t.Errorf("unexpected license %q", got.License)
	}
	carData, ok := got.CarData.(map[string]interface{})
	if !ok || carData["make"] != "Toyota" {
		t.Errorf("unexpected car data %+v", got.CarData)
	}
}

func TestPing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/ping" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	if err := newTestClient(srv).Ping(context.Background()); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestPing_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	if err := newTestClient(srv).Ping(context.Background()); err == nil {
		t.Error("expected error for unreachable backend")
	}
}
