package vehicle

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestLookup_FetchesRecordWithAuthToken(t *testing.T) {
	var gotPath, gotToken string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotToken = r.Header.Get("X-AUTH-TOKEN")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"registration_number":"AB12345","make":"Toyota","model":"Corolla"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret", 5*time.Second, zerolog.Nop())
	rec, err := c.Lookup(context.Background(), "AB12345")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/vehicles/AB12345" {
		t.Errorf("unexpected path %q", gotPath)
	}
	if gotToken != "secret" {
		t.Errorf("expected auth token header, got %q", gotToken)
	}
	if rec.Make != "Toyota" || rec.Model != "Corolla" {
		t.Errorf("unexpected record %+v", rec)
	}
}

func TestLookup_NonOKIsNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret", 5*time.Second, zerolog.Nop())
	if _, err := c.Lookup(context.Background(), "ZZ99999"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestLookup_PopulatesSessionCache(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"make":"Toyota"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret", 5*time.Second, zerolog.Nop())

	if _, ok := c.SessionCached("AB12345"); ok {
		t.Error("expected empty session cache before lookup")
	}
	if _, err := c.Lookup(context.Background(), "AB12345"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec, ok := c.SessionCached("AB12345"); !ok || rec.Make != "Toyota" {
		t.Errorf("expected session-cached record, got %+v ok=%v", rec, ok)
	}
}
