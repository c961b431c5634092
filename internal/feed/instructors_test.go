package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func TestInstructorClient_ReturnsRecordPerName(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v0/instructors" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("instructorNames"); got != "Justin Wyss-Gallifent,Unknown Person" {
			t.Errorf("unexpected instructorNames %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"name": "Justin Wyss-Gallifent", "slug": "wyss-gallifent", "average_rating": 4.3}
		]`))
	}))
	defer server.Close()

	client, err := NewInstructorClient(server.URL, server.Client(), 16)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records, err := client.Instructors(context.Background(), []string{"Justin Wyss-Gallifent", "Unknown Person"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Slug != "wyss-gallifent" || records[0].AverageRating == nil || *records[0].AverageRating != 4.3 {
		t.Fatalf("unexpected directory record %+v", records[0])
	}
	if records[1].Name != "Unknown Person" || records[1].Slug != "" || records[1].AverageRating != nil {
		t.Fatalf("expected bare record for unknown name, got %+v", records[1])
	}
}

func TestInstructorClient_CachesResolvedAndUnknownNames(t *testing.T) {
	t.Parallel()

	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		requests.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"name": "Justin Wyss-Gallifent", "slug": "wyss-gallifent"}]`))
	}))
	defer server.Close()

	client, err := NewInstructorClient(server.URL, server.Client(), 16)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	names := []string{"Justin Wyss-Gallifent", "Unknown Person"}
	for i := 0; i < 3; i++ {
		records, err := client.Instructors(context.Background(), names)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(records) != 2 {
			t.Fatalf("expected 2 records, got %d", len(records))
		}
	}
	if got := requests.Load(); got != 1 {
		t.Fatalf("expected 1 upstream request, got %d", got)
	}
}

func TestInstructorClient_UpstreamErrorSurfaces(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer server.Close()

	client, err := NewInstructorClient(server.URL, server.Client(), 16)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := client.Instructors(context.Background(), []string{"Anyone"}); err == nil {
		t.Fatalf("expected error on upstream failure")
	}
}
