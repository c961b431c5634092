package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func TestGradesClient_FetchesRows(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/grades" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("professor"); got != "Justin Wyss-Gallifent" {
			t.Errorf("unexpected professor %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"course": "MATH140", "professor": "Justin Wyss-Gallifent", "semester": "202401", "section": "0101", "A+": 12, "A": 30, "W": 3}
		]`))
	}))
	defer server.Close()

	client, err := NewGradesClient(server.URL, server.Client(), 16)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows, err := client.Grades(context.Background(), "Justin Wyss-Gallifent")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 || rows[0].Course != "MATH140" || rows[0].APlus != 12 || rows[0].W != 3 {
		t.Fatalf("unexpected rows %+v", rows)
	}
}

func TestGradesClient_UnknownProfessorIsEmptyNotError(t *testing.T) {
	t.Parallel()

	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		requests.Add(1)
		http.Error(w, "no such professor", http.StatusBadRequest)
	}))
	defer server.Close()

	client, err := NewGradesClient(server.URL, server.Client(), 16)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 0; i < 2; i++ {
		rows, err := client.Grades(context.Background(), "Nobody")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rows != nil {
			t.Fatalf("expected empty history, got %+v", rows)
		}
	}
	if got := requests.Load(); got != 1 {
		t.Fatalf("expected the absent answer cached, got %d requests", got)
	}
}

func TestGradesClient_CachesRows(t *testing.T) {
	t.Parallel()

	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		requests.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"course": "CMSC131", "A": 5}]`))
	}))
	defer server.Close()

	client, err := NewGradesClient(server.URL, server.Client(), 16)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 0; i < 3; i++ {
		if _, err := client.Grades(context.Background(), "Nelson Padua-Perez"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if got := requests.Load(); got != 1 {
		t.Fatalf("expected 1 upstream request, got %d", got)
	}
}
