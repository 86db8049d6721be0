package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHandleHealth(t *testing.T) {
	handlers := &HealthHandlers{}

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	handlers.handleHealth(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var payload map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if payload["status"] != "ok" {
		t.Fatalf("expected status ok, got %q", payload["status"])
	}
}

func TestHandleReadyBeforeLoad(t *testing.T) {
	handlers := &HealthHandlers{Store: &stubStore{}}

	req := httptest.NewRequest(http.MethodGet, "/ready", nil)
	rec := httptest.NewRecorder()

	handlers.handleReady(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503 before load, got %d", rec.Code)
	}
}

func TestHandleReadyAfterLoad(t *testing.T) {
	handlers := &HealthHandlers{Store: &stubStore{records: testRecords(), snapshot: "snap-1"}}

	req := httptest.NewRequest(http.MethodGet, "/ready", nil)
	rec := httptest.NewRecorder()

	handlers.handleReady(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200 after load, got %d", rec.Code)
	}

	var payload struct {
		Status   string `json:"status"`
		Snapshot string `json:"snapshot"`
		Records  int    `json:"records"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if payload.Snapshot != "snap-1" || payload.Records != 2 {
		t.Fatalf("unexpected readiness payload: %+v", payload)
	}
}
