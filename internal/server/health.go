package server

import (
	"net/http"
)

// SnapshotReporter describes the store state needed by readiness checks.
type SnapshotReporter interface {
	Snapshot() (string, int)
}

// HealthHandlers serves the liveness and readiness probes.
type HealthHandlers struct {
	Store SnapshotReporter
}

func (h *HealthHandlers) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleReady reports 503 until the dataset has been loaded. The load is
// lazy (first query triggers it), so a fresh process is alive but not
// ready.
func (h *HealthHandlers) handleReady(w http.ResponseWriter, _ *http.Request) {
	if h.Store == nil {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		return
	}

	snapshot, records := h.Store.Snapshot()
	if snapshot == "" {
		respondJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "loading"})
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"snapshot": snapshot,
		"records":  records,
	})
}
