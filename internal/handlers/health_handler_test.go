package handlers_test

import (
	"net/http"
	"testing"
)

func TestHealthReportsConnectedDatabase(t *testing.T) {
	r, _ := newTestEnv(t)

	w := doJSON(t, r, http.MethodGet, "/api/health", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Status    string `json:"status"`
		Database  string `json:"database"`
		Timestamp string `json:"timestamp"`
	}
	decodeBody(t, w, &resp)

	if resp.Status != "ok" {
		t.Errorf("expected status ok, got %q", resp.Status)
	}
	if resp.Database != "connected" {
		t.Errorf("expected database connected, got %q", resp.Database)
	}
	if resp.Timestamp == "" {
		t.Error("expected a timestamp")
	}
}
