package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/selamhomes/estate-api/internal/models"
)

func TestProjectCreateDefaultsAndProgress(t *testing.T) {
	r, _ := newTestEnv(t)
	token := adminToken(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/admin/projects", token, map[string]any{
		"name":     "Skyline Towers",
		"location": "Bole",
		"progress": 150,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var project models.Project
	decodeBody(t, w, &project)

	if project.Status != models.ProjectStatusPlanning {
		t.Errorf("expected default status planning, got %q", project.Status)
	}
	// Out-of-range progress is stored as submitted, not clamped.
	if project.Progress != 150 {
		t.Errorf("expected progress 150 stored as-is, got %d", project.Progress)
	}

	w = doJSON(t, r, http.MethodGet, "/api/projects/"+project.ID, "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/api/projects/no-such-id", "", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestProjectPatchAndDelete(t *testing.T) {
	r, _ := newTestEnv(t)
	token := adminToken(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/admin/projects", token, map[string]any{
		"name":     "Riverside Residences",
		"location": "CMC",
		"status":   "construction",
		"progress": 40,
	})
	var project models.Project
	decodeBody(t, w, &project)

	w = doJSON(t, r, http.MethodPatch, "/api/admin/projects/"+project.ID, token, map[string]any{
		"progress": 55,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var patched models.Project
	decodeBody(t, w, &patched)
	if patched.Progress != 55 || patched.Status != models.ProjectStatusConstruction {
		t.Errorf("patch must change only progress, got %+v", patched)
	}

	w = doJSON(t, r, http.MethodPatch, "/api/admin/projects/"+project.ID, token, map[string]any{
		"status": "abandoned",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid status, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodDelete, "/api/admin/projects/"+project.ID, token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	w = doJSON(t, r, http.MethodDelete, "/api/admin/projects/"+project.ID, token, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on repeat delete, got %d", w.Code)
	}
}

func TestConstructionUpdatesFilteredAndOrdered(t *testing.T) {
	r, _ := newTestEnv(t)
	token := adminToken(t, r)

	earlier := time.Now().Add(-48 * time.Hour).Format(time.RFC3339)
	later := time.Now().Add(-1 * time.Hour).Format(time.RFC3339)

	for _, u := range []map[string]any{
		{"projectId": "proj-a", "title": "Foundation poured", "updateDate": earlier, "progress": 10},
		{"projectId": "proj-a", "title": "Framing complete", "updateDate": later, "progress": 35},
		{"projectId": "proj-b", "title": "Site cleared"},
	} {
		if w := doJSON(t, r, http.MethodPost, "/api/admin/construction-updates", token, u); w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	}

	w := doJSON(t, r, http.MethodGet, "/api/construction-updates?projectId=proj-a", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var updates []models.ConstructionUpdate
	decodeBody(t, w, &updates)
	if len(updates) != 2 {
		t.Fatalf("expected 2 updates for proj-a, got %d", len(updates))
	}
	if updates[0].Title != "Framing complete" {
		t.Errorf("expected newest update first, got %q", updates[0].Title)
	}

	w = doJSON(t, r, http.MethodGet, "/api/construction-updates", "", nil)
	decodeBody(t, w, &updates)
	if len(updates) != 3 {
		t.Fatalf("expected all 3 updates without filter, got %d", len(updates))
	}
}

func TestConstructionUpdateRejectsBadDate(t *testing.T) {
	r, _ := newTestEnv(t)
	token := adminToken(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/admin/construction-updates", token, map[string]any{
		"projectId":  "proj-a",
		"title":      "Bad date",
		"updateDate": "yesterday",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
