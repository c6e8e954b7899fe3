package handlers_test

import (
	"net/http"
	"testing"

	"github.com/selamhomes/estate-api/internal/models"
)

func TestSettingUpsertCreatesThenReplaces(t *testing.T) {
	r, _ := newTestEnv(t)
	token := adminToken(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/admin/settings", token, map[string]string{
		"key":   "office_phone",
		"value": "+251911000000",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var setting models.Setting
	decodeBody(t, w, &setting)
	if setting.Type != "string" {
		t.Errorf("expected default type string, got %q", setting.Type)
	}
	firstID := setting.ID

	// Same key again replaces value and type instead of adding a row.
	w = doJSON(t, r, http.MethodPost, "/api/admin/settings", token, map[string]string{
		"key":   "office_phone",
		"value": "+251911111111",
		"type":  "string",
	})
	decodeBody(t, w, &setting)
	if setting.ID != firstID || setting.Value != "+251911111111" {
		t.Fatalf("expected in-place upsert, got %+v", setting)
	}

	w = doJSON(t, r, http.MethodGet, "/api/settings/office_phone", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	decodeBody(t, w, &setting)
	if setting.Value != "+251911111111" {
		t.Errorf("expected replaced value, got %q", setting.Value)
	}

	var all []models.Setting
	w = doJSON(t, r, http.MethodGet, "/api/settings", "", nil)
	decodeBody(t, w, &all)
	if len(all) != 1 {
		t.Fatalf("expected a single setting row, got %d", len(all))
	}
}

func TestSettingGetUnknownKey(t *testing.T) {
	r, _ := newTestEnv(t)

	w := doJSON(t, r, http.MethodGet, "/api/settings/missing_key", "", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestSettingUpsertRejectsBadType(t *testing.T) {
	r, _ := newTestEnv(t)
	token := adminToken(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/admin/settings", token, map[string]string{
		"key":  "max_listings",
		"type": "decimal",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
