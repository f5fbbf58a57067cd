package reconcile

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
)

func TestInteractEndpoint(t *testing.T) {
	rec := setupReconciler(t)
	r := chi.NewRouter()
	RegisterRoutes(r, rec, nil)

	body, _ := json.Marshal(interactRequest{
		Trigger:  "zoom-in",
		Snapshot: defaultSnapshot(),
	})
	req := httptest.NewRequest("POST", "/api/interact", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var out Output
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Snapshot.Zoom != 1.2 {
		t.Errorf("zoom = %v, want 1.2", out.Snapshot.Zoom)
	}
	if !out.Updated {
		t.Error("expected updated output")
	}
}

func TestInteractRejectsBadBody(t *testing.T) {
	rec := setupReconciler(t)
	r := chi.NewRouter()
	RegisterRoutes(r, rec, nil)

	req := httptest.NewRequest("POST", "/api/interact", bytes.NewReader([]byte("{broken")))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestInteractUnknownTriggerIsNoOp(t *testing.T) {
	rec := setupReconciler(t)
	r := chi.NewRouter()
	RegisterRoutes(r, rec, nil)

	body, _ := json.Marshal(interactRequest{
		Trigger:  "mystery-button",
		Snapshot: defaultSnapshot(),
	})
	req := httptest.NewRequest("POST", "/api/interact", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var out Output
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Updated || out.Saved || out.Loaded || out.NoteSaved {
		t.Error("unknown trigger produced side effects")
	}
}
