package reconcile

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/git-kubik/azure-architecture-map/internal/graph"
	"github.com/git-kubik/azure-architecture-map/internal/live"
)

// interactRequest is the wire form of an Event.
type interactRequest struct {
	Trigger    string         `json:"trigger"`
	Snapshot   graph.Snapshot `json:"snapshot"`
	Query      string         `json:"query"`
	Note       string         `json:"note"`
	TappedNode *graph.Data    `json:"tapped_node"`
}

// RegisterRoutes mounts the interaction endpoint. The hub may be nil
// when no live feed is wanted (tests).
func RegisterRoutes(r chi.Router, rec *Reconciler, hub *live.Hub) {
	r.Post("/api/interact", interactHandler(rec, hub))
}

func interactHandler(rec *Reconciler, hub *live.Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req interactRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		out := rec.Handle(r.Context(), Event{
			Trigger:    ParseTrigger(req.Trigger),
			Snapshot:   req.Snapshot,
			Query:      req.Query,
			NoteText:   req.Note,
			TappedNode: req.TappedNode,
		})

		// A successful save or load changes the shared persisted state;
		// let other open tabs know.
		if hub != nil && (out.Saved || out.Loaded) {
			hub.Broadcast(out.Snapshot)
		}

		writeJSON(w, http.StatusOK, out)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
