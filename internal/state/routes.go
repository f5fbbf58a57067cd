package state

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/git-kubik/azure-architecture-map/internal/graph"
)

// graphResponse is the initial payload the page renders from.
type graphResponse struct {
	Snapshot   graph.Snapshot    `json:"snapshot"`
	Stylesheet []graph.StyleRule `json:"stylesheet"`
}

// RegisterRoutes mounts the initial-state endpoint. The fallback
// snapshot is served whenever nothing has been saved yet.
func RegisterRoutes(r chi.Router, store *Store, fallback graph.Snapshot) {
	r.Get("/api/graph", graphHandler(store, fallback))
}

func graphHandler(store *Store, fallback graph.Snapshot) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, err := store.Load(r.Context())
		if err != nil {
			http.Error(w, "loading graph state", http.StatusInternalServerError)
			return
		}
		if snap == nil {
			snap = fallback.Clone()
		}
		writeJSON(w, http.StatusOK, graphResponse{
			Snapshot:   *snap,
			Stylesheet: graph.Stylesheet(),
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
