// Package live pushes saved/loaded snapshots to other open browser tabs
// over a websocket, so every tab shows the same persisted state.
package live

import (
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/git-kubik/azure-architecture-map/internal/graph"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// update is the outgoing websocket message format.
type update struct {
	Type     string         `json:"type"` // always "snapshot"
	Snapshot graph.Snapshot `json:"snapshot"`
}

// Hub tracks connected clients and fans snapshot updates out to them.
type Hub struct {
	mu      sync.Mutex
	clients map[string]chan update
	log     *zap.Logger
}

// NewHub creates an empty hub.
func NewHub(log *zap.Logger) *Hub {
	if log == nil {
		log = zap.NewNop()
	}
	return &Hub{clients: make(map[string]chan update), log: log}
}

// Broadcast queues the snapshot for every connected client. A client
// whose queue is full is skipped rather than blocking the caller.
func (h *Hub) Broadcast(snap graph.Snapshot) {
	msg := update{Type: "snapshot", Snapshot: snap}
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, ch := range h.clients {
		select {
		case ch <- msg:
		default:
			h.log.Warn("dropping update for slow websocket client", zap.String("client", id))
		}
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// HandleWS upgrades the request and streams snapshot updates until the
// client disconnects.
func (h *Hub) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("websocket upgrade", zap.Error(err))
		return
	}
	defer conn.Close()

	id := uuid.NewString()
	ch := make(chan update, 8)
	h.mu.Lock()
	h.clients[id] = ch
	h.mu.Unlock()
	h.log.Debug("websocket client connected", zap.String("client", id))

	defer func() {
		h.mu.Lock()
		delete(h.clients, id)
		h.mu.Unlock()
		h.log.Debug("websocket client disconnected", zap.String("client", id))
	}()

	// Reader goroutine: we never expect messages, but reading is what
	// detects the close frame.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-done:
			return
		case msg := <-ch:
			if err := conn.WriteJSON(msg); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					h.log.Warn("websocket write", zap.Error(err))
				}
				return
			}
		}
	}
}

// RegisterRoutes mounts the websocket endpoint.
func (h *Hub) RegisterRoutes(r chi.Router) {
	r.Get("/ws/graph", h.HandleWS)
}
