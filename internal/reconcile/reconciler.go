// Package reconcile holds the combined event handler: every user action
// on the map funnels through Handle, which reads the widget's current
// snapshot, applies exactly one branch for the trigger, and returns the
// complete output tuple the UI renders from.
package reconcile

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/git-kubik/azure-architecture-map/internal/graph"
	"github.com/git-kubik/azure-architecture-map/internal/markdown"
	"github.com/git-kubik/azure-architecture-map/internal/state"
)

const defaultNodeInfo = "Click on a node to see details."

// ZoomConfig bounds the zoom controls.
type ZoomConfig struct {
	Step float64
	Min  float64
	Max  float64
}

// DefaultZoom matches the widget's configured limits.
var DefaultZoom = ZoomConfig{Step: 0.2, Min: 0.5, Max: 2.0}

// Event is one user-triggered invocation: the trigger identity, the
// widget's current snapshot, and the per-control auxiliary values.
type Event struct {
	Trigger    Trigger
	Snapshot   graph.Snapshot
	Query      string      // search box text
	NoteText   string      // notes editor text
	TappedNode *graph.Data // data payload of the most recently tapped node
}

// Output is the complete result of one event. Every branch fills every
// field; branches that do not touch a field leave its neutral default.
type Output struct {
	Snapshot   graph.Snapshot `json:"snapshot"`
	NodeInfo   string         `json:"node_info"`
	NotesHTML  string         `json:"notes_html"`
	ShowNotes  bool           `json:"show_notes"`
	NoteDraft  string         `json:"note_draft"`
	ShowEditor bool           `json:"show_editor"`
	Saved      bool           `json:"saved"`
	Loaded     bool           `json:"loaded"`
	NoteSaved  bool           `json:"note_saved"`
	Updated    bool           `json:"updated"`
}

// Reconciler applies events to snapshots and talks to the store.
type Reconciler struct {
	store    *state.Store
	renderer *markdown.Renderer
	zoom     ZoomConfig
	log      *zap.Logger
}

// New creates a reconciler. A nil logger is replaced with a no-op one.
func New(store *state.Store, renderer *markdown.Renderer, zoom ZoomConfig, log *zap.Logger) *Reconciler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Reconciler{store: store, renderer: renderer, zoom: zoom, log: log}
}

// Handle processes one event. The input snapshot is never mutated: every
// branch works on a clone and returns a full replacement. Store failures
// never escape; they surface only as an unset Saved/Loaded flag.
func (r *Reconciler) Handle(ctx context.Context, ev Event) Output {
	out := Output{
		Snapshot: *ev.Snapshot.Clone(),
		NodeInfo: defaultNodeInfo,
		Updated:  true,
	}

	r.log.Debug("handling event", zap.String("trigger", ev.Trigger.String()))

	switch ev.Trigger {
	case TriggerZoomIn, TriggerZoomOut, TriggerResetZoom:
		r.applyZoom(ev.Trigger, &out)

	case TriggerLoadState:
		r.applyLoad(ctx, &out)

	case TriggerSaveState:
		r.applySave(ctx, &out)

	case TriggerSaveNote:
		r.applySaveNote(ctx, ev, &out)

	case TriggerSearch:
		r.applySearch(ev.Query, &out)

	case TriggerNodeTap:
		r.applyNodeTap(ev.TappedNode, &out)

	default:
		// No trigger, or an id the UI never registered. No side effects.
		out.Updated = false
	}

	return out
}

func (r *Reconciler) applyZoom(t Trigger, out *Output) {
	switch t {
	case TriggerZoomIn:
		out.Snapshot.Zoom += r.zoom.Step
	case TriggerZoomOut:
		out.Snapshot.Zoom -= r.zoom.Step
	case TriggerResetZoom:
		out.Snapshot.Zoom = 1.0
		out.Snapshot.Pan = graph.Position{}
	}
	if out.Snapshot.Zoom < r.zoom.Min {
		out.Snapshot.Zoom = r.zoom.Min
	}
	if out.Snapshot.Zoom > r.zoom.Max {
		out.Snapshot.Zoom = r.zoom.Max
	}
	r.log.Debug("zoom adjusted", zap.Float64("zoom", out.Snapshot.Zoom))
}

func (r *Reconciler) applyLoad(ctx context.Context, out *Output) {
	snap, err := r.store.Load(ctx)
	if err != nil {
		r.log.Error("loading graph state", zap.Error(err))
		return
	}
	if snap == nil {
		// First run before any save: keep the current snapshot on screen.
		r.log.Info("no saved graph state to load")
		return
	}
	out.Snapshot = *snap
	out.Loaded = true
	r.log.Info("graph state loaded", zap.Int("elements", len(snap.Elements)))
}

func (r *Reconciler) applySave(ctx context.Context, out *Output) {
	if err := r.store.Save(ctx, &out.Snapshot); err != nil {
		r.log.Error("saving graph state", zap.Error(err))
		return
	}
	out.Saved = true
	r.log.Info("graph state saved")
}

func (r *Reconciler) applySaveNote(ctx context.Context, ev Event, out *Output) {
	if ev.TappedNode == nil {
		r.log.Warn("save-note fired without a tapped node")
		return
	}
	node := out.Snapshot.NodeByID(ev.TappedNode.ID)
	if node == nil {
		// The node vanished between tap and save (e.g. a reload replaced
		// the elements). Benign; nothing to update.
		r.log.Warn("tapped node no longer present", zap.String("id", ev.TappedNode.ID))
		return
	}

	node.Data.Notes = ev.NoteText
	out.NoteSaved = true
	out.NotesHTML = r.renderer.Render(ev.NoteText)
	out.ShowNotes = strings.TrimSpace(ev.NoteText) != ""
	out.NoteDraft = ev.NoteText
	out.ShowEditor = true
	r.log.Info("note saved", zap.String("node", node.Data.ID))

	// Persist the updated elements alongside the note, best effort.
	if err := r.store.Save(ctx, &out.Snapshot); err != nil {
		r.log.Warn("persisting state after note save", zap.Error(err))
	}
}

func (r *Reconciler) applySearch(query string, out *Output) {
	for i := range out.Snapshot.Elements {
		out.Snapshot.Elements[i].RemoveClass(graph.ClassHighlighted)
	}

	if query == "" {
		out.NodeInfo = "Search cleared. All nodes are visible."
		r.log.Debug("search cleared")
		return
	}

	matches := graph.Match(query, out.Snapshot.NodeLabels())
	if len(matches) == 0 {
		out.NodeInfo = "No matching nodes found."
		r.log.Debug("search found no matches", zap.String("query", query))
		return
	}

	matched := make(map[string]bool, len(matches))
	for _, label := range matches {
		matched[label] = true
	}
	for i := range out.Snapshot.Elements {
		e := &out.Snapshot.Elements[i]
		if e.IsEdge() {
			continue
		}
		if matched[e.Data.Label] {
			e.AddClass(graph.ClassHighlighted)
		}
	}
	out.NodeInfo = fmt.Sprintf("%d matching node(s) highlighted.", len(matches))
	r.log.Debug("search highlighted nodes",
		zap.String("query", query), zap.Int("matches", len(matches)))
}

func (r *Reconciler) applyNodeTap(tapped *graph.Data, out *Output) {
	if tapped == nil {
		return
	}
	out.NodeInfo = tapped.Label + "\n" + tapped.Description
	out.NotesHTML = r.renderer.Render(tapped.Notes)
	out.ShowNotes = strings.TrimSpace(tapped.Notes) != ""
	out.NoteDraft = tapped.Notes
	out.ShowEditor = true
	r.log.Debug("node tapped", zap.String("id", tapped.ID))
}
