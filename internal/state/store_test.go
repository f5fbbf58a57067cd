package state

import (
	"context"
	"reflect"
	"testing"

	"github.com/git-kubik/azure-architecture-map/internal/content"
	"github.com/git-kubik/azure-architecture-map/internal/db"
	"github.com/git-kubik/azure-architecture-map/internal/graph"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	d, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { d.Close() })
	return NewStore(d, nil)
}

func testSnapshot() *graph.Snapshot {
	return &graph.Snapshot{
		Elements: graph.Build(content.Default(), graph.DefaultLayout),
		Zoom:     1.3,
		Pan:      graph.Position{X: 42.5, Y: -17.25},
	}
}

func TestLoadEmptyStore(t *testing.T) {
	store := setupTestStore(t)

	snap, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if snap != nil {
		t.Errorf("expected absent snapshot on fresh store, got %d elements", len(snap.Elements))
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	want := testSnapshot()
	want.Elements[0].Data.Notes = "root note"
	want.Elements[3].Position.X = 123.456

	if err := store.Save(ctx, want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got == nil {
		t.Fatal("expected saved snapshot, got absent")
	}
	if !reflect.DeepEqual(got, want) {
		t.Error("loaded snapshot differs from saved one")
	}
}

func TestSaveOverwritesSingleSlot(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	first := testSnapshot()
	first.Zoom = 0.5
	second := testSnapshot()
	second.Zoom = 1.8

	if err := store.Save(ctx, first); err != nil {
		t.Fatalf("Save first: %v", err)
	}
	if err := store.Save(ctx, second); err != nil {
		t.Fatalf("Save second: %v", err)
	}

	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Zoom != 1.8 {
		t.Errorf("zoom = %v, want the second save's 1.8", got.Zoom)
	}

	var rows int
	if err := store.db.QueryRow(`SELECT COUNT(*) FROM graph_state`).Scan(&rows); err != nil {
		t.Fatalf("counting rows: %v", err)
	}
	if rows != 1 {
		t.Errorf("rows = %d, want exactly 1", rows)
	}
}

func TestSaveStripsHighlight(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	snap := testSnapshot()
	snap.Elements[1].AddClass(graph.ClassHighlighted)

	if err := store.Save(ctx, snap); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// The caller's snapshot keeps its highlight; only the persisted copy
	// is stripped.
	if !snap.Elements[1].HasClass(graph.ClassHighlighted) {
		t.Error("Save mutated the caller's snapshot")
	}

	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	for i := range got.Elements {
		if got.Elements[i].HasClass(graph.ClassHighlighted) {
			t.Errorf("persisted element %s still highlighted", got.Elements[i].Data.ID)
		}
	}
	// The rest of the class string survives.
	if got.Elements[1].Classes != "primary-node color-0" {
		t.Errorf("classes = %q after strip, want %q", got.Elements[1].Classes, "primary-node color-0")
	}
}

func TestLoadCorruptStateIsAbsent(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	if _, err := store.db.Exec(`INSERT INTO graph_state (state) VALUES ('{not json')`); err != nil {
		t.Fatalf("inserting corrupt row: %v", err)
	}

	snap, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if snap != nil {
		t.Error("expected absent snapshot for corrupt stored text")
	}
}
