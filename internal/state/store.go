// Package state persists the graph view state. The store keeps exactly
// one logical record: each save atomically replaces the previous one,
// and load returns the latest (and only) record or reports absence.
package state

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/git-kubik/azure-architecture-map/internal/db"
	"github.com/git-kubik/azure-architecture-map/internal/graph"
)

// Store reads and writes the single persisted snapshot.
type Store struct {
	db  *db.DB
	log *zap.Logger
}

// NewStore creates a snapshot store on the given database.
func NewStore(d *db.DB, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{db: d, log: log}
}

// Save replaces the persisted snapshot with the given one. The delete and
// insert run in one transaction, so a crash mid-save keeps the previous
// record rather than leaving the store empty. The ephemeral highlighted
// class is stripped before serializing: it belongs to the last search,
// not to the saved state.
func (s *Store) Save(ctx context.Context, snap *graph.Snapshot) error {
	clean := snap.Clone()
	for i := range clean.Elements {
		clean.Elements[i].RemoveClass(graph.ClassHighlighted)
	}

	payload, err := json.Marshal(clean)
	if err != nil {
		return fmt.Errorf("marshaling snapshot: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning save transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM graph_state`); err != nil {
		return fmt.Errorf("clearing previous state: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO graph_state (state) VALUES (?)`, string(payload)); err != nil {
		return fmt.Errorf("inserting state: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing state: %w", err)
	}

	s.log.Debug("graph state saved", zap.Int("bytes", len(payload)))
	return nil
}

// Load returns the most recently saved snapshot. It returns (nil, nil)
// when nothing has been saved yet or the stored text does not
// deserialize; an error only signals a storage fault.
func (s *Store) Load(ctx context.Context) (*graph.Snapshot, error) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT state FROM graph_state ORDER BY id DESC LIMIT 1`,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		s.log.Debug("no saved graph state")
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading state: %w", err)
	}

	var snap graph.Snapshot
	if err := json.Unmarshal([]byte(payload), &snap); err != nil {
		s.log.Warn("stored graph state is not valid JSON, treating as absent", zap.Error(err))
		return nil, nil
	}

	s.log.Debug("graph state loaded", zap.Int("elements", len(snap.Elements)))
	return &snap, nil
}
