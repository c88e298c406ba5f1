package store

import (
	"context"

	"github.com/hyperengineering/stride/internal/record"
)

// Store defines the interface contract for all record storage operations.
type Store interface {
	// Add assigns a fresh identity onto rec, appends it to its kind's
	// sheet, and persists the workbook. Whatever identifier the caller
	// set on rec is discarded.
	Add(ctx context.Context, rec record.Record) error

	// List returns every decodable record of the kind in on-disk row
	// order. Blank and undecodable rows are skipped, never fatal.
	List(ctx context.Context, kind record.Kind) ([]record.Record, error)

	// Get returns the record with the given id, or ErrNotFound when no
	// row matches or the matching row cannot be decoded.
	Get(ctx context.Context, kind record.Kind, id string) (record.Record, error)

	// Update rewrites the row whose id matches rec, refreshing its
	// UpdatedAt stamp, and persists the workbook. It reports false with
	// a nil error when no row has rec's id.
	Update(ctx context.Context, rec record.Record) (bool, error)

	// Invalidate drops the cached document so the next operation
	// reloads from disk.
	Invalidate() error

	// Path returns the workbook file path this store is bound to.
	Path() string
}
