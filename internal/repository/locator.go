package repository

import (
	"context"
	"errors"

	"dealflow-backend/internal/database"
)

// ErrRowNotFound is returned by a RowLocator when no row carries the id
var ErrRowNotFound = errors.New("row not found")

// RowLocator resolves a record id to its 1-based sheet row number
type RowLocator interface {
	Locate(ctx context.Context, tab database.Tab, id string) (int, error)
}

// ColumnScanLocator reads the key column and returns the first exact match.
// This is a linear scan per lookup; the store offers no index.
type ColumnScanLocator struct {
	store database.Store
}

// NewColumnScanLocator creates a locator scanning column A of the tab
func NewColumnScanLocator(store database.Store) *ColumnScanLocator {
	return &ColumnScanLocator{store: store}
}

// Locate implements RowLocator. Row 1 is the header and is never matched.
func (l *ColumnScanLocator) Locate(ctx context.Context, tab database.Tab, id string) (int, error) {
	if id == "" {
		return 0, ErrRowNotFound
	}
	rows, err := l.store.Read(ctx, tab.Name, tab.KeyRange())
	if err != nil {
		return 0, err
	}
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) > 0 && rows[i][0] == id {
			return i + 1, nil
		}
	}
	return 0, ErrRowNotFound
}
