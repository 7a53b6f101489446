package database

import "context"

//go:generate mockgen -source=store.go -destination=../mocks/store_mocks.go -package=mocks

// Store is the remote tabular store the repositories persist to. Ranges are
// A1 notation relative to the named tab.
type Store interface {
	// Read returns the rows in cellRange, omitting trailing empty rows and cells.
	// A missing tab yields an errors.TabNotFoundError.
	Read(ctx context.Context, tab, cellRange string) ([][]string, error)
	// Append adds rows after the last populated row of cellRange.
	Append(ctx context.Context, tab, cellRange string, rows [][]string) error
	// Update overwrites exactly cellRange with rows.
	Update(ctx context.Context, tab, cellRange string, rows [][]string) error
}
