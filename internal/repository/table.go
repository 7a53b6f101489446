package repository

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"dealflow-backend/internal/cache"
	"dealflow-backend/internal/database"
	apperrors "dealflow-backend/internal/errors"
	"dealflow-backend/internal/logger"
)

// table is the row-level plumbing shared by every repository: cached ranged
// reads, appends and located whole-row overwrites on a single tab.
type table[T any] struct {
	store    database.Store
	cache    *cache.Cache
	locator  RowLocator
	tab      database.Tab
	cacheKey string
	entity   string
	decode   func([]string) T
	encode   func(T) []string
	key      func(T) string
}

func (t *table[T]) list(ctx context.Context) ([]T, error) {
	log := logger.WithContext(ctx).WithField("tab", t.tab.Name)

	if cached, ok := cache.Typed[[]T](t.cache, t.cacheKey); ok {
		return slices.Clone(cached), nil
	}

	rows, err := t.store.Read(ctx, t.tab.Name, t.tab.DataRange())
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", t.tab.Name, err)
	}

	records := make([]T, 0, len(rows))
	for _, row := range rows {
		rec := t.decode(row)
		if t.key(rec) == "" {
			continue
		}
		records = append(records, rec)
	}
	log.WithField("rows", len(records)).Debug("cache miss, loaded tab")

	t.cache.Set(t.cacheKey, records)
	return slices.Clone(records), nil
}

func (t *table[T]) get(ctx context.Context, id string) (*T, error) {
	records, err := t.list(ctx)
	if err != nil {
		return nil, err
	}
	for i := range records {
		if t.key(records[i]) == id {
			return &records[i], nil
		}
	}
	return nil, apperrors.NewNotFoundError(t.entity, id)
}

func (t *table[T]) append(ctx context.Context, records ...T) error {
	if len(records) == 0 {
		return nil
	}
	rows := make([][]string, len(records))
	for i, rec := range records {
		rows[i] = t.encode(rec)
	}

	if err := t.store.Append(ctx, t.tab.Name, t.tab.AppendRange(), rows); err != nil {
		return fmt.Errorf("failed to append to %s: %w", t.tab.Name, err)
	}
	t.cache.Invalidate(t.cacheKey)

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"tab":  t.tab.Name,
		"rows": len(rows),
	}).Debug("appended rows")
	return nil
}

func (t *table[T]) update(ctx context.Context, rec T) error {
	id := t.key(rec)
	rowNum, err := t.locator.Locate(ctx, t.tab, id)
	if err != nil {
		if errors.Is(err, ErrRowNotFound) {
			return apperrors.NewNotFoundError(t.entity, id)
		}
		return fmt.Errorf("failed to locate %s %q: %w", t.entity, id, err)
	}

	if err := t.store.Update(ctx, t.tab.Name, t.tab.RowRange(rowNum), [][]string{t.encode(rec)}); err != nil {
		return fmt.Errorf("failed to update %s %q: %w", t.entity, id, err)
	}
	t.cache.Invalidate(t.cacheKey)

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"tab": t.tab.Name,
		"id":  id,
		"row": rowNum,
	}).Debug("updated row")
	return nil
}
