package repository

import (
	"context"
	"slices"

	"dealflow-backend/internal/cache"
	"dealflow-backend/internal/database"
	"dealflow-backend/internal/database/models"
)

// ConfigRepository reads the CONFIG key/value tab
type ConfigRepository struct {
	table *table[models.ConfigRow]
}

// Ensure ConfigRepository implements ConfigRepositoryInterface
var _ ConfigRepositoryInterface = (*ConfigRepository)(nil)

// NewConfigRepository creates a new config repository
func NewConfigRepository(store database.Store, c *cache.Cache, opts ...Option) *ConfigRepository {
	o := buildOptions(store, opts)
	return &ConfigRepository{
		table: &table[models.ConfigRow]{
			store:    store,
			cache:    c,
			locator:  o.locator,
			tab:      database.TabConfig,
			cacheKey: cacheKeyConfig,
			entity:   "config entry",
			decode:   models.ConfigRowFromRow,
			encode:   models.ConfigRow.Row,
			key:      func(row models.ConfigRow) string { return row.Key },
		},
	}
}

// List returns every config row
func (r *ConfigRepository) List(ctx context.Context) ([]models.ConfigRow, error) {
	return r.table.list(ctx)
}

// PipelineStages returns the configured ordered stage list, falling back
// to the default stages when no pipeline_stages row exists.
func (r *ConfigRepository) PipelineStages(ctx context.Context) ([]string, error) {
	rows, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		if row.Key == models.ConfigKeyPipelineStages {
			return models.SplitStages(row.Value), nil
		}
	}
	return slices.Clone(models.DefaultPipelineStages), nil
}
