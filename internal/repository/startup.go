package repository

import (
	"context"

	"dealflow-backend/internal/cache"
	"dealflow-backend/internal/database"
	"dealflow-backend/internal/database/models"
)

// StartupRepository handles spreadsheet operations for startups
type StartupRepository struct {
	table *table[models.Startup]
	opts  options
}

// Ensure StartupRepository implements StartupRepositoryInterface
var _ StartupRepositoryInterface = (*StartupRepository)(nil)

// NewStartupRepository creates a new startup repository
func NewStartupRepository(store database.Store, c *cache.Cache, opts ...Option) *StartupRepository {
	o := buildOptions(store, opts)
	return &StartupRepository{
		opts: o,
		table: &table[models.Startup]{
			store:    store,
			cache:    c,
			locator:  o.locator,
			tab:      database.TabStartups,
			cacheKey: cacheKeyStartups,
			entity:   "startup",
			decode:   models.StartupFromRow,
			encode:   models.Startup.Row,
			key:      func(s models.Startup) string { return s.StartupID },
		},
	}
}

// List returns every startup
func (r *StartupRepository) List(ctx context.Context) ([]models.Startup, error) {
	return r.table.list(ctx)
}

// GetByID retrieves a startup by ID
func (r *StartupRepository) GetByID(ctx context.Context, id string) (*models.Startup, error) {
	return r.table.get(ctx, id)
}

// Create appends a new startup, filling its id and status when missing
func (r *StartupRepository) Create(ctx context.Context, startup *models.Startup) error {
	applyStartupDefaults(startup, r.opts.newID)
	return r.table.append(ctx, *startup)
}

// Update overwrites the startup's row with the full record
func (r *StartupRepository) Update(ctx context.Context, startup *models.Startup) error {
	return r.table.update(ctx, *startup)
}
