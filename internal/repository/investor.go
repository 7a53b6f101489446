package repository

import (
	"context"

	"dealflow-backend/internal/cache"
	"dealflow-backend/internal/database"
	"dealflow-backend/internal/database/models"
)

// InvestorRepository handles spreadsheet operations for the investor directory
type InvestorRepository struct {
	table *table[models.Investor]
	opts  options
}

// Ensure InvestorRepository implements InvestorRepositoryInterface
var _ InvestorRepositoryInterface = (*InvestorRepository)(nil)

// NewInvestorRepository creates a new investor repository
func NewInvestorRepository(store database.Store, c *cache.Cache, opts ...Option) *InvestorRepository {
	o := buildOptions(store, opts)
	return &InvestorRepository{
		opts: o,
		table: &table[models.Investor]{
			store:    store,
			cache:    c,
			locator:  o.locator,
			tab:      database.TabInvestors,
			cacheKey: cacheKeyInvestors,
			entity:   "investor",
			decode:   models.InvestorFromRow,
			encode:   models.Investor.Row,
			key:      func(i models.Investor) string { return i.InvestorID },
		},
	}
}

// List returns every investor
func (r *InvestorRepository) List(ctx context.Context) ([]models.Investor, error) {
	return r.table.list(ctx)
}

// GetByID retrieves an investor by ID
func (r *InvestorRepository) GetByID(ctx context.Context, id string) (*models.Investor, error) {
	return r.table.get(ctx, id)
}

// Create appends a new investor
func (r *InvestorRepository) Create(ctx context.Context, investor *models.Investor) error {
	applyInvestorDefaults(investor, r.opts.newID)
	return r.table.append(ctx, *investor)
}

// Update overwrites the investor's row
func (r *InvestorRepository) Update(ctx context.Context, investor *models.Investor) error {
	return r.table.update(ctx, *investor)
}
