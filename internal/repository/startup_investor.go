package repository

import (
	"context"

	"dealflow-backend/internal/cache"
	"dealflow-backend/internal/database"
	"dealflow-backend/internal/database/models"
	apperrors "dealflow-backend/internal/errors"
	"dealflow-backend/internal/logger"
)

// StartupInvestorRepository handles the legacy startup-scoped pipeline links.
// Spreadsheets created after the project migration may not have the tab at all.
type StartupInvestorRepository struct {
	table  *table[models.StartupInvestor]
	stages StageSource
	opts   options
}

// Ensure StartupInvestorRepository implements StartupInvestorRepositoryInterface
var _ StartupInvestorRepositoryInterface = (*StartupInvestorRepository)(nil)

// NewStartupInvestorRepository creates a new legacy link repository
func NewStartupInvestorRepository(store database.Store, c *cache.Cache, stages StageSource, opts ...Option) *StartupInvestorRepository {
	o := buildOptions(store, opts)
	return &StartupInvestorRepository{
		opts:   o,
		stages: stages,
		table: &table[models.StartupInvestor]{
			store:    store,
			cache:    c,
			locator:  o.locator,
			tab:      database.TabStartupInvestors,
			cacheKey: cacheKeyStartupInvestors,
			entity:   "startup-investor link",
			decode:   models.StartupInvestorFromRow,
			encode:   models.StartupInvestor.Row,
			key:      func(si models.StartupInvestor) string { return si.LinkID },
		},
	}
}

// List returns every legacy link, or an empty list when the tab is missing
func (r *StartupInvestorRepository) List(ctx context.Context) ([]models.StartupInvestor, error) {
	links, err := r.table.list(ctx)
	if apperrors.IsTabNotFound(err) {
		logger.WithContext(ctx).WithField("tab", database.TabStartupInvestors.Name).
			Debug("legacy tab missing, treating as empty")
		return []models.StartupInvestor{}, nil
	}
	return links, err
}

// GetByID retrieves a legacy link by ID
func (r *StartupInvestorRepository) GetByID(ctx context.Context, id string) (*models.StartupInvestor, error) {
	links, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range links {
		if links[i].LinkID == id {
			return &links[i], nil
		}
	}
	return nil, apperrors.NewNotFoundError("startup-investor link", id)
}

// Create appends a new legacy link
func (r *StartupInvestorRepository) Create(ctx context.Context, link *models.StartupInvestor) error {
	stages, err := r.stages.PipelineStages(ctx)
	if err != nil {
		return err
	}
	applyStartupInvestorDefaults(link, r.opts.newID, stages, r.opts.now())
	if err := validateStage(stages, link.Stage); err != nil {
		return err
	}
	return r.table.append(ctx, *link)
}

// Update overwrites a legacy link's row. Only a changed stage is validated.
func (r *StartupInvestorRepository) Update(ctx context.Context, link *models.StartupInvestor) error {
	stored, err := r.GetByID(ctx, link.LinkID)
	if err != nil {
		return err
	}
	if stored.Stage != link.Stage {
		stages, err := r.stages.PipelineStages(ctx)
		if err != nil {
			return err
		}
		if err := validateStage(stages, link.Stage); err != nil {
			return err
		}
	}
	return r.table.update(ctx, *link)
}
