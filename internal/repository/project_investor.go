package repository

import (
	"context"

	"dealflow-backend/internal/cache"
	"dealflow-backend/internal/database"
	"dealflow-backend/internal/database/models"
)

// ProjectInvestorRepository handles spreadsheet operations for project pipeline links
type ProjectInvestorRepository struct {
	table  *table[models.ProjectInvestor]
	stages StageSource
	opts   options
}

// Ensure ProjectInvestorRepository implements ProjectInvestorRepositoryInterface
var _ ProjectInvestorRepositoryInterface = (*ProjectInvestorRepository)(nil)

// NewProjectInvestorRepository creates a new project-investor repository
func NewProjectInvestorRepository(store database.Store, c *cache.Cache, stages StageSource, opts ...Option) *ProjectInvestorRepository {
	o := buildOptions(store, opts)
	return &ProjectInvestorRepository{
		opts:   o,
		stages: stages,
		table: &table[models.ProjectInvestor]{
			store:    store,
			cache:    c,
			locator:  o.locator,
			tab:      database.TabProjectInvestors,
			cacheKey: cacheKeyProjectInvestors,
			entity:   "project-investor link",
			decode:   models.ProjectInvestorFromRow,
			encode:   models.ProjectInvestor.Row,
			key:      func(pi models.ProjectInvestor) string { return pi.LinkID },
		},
	}
}

// List returns every project pipeline link
func (r *ProjectInvestorRepository) List(ctx context.Context) ([]models.ProjectInvestor, error) {
	return r.table.list(ctx)
}

// GetByID retrieves a link by ID
func (r *ProjectInvestorRepository) GetByID(ctx context.Context, id string) (*models.ProjectInvestor, error) {
	return r.table.get(ctx, id)
}

// Create appends a new link. The stage defaults to the first configured
// stage and must be one of the configured stages.
func (r *ProjectInvestorRepository) Create(ctx context.Context, link *models.ProjectInvestor) error {
	stages, err := r.stages.PipelineStages(ctx)
	if err != nil {
		return err
	}
	applyProjectInvestorDefaults(link, r.opts.newID, stages, r.opts.now())
	if err := validateStage(stages, link.Stage); err != nil {
		return err
	}
	return r.table.append(ctx, *link)
}

// Update overwrites the link's row. A changed stage must be one of the
// configured stages; an unchanged one is kept even if no longer configured.
func (r *ProjectInvestorRepository) Update(ctx context.Context, link *models.ProjectInvestor) error {
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
