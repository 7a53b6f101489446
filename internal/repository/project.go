package repository

import (
	"context"

	"dealflow-backend/internal/cache"
	"dealflow-backend/internal/database"
	"dealflow-backend/internal/database/models"
)

// ProjectRepository handles spreadsheet operations for projects
type ProjectRepository struct {
	table *table[models.Project]
	opts  options
}

// Ensure ProjectRepository implements ProjectRepositoryInterface
var _ ProjectRepositoryInterface = (*ProjectRepository)(nil)

// NewProjectRepository creates a new project repository
func NewProjectRepository(store database.Store, c *cache.Cache, opts ...Option) *ProjectRepository {
	o := buildOptions(store, opts)
	return &ProjectRepository{
		opts: o,
		table: &table[models.Project]{
			store:    store,
			cache:    c,
			locator:  o.locator,
			tab:      database.TabProjects,
			cacheKey: cacheKeyProjects,
			entity:   "project",
			decode:   models.ProjectFromRow,
			encode:   models.Project.Row,
			key:      func(p models.Project) string { return p.ProjectID },
		},
	}
}

// List returns every project
func (r *ProjectRepository) List(ctx context.Context) ([]models.Project, error) {
	return r.table.list(ctx)
}

// GetByID retrieves a project by ID
func (r *ProjectRepository) GetByID(ctx context.Context, id string) (*models.Project, error) {
	return r.table.get(ctx, id)
}

// Create appends a new project
func (r *ProjectRepository) Create(ctx context.Context, project *models.Project) error {
	applyProjectDefaults(project, r.opts.newID, r.opts.now())
	return r.table.append(ctx, *project)
}

// Update overwrites the project's row
func (r *ProjectRepository) Update(ctx context.Context, project *models.Project) error {
	return r.table.update(ctx, *project)
}
