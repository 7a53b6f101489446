package repository

import (
	"context"

	"dealflow-backend/internal/cache"
	"dealflow-backend/internal/database"
	"dealflow-backend/internal/database/models"
)

// TeamRepository handles spreadsheet operations for team members
type TeamRepository struct {
	table *table[models.TeamMember]
	opts  options
}

// Ensure TeamRepository implements TeamRepositoryInterface
var _ TeamRepositoryInterface = (*TeamRepository)(nil)

// NewTeamRepository creates a new team repository
func NewTeamRepository(store database.Store, c *cache.Cache, opts ...Option) *TeamRepository {
	o := buildOptions(store, opts)
	return &TeamRepository{
		opts: o,
		table: &table[models.TeamMember]{
			store:    store,
			cache:    c,
			locator:  o.locator,
			tab:      database.TabTeam,
			cacheKey: cacheKeyTeam,
			entity:   "team member",
			decode:   models.TeamMemberFromRow,
			encode:   models.TeamMember.Row,
			key:      func(m models.TeamMember) string { return m.TeamID },
		},
	}
}

// List returns every team member
func (r *TeamRepository) List(ctx context.Context) ([]models.TeamMember, error) {
	return r.table.list(ctx)
}

// GetByID retrieves a team member by ID
func (r *TeamRepository) GetByID(ctx context.Context, id string) (*models.TeamMember, error) {
	return r.table.get(ctx, id)
}

// Create appends a new team member
func (r *TeamRepository) Create(ctx context.Context, member *models.TeamMember) error {
	applyTeamMemberDefaults(member, r.opts.newID)
	return r.table.append(ctx, *member)
}

// Update overwrites the team member's row
func (r *TeamRepository) Update(ctx context.Context, member *models.TeamMember) error {
	return r.table.update(ctx, *member)
}
