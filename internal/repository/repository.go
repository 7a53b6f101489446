package repository

import (
	"time"

	"dealflow-backend/internal/cache"
	"dealflow-backend/internal/database"
)

// Cache keys, one per collection. Writes invalidate by this prefix.
const (
	cacheKeyTeam             = "team"
	cacheKeyStartups         = "startups"
	cacheKeyProjects         = "projects"
	cacheKeyTasks            = "tasks"
	cacheKeyInvestors        = "investors"
	cacheKeyProjectInvestors = "project_investors"
	cacheKeyStartupInvestors = "startup_investors"
	cacheKeyConfig           = "config"
)

// Option configures repositories
type Option func(*options)

type options struct {
	now     func() time.Time
	newID   IDGenerator
	locator RowLocator
}

// WithClock sets the clock used for created_at and last_update defaults
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithIDGenerator replaces GenerateID
func WithIDGenerator(fn IDGenerator) Option {
	return func(o *options) { o.newID = fn }
}

// WithLocator replaces the column-scan row locator
func WithLocator(l RowLocator) Option {
	return func(o *options) { o.locator = l }
}

func buildOptions(store database.Store, opts []Option) options {
	o := options{now: time.Now, newID: GenerateID}
	for _, opt := range opts {
		opt(&o)
	}
	if o.locator == nil {
		o.locator = NewColumnScanLocator(store)
	}
	return o
}

// Repositories bundles every repository over one store and cache
type Repositories struct {
	Team             *TeamRepository
	Startups         *StartupRepository
	Projects         *ProjectRepository
	Tasks            *TaskRepository
	Investors        *InvestorRepository
	ProjectInvestors *ProjectInvestorRepository
	StartupInvestors *StartupInvestorRepository
	Config           *ConfigRepository
}

// New builds all repositories sharing store, cache and options
func New(store database.Store, c *cache.Cache, opts ...Option) *Repositories {
	config := NewConfigRepository(store, c, opts...)
	return &Repositories{
		Team:             NewTeamRepository(store, c, opts...),
		Startups:         NewStartupRepository(store, c, opts...),
		Projects:         NewProjectRepository(store, c, opts...),
		Tasks:            NewTaskRepository(store, c, opts...),
		Investors:        NewInvestorRepository(store, c, opts...),
		ProjectInvestors: NewProjectInvestorRepository(store, c, config, opts...),
		StartupInvestors: NewStartupInvestorRepository(store, c, config, opts...),
		Config:           config,
	}
}
