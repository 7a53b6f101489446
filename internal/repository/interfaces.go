package repository

import (
	"context"

	"dealflow-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	List(ctx context.Context) ([]models.TeamMember, error)
	GetByID(ctx context.Context, id string) (*models.TeamMember, error)
	Create(ctx context.Context, member *models.TeamMember) error
	Update(ctx context.Context, member *models.TeamMember) error
}

// StartupRepositoryInterface defines the interface for startup repository operations
type StartupRepositoryInterface interface {
	List(ctx context.Context) ([]models.Startup, error)
	GetByID(ctx context.Context, id string) (*models.Startup, error)
	Create(ctx context.Context, startup *models.Startup) error
	Update(ctx context.Context, startup *models.Startup) error
}

// ProjectRepositoryInterface defines the interface for project repository operations
type ProjectRepositoryInterface interface {
	List(ctx context.Context) ([]models.Project, error)
	GetByID(ctx context.Context, id string) (*models.Project, error)
	Create(ctx context.Context, project *models.Project) error
	Update(ctx context.Context, project *models.Project) error
}

// TaskRepositoryInterface defines the interface for task repository operations
type TaskRepositoryInterface interface {
	List(ctx context.Context) ([]models.Task, error)
	GetByID(ctx context.Context, id string) (*models.Task, error)
	Create(ctx context.Context, task *models.Task) error
	Update(ctx context.Context, task *models.Task) error
}

// InvestorRepositoryInterface defines the interface for investor repository operations
type InvestorRepositoryInterface interface {
	List(ctx context.Context) ([]models.Investor, error)
	GetByID(ctx context.Context, id string) (*models.Investor, error)
	Create(ctx context.Context, investor *models.Investor) error
	Update(ctx context.Context, investor *models.Investor) error
}

// ProjectInvestorRepositoryInterface defines the interface for project pipeline link operations
type ProjectInvestorRepositoryInterface interface {
	List(ctx context.Context) ([]models.ProjectInvestor, error)
	GetByID(ctx context.Context, id string) (*models.ProjectInvestor, error)
	Create(ctx context.Context, link *models.ProjectInvestor) error
	Update(ctx context.Context, link *models.ProjectInvestor) error
}

// StartupInvestorRepositoryInterface defines the interface for legacy pipeline link operations
type StartupInvestorRepositoryInterface interface {
	List(ctx context.Context) ([]models.StartupInvestor, error)
	GetByID(ctx context.Context, id string) (*models.StartupInvestor, error)
	Create(ctx context.Context, link *models.StartupInvestor) error
	Update(ctx context.Context, link *models.StartupInvestor) error
}

// ConfigRepositoryInterface defines the interface for config repository operations
type ConfigRepositoryInterface interface {
	List(ctx context.Context) ([]models.ConfigRow, error)
	PipelineStages(ctx context.Context) ([]string, error)
}
