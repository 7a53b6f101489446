package service

import (
	"context"

	"dealflow-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	List(ctx context.Context) ([]models.TeamMember, error)
	Create(ctx context.Context, req *CreateTeamMemberRequest) (*models.TeamMember, error)
	Update(ctx context.Context, req *UpdateTeamMemberRequest) (*models.TeamMember, error)
}

// StartupServiceInterface defines the interface for startup service
type StartupServiceInterface interface {
	List(ctx context.Context) ([]models.Startup, error)
	Summaries(ctx context.Context) ([]StartupSummary, error)
	Create(ctx context.Context, req *CreateStartupRequest) (*models.Startup, error)
	Update(ctx context.Context, req *UpdateStartupRequest) (*models.Startup, error)
}

// ProjectServiceInterface defines the interface for project service
type ProjectServiceInterface interface {
	List(ctx context.Context, startupID string) ([]models.Project, error)
	Summaries(ctx context.Context, startupID string) ([]ProjectSummary, error)
	Create(ctx context.Context, req *CreateProjectRequest) (*models.Project, error)
	Update(ctx context.Context, req *UpdateProjectRequest) (*models.Project, error)
}

// TaskServiceInterface defines the interface for task service
type TaskServiceInterface interface {
	List(ctx context.Context, filter TaskFilter) ([]models.Task, error)
	Create(ctx context.Context, req *CreateTaskRequest) (*models.Task, error)
	Update(ctx context.Context, req *UpdateTaskRequest) (*models.Task, error)
}

// InvestorServiceInterface defines the interface for investor service
type InvestorServiceInterface interface {
	List(ctx context.Context, tag string) ([]models.Investor, error)
	Create(ctx context.Context, req *CreateInvestorRequest) (*models.Investor, error)
	Update(ctx context.Context, req *UpdateInvestorRequest) (*models.Investor, error)
}

// PipelineServiceInterface defines the interface for the project pipeline service
type PipelineServiceInterface interface {
	List(ctx context.Context, projectID string) ([]models.ProjectInvestor, error)
	Board(ctx context.Context, projectID string) (*PipelineBoard, error)
	Create(ctx context.Context, req *CreateProjectInvestorRequest) (*models.ProjectInvestor, error)
	Update(ctx context.Context, req *UpdateProjectInvestorRequest) (*models.ProjectInvestor, error)
}

// LegacyPipelineServiceInterface defines the interface for the startup-scoped pipeline service
type LegacyPipelineServiceInterface interface {
	List(ctx context.Context, startupID string) ([]models.StartupInvestor, error)
	Create(ctx context.Context, req *CreateStartupInvestorRequest) (*models.StartupInvestor, error)
	Update(ctx context.Context, req *UpdateStartupInvestorRequest) (*models.StartupInvestor, error)
}

// ConfigServiceInterface defines the interface for config service
type ConfigServiceInterface interface {
	Get(ctx context.Context) (*ConfigResponse, error)
}

// HealthServiceInterface defines the interface for health service
type HealthServiceInterface interface {
	Check(ctx context.Context) *HealthStatus
}

var (
	_ TeamServiceInterface           = (*TeamService)(nil)
	_ StartupServiceInterface        = (*StartupService)(nil)
	_ ProjectServiceInterface        = (*ProjectService)(nil)
	_ TaskServiceInterface           = (*TaskService)(nil)
	_ InvestorServiceInterface       = (*InvestorService)(nil)
	_ PipelineServiceInterface       = (*PipelineService)(nil)
	_ LegacyPipelineServiceInterface = (*LegacyPipelineService)(nil)
	_ ConfigServiceInterface         = (*ConfigService)(nil)
	_ HealthServiceInterface         = (*HealthService)(nil)
)
