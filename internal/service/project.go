package service

import (
	"context"
	"fmt"

	"dealflow-backend/internal/database/models"
	"dealflow-backend/internal/logger"
	"dealflow-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// ProjectService handles business logic for fundraising projects
type ProjectService struct {
	repo        repository.ProjectRepositoryInterface
	startupRepo repository.StartupRepositoryInterface
	taskRepo    repository.TaskRepositoryInterface
	linkRepo    repository.ProjectInvestorRepositoryInterface
	validator   *validator.Validate
}

// NewProjectService creates a new project service
func NewProjectService(repo repository.ProjectRepositoryInterface, startupRepo repository.StartupRepositoryInterface, taskRepo repository.TaskRepositoryInterface, linkRepo repository.ProjectInvestorRepositoryInterface, validator *validator.Validate) *ProjectService {
	return &ProjectService{
		repo:        repo,
		startupRepo: startupRepo,
		taskRepo:    taskRepo,
		linkRepo:    linkRepo,
		validator:   validator,
	}
}

// CreateProjectRequest represents the request to create a project
type CreateProjectRequest struct {
	StartupID   string        `json:"startup_id" validate:"required"`
	ProjectName string        `json:"project_name" validate:"required"`
	Status      models.Status `json:"status,omitempty" validate:"omitempty,oneof=active paused closed"`
	Notes       string        `json:"notes,omitempty"`
}

// UpdateProjectRequest represents a partial project update
type UpdateProjectRequest struct {
	ProjectID   string         `json:"project_id" validate:"required"`
	StartupID   *string        `json:"startup_id,omitempty" validate:"omitempty,min=1"`
	ProjectName *string        `json:"project_name,omitempty" validate:"omitempty,min=1"`
	Status      *models.Status `json:"status,omitempty" validate:"omitempty,oneof=active paused closed"`
	Notes       *string        `json:"notes,omitempty"`
}

// ProjectSummary is a project with its owning startup's name and counters
type ProjectSummary struct {
	models.Project
	StartupName   string `json:"startup_name"`
	OpenTaskCount int    `json:"open_task_count"`
	InvestorCount int    `json:"investor_count"`
}

// List returns projects, optionally only those of one startup
func (s *ProjectService) List(ctx context.Context, startupID string) ([]models.Project, error) {
	projects, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if startupID == "" {
		return projects, nil
	}

	filtered := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		if p.StartupID == startupID {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// Summaries returns projects with startup name, open task and pipeline counts
func (s *ProjectService) Summaries(ctx context.Context, startupID string) ([]ProjectSummary, error) {
	projects, err := s.List(ctx, startupID)
	if err != nil {
		return nil, err
	}
	startups, err := s.startupRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load startups: %w", err)
	}
	tasks, err := s.taskRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}
	links, err := s.linkRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load pipeline: %w", err)
	}

	names := make(map[string]string, len(startups))
	for _, st := range startups {
		names[st.StartupID] = st.StartupName
	}
	openTasks := make(map[string]int)
	for _, t := range tasks {
		if t.ProjectID != "" && t.IsOpen() {
			openTasks[t.ProjectID]++
		}
	}
	investors := make(map[string]int)
	for _, l := range links {
		investors[l.ProjectID]++
	}

	summaries := make([]ProjectSummary, 0, len(projects))
	for _, p := range projects {
		summaries = append(summaries, ProjectSummary{
			Project:       p,
			StartupName:   names[p.StartupID],
			OpenTaskCount: openTasks[p.ProjectID],
			InvestorCount: investors[p.ProjectID],
		})
	}
	return summaries, nil
}

// Create creates a new project under an existing startup
func (s *ProjectService) Create(ctx context.Context, req *CreateProjectRequest) (*models.Project, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}
	if _, err := s.startupRepo.GetByID(ctx, req.StartupID); err != nil {
		return nil, err
	}

	project := &models.Project{
		StartupID:   req.StartupID,
		ProjectName: req.ProjectName,
		Status:      req.Status,
		Notes:       req.Notes,
	}
	if err := s.repo.Create(ctx, project); err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"project_id": project.ProjectID,
		"startup_id": project.StartupID,
	}).Info("project created")
	return project, nil
}

// Update merges the supplied fields onto the stored project
func (s *ProjectService) Update(ctx context.Context, req *UpdateProjectRequest) (*models.Project, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	project, err := s.repo.GetByID(ctx, req.ProjectID)
	if err != nil {
		return nil, err
	}

	set(&project.StartupID, req.StartupID)
	set(&project.ProjectName, req.ProjectName)
	set(&project.Status, req.Status)
	set(&project.Notes, req.Notes)

	if err := s.repo.Update(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}
