package service

import (
	"context"
	"fmt"

	"dealflow-backend/internal/database/models"
	"dealflow-backend/internal/logger"
	"dealflow-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// StartupService handles business logic for startups
type StartupService struct {
	repo        repository.StartupRepositoryInterface
	projectRepo repository.ProjectRepositoryInterface
	taskRepo    repository.TaskRepositoryInterface
	validator   *validator.Validate
}

// NewStartupService creates a new startup service
func NewStartupService(repo repository.StartupRepositoryInterface, projectRepo repository.ProjectRepositoryInterface, taskRepo repository.TaskRepositoryInterface, validator *validator.Validate) *StartupService {
	return &StartupService{
		repo:        repo,
		projectRepo: projectRepo,
		taskRepo:    taskRepo,
		validator:   validator,
	}
}

// CreateStartupRequest represents the request to create a startup
type CreateStartupRequest struct {
	StartupName       string        `json:"startup_name" validate:"required"`
	Status            models.Status `json:"status,omitempty" validate:"omitempty,oneof=active paused closed"`
	PitchDeckURL      string        `json:"pitch_deck_url,omitempty"`
	DataRoomURL       string        `json:"data_room_url,omitempty"`
	PLURL             string        `json:"pl_url,omitempty"`
	InvestmentMemoURL string        `json:"investment_memo_url,omitempty"`
	Notes             string        `json:"notes,omitempty"`
}

// UpdateStartupRequest represents a partial startup update. Absent fields keep their value.
type UpdateStartupRequest struct {
	StartupID         string         `json:"startup_id" validate:"required"`
	StartupName       *string        `json:"startup_name,omitempty" validate:"omitempty,min=1"`
	Status            *models.Status `json:"status,omitempty" validate:"omitempty,oneof=active paused closed"`
	PitchDeckURL      *string        `json:"pitch_deck_url,omitempty"`
	DataRoomURL       *string        `json:"data_room_url,omitempty"`
	PLURL             *string        `json:"pl_url,omitempty"`
	InvestmentMemoURL *string        `json:"investment_memo_url,omitempty"`
	Notes             *string        `json:"notes,omitempty"`
}

// StartupSummary is a startup with its dashboard counters
type StartupSummary struct {
	models.Startup
	ProjectCount  int `json:"project_count"`
	OpenTaskCount int `json:"open_task_count"`
	MaterialCount int `json:"material_count"`
}

// List returns every startup
func (s *StartupService) List(ctx context.Context) ([]models.Startup, error) {
	return s.repo.List(ctx)
}

// Summaries returns every startup with its project, open task and material counts
func (s *StartupService) Summaries(ctx context.Context) ([]StartupSummary, error) {
	startups, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	projects, err := s.projectRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load projects: %w", err)
	}
	tasks, err := s.taskRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}

	projectCounts := make(map[string]int)
	for _, p := range projects {
		projectCounts[p.StartupID]++
	}
	openTasks := make(map[string]int)
	for _, t := range tasks {
		if t.IsOpen() {
			openTasks[t.StartupID]++
		}
	}

	summaries := make([]StartupSummary, 0, len(startups))
	for _, st := range startups {
		summaries = append(summaries, StartupSummary{
			Startup:       st,
			ProjectCount:  projectCounts[st.StartupID],
			OpenTaskCount: openTasks[st.StartupID],
			MaterialCount: materialCount(st),
		})
	}
	return summaries, nil
}

func materialCount(st models.Startup) int {
	n := 0
	for _, url := range []string{st.PitchDeckURL, st.DataRoomURL, st.PLURL, st.InvestmentMemoURL} {
		if url != "" {
			n++
		}
	}
	return n
}

// Create creates a new startup
func (s *StartupService) Create(ctx context.Context, req *CreateStartupRequest) (*models.Startup, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	startup := &models.Startup{
		StartupName:       req.StartupName,
		Status:            req.Status,
		PitchDeckURL:      req.PitchDeckURL,
		DataRoomURL:       req.DataRoomURL,
		PLURL:             req.PLURL,
		InvestmentMemoURL: req.InvestmentMemoURL,
		Notes:             req.Notes,
	}
	if err := s.repo.Create(ctx, startup); err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithField("startup_id", startup.StartupID).Info("startup created")
	return startup, nil
}

// Update merges the supplied fields onto the stored startup
func (s *StartupService) Update(ctx context.Context, req *UpdateStartupRequest) (*models.Startup, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	startup, err := s.repo.GetByID(ctx, req.StartupID)
	if err != nil {
		return nil, err
	}

	set(&startup.StartupName, req.StartupName)
	set(&startup.Status, req.Status)
	set(&startup.PitchDeckURL, req.PitchDeckURL)
	set(&startup.DataRoomURL, req.DataRoomURL)
	set(&startup.PLURL, req.PLURL)
	set(&startup.InvestmentMemoURL, req.InvestmentMemoURL)
	set(&startup.Notes, req.Notes)

	if err := s.repo.Update(ctx, startup); err != nil {
		return nil, err
	}
	return startup, nil
}
