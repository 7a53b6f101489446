package service

import (
	"context"

	"dealflow-backend/internal/database/models"
	"dealflow-backend/internal/logger"
	"dealflow-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// TaskService handles business logic for tasks
type TaskService struct {
	repo      repository.TaskRepositoryInterface
	validator *validator.Validate
	opts      options
}

// NewTaskService creates a new task service
func NewTaskService(repo repository.TaskRepositoryInterface, validator *validator.Validate, opts ...Option) *TaskService {
	return &TaskService{
		repo:      repo,
		validator: validator,
		opts:      buildOptions(opts),
	}
}

// CreateTaskRequest represents the request to create a task.
// An empty project_id creates a startup-level task.
type CreateTaskRequest struct {
	StartupID string              `json:"startup_id,omitempty"`
	ProjectID string              `json:"project_id,omitempty"`
	Title     string              `json:"title" validate:"required"`
	OwnerID   string              `json:"owner_id,omitempty"`
	DueDate   string              `json:"due_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Status    models.TaskStatus   `json:"status,omitempty" validate:"omitempty,oneof=todo doing done"`
	Priority  models.TaskPriority `json:"priority,omitempty" validate:"omitempty,oneof=low medium high"`
	Notes     string              `json:"notes,omitempty"`
}

// UpdateTaskRequest represents a partial task update
type UpdateTaskRequest struct {
	TaskID    string               `json:"task_id" validate:"required"`
	StartupID *string              `json:"startup_id,omitempty"`
	ProjectID *string              `json:"project_id,omitempty"`
	Title     *string              `json:"title,omitempty" validate:"omitempty,min=1"`
	OwnerID   *string              `json:"owner_id,omitempty"`
	DueDate   *string              `json:"due_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Status    *models.TaskStatus   `json:"status,omitempty" validate:"omitempty,oneof=todo doing done"`
	Priority  *models.TaskPriority `json:"priority,omitempty" validate:"omitempty,oneof=low medium high"`
	Notes     *string              `json:"notes,omitempty"`
}

// TaskFilter narrows a task listing. Empty fields match everything.
type TaskFilter struct {
	StartupID string
	ProjectID string
	OwnerID   string
	Status    models.TaskStatus
	// StartupLevel, when set, keeps only tasks with (true) or without (false) a project
	StartupLevel *bool
}

func (f TaskFilter) matches(t models.Task) bool {
	if f.StartupID != "" && t.StartupID != f.StartupID {
		return false
	}
	if f.ProjectID != "" && t.ProjectID != f.ProjectID {
		return false
	}
	if f.OwnerID != "" && t.OwnerID != f.OwnerID {
		return false
	}
	if f.Status != "" && t.Status != f.Status {
		return false
	}
	if f.StartupLevel != nil && t.IsStartupLevel() != *f.StartupLevel {
		return false
	}
	return true
}

// List returns the tasks matching filter
func (s *TaskService) List(ctx context.Context, filter TaskFilter) ([]models.Task, error) {
	tasks, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if filter.matches(t) {
			filtered = append(filtered, t)
		}
	}
	return filtered, nil
}

// Create creates a new task
func (s *TaskService) Create(ctx context.Context, req *CreateTaskRequest) (*models.Task, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	now := models.FormatTimestamp(s.opts.now())
	task := &models.Task{
		StartupID: req.StartupID,
		ProjectID: req.ProjectID,
		Title:     req.Title,
		OwnerID:   req.OwnerID,
		DueDate:   req.DueDate,
		Status:    req.Status,
		Priority:  req.Priority,
		Notes:     req.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, task); err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithField("task_id", task.TaskID).Info("task created")
	return task, nil
}

// Update merges the supplied fields onto the stored task and refreshes updated_at
func (s *TaskService) Update(ctx context.Context, req *UpdateTaskRequest) (*models.Task, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	task, err := s.repo.GetByID(ctx, req.TaskID)
	if err != nil {
		return nil, err
	}

	set(&task.StartupID, req.StartupID)
	set(&task.ProjectID, req.ProjectID)
	set(&task.Title, req.Title)
	set(&task.OwnerID, req.OwnerID)
	set(&task.DueDate, req.DueDate)
	set(&task.Status, req.Status)
	set(&task.Priority, req.Priority)
	set(&task.Notes, req.Notes)
	task.UpdatedAt = models.FormatTimestamp(s.opts.now())

	if err := s.repo.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}
