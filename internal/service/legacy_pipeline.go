package service

import (
	"context"
	"time"

	"dealflow-backend/internal/database/models"
	"dealflow-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// LegacyPipelineService serves the startup-scoped pipeline kept for
// spreadsheets that have not been migrated to projects
type LegacyPipelineService struct {
	repo      repository.StartupInvestorRepositoryInterface
	validator *validator.Validate
	opts      options
}

// NewLegacyPipelineService creates a new legacy pipeline service
func NewLegacyPipelineService(repo repository.StartupInvestorRepositoryInterface, validator *validator.Validate, opts ...Option) *LegacyPipelineService {
	return &LegacyPipelineService{
		repo:      repo,
		validator: validator,
		opts:      buildOptions(opts),
	}
}

// CreateStartupInvestorRequest represents the request to create a legacy link
type CreateStartupInvestorRequest struct {
	StartupID  string `json:"startup_id" validate:"required"`
	InvestorID string `json:"investor_id" validate:"required"`
	Stage      string `json:"stage,omitempty"`
	NextAction string `json:"next_action,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

// UpdateStartupInvestorRequest represents a partial legacy link update
type UpdateStartupInvestorRequest struct {
	LinkID     string  `json:"link_id" validate:"required"`
	Stage      *string `json:"stage,omitempty"`
	LastUpdate *string `json:"last_update,omitempty" validate:"omitempty,datetime=2006-01-02"`
	NextAction *string `json:"next_action,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

// List returns legacy links, optionally only those of one startup
func (s *LegacyPipelineService) List(ctx context.Context, startupID string) ([]models.StartupInvestor, error) {
	links, err := s.repo.List(ctx)
	if err != nil || startupID == "" {
		return links, err
	}

	filtered := make([]models.StartupInvestor, 0, len(links))
	for _, l := range links {
		if l.StartupID == startupID {
			filtered = append(filtered, l)
		}
	}
	return filtered, nil
}

// Create creates a legacy link
func (s *LegacyPipelineService) Create(ctx context.Context, req *CreateStartupInvestorRequest) (*models.StartupInvestor, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	link := &models.StartupInvestor{
		StartupID:  req.StartupID,
		InvestorID: req.InvestorID,
		Stage:      req.Stage,
		LastUpdate: models.FormatDate(s.opts.now()),
		NextAction: req.NextAction,
		Notes:      req.Notes,
	}
	if err := s.repo.Create(ctx, link); err != nil {
		return nil, err
	}
	return link, nil
}

// Update merges the supplied fields onto the stored legacy link
func (s *LegacyPipelineService) Update(ctx context.Context, req *UpdateStartupInvestorRequest) (*models.StartupInvestor, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	link, err := s.repo.GetByID(ctx, req.LinkID)
	if err != nil {
		return nil, err
	}

	previousStage := link.Stage
	set(&link.Stage, req.Stage)
	set(&link.NextAction, req.NextAction)
	set(&link.Notes, req.Notes)
	link.LastUpdate = nextLastUpdate(previousStage, link.Stage, req.LastUpdate, link.LastUpdate, s.opts.now)

	if err := s.repo.Update(ctx, link); err != nil {
		return nil, err
	}
	return link, nil
}

// nextLastUpdate is today when the stage moved, else the supplied date, else the stored one
func nextLastUpdate(from, to string, supplied *string, stored string, now func() time.Time) string {
	if from != to {
		return models.FormatDate(now())
	}
	if supplied != nil && *supplied != "" {
		return *supplied
	}
	return stored
}
