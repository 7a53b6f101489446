package service

import (
	"context"
	"fmt"

	"dealflow-backend/internal/database/models"
	apperrors "dealflow-backend/internal/errors"
	"dealflow-backend/internal/logger"
	"dealflow-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// PipelineService handles the per-project investor pipeline
type PipelineService struct {
	repo         repository.ProjectInvestorRepositoryInterface
	investorRepo repository.InvestorRepositoryInterface
	configRepo   repository.ConfigRepositoryInterface
	validator    *validator.Validate
	opts         options
}

// NewPipelineService creates a new pipeline service
func NewPipelineService(repo repository.ProjectInvestorRepositoryInterface, investorRepo repository.InvestorRepositoryInterface, configRepo repository.ConfigRepositoryInterface, validator *validator.Validate, opts ...Option) *PipelineService {
	return &PipelineService{
		repo:         repo,
		investorRepo: investorRepo,
		configRepo:   configRepo,
		validator:    validator,
		opts:         buildOptions(opts),
	}
}

// CreateProjectInvestorRequest represents the request to add an investor to a project pipeline.
// An empty stage starts the link in the first configured stage.
type CreateProjectInvestorRequest struct {
	ProjectID  string `json:"project_id" validate:"required"`
	InvestorID string `json:"investor_id" validate:"required"`
	Stage      string `json:"stage,omitempty"`
	NextAction string `json:"next_action,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

// UpdateProjectInvestorRequest represents a partial link update
type UpdateProjectInvestorRequest struct {
	LinkID     string  `json:"link_id" validate:"required"`
	Stage      *string `json:"stage,omitempty"`
	LastUpdate *string `json:"last_update,omitempty" validate:"omitempty,datetime=2006-01-02"`
	NextAction *string `json:"next_action,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

// BoardCard is a pipeline link decorated with its investor's directory entry
type BoardCard struct {
	models.ProjectInvestor
	InvestorName string   `json:"investor_name"`
	Tags         []string `json:"tags,omitempty"`
}

// BoardColumn holds the cards of one stage
type BoardColumn struct {
	Stage string      `json:"stage"`
	Cards []BoardCard `json:"cards"`
}

// PipelineBoard is the kanban view: one column per configured stage, in
// order, plus links whose stage is no longer configured.
type PipelineBoard struct {
	ProjectID string        `json:"project_id,omitempty"`
	Columns   []BoardColumn `json:"columns"`
	Unstaged  []BoardCard   `json:"unstaged"`
}

// List returns pipeline links, optionally only those of one project
func (s *PipelineService) List(ctx context.Context, projectID string) ([]models.ProjectInvestor, error) {
	links, err := s.repo.List(ctx)
	if err != nil || projectID == "" {
		return links, err
	}

	filtered := make([]models.ProjectInvestor, 0, len(links))
	for _, l := range links {
		if l.ProjectID == projectID {
			filtered = append(filtered, l)
		}
	}
	return filtered, nil
}

// Board groups a project's links by stage
func (s *PipelineService) Board(ctx context.Context, projectID string) (*PipelineBoard, error) {
	stages, err := s.configRepo.PipelineStages(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load pipeline stages: %w", err)
	}
	links, err := s.List(ctx, projectID)
	if err != nil {
		return nil, err
	}
	investors, err := s.investorRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load investors: %w", err)
	}

	byID := make(map[string]models.Investor, len(investors))
	for _, inv := range investors {
		byID[inv.InvestorID] = inv
	}

	board := &PipelineBoard{
		ProjectID: projectID,
		Columns:   make([]BoardColumn, len(stages)),
		Unstaged:  []BoardCard{},
	}
	column := make(map[string]int, len(stages))
	for i, stage := range stages {
		board.Columns[i] = BoardColumn{Stage: stage, Cards: []BoardCard{}}
		if _, seen := column[stage]; !seen {
			column[stage] = i
		}
	}

	for _, l := range links {
		card := BoardCard{ProjectInvestor: l, InvestorName: l.InvestorID}
		if inv, ok := byID[l.InvestorID]; ok {
			card.InvestorName = inv.InvestorName
			card.Tags = inv.TagList()
		}
		if i, ok := column[l.Stage]; ok {
			board.Columns[i].Cards = append(board.Columns[i].Cards, card)
		} else {
			board.Unstaged = append(board.Unstaged, card)
		}
	}
	return board, nil
}

// Create adds an investor to a project pipeline. A project holds at most one
// link per investor.
func (s *PipelineService) Create(ctx context.Context, req *CreateProjectInvestorRequest) (*models.ProjectInvestor, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	existing, err := s.List(ctx, req.ProjectID)
	if err != nil {
		return nil, err
	}
	for _, l := range existing {
		if l.InvestorID == req.InvestorID {
			return nil, apperrors.ErrProjectInvestorExists
		}
	}

	link := &models.ProjectInvestor{
		ProjectID:  req.ProjectID,
		InvestorID: req.InvestorID,
		Stage:      req.Stage,
		LastUpdate: models.FormatDate(s.opts.now()),
		NextAction: req.NextAction,
		Notes:      req.Notes,
	}
	if err := s.repo.Create(ctx, link); err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"link_id":     link.LinkID,
		"project_id":  link.ProjectID,
		"investor_id": link.InvestorID,
		"stage":       link.Stage,
	}).Info("investor added to pipeline")
	return link, nil
}

// Update merges the supplied fields onto the stored link. Moving to a
// different stage stamps last_update with today's date.
func (s *PipelineService) Update(ctx context.Context, req *UpdateProjectInvestorRequest) (*models.ProjectInvestor, error) {
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
	if previousStage != link.Stage {
		logger.WithContext(ctx).WithFields(map[string]interface{}{
			"link_id": link.LinkID,
			"from":    previousStage,
			"to":      link.Stage,
		}).Info("pipeline stage changed")
	}
	return link, nil
}
