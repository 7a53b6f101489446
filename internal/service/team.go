package service

import (
	"context"

	"dealflow-backend/internal/database/models"
	"dealflow-backend/internal/logger"
	"dealflow-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// TeamService handles business logic for team members
type TeamService struct {
	repo      repository.TeamRepositoryInterface
	validator *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(repo repository.TeamRepositoryInterface, validator *validator.Validate) *TeamService {
	return &TeamService{
		repo:      repo,
		validator: validator,
	}
}

// CreateTeamMemberRequest represents the request to add a team member
type CreateTeamMemberRequest struct {
	Name string `json:"name" validate:"required"`
}

// UpdateTeamMemberRequest represents the request to rename a team member
type UpdateTeamMemberRequest struct {
	TeamID string  `json:"team_id" validate:"required"`
	Name   *string `json:"name,omitempty" validate:"omitempty,min=1"`
}

// List returns every team member
func (s *TeamService) List(ctx context.Context) ([]models.TeamMember, error) {
	return s.repo.List(ctx)
}

// Create adds a team member
func (s *TeamService) Create(ctx context.Context, req *CreateTeamMemberRequest) (*models.TeamMember, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	member := &models.TeamMember{Name: req.Name}
	if err := s.repo.Create(ctx, member); err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithField("team_id", member.TeamID).Info("team member created")
	return member, nil
}

// Update renames a team member
func (s *TeamService) Update(ctx context.Context, req *UpdateTeamMemberRequest) (*models.TeamMember, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	member, err := s.repo.GetByID(ctx, req.TeamID)
	if err != nil {
		return nil, err
	}
	set(&member.Name, req.Name)

	if err := s.repo.Update(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}
