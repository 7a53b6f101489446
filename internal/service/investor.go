package service

import (
	"context"

	"dealflow-backend/internal/database/models"
	"dealflow-backend/internal/logger"
	"dealflow-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// InvestorService handles business logic for the investor directory
type InvestorService struct {
	repo      repository.InvestorRepositoryInterface
	validator *validator.Validate
}

// NewInvestorService creates a new investor service
func NewInvestorService(repo repository.InvestorRepositoryInterface, validator *validator.Validate) *InvestorService {
	return &InvestorService{repo: repo, validator: validator}
}

// CreateInvestorRequest represents the request to create an investor
type CreateInvestorRequest struct {
	InvestorName string `json:"investor_name" validate:"required"`
	Tags         string `json:"tags,omitempty"`
	Email        string `json:"email,omitempty" validate:"omitempty,email"`
	LinkedIn     string `json:"linkedin,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

// UpdateInvestorRequest represents a partial investor update
type UpdateInvestorRequest struct {
	InvestorID   string  `json:"investor_id" validate:"required"`
	InvestorName *string `json:"investor_name,omitempty" validate:"omitempty,min=1"`
	Tags         *string `json:"tags,omitempty"`
	Email        *string `json:"email,omitempty" validate:"omitempty,email"`
	LinkedIn     *string `json:"linkedin,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}

// List returns every investor, optionally only those carrying tag
func (s *InvestorService) List(ctx context.Context, tag string) ([]models.Investor, error) {
	investors, err := s.repo.List(ctx)
	if err != nil || tag == "" {
		return investors, err
	}

	filtered := make([]models.Investor, 0, len(investors))
	for _, inv := range investors {
		for _, t := range inv.TagList() {
			if t == tag {
				filtered = append(filtered, inv)
				break
			}
		}
	}
	return filtered, nil
}

// Create creates a new investor
func (s *InvestorService) Create(ctx context.Context, req *CreateInvestorRequest) (*models.Investor, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	investor := &models.Investor{
		InvestorName: req.InvestorName,
		Tags:         req.Tags,
		Email:        req.Email,
		LinkedIn:     req.LinkedIn,
		Notes:        req.Notes,
	}
	if err := s.repo.Create(ctx, investor); err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithField("investor_id", investor.InvestorID).Info("investor created")
	return investor, nil
}

// Update merges the supplied fields onto the stored investor
func (s *InvestorService) Update(ctx context.Context, req *UpdateInvestorRequest) (*models.Investor, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	investor, err := s.repo.GetByID(ctx, req.InvestorID)
	if err != nil {
		return nil, err
	}

	set(&investor.InvestorName, req.InvestorName)
	set(&investor.Tags, req.Tags)
	set(&investor.Email, req.Email)
	set(&investor.LinkedIn, req.LinkedIn)
	set(&investor.Notes, req.Notes)

	if err := s.repo.Update(ctx, investor); err != nil {
		return nil, err
	}
	return investor, nil
}
