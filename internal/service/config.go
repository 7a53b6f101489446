package service

import (
	"context"

	"dealflow-backend/internal/database/models"
	"dealflow-backend/internal/repository"
)

// ConfigService exposes the CONFIG tab
type ConfigService struct {
	repo repository.ConfigRepositoryInterface
}

// NewConfigService creates a new config service
func NewConfigService(repo repository.ConfigRepositoryInterface) *ConfigService {
	return &ConfigService{repo: repo}
}

// ConfigResponse carries the raw config rows and the resolved stage list
type ConfigResponse struct {
	Config         []models.ConfigRow `json:"config"`
	PipelineStages []string           `json:"pipeline_stages"`
}

// Get returns every config row plus the effective pipeline stages
func (s *ConfigService) Get(ctx context.Context) (*ConfigResponse, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	stages, err := s.repo.PipelineStages(ctx)
	if err != nil {
		return nil, err
	}
	return &ConfigResponse{Config: rows, PipelineStages: stages}, nil
}
