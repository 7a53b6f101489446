package repository

import (
	"context"
	"fmt"
	"strings"

	"dealflow-backend/internal/database/models"
	apperrors "dealflow-backend/internal/errors"
)

// StageSource supplies the ordered pipeline stage list
type StageSource interface {
	PipelineStages(ctx context.Context) ([]string, error)
}

// validateStage rejects a stage that is not in the configured list
func validateStage(stages []string, stage string) error {
	if models.IsKnownStage(stages, stage) {
		return nil
	}
	return apperrors.NewValidationError("stage",
		fmt.Sprintf("invalid stage %q. Valid: %s", stage, strings.Join(stages, ", ")))
}
