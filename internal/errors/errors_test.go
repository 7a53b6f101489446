package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message without id", func(t *testing.T) {
		err := &NotFoundError{Entity: "startup"}
		assert.Equal(t, "startup not found", err.Error())
	})

	t.Run("Error message with id", func(t *testing.T) {
		err := NewNotFoundError("task", "tsk_abc_1234")
		assert.Equal(t, `task "tsk_abc_1234" not found`, err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err := NewNotFoundError("startup", "st_1")
		assert.True(t, errors.Is(err, ErrStartupNotFound))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err := NewNotFoundError("startup", "st_1")
		assert.False(t, errors.Is(err, ErrProjectNotFound))
	})

	t.Run("IsNotFound helper through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("failed to update: %w", ErrInvestorNotFound)
		assert.True(t, IsNotFound(wrapped))
		assert.False(t, IsNotFound(ErrProjectInvestorExists))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		assert.Equal(t, "project-investor link already exists for this project and investor", ErrProjectInvestorExists.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "investor"}
		assert.Equal(t, "investor already exists", err.Error())
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrProjectInvestorExists))
		assert.False(t, IsAlreadyExists(ErrStartupNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := NewValidationError("stage", "must be one of Potentials")
		assert.Equal(t, "validation error: stage - must be one of Potentials", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "body is empty"}
		assert.Equal(t, "validation error: body is empty", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(fmt.Errorf("wrap: %w", NewValidationError("title", "required"))))
		assert.False(t, IsValidation(ErrTaskNotFound))
	})
}

func TestTabNotFoundError(t *testing.T) {
	err := NewTabNotFoundError("PROJECTS")
	assert.Equal(t, `tab "PROJECTS" not found in spreadsheet`, err.Error())
	assert.True(t, IsTabNotFound(err))
	assert.True(t, errors.Is(err, &TabNotFoundError{}))
	assert.True(t, errors.Is(err, &TabNotFoundError{Tab: "PROJECTS"}))
	assert.False(t, errors.Is(err, &TabNotFoundError{Tab: "TASKS"}))
}

func TestRemoteStoreError(t *testing.T) {
	cause := errors.New("quota exceeded")
	err := NewRemoteStoreError("append", cause)

	assert.Equal(t, "spreadsheet append failed: quota exceeded", err.Error())
	assert.True(t, IsRemoteStore(err))
	assert.ErrorIs(t, err, cause)
}

func TestConfigurationError(t *testing.T) {
	assert.True(t, IsConfiguration(ErrSheetsNotConfigured))
	assert.True(t, IsConfiguration(NewConfigurationError("missing GOOGLE_PRIVATE_KEY")))
	assert.False(t, IsConfiguration(NewValidationError("stage", "unknown")))
}
