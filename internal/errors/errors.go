package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s %q not found", e.Entity, e.ID)
	}
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "for this project and investor"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// TabNotFoundError is returned when a collection's backing tab does not exist in the spreadsheet
type TabNotFoundError struct {
	Tab string
}

func (e *TabNotFoundError) Error() string {
	return fmt.Sprintf("tab %q not found in spreadsheet", e.Tab)
}

// Is enables errors.Is() comparison for TabNotFoundError
func (e *TabNotFoundError) Is(target error) bool {
	t, ok := target.(*TabNotFoundError)
	if !ok {
		return false
	}
	return t.Tab == "" || e.Tab == t.Tab
}

// RemoteStoreError wraps any other failure reported by the spreadsheet API
type RemoteStoreError struct {
	Op  string
	Err error
}

func (e *RemoteStoreError) Error() string {
	return fmt.Sprintf("spreadsheet %s failed: %v", e.Op, e.Err)
}

func (e *RemoteStoreError) Unwrap() error {
	return e.Err
}

// Entity Not Found Errors
var (
	ErrTeamMemberNotFound      = &NotFoundError{Entity: "team member"}
	ErrStartupNotFound         = &NotFoundError{Entity: "startup"}
	ErrProjectNotFound         = &NotFoundError{Entity: "project"}
	ErrTaskNotFound            = &NotFoundError{Entity: "task"}
	ErrInvestorNotFound        = &NotFoundError{Entity: "investor"}
	ErrProjectInvestorNotFound = &NotFoundError{Entity: "project-investor link"}
	ErrStartupInvestorNotFound = &NotFoundError{Entity: "startup-investor link"}
)

// Already Exists Errors
var (
	ErrProjectInvestorExists = &AlreadyExistsError{Entity: "project-investor link", Context: "for this project and investor"}
)

// Configuration Errors
var (
	ErrSheetsNotConfigured = &ConfigurationError{Message: "google sheets backend is not configured"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// IsTabNotFound checks if an error is a TabNotFoundError
func IsTabNotFound(err error) bool {
	var tabErr *TabNotFoundError
	return errors.As(err, &tabErr)
}

// IsRemoteStore checks if an error is a RemoteStoreError
func IsRemoteStore(err error) bool {
	var storeErr *RemoteStoreError
	return errors.As(err, &storeErr)
}

// NewNotFoundError creates a new NotFoundError for an entity id
func NewNotFoundError(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}

// NewTabNotFoundError creates a new TabNotFoundError
func NewTabNotFoundError(tab string) error {
	return &TabNotFoundError{Tab: tab}
}

// NewRemoteStoreError wraps a spreadsheet API failure
func NewRemoteStoreError(op string, err error) error {
	return &RemoteStoreError{Op: op, Err: err}
}
