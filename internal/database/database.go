package database

import (
	"context"
	"fmt"
	"strings"

	apperrors "dealflow-backend/internal/errors"
)

// Supported store backends
const (
	BackendSheets = "sheets"
	BackendMemory = "memory"
)

type Options struct {
	Backend             string
	SpreadsheetID       string
	ServiceAccountEmail string
	PrivateKey          string
}

// Initialize builds the Store selected by opts. The sheets backend requires a
// spreadsheet ID and service-account credentials; missing values are a
// configuration error rather than a per-call failure.
func Initialize(ctx context.Context, opts *Options) (Store, error) {
	// Defaults
	if opts == nil {
		opts = &Options{}
	}
	if opts.Backend == "" {
		opts.Backend = BackendSheets
	}

	switch opts.Backend {
	case BackendMemory:
		return NewSeededMemoryStore(), nil
	case BackendSheets:
		if missing := opts.missing(); len(missing) > 0 {
			return nil, apperrors.NewConfigurationError(fmt.Sprintf("%s: missing %s", apperrors.ErrSheetsNotConfigured, strings.Join(missing, ", ")))
		}
		store, err := NewSheetsStore(ctx, opts.SpreadsheetID, opts.ServiceAccountEmail, opts.PrivateKey)
		if err != nil {
			return nil, fmt.Errorf("open sheets: %w", err)
		}
		return store, nil
	default:
		return nil, apperrors.NewConfigurationError(fmt.Sprintf("unknown store backend %q", opts.Backend))
	}
}

func (o *Options) missing() []string {
	var missing []string
	if o.SpreadsheetID == "" {
		missing = append(missing, "GOOGLE_SHEETS_SPREADSHEET_ID")
	}
	if o.ServiceAccountEmail == "" {
		missing = append(missing, "GOOGLE_SERVICE_ACCOUNT_EMAIL")
	}
	if o.PrivateKey == "" {
		missing = append(missing, "GOOGLE_PRIVATE_KEY")
	}
	return missing
}
