package database

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	apperrors "dealflow-backend/internal/errors"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const valueInputRaw = "RAW"

// SheetsStore implements Store on top of the Google Sheets v4 values API
type SheetsStore struct {
	service       *sheets.Service
	spreadsheetID string
}

// NewSheetsStore authenticates with a service account and returns a store bound to one spreadsheet
func NewSheetsStore(ctx context.Context, spreadsheetID, email, privateKey string) (*SheetsStore, error) {
	conf := &jwt.Config{
		Email:      email,
		PrivateKey: []byte(NormalizePrivateKey(privateKey)),
		Scopes:     []string{sheets.SpreadsheetsScope},
		TokenURL:   google.JWTTokenURL,
	}

	srv, err := sheets.NewService(ctx, option.WithHTTPClient(conf.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("unable to create Sheets client: %w", err)
	}

	return &SheetsStore{service: srv, spreadsheetID: spreadsheetID}, nil
}

// NormalizePrivateKey turns literal "\n" sequences (as found in env files) into newlines
func NormalizePrivateKey(key string) string {
	return strings.ReplaceAll(key, `\n`, "\n")
}

// Read implements Store
func (s *SheetsStore) Read(ctx context.Context, tab, cellRange string) ([][]string, error) {
	resp, err := s.service.Spreadsheets.Values.Get(s.spreadsheetID, qualify(tab, cellRange)).Context(ctx).Do()
	if err != nil {
		return nil, classify("read", tab, err)
	}
	return toStrings(resp.Values), nil
}

// Append implements Store
func (s *SheetsStore) Append(ctx context.Context, tab, cellRange string, rows [][]string) error {
	_, err := s.service.Spreadsheets.Values.
		Append(s.spreadsheetID, qualify(tab, cellRange), &sheets.ValueRange{Values: toValues(rows)}).
		ValueInputOption(valueInputRaw).
		Context(ctx).
		Do()
	if err != nil {
		return classify("append", tab, err)
	}
	return nil
}

// Update implements Store
func (s *SheetsStore) Update(ctx context.Context, tab, cellRange string, rows [][]string) error {
	_, err := s.service.Spreadsheets.Values.
		Update(s.spreadsheetID, qualify(tab, cellRange), &sheets.ValueRange{Values: toValues(rows)}).
		ValueInputOption(valueInputRaw).
		Context(ctx).
		Do()
	if err != nil {
		return classify("update", tab, err)
	}
	return nil
}

func qualify(tab, cellRange string) string {
	if strings.ContainsAny(tab, " '!") {
		tab = "'" + strings.ReplaceAll(tab, "'", "''") + "'"
	}
	return tab + "!" + cellRange
}

// classify maps a Sheets API error onto the application error taxonomy.
// The API reports a missing tab as a 400 "Unable to parse range".
func classify(op, tab string, err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) && gerr.Code == http.StatusBadRequest && strings.Contains(gerr.Message, "Unable to parse range") {
		return apperrors.NewTabNotFoundError(tab)
	}
	return apperrors.NewRemoteStoreError(op, err)
}

func toStrings(values [][]interface{}) [][]string {
	rows := make([][]string, len(values))
	for i, row := range values {
		rows[i] = make([]string, len(row))
		for j, v := range row {
			if v != nil {
				rows[i][j] = fmt.Sprint(v)
			}
		}
	}
	return rows
}

func toValues(rows [][]string) [][]interface{} {
	values := make([][]interface{}, len(rows))
	for i, row := range rows {
		values[i] = make([]interface{}, len(row))
		for j, v := range row {
			values[i][j] = v
		}
	}
	return values
}
