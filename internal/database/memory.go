package database

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"dealflow-backend/internal/database/models"
	apperrors "dealflow-backend/internal/errors"
)

// MemoryStore is an in-process Store with the same range semantics as the
// Sheets API. Each tab keeps its rows including the header at index 0.
type MemoryStore struct {
	mu   sync.RWMutex
	tabs map[string][][]string
}

// NewMemoryStore creates an empty store with no tabs
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{tabs: make(map[string][][]string)}
}

// NewSeededMemoryStore creates every known tab with its header row and the
// default pipeline_stages config entry
func NewSeededMemoryStore() *MemoryStore {
	s := NewMemoryStore()
	for _, tab := range AllTabs {
		s.AddTab(tab.Name, tab.Header())
	}
	s.Seed(TabConfig.Name, models.ConfigRow{
		Key:   models.ConfigKeyPipelineStages,
		Value: strings.Join(models.DefaultPipelineStages, models.StageSeparator),
	}.Row())
	return s
}

// AddTab creates (or resets) a tab with the given header row
func (s *MemoryStore) AddTab(name string, header []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tabs[name] = [][]string{append([]string(nil), header...)}
}

// RemoveTab deletes a tab, as when a spreadsheet never had it
func (s *MemoryStore) RemoveTab(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tabs, name)
}

// Seed appends raw rows to a tab, creating it with an empty header if needed
func (s *MemoryStore) Seed(name string, rows ...[]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tabs[name]; !ok {
		s.tabs[name] = [][]string{{}}
	}
	for _, row := range rows {
		s.tabs[name] = append(s.tabs[name], append([]string(nil), row...))
	}
}

// Rows returns a copy of every row of a tab, header included
func (s *MemoryStore) Rows(name string) [][]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([][]string, len(s.tabs[name]))
	for i, row := range s.tabs[name] {
		out[i] = append([]string(nil), row...)
	}
	return out
}

// Read implements Store
func (s *MemoryStore) Read(_ context.Context, tab, cellRange string) ([][]string, error) {
	r, err := ParseRange(cellRange)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.tabs[tab]
	if !ok {
		return nil, apperrors.NewTabNotFoundError(tab)
	}

	start := max(r.StartRow, 1)
	end := len(data)
	if r.EndRow != 0 {
		end = min(r.EndRow, len(data))
	}

	var rows [][]string
	for rowNum := start; rowNum <= end; rowNum++ {
		src := data[rowNum-1]
		var cells []string
		for col := r.StartCol; col <= r.EndCol && col <= len(src); col++ {
			cells = append(cells, src[col-1])
		}
		rows = append(rows, trimCells(cells))
	}

	for len(rows) > 0 && len(rows[len(rows)-1]) == 0 {
		rows = rows[:len(rows)-1]
	}
	for i := range rows {
		if rows[i] == nil {
			rows[i] = []string{}
		}
	}
	return rows, nil
}

// Append implements Store
func (s *MemoryStore) Append(_ context.Context, tab, cellRange string, rows [][]string) error {
	r, err := ParseRange(cellRange)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.tabs[tab]
	if !ok {
		return apperrors.NewTabNotFoundError(tab)
	}

	last := 0
	for i, row := range data {
		if len(trimCells(row)) > 0 {
			last = i + 1
		}
	}

	for i, row := range rows {
		s.setRow(tab, last+1+i, r.StartCol, row)
	}
	return nil
}

// Update implements Store
func (s *MemoryStore) Update(_ context.Context, tab, cellRange string, rows [][]string) error {
	r, err := ParseRange(cellRange)
	if err != nil {
		return err
	}
	if r.StartRow == 0 {
		return fmt.Errorf("update range %q must address a row", cellRange)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tabs[tab]; !ok {
		return apperrors.NewTabNotFoundError(tab)
	}

	for i, row := range rows {
		s.setRow(tab, r.StartRow+i, r.StartCol, row)
	}
	return nil
}

// setRow writes cells starting at (rowNum, startCol). Callers hold the lock.
func (s *MemoryStore) setRow(tab string, rowNum, startCol int, cells []string) {
	data := s.tabs[tab]
	for len(data) < rowNum {
		data = append(data, []string{})
	}
	row := data[rowNum-1]
	for len(row) < startCol-1+len(cells) {
		row = append(row, "")
	}
	copy(row[startCol-1:], cells)
	data[rowNum-1] = row
	s.tabs[tab] = data
}

func trimCells(cells []string) []string {
	n := len(cells)
	for n > 0 && cells[n-1] == "" {
		n--
	}
	return cells[:n]
}
