package testutils

import (
	"context"
	"sync"

	"dealflow-backend/internal/database"
)

// Store operation names recorded by RecordingStore
const (
	OpRead   = "read"
	OpAppend = "append"
	OpUpdate = "update"
)

// StoreCall is one recorded call against the store
type StoreCall struct {
	Op    string
	Tab   string
	Range string
	Rows  [][]string
}

// RecordingStore wraps a Store, recording every call and optionally
// failing the next call of a given operation.
type RecordingStore struct {
	inner database.Store

	mu    sync.Mutex
	calls []StoreCall
	fail  map[string]error
}

// NewRecordingStore wraps inner
func NewRecordingStore(inner database.Store) *RecordingStore {
	return &RecordingStore{inner: inner, fail: make(map[string]error)}
}

// Read implements database.Store
func (s *RecordingStore) Read(ctx context.Context, tab, cellRange string) ([][]string, error) {
	if err := s.record(StoreCall{Op: OpRead, Tab: tab, Range: cellRange}); err != nil {
		return nil, err
	}
	return s.inner.Read(ctx, tab, cellRange)
}

// Append implements database.Store
func (s *RecordingStore) Append(ctx context.Context, tab, cellRange string, rows [][]string) error {
	if err := s.record(StoreCall{Op: OpAppend, Tab: tab, Range: cellRange, Rows: rows}); err != nil {
		return err
	}
	return s.inner.Append(ctx, tab, cellRange, rows)
}

// Update implements database.Store
func (s *RecordingStore) Update(ctx context.Context, tab, cellRange string, rows [][]string) error {
	if err := s.record(StoreCall{Op: OpUpdate, Tab: tab, Range: cellRange, Rows: rows}); err != nil {
		return err
	}
	return s.inner.Update(ctx, tab, cellRange, rows)
}

func (s *RecordingStore) record(call StoreCall) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, call)
	for _, key := range []string{call.Op + "/" + call.Tab, call.Op} {
		if err, ok := s.fail[key]; ok {
			delete(s.fail, key)
			return err
		}
	}
	return nil
}

// FailNext makes the next call of op return err without reaching the inner store
func (s *RecordingStore) FailNext(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fail[op] = err
}

// FailNextOn makes the next call of op against tab return err
func (s *RecordingStore) FailNextOn(op, tab string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fail[op+"/"+tab] = err
}

// Calls returns the recorded calls of op, or all calls when op is empty
func (s *RecordingStore) Calls(op string) []StoreCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []StoreCall
	for _, c := range s.calls {
		if op == "" || c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// CountCalls counts recorded calls of op against tab
func (s *RecordingStore) CountCalls(op, tab string) int {
	n := 0
	for _, c := range s.Calls(op) {
		if c.Tab == tab {
			n++
		}
	}
	return n
}

// Reset forgets recorded calls and pending failures
func (s *RecordingStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = nil
	s.fail = make(map[string]error)
}
