package database

import (
	"context"
	"errors"
	"net/http"
	"testing"

	apperrors "dealflow-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"
)

func TestColumnLetter(t *testing.T) {
	cases := map[int]string{1: "A", 2: "B", 8: "H", 11: "K", 26: "Z", 27: "AA", 52: "AZ", 53: "BA"}
	for n, want := range cases {
		assert.Equal(t, want, ColumnLetter(n), "column %d", n)
	}
}

func TestParseRange(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  CellRange
	}{
		{name: "open data range", input: "A2:H", want: CellRange{StartCol: 1, StartRow: 2, EndCol: 8}},
		{name: "key column", input: "A:A", want: CellRange{StartCol: 1, EndCol: 1}},
		{name: "single row", input: "A5:K5", want: CellRange{StartCol: 1, StartRow: 5, EndCol: 11, EndRow: 5}},
		{name: "single cell", input: "b3", want: CellRange{StartCol: 2, StartRow: 3, EndCol: 2, EndRow: 3}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseRange(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	for _, bad := range []string{"", "2:3", "A0:B", "C:A", "A5:B2"} {
		_, err := ParseRange(bad)
		assert.Error(t, err, bad)
	}
}

func TestTabRanges(t *testing.T) {
	assert.Equal(t, "A2:K", TabTasks.DataRange())
	assert.Equal(t, "A:K", TabTasks.AppendRange())
	assert.Equal(t, "A:A", TabTasks.KeyRange())
	assert.Equal(t, "A7:G7", TabProjectInvestors.RowRange(7))
	assert.Len(t, TabStartups.Header(), TabStartups.Columns)
	for _, tab := range AllTabs {
		assert.Len(t, tab.Header(), tab.Columns, tab.Name)
	}
}

func TestMemoryStore_Read(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	s.AddTab("TEAM", []string{"team_id", "name"})
	s.Seed("TEAM",
		[]string{"tm_1", "Ana"},
		[]string{"", ""},
		[]string{"tm_2", "Bo", ""},
		[]string{"", ""},
	)

	rows, err := s.Read(ctx, "TEAM", "A2:B")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"tm_1", "Ana"}, {}, {"tm_2", "Bo"}}, rows)

	keys, err := s.Read(ctx, "TEAM", "A:A")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"team_id"}, {"tm_1"}, {}, {"tm_2"}}, keys)

	_, err = s.Read(ctx, "MISSING", "A2:B")
	assert.True(t, apperrors.IsTabNotFound(err))
}

func TestMemoryStore_AppendAndUpdate(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	s.AddTab("INVESTORS", TabInvestors.Header())

	require.NoError(t, s.Append(ctx, "INVESTORS", "A:F", [][]string{{"inv_1", "One"}, {"inv_2", "Two"}}))
	require.NoError(t, s.Update(ctx, "INVESTORS", "A3:F3", [][]string{{"inv_2", "Two Capital", "seed", "", "", ""}}))

	rows := s.Rows("INVESTORS")
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"inv_1", "One"}, rows[1])
	assert.Equal(t, []string{"inv_2", "Two Capital", "seed", "", "", ""}, rows[2])

	err := s.Update(ctx, "INVESTORS", "A:F", [][]string{{"x"}})
	assert.Error(t, err)
	assert.True(t, apperrors.IsTabNotFound(s.Append(ctx, "NOPE", "A:F", nil)))
}

func TestNewSeededMemoryStore(t *testing.T) {
	s := NewSeededMemoryStore()
	for _, tab := range AllTabs {
		assert.Equal(t, tab.Header(), s.Rows(tab.Name)[0])
	}
	config := s.Rows(TabConfig.Name)
	require.Len(t, config, 2)
	assert.Equal(t, "pipeline_stages", config[1][0])
	assert.Contains(t, config[1][1], "Potentials|Initial Contact")
}

func TestInitialize(t *testing.T) {
	ctx := context.Background()

	t.Run("memory backend", func(t *testing.T) {
		store, err := Initialize(ctx, &Options{Backend: BackendMemory})
		require.NoError(t, err)
		assert.IsType(t, &MemoryStore{}, store)
	})

	t.Run("sheets backend without credentials", func(t *testing.T) {
		_, err := Initialize(ctx, &Options{SpreadsheetID: "sheet"})
		require.Error(t, err)
		assert.True(t, apperrors.IsConfiguration(err))
		assert.Contains(t, err.Error(), "GOOGLE_SERVICE_ACCOUNT_EMAIL")
		assert.Contains(t, err.Error(), "GOOGLE_PRIVATE_KEY")
	})

	t.Run("unknown backend", func(t *testing.T) {
		_, err := Initialize(ctx, &Options{Backend: "excel"})
		assert.True(t, apperrors.IsConfiguration(err))
	})
}

func TestClassify(t *testing.T) {
	missingTab := &googleapi.Error{Code: http.StatusBadRequest, Message: "Unable to parse range: PROJECTS!A2:F"}
	err := classify("read", "PROJECTS", missingTab)
	assert.True(t, apperrors.IsTabNotFound(err))

	quota := &googleapi.Error{Code: http.StatusTooManyRequests, Message: "Quota exceeded"}
	err = classify("append", "TASKS", quota)
	assert.True(t, apperrors.IsRemoteStore(err))
	assert.True(t, errors.Is(err, quota))
}

func TestQualifyAndKey(t *testing.T) {
	assert.Equal(t, "TASKS!A2:K", qualify("TASKS", "A2:K"))
	assert.Equal(t, "'My Tab'!A:A", qualify("My Tab", "A:A"))
	assert.Equal(t, "line1\nline2", NormalizePrivateKey(`line1\nline2`))
}
