package repository

import (
	"context"
	"testing"

	"dealflow-backend/internal/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnScanLocator(t *testing.T) {
	ctx := context.Background()
	store := database.NewSeededMemoryStore()
	store.Seed(database.TabTasks.Name,
		[]string{"tsk_1"},
		[]string{},
		[]string{"tsk_3"},
		[]string{"tsk_3"},
	)
	locator := NewColumnScanLocator(store)

	row, err := locator.Locate(ctx, database.TabTasks, "tsk_1")
	require.NoError(t, err)
	assert.Equal(t, 2, row)

	row, err = locator.Locate(ctx, database.TabTasks, "tsk_3")
	require.NoError(t, err)
	assert.Equal(t, 4, row, "first match wins")

	_, err = locator.Locate(ctx, database.TabTasks, "task_id")
	assert.ErrorIs(t, err, ErrRowNotFound, "header is never matched")

	_, err = locator.Locate(ctx, database.TabTasks, "")
	assert.ErrorIs(t, err, ErrRowNotFound)
}

func TestGenerateID(t *testing.T) {
	id := GenerateID(PrefixProject)
	assert.Regexp(t, `^prj_[0-9a-z]+_[0-9a-z]{4}$`, id)
	assert.NotEqual(t, id, GenerateID(PrefixProject))
}
