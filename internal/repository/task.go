package repository

import (
	"context"

	"dealflow-backend/internal/cache"
	"dealflow-backend/internal/database"
	"dealflow-backend/internal/database/models"
)

// TaskRepository handles spreadsheet operations for tasks
type TaskRepository struct {
	table *table[models.Task]
	opts  options
}

// Ensure TaskRepository implements TaskRepositoryInterface
var _ TaskRepositoryInterface = (*TaskRepository)(nil)

// NewTaskRepository creates a new task repository
func NewTaskRepository(store database.Store, c *cache.Cache, opts ...Option) *TaskRepository {
	o := buildOptions(store, opts)
	return &TaskRepository{
		opts: o,
		table: &table[models.Task]{
			store:    store,
			cache:    c,
			locator:  o.locator,
			tab:      database.TabTasks,
			cacheKey: cacheKeyTasks,
			entity:   "task",
			decode:   models.TaskFromRow,
			encode:   models.Task.Row,
			key:      func(t models.Task) string { return t.TaskID },
		},
	}
}

// List returns every task
func (r *TaskRepository) List(ctx context.Context) ([]models.Task, error) {
	return r.table.list(ctx)
}

// GetByID retrieves a task by ID
func (r *TaskRepository) GetByID(ctx context.Context, id string) (*models.Task, error) {
	return r.table.get(ctx, id)
}

// Create appends a new task, stamping created_at and updated_at when missing
func (r *TaskRepository) Create(ctx context.Context, task *models.Task) error {
	applyTaskDefaults(task, r.opts.newID, r.opts.now())
	return r.table.append(ctx, *task)
}

// Update overwrites the task's row
func (r *TaskRepository) Update(ctx context.Context, task *models.Task) error {
	return r.table.update(ctx, *task)
}
