package models

// Task is a unit of work scoped to a startup and optionally one of its projects
type Task struct {
	TaskID    string       `json:"task_id"`
	StartupID string       `json:"startup_id"`
	ProjectID string       `json:"project_id"` // blank = startup-level task
	Title     string       `json:"title"`
	OwnerID   string       `json:"owner_id"`
	DueDate   string       `json:"due_date"` // YYYY-MM-DD
	Status    TaskStatus   `json:"status"`
	Priority  TaskPriority `json:"priority"`
	Notes     string       `json:"notes"`
	CreatedAt string       `json:"created_at"`
	UpdatedAt string       `json:"updated_at"`
}

// IsStartupLevel reports whether the task belongs to the startup rather than a project
func (t Task) IsStartupLevel() bool {
	return t.ProjectID == ""
}

// IsOpen reports whether the task still needs work
func (t Task) IsOpen() bool {
	return t.Status != TaskStatusDone
}
