package models

// DefaultProjectName is the name given to projects synthesized for startups
// that had investor links before projects existed.
const DefaultProjectName = "Default Project"

// Project is a single fundraising round or workstream of a startup
type Project struct {
	ProjectID   string `json:"project_id"`
	StartupID   string `json:"startup_id"`
	ProjectName string `json:"project_name"`
	Status      Status `json:"status"`
	CreatedAt   string `json:"created_at"`
	Notes       string `json:"notes"`
}
