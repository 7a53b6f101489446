package database

import (
	"fmt"

	"dealflow-backend/internal/database/models"
)

// Tab describes one collection's sheet: its name and fixed column count.
// Row 1 is a header; data starts at row 2.
type Tab struct {
	Name    string
	Columns int
}

// Tabs of the spreadsheet
var (
	TabTeam             = Tab{Name: "TEAM", Columns: models.TeamMemberColumns}
	TabStartups         = Tab{Name: "STARTUPS", Columns: models.StartupColumns}
	TabProjects         = Tab{Name: "PROJECTS", Columns: models.ProjectColumns}
	TabTasks            = Tab{Name: "TASKS", Columns: models.TaskColumns}
	TabInvestors        = Tab{Name: "INVESTORS", Columns: models.InvestorColumns}
	TabProjectInvestors = Tab{Name: "PROJECT_INVESTORS", Columns: models.ProjectInvestorColumns}
	TabStartupInvestors = Tab{Name: "STARTUP_INVESTORS", Columns: models.StartupInvestorColumns}
	TabConfig           = Tab{Name: "CONFIG", Columns: models.ConfigColumns}
)

// AllTabs lists every tab in spreadsheet order
var AllTabs = []Tab{
	TabTeam,
	TabStartups,
	TabProjects,
	TabTasks,
	TabInvestors,
	TabProjectInvestors,
	TabStartupInvestors,
	TabConfig,
}

func (t Tab) lastColumn() string {
	return ColumnLetter(t.Columns)
}

// DataRange covers every data row, e.g. "A2:H"
func (t Tab) DataRange() string {
	return "A2:" + t.lastColumn()
}

// AppendRange covers the full column span, e.g. "A:H"
func (t Tab) AppendRange() string {
	return "A:" + t.lastColumn()
}

// KeyRange covers the primary-key column
func (t Tab) KeyRange() string {
	return "A:A"
}

// RowRange covers exactly one row, e.g. "A5:H5"
func (t Tab) RowRange(row int) string {
	return fmt.Sprintf("A%d:%s%d", row, t.lastColumn(), row)
}

// Header returns the header row for the tab
func (t Tab) Header() []string {
	return headers[t.Name]
}

var headers = map[string][]string{
	"TEAM":              {"team_id", "name"},
	"STARTUPS":          {"startup_id", "startup_name", "status", "pitch_deck_url", "data_room_url", "pl_url", "investment_memo_url", "notes"},
	"PROJECTS":          {"project_id", "startup_id", "project_name", "status", "created_at", "notes"},
	"TASKS":             {"task_id", "startup_id", "project_id", "title", "owner_id", "due_date", "status", "priority", "notes", "created_at", "updated_at"},
	"INVESTORS":         {"investor_id", "investor_name", "tags", "email", "linkedin", "notes"},
	"PROJECT_INVESTORS": {"link_id", "project_id", "investor_id", "stage", "last_update", "next_action", "notes"},
	"STARTUP_INVESTORS": {"link_id", "startup_id", "investor_id", "stage", "last_update", "next_action", "notes"},
	"CONFIG":            {"key", "value"},
}
