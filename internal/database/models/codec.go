package models

// Column counts of every tab. Rows are positional: the order of the
// fields in each Row method is the on-sheet column order.
const (
	TeamMemberColumns      = 2
	StartupColumns         = 8
	ProjectColumns         = 6
	TaskColumns            = 11
	InvestorColumns        = 6
	ProjectInvestorColumns = 7
	StartupInvestorColumns = 7
	ConfigColumns          = 2
)

// cell returns row[i], or "" when the row is shorter than i+1 cells.
func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func cellOr[T ~string](row []string, i int, def T) T {
	if v := cell(row, i); v != "" {
		return T(v)
	}
	return def
}

// TeamMemberFromRow decodes a TEAM row
func TeamMemberFromRow(row []string) TeamMember {
	return TeamMember{
		TeamID: cell(row, 0),
		Name:   cell(row, 1),
	}
}

// Row encodes the team member as a TEAM row
func (m TeamMember) Row() []string {
	return []string{m.TeamID, m.Name}
}

// StartupFromRow decodes a STARTUPS row
func StartupFromRow(row []string) Startup {
	return Startup{
		StartupID:         cell(row, 0),
		StartupName:       cell(row, 1),
		Status:            cellOr(row, 2, StatusActive),
		PitchDeckURL:      cell(row, 3),
		DataRoomURL:       cell(row, 4),
		PLURL:             cell(row, 5),
		InvestmentMemoURL: cell(row, 6),
		Notes:             cell(row, 7),
	}
}

// Row encodes the startup as a STARTUPS row
func (s Startup) Row() []string {
	return []string{
		s.StartupID,
		s.StartupName,
		string(s.Status),
		s.PitchDeckURL,
		s.DataRoomURL,
		s.PLURL,
		s.InvestmentMemoURL,
		s.Notes,
	}
}

// ProjectFromRow decodes a PROJECTS row
func ProjectFromRow(row []string) Project {
	return Project{
		ProjectID:   cell(row, 0),
		StartupID:   cell(row, 1),
		ProjectName: cell(row, 2),
		Status:      cellOr(row, 3, StatusActive),
		CreatedAt:   cell(row, 4),
		Notes:       cell(row, 5),
	}
}

// Row encodes the project as a PROJECTS row
func (p Project) Row() []string {
	return []string{p.ProjectID, p.StartupID, p.ProjectName, string(p.Status), p.CreatedAt, p.Notes}
}

// TaskFromRow decodes a TASKS row. project_id lives in column C.
func TaskFromRow(row []string) Task {
	return Task{
		TaskID:    cell(row, 0),
		StartupID: cell(row, 1),
		ProjectID: cell(row, 2),
		Title:     cell(row, 3),
		OwnerID:   cell(row, 4),
		DueDate:   cell(row, 5),
		Status:    cellOr(row, 6, TaskStatusTodo),
		Priority:  cellOr(row, 7, TaskPriorityMedium),
		Notes:     cell(row, 8),
		CreatedAt: cell(row, 9),
		UpdatedAt: cell(row, 10),
	}
}

// Row encodes the task as a TASKS row
func (t Task) Row() []string {
	return []string{
		t.TaskID,
		t.StartupID,
		t.ProjectID,
		t.Title,
		t.OwnerID,
		t.DueDate,
		string(t.Status),
		string(t.Priority),
		t.Notes,
		t.CreatedAt,
		t.UpdatedAt,
	}
}

// InvestorFromRow decodes an INVESTORS row
func InvestorFromRow(row []string) Investor {
	return Investor{
		InvestorID:   cell(row, 0),
		InvestorName: cell(row, 1),
		Tags:         cell(row, 2),
		Email:        cell(row, 3),
		LinkedIn:     cell(row, 4),
		Notes:        cell(row, 5),
	}
}

// Row encodes the investor as an INVESTORS row
func (i Investor) Row() []string {
	return []string{i.InvestorID, i.InvestorName, i.Tags, i.Email, i.LinkedIn, i.Notes}
}

// ProjectInvestorFromRow decodes a PROJECT_INVESTORS row
func ProjectInvestorFromRow(row []string) ProjectInvestor {
	return ProjectInvestor{
		LinkID:     cell(row, 0),
		ProjectID:  cell(row, 1),
		InvestorID: cell(row, 2),
		Stage:      cell(row, 3),
		LastUpdate: cell(row, 4),
		NextAction: cell(row, 5),
		Notes:      cell(row, 6),
	}
}

// Row encodes the link as a PROJECT_INVESTORS row
func (pi ProjectInvestor) Row() []string {
	return []string{pi.LinkID, pi.ProjectID, pi.InvestorID, pi.Stage, pi.LastUpdate, pi.NextAction, pi.Notes}
}

// StartupInvestorFromRow decodes a STARTUP_INVESTORS row
func StartupInvestorFromRow(row []string) StartupInvestor {
	return StartupInvestor{
		LinkID:     cell(row, 0),
		StartupID:  cell(row, 1),
		InvestorID: cell(row, 2),
		Stage:      cell(row, 3),
		LastUpdate: cell(row, 4),
		NextAction: cell(row, 5),
		Notes:      cell(row, 6),
	}
}

// Row encodes the link as a STARTUP_INVESTORS row
func (si StartupInvestor) Row() []string {
	return []string{si.LinkID, si.StartupID, si.InvestorID, si.Stage, si.LastUpdate, si.NextAction, si.Notes}
}

// ConfigRowFromRow decodes a CONFIG row
func ConfigRowFromRow(row []string) ConfigRow {
	return ConfigRow{Key: cell(row, 0), Value: cell(row, 1)}
}

// Row encodes the config entry as a CONFIG row
func (c ConfigRow) Row() []string {
	return []string{c.Key, c.Value}
}
