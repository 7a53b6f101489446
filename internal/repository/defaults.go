package repository

import (
	"time"

	"dealflow-backend/internal/database/models"
)

// Record defaults applied on the create path. Every default a caller may
// omit is filled here and nowhere else.

func applyTeamMemberDefaults(m *models.TeamMember, newID IDGenerator) {
	if m.TeamID == "" {
		m.TeamID = newID(PrefixTeamMember)
	}
}

func applyStartupDefaults(s *models.Startup, newID IDGenerator) {
	if s.StartupID == "" {
		s.StartupID = newID(PrefixStartup)
	}
	if s.Status == "" {
		s.Status = models.StatusActive
	}
}

func applyProjectDefaults(p *models.Project, newID IDGenerator, now time.Time) {
	if p.ProjectID == "" {
		p.ProjectID = newID(PrefixProject)
	}
	if p.Status == "" {
		p.Status = models.StatusActive
	}
	if p.CreatedAt == "" {
		p.CreatedAt = models.FormatTimestamp(now)
	}
}

func applyTaskDefaults(t *models.Task, newID IDGenerator, now time.Time) {
	if t.TaskID == "" {
		t.TaskID = newID(PrefixTask)
	}
	if t.Status == "" {
		t.Status = models.TaskStatusTodo
	}
	if t.Priority == "" {
		t.Priority = models.TaskPriorityMedium
	}
	ts := models.FormatTimestamp(now)
	if t.CreatedAt == "" {
		t.CreatedAt = ts
	}
	if t.UpdatedAt == "" {
		t.UpdatedAt = t.CreatedAt
	}
}

func applyInvestorDefaults(i *models.Investor, newID IDGenerator) {
	if i.InvestorID == "" {
		i.InvestorID = newID(PrefixInvestor)
	}
}

// firstStage is the stage a link without one starts in
func firstStage(stages []string) string {
	if len(stages) > 0 && stages[0] != "" {
		return stages[0]
	}
	return models.DefaultPipelineStages[0]
}

func applyProjectInvestorDefaults(pi *models.ProjectInvestor, newID IDGenerator, stages []string, now time.Time) {
	if pi.LinkID == "" {
		pi.LinkID = newID(PrefixProjectInvestor)
	}
	if pi.Stage == "" {
		pi.Stage = firstStage(stages)
	}
	if pi.LastUpdate == "" {
		pi.LastUpdate = models.FormatDate(now)
	}
}

func applyStartupInvestorDefaults(si *models.StartupInvestor, newID IDGenerator, stages []string, now time.Time) {
	if si.LinkID == "" {
		si.LinkID = newID(PrefixStartupInvestor)
	}
	if si.Stage == "" {
		si.Stage = firstStage(stages)
	}
	if si.LastUpdate == "" {
		si.LastUpdate = models.FormatDate(now)
	}
}
