package models

import "slices"

// DefaultPipelineStages is the built-in ordered stage list, used when the
// CONFIG tab has no pipeline_stages row and as the migration vocabulary.
var DefaultPipelineStages = []string{
	"Potentials",
	"Initial Contact",
	"Advanced Contact",
	"Due Diligence",
	"Negotiation",
	"Declined",
	"Accepted",
}

// ProjectInvestor links an investor to a project's fundraising pipeline
type ProjectInvestor struct {
	LinkID     string `json:"link_id"`
	ProjectID  string `json:"project_id"`
	InvestorID string `json:"investor_id"`
	Stage      string `json:"stage"`
	LastUpdate string `json:"last_update"` // YYYY-MM-DD
	NextAction string `json:"next_action"`
	Notes      string `json:"notes"`
}

// PairKey identifies the (project, investor) pair of a link
func (pi ProjectInvestor) PairKey() string {
	return pi.ProjectID + "::" + pi.InvestorID
}

// StartupInvestor is the legacy startup-scoped pipeline link, superseded by ProjectInvestor
type StartupInvestor struct {
	LinkID     string `json:"link_id"`
	StartupID  string `json:"startup_id"`
	InvestorID string `json:"investor_id"`
	Stage      string `json:"stage"`
	LastUpdate string `json:"last_update"`
	NextAction string `json:"next_action"`
	Notes      string `json:"notes"`
}

// IsKnownStage reports whether stage is part of the ordered stage list
func IsKnownStage(stages []string, stage string) bool {
	return slices.Contains(stages, stage)
}
