package testutils

import (
	"dealflow-backend/internal/database/models"
)

// FactorySet bundles the record factories used across tests
type FactorySet struct {
	Startup         *StartupFactory
	Project         *ProjectFactory
	Task            *TaskFactory
	Investor        *InvestorFactory
	ProjectInvestor *ProjectInvestorFactory
	StartupInvestor *StartupInvestorFactory
}

// NewFactorySet creates a new FactorySet
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Startup:         &StartupFactory{},
		Project:         &ProjectFactory{},
		Task:            &TaskFactory{},
		Investor:        &InvestorFactory{},
		ProjectInvestor: &ProjectInvestorFactory{},
		StartupInvestor: &StartupInvestorFactory{},
	}
}

// StartupFactory provides test startups
type StartupFactory struct{}

// Create returns an active startup with the given id
func (f *StartupFactory) Create(id string) models.Startup {
	return models.Startup{
		StartupID:    id,
		StartupName:  "Startup " + id,
		Status:       models.StatusActive,
		PitchDeckURL: "https://example.com/" + id + "/deck.pdf",
	}
}

// ProjectFactory provides test projects
type ProjectFactory struct{}

// Create returns an active project of startupID
func (f *ProjectFactory) Create(id, startupID string) models.Project {
	return models.Project{
		ProjectID:   id,
		StartupID:   startupID,
		ProjectName: "Seed Round",
		Status:      models.StatusActive,
		CreatedAt:   models.FormatTimestamp(FixedTime),
	}
}

// TaskFactory provides test tasks
type TaskFactory struct{}

// Create returns an open task. An empty projectID makes it startup-level.
func (f *TaskFactory) Create(id, startupID, projectID string) models.Task {
	ts := models.FormatTimestamp(FixedTime)
	return models.Task{
		TaskID:    id,
		StartupID: startupID,
		ProjectID: projectID,
		Title:     "Follow up " + id,
		Status:    models.TaskStatusTodo,
		Priority:  models.TaskPriorityMedium,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
}

// WithStatus returns a task in the given status
func (f *TaskFactory) WithStatus(id, startupID, projectID string, status models.TaskStatus) models.Task {
	t := f.Create(id, startupID, projectID)
	t.Status = status
	return t
}

// InvestorFactory provides test investors
type InvestorFactory struct{}

// Create returns an investor with a couple of tags
func (f *InvestorFactory) Create(id string) models.Investor {
	return models.Investor{
		InvestorID:   id,
		InvestorName: "Fund " + id,
		Tags:         models.JoinTags([]string{"seed", "fintech"}),
		Email:        id + "@fund.example",
	}
}

// ProjectInvestorFactory provides project pipeline links
type ProjectInvestorFactory struct{}

// Create returns a link in stage
func (f *ProjectInvestorFactory) Create(id, projectID, investorID, stage string) models.ProjectInvestor {
	return models.ProjectInvestor{
		LinkID:     id,
		ProjectID:  projectID,
		InvestorID: investorID,
		Stage:      stage,
		LastUpdate: models.FormatDate(FixedTime),
	}
}

// StartupInvestorFactory provides legacy pipeline links
type StartupInvestorFactory struct{}

// Create returns a legacy link in stage
func (f *StartupInvestorFactory) Create(id, startupID, investorID, stage string) models.StartupInvestor {
	return models.StartupInvestor{
		LinkID:     id,
		StartupID:  startupID,
		InvestorID: investorID,
		Stage:      stage,
		LastUpdate: "2024-01-15",
	}
}
