package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	t.Run("TeamMember", func(t *testing.T) {
		m := TeamMember{TeamID: "tm_1", Name: "Ana"}
		assert.Len(t, m.Row(), TeamMemberColumns)
		assert.Equal(t, m, TeamMemberFromRow(m.Row()))
	})

	t.Run("Startup", func(t *testing.T) {
		s := Startup{
			StartupID:         "st_lq2k9x_ab12",
			StartupName:       "Acme",
			Status:            StatusPaused,
			PitchDeckURL:      "https://deck",
			DataRoomURL:       "https://room",
			PLURL:             "https://pl",
			InvestmentMemoURL: "https://memo",
			Notes:             "warm intro",
		}
		assert.Len(t, s.Row(), StartupColumns)
		assert.Equal(t, s, StartupFromRow(s.Row()))
	})

	t.Run("Project", func(t *testing.T) {
		p := Project{ProjectID: "prj_1", StartupID: "st_1", ProjectName: "Seed", Status: StatusClosed, CreatedAt: "2024-05-01T10:00:00.000Z", Notes: "n"}
		assert.Len(t, p.Row(), ProjectColumns)
		assert.Equal(t, p, ProjectFromRow(p.Row()))
	})

	t.Run("Task", func(t *testing.T) {
		task := Task{
			TaskID:    "tsk_1",
			StartupID: "st_1",
			ProjectID: "prj_1",
			Title:     "Send deck",
			OwnerID:   "tm_1",
			DueDate:   "2024-06-01",
			Status:    TaskStatusDoing,
			Priority:  TaskPriorityHigh,
			Notes:     "asap",
			CreatedAt: "2024-05-01T10:00:00.000Z",
			UpdatedAt: "2024-05-02T10:00:00.000Z",
		}
		assert.Len(t, task.Row(), TaskColumns)
		assert.Equal(t, task, TaskFromRow(task.Row()))
	})

	t.Run("Investor", func(t *testing.T) {
		i := Investor{InvestorID: "inv_1", InvestorName: "Fund", Tags: "seed;fintech", Email: "a@b.c", LinkedIn: "in/fund", Notes: "x"}
		assert.Len(t, i.Row(), InvestorColumns)
		assert.Equal(t, i, InvestorFromRow(i.Row()))
	})

	t.Run("ProjectInvestor", func(t *testing.T) {
		pi := ProjectInvestor{LinkID: "pi_1", ProjectID: "prj_1", InvestorID: "inv_1", Stage: "Negotiation", LastUpdate: "2024-05-01", NextAction: "call", Notes: "n"}
		assert.Len(t, pi.Row(), ProjectInvestorColumns)
		assert.Equal(t, pi, ProjectInvestorFromRow(pi.Row()))
	})

	t.Run("StartupInvestor", func(t *testing.T) {
		si := StartupInvestor{LinkID: "si_1", StartupID: "st_1", InvestorID: "inv_1", Stage: "Target", LastUpdate: "2024-05-01", NextAction: "email", Notes: "n"}
		assert.Len(t, si.Row(), StartupInvestorColumns)
		assert.Equal(t, si, StartupInvestorFromRow(si.Row()))
	})

	t.Run("ConfigRow", func(t *testing.T) {
		c := ConfigRow{Key: ConfigKeyPipelineStages, Value: "A|B"}
		assert.Len(t, c.Row(), ConfigColumns)
		assert.Equal(t, c, ConfigRowFromRow(c.Row()))
	})
}

func TestDecodeShortRows(t *testing.T) {
	t.Run("Startup defaults status to active", func(t *testing.T) {
		s := StartupFromRow([]string{"st_1", "Acme"})
		assert.Equal(t, StatusActive, s.Status)
		assert.Empty(t, s.Notes)
	})

	t.Run("Project defaults status to active", func(t *testing.T) {
		p := ProjectFromRow([]string{"prj_1", "st_1", "Seed", ""})
		assert.Equal(t, StatusActive, p.Status)
	})

	t.Run("Task defaults status and priority", func(t *testing.T) {
		task := TaskFromRow([]string{"tsk_1", "st_1", "", "Call"})
		assert.Equal(t, TaskStatusTodo, task.Status)
		assert.Equal(t, TaskPriorityMedium, task.Priority)
		assert.Empty(t, task.UpdatedAt)
	})

	t.Run("Empty row keeps empty key for the caller to discard", func(t *testing.T) {
		assert.Empty(t, InvestorFromRow(nil).InvestorID)
		assert.Empty(t, ProjectInvestorFromRow([]string{}).LinkID)
	})
}

func TestTaskStartupLevelSentinel(t *testing.T) {
	task := TaskFromRow([]string{"tsk_1", "st_1", "", "Prepare data room"})
	assert.True(t, task.IsStartupLevel())

	task = TaskFromRow([]string{"tsk_2", "st_1", "prj_1", "Prepare data room"})
	assert.False(t, task.IsStartupLevel())
}

func TestInvestorTags(t *testing.T) {
	i := Investor{Tags: " seed ; fintech;;b2b "}
	assert.Equal(t, []string{"seed", "fintech", "b2b"}, i.TagList())
	assert.Equal(t, "seed;fintech", JoinTags([]string{"seed", "fintech"}))
	assert.Nil(t, Investor{}.TagList())
}

func TestSplitStages(t *testing.T) {
	stages := SplitStages(" Potentials | Initial Contact|Accepted ")
	require.Len(t, stages, 3)
	assert.Equal(t, []string{"Potentials", "Initial Contact", "Accepted"}, stages)
	assert.True(t, IsKnownStage(stages, "Accepted"))
	assert.False(t, IsKnownStage(stages, "accepted"))
}

func TestEnumValidity(t *testing.T) {
	assert.True(t, StatusPaused.IsValid())
	assert.False(t, Status("archived").IsValid())
	assert.True(t, TaskStatusDone.IsValid())
	assert.False(t, TaskStatus("blocked").IsValid())
	assert.True(t, TaskPriorityLow.IsValid())
	assert.False(t, TaskPriority("urgent").IsValid())
}
