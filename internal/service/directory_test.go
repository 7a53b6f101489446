package service_test

import (
	"context"
	"testing"
	"time"

	"dealflow-backend/internal/database/models"
	apperrors "dealflow-backend/internal/errors"
	"dealflow-backend/internal/mocks"
	"dealflow-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTeamService(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockTeamRepositoryInterface(ctrl)
	svc := service.NewTeamService(repo, service.NewValidator())
	ctx := context.Background()

	_, err := svc.Create(ctx, &service.CreateTeamMemberRequest{})
	assert.True(t, apperrors.IsValidation(err))

	repo.EXPECT().Create(gomock.Any(), &models.TeamMember{Name: "Ana"}).Return(nil)
	member, err := svc.Create(ctx, &service.CreateTeamMemberRequest{Name: "Ana"})
	require.NoError(t, err)
	assert.Equal(t, "Ana", member.Name)

	repo.EXPECT().GetByID(gomock.Any(), "tm_1").Return(&models.TeamMember{TeamID: "tm_1", Name: "Ana"}, nil)
	repo.EXPECT().Update(gomock.Any(), &models.TeamMember{TeamID: "tm_1", Name: "Ana B."}).Return(nil)
	name := "Ana B."
	member, err = svc.Update(ctx, &service.UpdateTeamMemberRequest{TeamID: "tm_1", Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Ana B.", member.Name)
}

func TestInvestorService(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockInvestorRepositoryInterface(ctrl)
	svc := service.NewInvestorService(repo, service.NewValidator())
	ctx := context.Background()

	t.Run("list by tag", func(t *testing.T) {
		repo.EXPECT().List(gomock.Any()).Return([]models.Investor{
			{InvestorID: "inv_1", Tags: "seed;fintech"},
			{InvestorID: "inv_2", Tags: "growth"},
			{InvestorID: "inv_3", Tags: "fintech"},
		}, nil)

		investors, err := svc.List(ctx, "fintech")
		require.NoError(t, err)
		require.Len(t, investors, 2)
		assert.Equal(t, "inv_3", investors[1].InvestorID)
	})

	t.Run("invalid email", func(t *testing.T) {
		_, err := svc.Create(ctx, &service.CreateInvestorRequest{InvestorName: "Fund", Email: "not-an-email"})
		assert.True(t, apperrors.IsValidation(err))
		assert.Contains(t, err.Error(), "email")
	})

	t.Run("update keeps unspecified fields", func(t *testing.T) {
		repo.EXPECT().GetByID(gomock.Any(), "inv_1").
			Return(&models.Investor{InvestorID: "inv_1", InvestorName: "Fund", Email: "a@b.co"}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		tags := "seed"
		investor, err := svc.Update(ctx, &service.UpdateInvestorRequest{InvestorID: "inv_1", Tags: &tags})
		require.NoError(t, err)
		assert.Equal(t, "seed", investor.Tags)
		assert.Equal(t, "a@b.co", investor.Email)
	})
}

func TestProjectService(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockProjectRepositoryInterface(ctrl)
	startupRepo := mocks.NewMockStartupRepositoryInterface(ctrl)
	taskRepo := mocks.NewMockTaskRepositoryInterface(ctrl)
	linkRepo := mocks.NewMockProjectInvestorRepositoryInterface(ctrl)
	svc := service.NewProjectService(repo, startupRepo, taskRepo, linkRepo, service.NewValidator())
	ctx := context.Background()

	t.Run("create requires an existing startup", func(t *testing.T) {
		startupRepo.EXPECT().GetByID(gomock.Any(), "st_x").Return(nil, apperrors.NewNotFoundError("startup", "st_x"))

		_, err := svc.Create(ctx, &service.CreateProjectRequest{StartupID: "st_x", ProjectName: "Seed"})
		assert.ErrorIs(t, err, apperrors.ErrStartupNotFound)
	})

	t.Run("create", func(t *testing.T) {
		startupRepo.EXPECT().GetByID(gomock.Any(), "st_1").Return(&models.Startup{StartupID: "st_1"}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		project, err := svc.Create(ctx, &service.CreateProjectRequest{StartupID: "st_1", ProjectName: "Seed"})
		require.NoError(t, err)
		assert.Equal(t, "Seed", project.ProjectName)
	})

	t.Run("list by startup", func(t *testing.T) {
		repo.EXPECT().List(gomock.Any()).Return([]models.Project{
			{ProjectID: "prj_1", StartupID: "st_1"},
			{ProjectID: "prj_2", StartupID: "st_2"},
		}, nil)

		projects, err := svc.List(ctx, "st_2")
		require.NoError(t, err)
		require.Len(t, projects, 1)
		assert.Equal(t, "prj_2", projects[0].ProjectID)
	})

	t.Run("summaries", func(t *testing.T) {
		repo.EXPECT().List(gomock.Any()).Return([]models.Project{
			{ProjectID: "prj_1", StartupID: "st_1"},
			{ProjectID: "prj_2", StartupID: "st_1"},
		}, nil)
		startupRepo.EXPECT().List(gomock.Any()).Return([]models.Startup{{StartupID: "st_1", StartupName: "Acme"}}, nil)
		taskRepo.EXPECT().List(gomock.Any()).Return([]models.Task{
			{TaskID: "tsk_1", StartupID: "st_1", ProjectID: "prj_1", Status: models.TaskStatusTodo},
			{TaskID: "tsk_2", StartupID: "st_1", ProjectID: "", Status: models.TaskStatusTodo},
			{TaskID: "tsk_3", StartupID: "st_1", ProjectID: "prj_1", Status: models.TaskStatusDone},
		}, nil)
		linkRepo.EXPECT().List(gomock.Any()).Return([]models.ProjectInvestor{
			{LinkID: "pi_1", ProjectID: "prj_2"},
			{LinkID: "pi_2", ProjectID: "prj_2"},
		}, nil)

		summaries, err := svc.Summaries(ctx, "")
		require.NoError(t, err)
		require.Len(t, summaries, 2)
		assert.Equal(t, "Acme", summaries[0].StartupName)
		assert.Equal(t, 1, summaries[0].OpenTaskCount)
		assert.Equal(t, 0, summaries[0].InvestorCount)
		assert.Equal(t, 2, summaries[1].InvestorCount)
	})
}

func TestLegacyPipelineService(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockStartupInvestorRepositoryInterface(ctrl)
	svc := service.NewLegacyPipelineService(repo, service.NewValidator(),
		service.WithClock(func() time.Time { return fixedNow }))
	ctx := context.Background()

	repo.EXPECT().List(gomock.Any()).Return([]models.StartupInvestor{
		{LinkID: "si_1", StartupID: "st_1"},
		{LinkID: "si_2", StartupID: "st_2"},
	}, nil)
	links, err := svc.List(ctx, "st_1")
	require.NoError(t, err)
	assert.Len(t, links, 1)

	repo.EXPECT().GetByID(gomock.Any(), "si_1").
		Return(&models.StartupInvestor{LinkID: "si_1", Stage: "Potentials", LastUpdate: "2024-01-15"}, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
	notes := "sent teaser"
	link, err := svc.Update(ctx, &service.UpdateStartupInvestorRequest{LinkID: "si_1", Notes: &notes})
	require.NoError(t, err)
	assert.Equal(t, "2024-01-15", link.LastUpdate, "notes-only edits keep last_update")

	_, err = svc.Create(ctx, &service.CreateStartupInvestorRequest{StartupID: "st_1"})
	assert.True(t, apperrors.IsValidation(err))
}

func TestConfigService(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockConfigRepositoryInterface(ctrl)
	svc := service.NewConfigService(repo)

	rows := []models.ConfigRow{{Key: models.ConfigKeyPipelineStages, Value: "A|B"}}
	repo.EXPECT().List(gomock.Any()).Return(rows, nil)
	repo.EXPECT().PipelineStages(gomock.Any()).Return([]string{"A", "B"}, nil)

	resp, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, rows, resp.Config)
	assert.Equal(t, []string{"A", "B"}, resp.PipelineStages)
}
