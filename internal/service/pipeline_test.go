package service_test

import (
	"context"
	"testing"
	"time"

	"dealflow-backend/internal/database/models"
	apperrors "dealflow-backend/internal/errors"
	"dealflow-backend/internal/mocks"
	"dealflow-backend/internal/service"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// PipelineServiceTestSuite defines the test suite for PipelineService
type PipelineServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockRepo         *mocks.MockProjectInvestorRepositoryInterface
	mockInvestorRepo *mocks.MockInvestorRepositoryInterface
	mockConfigRepo   *mocks.MockConfigRepositoryInterface
	pipelineService  *service.PipelineService
	ctx              context.Context
}

// SetupTest sets up the test suite
func (suite *PipelineServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockProjectInvestorRepositoryInterface(suite.ctrl)
	suite.mockInvestorRepo = mocks.NewMockInvestorRepositoryInterface(suite.ctrl)
	suite.mockConfigRepo = mocks.NewMockConfigRepositoryInterface(suite.ctrl)
	suite.pipelineService = service.NewPipelineService(suite.mockRepo, suite.mockInvestorRepo, suite.mockConfigRepo,
		service.NewValidator(), service.WithClock(func() time.Time { return fixedNow }))
	suite.ctx = context.Background()
}

// TearDownTest cleans up after each test
func (suite *PipelineServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreate tests adding an investor to a project pipeline
func (suite *PipelineServiceTestSuite) TestCreate() {
	suite.mockRepo.EXPECT().List(gomock.Any()).Return([]models.ProjectInvestor{
		{LinkID: "pi_1", ProjectID: "prj_other", InvestorID: "inv_1"},
	}, nil)
	suite.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	link, err := suite.pipelineService.Create(suite.ctx, &service.CreateProjectInvestorRequest{
		ProjectID:  "prj_1",
		InvestorID: "inv_1",
		NextAction: "intro call",
	})

	suite.Require().NoError(err)
	suite.Equal("2024-05-01", link.LastUpdate)
	suite.Equal("intro call", link.NextAction)
}

// TestCreateDuplicatePair tests that a second link for the same pair is rejected
func (suite *PipelineServiceTestSuite) TestCreateDuplicatePair() {
	suite.mockRepo.EXPECT().List(gomock.Any()).Return([]models.ProjectInvestor{
		{LinkID: "pi_1", ProjectID: "prj_1", InvestorID: "inv_1"},
	}, nil)

	_, err := suite.pipelineService.Create(suite.ctx, &service.CreateProjectInvestorRequest{
		ProjectID:  "prj_1",
		InvestorID: "inv_1",
	})

	suite.True(apperrors.IsAlreadyExists(err))
}

// TestCreateRequiresPair tests that project_id and investor_id are required
func (suite *PipelineServiceTestSuite) TestCreateRequiresPair() {
	_, err := suite.pipelineService.Create(suite.ctx, &service.CreateProjectInvestorRequest{ProjectID: "prj_1"})
	suite.True(apperrors.IsValidation(err))
	suite.Contains(err.Error(), "investor_id")
}

// TestUpdateStageChangeStampsToday tests the last_update rules
func (suite *PipelineServiceTestSuite) TestUpdateStageChangeStampsToday() {
	testCases := []struct {
		name       string
		stage      *string
		lastUpdate *string
		want       string
	}{
		{name: "Stage moved", stage: strPtr("Negotiation"), lastUpdate: strPtr("2020-01-01"), want: "2024-05-01"},
		{name: "Same stage keeps supplied date", stage: strPtr("Due Diligence"), lastUpdate: strPtr("2024-04-20"), want: "2024-04-20"},
		{name: "No stage keeps stored date", want: "2024-03-03"},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.mockRepo.EXPECT().GetByID(gomock.Any(), "pi_1").Return(&models.ProjectInvestor{
				LinkID: "pi_1", ProjectID: "prj_1", InvestorID: "inv_1", Stage: "Due Diligence", LastUpdate: "2024-03-03",
			}, nil)
			suite.mockRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

			link, err := suite.pipelineService.Update(suite.ctx, &service.UpdateProjectInvestorRequest{
				LinkID: "pi_1", Stage: tc.stage, LastUpdate: tc.lastUpdate,
			})
			suite.Require().NoError(err)
			suite.Equal(tc.want, link.LastUpdate)
		})
	}
}

// TestUpdateInvalidStage tests that the repository's stage validation surfaces unchanged
func (suite *PipelineServiceTestSuite) TestUpdateInvalidStage() {
	suite.mockRepo.EXPECT().GetByID(gomock.Any(), "pi_1").Return(&models.ProjectInvestor{LinkID: "pi_1", Stage: "Potentials"}, nil)
	suite.mockRepo.EXPECT().Update(gomock.Any(), gomock.Any()).
		Return(apperrors.NewValidationError("stage", `invalid stage "Nope". Valid: Potentials`))

	_, err := suite.pipelineService.Update(suite.ctx, &service.UpdateProjectInvestorRequest{LinkID: "pi_1", Stage: strPtr("Nope")})
	suite.True(apperrors.IsValidation(err))
}

// TestBoard tests stage ordering, investor decoration and unknown stages
func (suite *PipelineServiceTestSuite) TestBoard() {
	suite.mockConfigRepo.EXPECT().PipelineStages(gomock.Any()).Return([]string{"Lead", "Pitch", "Won"}, nil)
	suite.mockRepo.EXPECT().List(gomock.Any()).Return([]models.ProjectInvestor{
		{LinkID: "pi_1", ProjectID: "prj_1", InvestorID: "inv_1", Stage: "Pitch"},
		{LinkID: "pi_2", ProjectID: "prj_1", InvestorID: "inv_2", Stage: "Lead"},
		{LinkID: "pi_3", ProjectID: "prj_1", InvestorID: "inv_ghost", Stage: "Retired"},
		{LinkID: "pi_4", ProjectID: "prj_2", InvestorID: "inv_1", Stage: "Won"},
	}, nil)
	suite.mockInvestorRepo.EXPECT().List(gomock.Any()).Return([]models.Investor{
		{InvestorID: "inv_1", InvestorName: "Alpha", Tags: "seed;b2b"},
		{InvestorID: "inv_2", InvestorName: "Beta"},
	}, nil)

	board, err := suite.pipelineService.Board(suite.ctx, "prj_1")

	suite.Require().NoError(err)
	suite.Require().Len(board.Columns, 3)
	suite.Equal("Lead", board.Columns[0].Stage)
	suite.Equal("Beta", board.Columns[0].Cards[0].InvestorName)
	suite.Equal([]string{"seed", "b2b"}, board.Columns[1].Cards[0].Tags)
	suite.Empty(board.Columns[2].Cards)
	suite.Require().Len(board.Unstaged, 1)
	suite.Equal("inv_ghost", board.Unstaged[0].InvestorName)
}

func strPtr(s string) *string { return &s }

func TestPipelineServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PipelineServiceTestSuite))
}
