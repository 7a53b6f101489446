package handlers_test

import (
	"net/http"
	"testing"

	"dealflow-backend/internal/api/handlers"
	"dealflow-backend/internal/database/models"
	apperrors "dealflow-backend/internal/errors"
	"dealflow-backend/internal/mocks"
	"dealflow-backend/internal/service"
	"dealflow-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// StartupHandlerTestSuite defines the test suite for StartupHandler
type StartupHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockStartupServiceInterface
	handler     *handlers.StartupHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *StartupHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockStartupServiceInterface(suite.ctrl)
	suite.handler = handlers.NewStartupHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()

	startups := suite.httpSuite.Router.Group("/api/startups")
	{
		startups.GET("", suite.handler.ListStartups)
		startups.GET("/summary", suite.handler.ListStartupSummaries)
		startups.POST("", suite.handler.CreateStartup)
		startups.PUT("", suite.handler.UpdateStartup)
	}
}

// TearDownTest cleans up after each test
func (suite *StartupHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestListStartups tests the list endpoint
func (suite *StartupHandlerTestSuite) TestListStartups() {
	suite.mockService.EXPECT().List(gomock.Any()).Return([]models.Startup{
		{StartupID: "st_1", StartupName: "Acme", Status: models.StatusActive},
	}, nil)

	var startups []models.Startup
	w := suite.httpSuite.MakeRequest(http.MethodGet, "/api/startups", nil)
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &startups)
	suite.Equal("Acme", startups[0].StartupName)
}

// TestListStartupSummaries tests the summary endpoint
func (suite *StartupHandlerTestSuite) TestListStartupSummaries() {
	suite.mockService.EXPECT().Summaries(gomock.Any()).Return([]service.StartupSummary{
		{Startup: models.Startup{StartupID: "st_1"}, ProjectCount: 2, OpenTaskCount: 5, MaterialCount: 1},
	}, nil)

	w := suite.httpSuite.MakeRequest(http.MethodGet, "/api/startups/summary", nil)
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, nil)
	suite.Contains(w.Body.String(), `"open_task_count":5`)
}

// TestUpdateStartup tests update status mapping
func (suite *StartupHandlerTestSuite) TestUpdateStartup() {
	suite.Run("updated", func() {
		notes := "second meeting"
		suite.mockService.EXPECT().
			Update(gomock.Any(), &service.UpdateStartupRequest{StartupID: "st_1", Notes: &notes}).
			Return(&models.Startup{StartupID: "st_1", Notes: notes}, nil)

		var startup models.Startup
		w := suite.httpSuite.MakeRequest(http.MethodPut, "/api/startups", map[string]string{"startup_id": "st_1", "notes": notes})
		testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &startup)
		suite.Equal(notes, startup.Notes)
	})

	suite.Run("unknown startup", func() {
		suite.mockService.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			Return(nil, apperrors.ErrStartupNotFound)

		w := suite.httpSuite.MakeRequest(http.MethodPut, "/api/startups", map[string]string{"startup_id": "st_x"})
		testutils.AssertErrorResponse(suite.T(), w, http.StatusNotFound, "startup not found")
	})
}

func TestStartupHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(StartupHandlerTestSuite))
}
