package routes

import (
	"net/http"
	"testing"

	"dealflow-backend/internal/config"
	"dealflow-backend/internal/database"
	"dealflow-backend/internal/database/models"
	"dealflow-backend/internal/repository"
	"dealflow-backend/internal/service"
	"dealflow-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// RoutesTestSuite drives the full router against the in-memory spreadsheet
type RoutesTestSuite struct {
	testutils.StoreTestSuite
	http *testutils.HTTPTestSuite
}

// SetupTest runs before each test
func (suite *RoutesTestSuite) SetupTest() {
	suite.StoreTestSuite.SetupTest()
	repos := repository.New(suite.Store, suite.Cache, repository.WithClock(suite.Clock.Now))
	suite.http = testutils.SetupHTTPTest()
	suite.http.Router = SetupRoutes(repos, &config.Config{AllowedOrigins: []string{"*"}})
}

// TestPipelineFlow tests startup -> project -> investor -> link -> stage move through HTTP
func (suite *RoutesTestSuite) TestPipelineFlow() {
	t := suite.T()

	var startup models.Startup
	w := suite.http.MakeRequest(http.MethodPost, "/api/startups", map[string]string{"startup_name": "Acme"})
	testutils.AssertJSONResponse(t, w, http.StatusCreated, &startup)
	suite.Equal(models.StatusActive, startup.Status)

	var project models.Project
	w = suite.http.MakeRequest(http.MethodPost, "/api/projects", map[string]string{
		"startup_id": startup.StartupID, "project_name": "Seed",
	})
	testutils.AssertJSONResponse(t, w, http.StatusCreated, &project)

	var investor models.Investor
	w = suite.http.MakeRequest(http.MethodPost, "/api/investors", map[string]string{"investor_name": "Fund", "tags": "seed"})
	testutils.AssertJSONResponse(t, w, http.StatusCreated, &investor)

	var link models.ProjectInvestor
	w = suite.http.MakeRequest(http.MethodPost, "/api/project-investors", map[string]string{
		"project_id": project.ProjectID, "investor_id": investor.InvestorID,
	})
	testutils.AssertJSONResponse(t, w, http.StatusCreated, &link)
	suite.Equal("Potentials", link.Stage)

	w = suite.http.MakeRequest(http.MethodPost, "/api/project-investors", map[string]string{
		"project_id": project.ProjectID, "investor_id": investor.InvestorID,
	})
	testutils.AssertErrorResponse(t, w, http.StatusConflict, "already exists")

	w = suite.http.MakeRequest(http.MethodPut, "/api/project-investors", map[string]string{
		"link_id": link.LinkID, "stage": "Negotiation",
	})
	testutils.AssertJSONResponse(t, w, http.StatusOK, &link)
	suite.Equal("Negotiation", link.Stage)

	var board service.PipelineBoard
	w = suite.http.MakeRequest(http.MethodGet, "/api/project-investors/board?project_id="+project.ProjectID, nil)
	testutils.AssertJSONResponse(t, w, http.StatusOK, &board)
	suite.Len(board.Columns, len(models.DefaultPipelineStages))
	suite.Equal("Fund", board.Columns[4].Cards[0].InvestorName)

	rows := suite.Memory.Rows(database.TabProjectInvestors.Name)
	suite.Len(rows, 2)
	suite.Equal("Negotiation", rows[1][3])
}

// TestErrorMapping tests the status code for each error kind
func (suite *RoutesTestSuite) TestErrorMapping() {
	suite.http.RunHTTPTestCases(suite.T(), []testutils.HTTPTestCase{
		{
			Name:           "validation",
			Method:         http.MethodPost,
			URL:            "/api/tasks",
			Body:           map[string]string{"startup_id": "st_1"},
			ExpectedStatus: http.StatusBadRequest,
		},
		{
			Name:           "malformed body",
			Method:         http.MethodPost,
			URL:            "/api/investors",
			Body:           "{not json",
			ExpectedStatus: http.StatusBadRequest,
		},
		{
			Name:           "invalid stage",
			Method:         http.MethodPost,
			URL:            "/api/project-investors",
			Body:           map[string]string{"project_id": "prj_1", "investor_id": "inv_1", "stage": "Dreaming"},
			ExpectedStatus: http.StatusBadRequest,
		},
		{
			Name:           "not found",
			Method:         http.MethodPut,
			URL:            "/api/startups",
			Body:           map[string]string{"startup_id": "st_missing", "notes": "x"},
			ExpectedStatus: http.StatusNotFound,
		},
		{
			Name:           "missing tab",
			Method:         http.MethodGet,
			URL:            "/api/projects",
			Setup:          func() { suite.Memory.RemoveTab(database.TabProjects.Name) },
			ExpectedStatus: http.StatusInternalServerError,
		},
		{
			Name:           "bad startup_level",
			Method:         http.MethodGet,
			URL:            "/api/tasks?startup_level=maybe",
			ExpectedStatus: http.StatusBadRequest,
		},
	})
}

// TestHealth tests the health endpoints
func (suite *RoutesTestSuite) TestHealth() {
	var status service.HealthStatus
	w := suite.http.MakeRequest(http.MethodGet, "/api/health", nil)
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &status)
	suite.True(status.Connected)

	suite.Memory.RemoveTab(database.TabInvestors.Name)
	suite.Cache.Invalidate("")
	w = suite.http.MakeRequest(http.MethodGet, "/api/health", nil)
	suite.Equal(http.StatusServiceUnavailable, w.Code)

	w = suite.http.MakeRequest(http.MethodGet, "/health/live", nil)
	suite.Equal(http.StatusOK, w.Code)
}

// TestTaskFilters tests query parameter filtering over HTTP
func (suite *RoutesTestSuite) TestTaskFilters() {
	suite.SeedRows(database.TabTasks,
		suite.Factories.Task.Create("tsk_1", "st_1", "").Row(),
		suite.Factories.Task.Create("tsk_2", "st_1", "prj_1").Row(),
		suite.Factories.Task.Create("tsk_3", "st_2", "prj_2").Row(),
	)

	var tasks []models.Task
	w := suite.http.MakeRequest(http.MethodGet, "/api/tasks?startup_id=st_1&startup_level=true", nil)
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &tasks)
	suite.Require().Len(tasks, 1)
	suite.Equal("tsk_1", tasks[0].TaskID)
}

func TestRoutesTestSuite(t *testing.T) {
	suite.Run(t, new(RoutesTestSuite))
}
