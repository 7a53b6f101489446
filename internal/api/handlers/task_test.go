package handlers_test

import (
	"errors"
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

// TaskHandlerTestSuite defines the test suite for TaskHandler
type TaskHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockTaskServiceInterface
	handler     *handlers.TaskHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *TaskHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockTaskServiceInterface(suite.ctrl)
	suite.handler = handlers.NewTaskHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()

	tasks := suite.httpSuite.Router.Group("/api/tasks")
	{
		tasks.GET("", suite.handler.ListTasks)
		tasks.POST("", suite.handler.CreateTask)
		tasks.PUT("", suite.handler.UpdateTask)
	}
}

// TearDownTest cleans up after each test
func (suite *TaskHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestListTasks_Filters tests that query parameters reach the service filter
func (suite *TaskHandlerTestSuite) TestListTasks_Filters() {
	startupLevel := false
	expected := service.TaskFilter{
		StartupID:    "st_1",
		OwnerID:      "tm_1",
		Status:       models.TaskStatusDoing,
		StartupLevel: &startupLevel,
	}
	suite.mockService.EXPECT().
		List(gomock.Any(), expected).
		Return([]models.Task{{TaskID: "tsk_1", StartupID: "st_1", ProjectID: "prj_1"}}, nil)

	var tasks []models.Task
	w := suite.httpSuite.MakeRequest(http.MethodGet, "/api/tasks?startup_id=st_1&owner_id=tm_1&status=doing&startup_level=false", nil)
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &tasks)
	suite.Len(tasks, 1)
}

// TestListTasks_BadStartupLevel tests that an unparseable flag never reaches the service
func (suite *TaskHandlerTestSuite) TestListTasks_BadStartupLevel() {
	w := suite.httpSuite.MakeRequest(http.MethodGet, "/api/tasks?startup_level=sometimes", nil)
	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "startup_level")
}

// TestCreateTask tests the status mapping of create
func (suite *TaskHandlerTestSuite) TestCreateTask() {
	suite.Run("created", func() {
		suite.mockService.EXPECT().
			Create(gomock.Any(), &service.CreateTaskRequest{StartupID: "st_1", Title: "Send deck"}).
			Return(&models.Task{TaskID: "tsk_9", StartupID: "st_1", Title: "Send deck", Status: models.TaskStatusTodo}, nil)

		var task models.Task
		w := suite.httpSuite.MakeRequest(http.MethodPost, "/api/tasks", map[string]string{"startup_id": "st_1", "title": "Send deck"})
		testutils.AssertJSONResponse(suite.T(), w, http.StatusCreated, &task)
		suite.Equal("tsk_9", task.TaskID)
	})

	suite.Run("validation error", func() {
		suite.mockService.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil, apperrors.NewValidationError("title", "is required"))

		w := suite.httpSuite.MakeRequest(http.MethodPost, "/api/tasks", map[string]string{"startup_id": "st_1"})
		testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "title")
	})

	suite.Run("malformed body", func() {
		w := suite.httpSuite.MakeRequest(http.MethodPost, "/api/tasks", "invalid json")
		testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "invalid request body")
	})

	suite.Run("store failure", func() {
		suite.mockService.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("quota exceeded"))

		w := suite.httpSuite.MakeRequest(http.MethodPost, "/api/tasks", map[string]string{"startup_id": "st_1", "title": "x"})
		testutils.AssertErrorResponse(suite.T(), w, http.StatusInternalServerError, "quota exceeded")
	})
}

// TestUpdateTask_NotFound tests that an unknown task maps to 404
func (suite *TaskHandlerTestSuite) TestUpdateTask_NotFound() {
	suite.mockService.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.ErrTaskNotFound)

	w := suite.httpSuite.MakeRequest(http.MethodPut, "/api/tasks", map[string]string{"task_id": "tsk_x", "status": "done"})
	testutils.AssertErrorResponse(suite.T(), w, http.StatusNotFound, "task not found")
}

func TestTaskHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TaskHandlerTestSuite))
}
