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

var fixedNow = time.Date(2024, time.May, 1, 10, 0, 0, 0, time.UTC)

// TaskServiceTestSuite defines the test suite for TaskService
type TaskServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockRepo    *mocks.MockTaskRepositoryInterface
	taskService *service.TaskService
	ctx         context.Context
	now         time.Time
}

// SetupTest sets up the test suite
func (suite *TaskServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockTaskRepositoryInterface(suite.ctrl)
	suite.now = fixedNow
	suite.taskService = service.NewTaskService(suite.mockRepo, service.NewValidator(),
		service.WithClock(func() time.Time { return suite.now }))
	suite.ctx = context.Background()
}

// TearDownTest cleans up after each test
func (suite *TaskServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TaskServiceTestSuite) tasks() []models.Task {
	return []models.Task{
		{TaskID: "tsk_1", StartupID: "st_1", ProjectID: "prj_1", OwnerID: "tm_1", Status: models.TaskStatusTodo},
		{TaskID: "tsk_2", StartupID: "st_1", ProjectID: "", OwnerID: "tm_2", Status: models.TaskStatusDone},
		{TaskID: "tsk_3", StartupID: "st_2", ProjectID: "prj_9", OwnerID: "tm_1", Status: models.TaskStatusDoing},
	}
}

// TestListFilters tests each filter in isolation
func (suite *TaskServiceTestSuite) TestListFilters() {
	yes, no := true, false
	testCases := []struct {
		name   string
		filter service.TaskFilter
		want   []string
	}{
		{name: "No filter", filter: service.TaskFilter{}, want: []string{"tsk_1", "tsk_2", "tsk_3"}},
		{name: "By startup", filter: service.TaskFilter{StartupID: "st_1"}, want: []string{"tsk_1", "tsk_2"}},
		{name: "By project", filter: service.TaskFilter{ProjectID: "prj_9"}, want: []string{"tsk_3"}},
		{name: "By owner", filter: service.TaskFilter{OwnerID: "tm_1"}, want: []string{"tsk_1", "tsk_3"}},
		{name: "By status", filter: service.TaskFilter{Status: models.TaskStatusDone}, want: []string{"tsk_2"}},
		{name: "Startup-level only", filter: service.TaskFilter{StartupLevel: &yes}, want: []string{"tsk_2"}},
		{name: "Project tasks only", filter: service.TaskFilter{StartupID: "st_1", StartupLevel: &no}, want: []string{"tsk_1"}},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.mockRepo.EXPECT().List(gomock.Any()).Return(suite.tasks(), nil)

			tasks, err := suite.taskService.List(suite.ctx, tc.filter)
			suite.Require().NoError(err)

			ids := make([]string, 0, len(tasks))
			for _, t := range tasks {
				ids = append(ids, t.TaskID)
			}
			suite.Equal(tc.want, ids)
		})
	}
}

// TestCreateStampsTimestamps tests that created_at and updated_at are equal on create
func (suite *TaskServiceTestSuite) TestCreateStampsTimestamps() {
	suite.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	task, err := suite.taskService.Create(suite.ctx, &service.CreateTaskRequest{
		StartupID: "st_1",
		Title:     "Send deck",
		DueDate:   "2024-05-10",
	})

	suite.Require().NoError(err)
	suite.Equal("2024-05-01T10:00:00.000Z", task.CreatedAt)
	suite.Equal(task.CreatedAt, task.UpdatedAt)
	suite.True(task.IsStartupLevel())
}

// TestCreateValidation tests the request validation rules
func (suite *TaskServiceTestSuite) TestCreateValidation() {
	_, err := suite.taskService.Create(suite.ctx, &service.CreateTaskRequest{StartupID: "st_1"})
	suite.True(apperrors.IsValidation(err))
	suite.Contains(err.Error(), "title")

	_, err = suite.taskService.Create(suite.ctx, &service.CreateTaskRequest{Title: "x", DueDate: "10/05/2024"})
	suite.True(apperrors.IsValidation(err))
	suite.Contains(err.Error(), "due_date")

	_, err = suite.taskService.Create(suite.ctx, &service.CreateTaskRequest{Title: "x", Priority: "urgent"})
	suite.True(apperrors.IsValidation(err))
}

// TestUpdateRefreshesUpdatedAt tests the partial merge and the updated_at refresh
func (suite *TaskServiceTestSuite) TestUpdateRefreshesUpdatedAt() {
	stored := &models.Task{
		TaskID: "tsk_1", StartupID: "st_1", Title: "Old", Status: models.TaskStatusTodo,
		CreatedAt: "2024-04-01T00:00:00.000Z", UpdatedAt: "2024-04-01T00:00:00.000Z",
	}
	suite.mockRepo.EXPECT().GetByID(gomock.Any(), "tsk_1").Return(stored, nil)
	suite.mockRepo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, t *models.Task) error {
			suite.Equal(models.TaskStatusDone, t.Status)
			return nil
		})

	suite.now = fixedNow.Add(time.Hour)
	done := models.TaskStatusDone
	task, err := suite.taskService.Update(suite.ctx, &service.UpdateTaskRequest{TaskID: "tsk_1", Status: &done})

	suite.Require().NoError(err)
	suite.Equal("Old", task.Title)
	suite.Equal("2024-04-01T00:00:00.000Z", task.CreatedAt)
	suite.Equal("2024-05-01T11:00:00.000Z", task.UpdatedAt)
}

func TestTaskServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TaskServiceTestSuite))
}
