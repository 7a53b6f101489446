package handlers

import (
	"net/http"
	"strconv"

	"dealflow-backend/internal/database/models"
	"dealflow-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TaskHandler handles HTTP requests for tasks
type TaskHandler struct {
	taskService service.TaskServiceInterface
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(taskService service.TaskServiceInterface) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// ListTasks handles GET /tasks
// @Summary List tasks
// @Tags tasks
// @Produce json
// @Param startup_id query string false "Only tasks of this startup"
// @Param project_id query string false "Only tasks of this project"
// @Param owner_id query string false "Only tasks owned by this team member"
// @Param status query string false "Only tasks in this status" Enums(todo, doing, done)
// @Param startup_level query bool false "true: only tasks without a project; false: only project tasks"
// @Success 200 {array} models.Task
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /tasks [get]
func (h *TaskHandler) ListTasks(c *gin.Context) {
	filter := service.TaskFilter{
		StartupID: c.Query("startup_id"),
		ProjectID: c.Query("project_id"),
		OwnerID:   c.Query("owner_id"),
		Status:    models.TaskStatus(c.Query("status")),
	}
	if raw := c.Query("startup_level"); raw != "" {
		level, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "startup_level must be true or false"})
			return
		}
		filter.StartupLevel = &level
	}

	tasks, err := h.taskService.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// CreateTask handles POST /tasks
// @Summary Create a task
// @Description Omit project_id for a startup-level task
// @Tags tasks
// @Accept json
// @Produce json
// @Param task body service.CreateTaskRequest true "Task"
// @Success 201 {object} models.Task
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /tasks [post]
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req service.CreateTaskRequest
	if !bindJSON(c, &req) {
		return
	}

	task, err := h.taskService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

// UpdateTask handles PUT /tasks
// @Summary Update a task
// @Description Partial update keyed by task_id; updated_at is refreshed
// @Tags tasks
// @Accept json
// @Produce json
// @Param task body service.UpdateTaskRequest true "Fields to change"
// @Success 200 {object} models.Task
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /tasks [put]
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	var req service.UpdateTaskRequest
	if !bindJSON(c, &req) {
		return
	}

	task, err := h.taskService.Update(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}
