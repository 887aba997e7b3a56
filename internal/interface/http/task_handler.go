package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	taskapp "github.com/taskhub/taskhub-api/internal/application"
	"github.com/taskhub/taskhub-api/internal/interface/middleware"
	"github.com/taskhub/taskhub-api/pkg/response"
	"github.com/taskhub/taskhub-api/pkg/validation"
)

type TaskHandler struct {
	Svc    *taskapp.TaskService
	Logger *logrus.Logger
}

func NewTaskHandler(svc *taskapp.TaskService, logger *logrus.Logger) *TaskHandler {
	return &TaskHandler{Svc: svc, Logger: logger}
}

type createTaskRequest struct {
	UserID string `json:"userId" binding:"required"`
	Task   any    `json:"task" binding:"required"`
}

type updateTaskRequest struct {
	TaskID string `json:"taskId" binding:"required"`
	Task   any    `json:"task" binding:"required"`
}

type taskIDRequest struct {
	TaskID string `json:"taskId" binding:"required"`
}

// Create handles POST /api/create-tasks/
func (h *TaskHandler) Create(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid data provided", validation.ToDetails(err))
		return
	}
	callerID := c.GetString(middleware.CtxUserIDKey)
	if err := h.Svc.Create(c.Request.Context(), callerID, req.UserID, req.Task); err != nil {
		if errors.Is(err, taskapp.ErrForbidden) {
			response.Message(c, http.StatusForbidden, "Cannot create tasks for another user")
			return
		}
		h.Logger.WithError(err).WithField("request_id", c.GetString("request_id")).Error("task insert failed")
		response.Message(c, http.StatusInternalServerError, "Failed to insert task")
		return
	}
	c.Status(http.StatusOK)
}

// Update handles PUT /api/update-task/
func (h *TaskHandler) Update(c *gin.Context) {
	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	callerID := c.GetString(middleware.CtxUserIDKey)
	h.respond(c, "Failed to update task",
		h.Svc.UpdatePayload(c.Request.Context(), callerID, req.TaskID, req.Task))
}

// Delete handles PUT /api/delete/ (soft delete)
func (h *TaskHandler) Delete(c *gin.Context) {
	var req taskIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	callerID := c.GetString(middleware.CtxUserIDKey)
	h.respond(c, "Failed to delete task",
		h.Svc.SoftDelete(c.Request.Context(), callerID, req.TaskID))
}

// Finish handles PUT /api/finish/
func (h *TaskHandler) Finish(c *gin.Context) {
	var req taskIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	callerID := c.GetString(middleware.CtxUserIDKey)
	h.respond(c, "Failed to finalize task",
		h.Svc.Finish(c.Request.Context(), callerID, req.TaskID))
}

// List handles GET /api/tasks?userId=
func (h *TaskHandler) List(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		response.Message(c, http.StatusBadRequest, "userId query parameter is required")
		return
	}
	callerID := c.GetString(middleware.CtxUserIDKey)
	tasks, err := h.Svc.List(c.Request.Context(), callerID, userID)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, tasks)
	case errors.Is(err, taskapp.ErrForbidden):
		response.Message(c, http.StatusForbidden, "Cannot list another user's tasks")
	case errors.Is(err, taskapp.ErrNoTasks):
		response.Message(c, http.StatusNotFound, "No tasks found")
	default:
		h.Logger.WithError(err).WithField("request_id", c.GetString("request_id")).Error("list tasks failed")
		response.Message(c, http.StatusInternalServerError, "Error getting user tasks")
	}
}

// respond maps task mutation outcomes onto the shared status contract.
func (h *TaskHandler) respond(c *gin.Context, failMsg string, err error) {
	switch {
	case err == nil:
		c.Status(http.StatusOK)
	case errors.Is(err, taskapp.ErrTaskNotFound):
		response.Message(c, http.StatusNotFound, "Task not found")
	case errors.Is(err, taskapp.ErrForbidden):
		response.Message(c, http.StatusForbidden, "Task owned by another user")
	default:
		h.Logger.WithError(err).WithField("request_id", c.GetString("request_id")).Error(failMsg)
		response.Message(c, http.StatusInternalServerError, failMsg)
	}
}
