// Package http provides HTTP handlers for task operations. Every handler
// resolves the caller from the request context; the task id in the URL is
// never trusted on its own.
package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "taskhub/internal/errors"
	"taskhub/internal/httputil"
	"taskhub/internal/identity"
	taskDomain "taskhub/internal/task/domain"
	"taskhub/internal/task/http/dto"
	taskUseCase "taskhub/internal/task/usecase"
)

// TaskHandler handles HTTP requests for task CRUD operations.
type TaskHandler struct {
	taskUseCase taskUseCase.UseCase
	logger      *slog.Logger
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskUseCase taskUseCase.UseCase, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{
		taskUseCase: taskUseCase,
		logger:      logger,
	}
}

// caller resolves the authenticated identity, writing a 401 when absent.
func (h *TaskHandler) caller(c *gin.Context) (*identity.Identity, bool) {
	ident, ok := identity.FromContext(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return nil, false
	}
	return ident, true
}

// taskID parses the :id path parameter. A non-numeric id cannot match any
// task, so it reports not-found rather than bad-request.
func (h *TaskHandler) taskID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httputil.HandleErrorGin(c, taskDomain.ErrTaskNotFound, h.logger)
		return 0, false
	}
	return id, true
}

// CreateHandler creates a new task owned by the caller.
// POST /tasks - Requires authentication via identity.AuthRequired.
func (h *TaskHandler) CreateHandler(c *gin.Context) {
	ident, ok := h.caller(c)
	if !ok {
		return
	}

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	task, err := h.taskUseCase.Create(c.Request.Context(), ident.UserID, dto.ToCreateTaskInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskResponse(task))
}

// ListHandler returns a page of the caller's tasks.
// GET /tasks?offset=&limit= - Requires authentication via identity.AuthRequired.
func (h *TaskHandler) ListHandler(c *gin.Context) {
	ident, ok := h.caller(c)
	if !ok {
		return
	}

	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	tasks, err := h.taskUseCase.List(c.Request.Context(), ident.UserID, offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskListResponse(tasks, offset, limit))
}

// GetHandler returns one of the caller's tasks.
// GET /tasks/:id - Requires authentication via identity.AuthRequired.
func (h *TaskHandler) GetHandler(c *gin.Context) {
	ident, ok := h.caller(c)
	if !ok {
		return
	}

	id, ok := h.taskID(c)
	if !ok {
		return
	}

	task, err := h.taskUseCase.Get(c.Request.Context(), ident.UserID, id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskResponse(task))
}

// UpdateHandler replaces the provided fields of one of the caller's tasks.
// PUT /tasks/:id - Requires authentication via identity.AuthRequired.
func (h *TaskHandler) UpdateHandler(c *gin.Context) {
	ident, ok := h.caller(c)
	if !ok {
		return
	}

	id, ok := h.taskID(c)
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	task, err := h.taskUseCase.Update(c.Request.Context(), ident.UserID, id, dto.ToUpdateTaskInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskResponse(task))
}

// DeleteHandler removes one of the caller's tasks.
// DELETE /tasks/:id - Requires authentication via identity.AuthRequired.
func (h *TaskHandler) DeleteHandler(c *gin.Context) {
	ident, ok := h.caller(c)
	if !ok {
		return
	}

	id, ok := h.taskID(c)
	if !ok {
		return
	}

	if err := h.taskUseCase.Delete(c.Request.Context(), ident.UserID, id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}
