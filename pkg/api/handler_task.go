package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/frankbria/codeframe/ent/task"
	"github.com/frankbria/codeframe/pkg/models"
	"github.com/frankbria/codeframe/pkg/services"
)

// CreateTask handles POST /api/v1/projects/:id/tasks. The project id
// comes from the path; a missing issue is created in the same
// transaction.
func (s *Server) CreateTask(c *gin.Context) {
	var req models.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.ProjectID = c.Param("id")
	t, err := s.tasks.CreateTaskWithIssue(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

// ListTasks handles GET /api/v1/projects/:id/tasks?status=.
func (s *Server) ListTasks(c *gin.Context) {
	var filter models.TaskFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	list, err := s.tasks.ListTasksByProject(c.Request.Context(), c.Param("id"), filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": list, "count": len(list)})
}

// GetTask handles GET /api/v1/projects/:id/tasks/:number.
func (s *Server) GetTask(c *gin.Context) {
	t, err := s.tasks.GetTaskByNumber(c.Request.Context(), c.Param("id"), c.Param("number"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

type updateTaskStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateTaskStatus handles POST /api/v1/projects/:id/tasks/:number/status.
func (s *Server) UpdateTaskStatus(c *gin.Context) {
	var req updateTaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	to := task.Status(req.Status)
	if err := task.StatusValidator(to); err != nil {
		respondServiceError(c, services.NewValidationError("status", err.Error()))
		return
	}

	t, err := s.tasks.GetTaskByNumber(c.Request.Context(), c.Param("id"), c.Param("number"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	updated, err := s.tasks.UpdateStatus(c.Request.Context(), t.ID, to)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}
