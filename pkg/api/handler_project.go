package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/frankbria/codeframe/ent/project"
	"github.com/frankbria/codeframe/pkg/models"
)

// CreateProject handles POST /api/v1/projects.
func (s *Server) CreateProject(c *gin.Context) {
	var req models.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p, err := s.projects.CreateProject(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// ListProjects handles GET /api/v1/projects.
func (s *Server) ListProjects(c *gin.Context) {
	list, err := s.projects.ListProjects(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": list, "count": len(list)})
}

// GetProject handles GET /api/v1/projects/:id.
func (s *Server) GetProject(c *gin.Context) {
	p, err := s.projects.GetProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

type transitionPhaseRequest struct {
	Phase string `json:"phase" binding:"required"`
}

// TransitionPhase handles POST /api/v1/projects/:id/phase.
func (s *Server) TransitionPhase(c *gin.Context) {
	var req transitionPhaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p, err := s.projects.TransitionPhase(c.Request.Context(), c.Param("id"), project.Phase(req.Phase))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}
