package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/frankbria/codeframe/ent/memory"
	"github.com/frankbria/codeframe/pkg/models"
	"github.com/frankbria/codeframe/pkg/services"
)

// UpsertMemory handles PUT /api/v1/projects/:id/memories.
func (s *Server) UpsertMemory(c *gin.Context) {
	var req models.UpsertMemoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.ProjectID = c.Param("id")
	m, err := s.memories.UpsertMemory(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// ListMemories handles GET /api/v1/projects/:id/memories?category=.
func (s *Server) ListMemories(c *gin.Context) {
	cat := memory.Category(c.Query("category"))
	if err := memory.CategoryValidator(cat); err != nil {
		respondServiceError(c, services.NewValidationError("category", err.Error()))
		return
	}
	list, err := s.memories.GetByCategory(c.Request.Context(), c.Param("id"), cat)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"memories": list, "count": len(list)})
}

// ProjectUsage handles GET /api/v1/projects/:id/usage.
func (s *Server) ProjectUsage(c *gin.Context) {
	totals, err := s.usage.ProjectTotals(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, totals)
}
