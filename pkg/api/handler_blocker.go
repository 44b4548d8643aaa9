package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/frankbria/codeframe/pkg/models"
)

// ListBlockers handles GET /api/v1/projects/:id/blockers?state=&kind=.
func (s *Server) ListBlockers(c *gin.Context) {
	var filter models.BlockerFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	list, err := s.blockers.ListBlockersByProject(c.Request.Context(), c.Param("id"), filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"blockers": list, "count": len(list)})
}

// AnswerBlocker handles POST /api/v1/blockers/:id/answer. Answering an
// already-answered blocker returns the stored answer unchanged.
func (s *Server) AnswerBlocker(c *gin.Context) {
	var req models.AnswerBlockerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	b, err := s.blockers.AnswerBlocker(c.Request.Context(), c.Param("id"), req.Answer)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}
