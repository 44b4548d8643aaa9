// Package api exposes the coordination engine over HTTP with gin. It
// is a thin layer over the service packages; the supervisor and CLI
// never depend on it.
package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/frankbria/codeframe/pkg/database"
	"github.com/frankbria/codeframe/pkg/services"
)

// Server holds the handler dependencies.
type Server struct {
	db       *database.Client
	projects *services.ProjectService
	tasks    *services.TaskService
	blockers *services.BlockerService
	memories *services.MemoryService
	usage    *services.MetricsService

	metricsHandler http.Handler
	logger         *slog.Logger
}

// NewServer wires the HTTP surface over the service layer. The
// metricsHandler serves GET /metrics and may be nil when the exporter
// is disabled.
func NewServer(db *database.Client, metricsHandler http.Handler) *Server {
	return &Server{
		db:             db,
		projects:       services.NewProjectService(db.Client),
		tasks:          services.NewTaskService(db.Client),
		blockers:       services.NewBlockerService(db.Client),
		memories:       services.NewMemoryService(db.Client),
		usage:          services.NewMetricsService(db.Client),
		metricsHandler: metricsHandler,
		logger:         slog.Default().With(slog.String("component", "api")),
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger(), securityHeaders())

	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", s.Health)

		v1.GET("/projects", s.ListProjects)
		v1.POST("/projects", s.CreateProject)
		v1.GET("/projects/:id", s.GetProject)
		v1.POST("/projects/:id/phase", s.TransitionPhase)

		v1.GET("/projects/:id/tasks", s.ListTasks)
		v1.POST("/projects/:id/tasks", s.CreateTask)
		v1.GET("/projects/:id/tasks/:number", s.GetTask)
		v1.POST("/projects/:id/tasks/:number/status", s.UpdateTaskStatus)

		v1.GET("/projects/:id/blockers", s.ListBlockers)
		v1.POST("/blockers/:id/answer", s.AnswerBlocker)

		v1.GET("/projects/:id/memories", s.ListMemories)
		v1.PUT("/projects/:id/memories", s.UpsertMemory)

		v1.GET("/projects/:id/usage", s.ProjectUsage)
	}

	if s.metricsHandler != nil {
		r.GET("/metrics", gin.WrapH(s.metricsHandler))
	}
	return r
}
