package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankbria/codeframe/pkg/metrics"
	testdb "github.com/frankbria/codeframe/test/database"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	db := testdb.NewTestClient(t)
	exporter := metrics.NewExporter(metrics.Config{})
	return NewServer(db, exporter.Handler()).Router()
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestHealthEndpoint(t *testing.T) {
	router := setupRouter(t)
	rec := doJSON(t, router, http.MethodGet, "/api/v1/health", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
}

func TestProjectLifecycle(t *testing.T) {
	router := setupRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/projects", map[string]any{
		"project_id": "proj-api",
		"name":       "API Test Project",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	t.Run("duplicate id conflicts", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/projects", map[string]any{
			"project_id": "proj-api",
			"name":       "API Test Project",
		})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("get and list", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/v1/projects/proj-api", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "discovery", decode(t, rec)["phase"])

		rec = doJSON(t, router, http.MethodGet, "/api/v1/projects", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, float64(1), decode(t, rec)["count"])
	})

	t.Run("phase transitions", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/projects/proj-api/phase",
			map[string]any{"phase": "planning"})
		require.Equal(t, http.StatusOK, rec.Code)

		rec = doJSON(t, router, http.MethodPost, "/api/v1/projects/proj-api/phase",
			map[string]any{"phase": "complete"})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("unknown project is 404", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/v1/projects/nope", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestTaskEndpoints(t *testing.T) {
	router := setupRouter(t)
	rec := doJSON(t, router, http.MethodPost, "/api/v1/projects", map[string]any{
		"project_id": "proj-t", "name": "Tasks",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/projects/proj-t/tasks", map[string]any{
		"issue_number": "1",
		"task_number":  "1.1",
		"title":        "Implement config loader",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/projects/proj-t/tasks", map[string]any{
		"issue_number": "1",
		"task_number":  "1.2",
		"title":        "Implement server",
		"depends_on":   "1.1",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	t.Run("list with status filter", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/v1/projects/proj-t/tasks?status=pending", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, float64(2), decode(t, rec)["count"])

		rec = doJSON(t, router, http.MethodGet, "/api/v1/projects/proj-t/tasks?status=bogus", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("get by number", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/v1/projects/proj-t/tasks/1.2", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "1.1", decode(t, rec)["depends_on"])
	})

	t.Run("status machine over HTTP", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/projects/proj-t/tasks/1.1/status",
			map[string]any{"status": "ready"})
		require.Equal(t, http.StatusOK, rec.Code)

		rec = doJSON(t, router, http.MethodPost, "/api/v1/projects/proj-t/tasks/1.1/status",
			map[string]any{"status": "completed"})
		assert.Equal(t, http.StatusConflict, rec.Code)

		rec = doJSON(t, router, http.MethodPost, "/api/v1/projects/proj-t/tasks/1.1/status",
			map[string]any{"status": "sideways"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestBlockerEndpoints(t *testing.T) {
	router := setupRouter(t)
	rec := doJSON(t, router, http.MethodPost, "/api/v1/projects", map[string]any{
		"project_id": "proj-b", "name": "Blockers",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/projects/proj-b/blockers?state=pending", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(0), decode(t, rec)["count"])

	t.Run("answer unknown blocker is 404", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/blockers/missing/answer",
			map[string]any{"answer": "proceed"})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestMemoryAndUsageEndpoints(t *testing.T) {
	router := setupRouter(t)
	rec := doJSON(t, router, http.MethodPost, "/api/v1/projects", map[string]any{
		"project_id": "proj-mu", "name": "Memories",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	for i := 0; i < 2; i++ {
		rec = doJSON(t, router, http.MethodPut, "/api/v1/projects/proj-mu/memories", map[string]any{
			"category": "hot",
			"key":      "stack",
			"content":  fmt.Sprintf("revision %d", i),
		})
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec = doJSON(t, router, http.MethodGet, "/api/v1/projects/proj-mu/memories?category=hot", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), decode(t, rec)["count"])

	rec = doJSON(t, router, http.MethodGet, "/api/v1/projects/proj-mu/memories?category=tepid", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/projects/proj-mu/usage", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(0), decode(t, rec)["calls"])
}

func TestMetricsEndpoint(t *testing.T) {
	router := setupRouter(t)
	rec := doJSON(t, router, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}
