package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"orgchart/config"
	"orgchart/internal/database/client"
	fileRepo "orgchart/internal/database/file/repository"
	fluentdRepo "orgchart/internal/database/fluentd/repository"
	redisRepo "orgchart/internal/database/redis/repository"
	"orgchart/internal/handler"
	"orgchart/internal/middleware"
	"orgchart/internal/orgtree"
	cErr "orgchart/internal/pkg/error"
	"orgchart/internal/service"
	"orgchart/internal/telemetry"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testServer struct {
	engine *gin.Engine
	store  *fileRepo.TreeRepository
	health *service.HealthService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	conf := &config.Configuration{
		App:     config.App{Env: "test", Name: "organi-flow-api", Version: "1.0.0"},
		Storage: config.Storage{Driver: "file", FilePath: filepath.Join(t.TempDir(), "tree.json")},
	}
	logger := zap.NewNop()
	trace := telemetry.NewNoopTrace()
	metric := telemetry.NewMetric(conf)

	fluentdClient, fluentdCleanup, err := client.NewFluentdClient(logger, conf)
	require.NoError(t, err)
	t.Cleanup(fluentdCleanup)
	redisClient, redisCleanup, err := client.NewRedisClient(logger, conf)
	require.NoError(t, err)
	t.Cleanup(redisCleanup)

	logRepo := fluentdRepo.NewLogRepository(conf, fluentdClient)
	store := fileRepo.NewTreeRepository(logger, trace, conf.Storage.FilePath)
	hierarchy := service.NewHierarchyService(conf, logger, trace, metric, store, logRepo)
	health := service.NewHealthService(store)

	engine := NewRouter(
		conf,
		middleware.NewTraceEntry(trace, metric, conf),
		middleware.NewRecovery(logger, trace, metric, conf, logRepo),
		middleware.NewCors(trace),
		middleware.NewLogger(logger, trace, conf, logRepo),
		middleware.NewResponse(logger, trace, metric, conf, logRepo),
		NewEmployeeRouter(
			handler.NewEmployeeHandler(trace, hierarchy),
			handler.NewInfoHandler(hierarchy),
			middleware.NewRateLimit(logger, trace, metric, conf, redisRepo.NewRateLimiterRepository(trace, redisClient)),
		),
		NewHealthRouter(handler.NewHealthHandler(health)),
	)
	return &testServer{engine: engine, store: store, health: health}
}

// CEO(1) ─┬─ A(2) ── B(3)
//
//	└─ C(4)
func (s *testServer) seedCEO(t *testing.T) {
	t.Helper()
	leaf := func(id int64, name string, manager int64, children ...*orgtree.Node) *orgtree.Node {
		if children == nil {
			children = []*orgtree.Node{}
		}
		return &orgtree.Node{Name: name, Attributes: orgtree.Attributes{ID: id, Title: name, ManagerID: orgtree.Int64(manager)}, Children: children}
	}
	root := leaf(1, "CEO", 0, leaf(2, "A", 1, leaf(3, "B", 2)), leaf(4, "C", 1))
	require.NoError(t, s.store.Save(t.Context(), root))
}

func (s *testServer) do(method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	s.engine.ServeHTTP(w, req)
	var out map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	return w, out
}

func (s *testServer) tree(t *testing.T) *orgtree.Node {
	t.Helper()
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var root orgtree.Node
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &root))
	return &root
}

func childIDs(n *orgtree.Node) []int64 {
	ids := make([]int64, 0, len(n.Children))
	for _, c := range n.Children {
		ids = append(ids, c.ID())
	}
	return ids
}

func TestRouter_Info(t *testing.T) {
	s := newTestServer(t)

	w, body := s.do(http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "organi-flow-api", body["api"])
	assert.Equal(t, "1.0.0", body["version"])
	assert.Equal(t, "file", body["database"])
	assert.Regexp(t, `^\d{2}-\d{2}-\d{4}$`, body["date_created"])
}

func TestRouter_EmptyStoreReturnsRootStub(t *testing.T) {
	s := newTestServer(t)

	root := s.tree(t)
	assert.Equal(t, "Root", root.Name)
	assert.True(t, root.IsVirtual())
	assert.Empty(t, root.Children)
}

func TestRouter_UpdateManager(t *testing.T) {
	s := newTestServer(t)
	s.seedCEO(t)

	w, body := s.do(http.MethodPost, "/update-manager", `{"employee_id": 3, "new_manager_id": 4}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "success", body["status"])
	assert.EqualValues(t, 200, body["code"])
	assert.Equal(t, "Tree updated successfully", body["message"])

	root := s.tree(t)
	c, ok := orgtree.FindNode(root, 4)
	require.True(t, ok)
	assert.Equal(t, []int64{3}, childIDs(c))
	b, _ := orgtree.FindNode(root, 3)
	assert.Equal(t, int64(4), *b.Attributes.ManagerID)
}

func TestRouter_UpdateManagerAliasAndPosition(t *testing.T) {
	s := newTestServer(t)
	s.seedCEO(t)

	w, _ := s.do(http.MethodPost, "/update-employee-manager", `{"employee_id": 3, "new_manager_id": 1, "position": 0}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, []int64{3, 2, 4}, childIDs(s.tree(t)))
}

func TestRouter_UpdateManagerErrors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
		code   int
	}{
		{name: "cycle", body: `{"employee_id": 1, "new_manager_id": 3}`, status: http.StatusBadRequest, code: cErr.INVALID_OPERATION},
		{name: "self", body: `{"employee_id": 2, "new_manager_id": 2}`, status: http.StatusBadRequest, code: cErr.INVALID_OPERATION},
		{name: "unknown manager", body: `{"employee_id": 3, "new_manager_id": 999}`, status: http.StatusNotFound, code: cErr.NOT_FOUND},
		{name: "unknown employee", body: `{"employee_id": 999, "new_manager_id": 2}`, status: http.StatusNotFound, code: cErr.NOT_FOUND},
		{name: "missing employee id", body: `{"new_manager_id": 2}`, status: http.StatusBadRequest, code: cErr.BAD_REQUEST_BODY},
		{name: "wrong type", body: `{"employee_id": "three"}`, status: http.StatusBadRequest, code: cErr.BAD_REQUEST_BODY},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			s.seedCEO(t)
			before := s.tree(t)

			w, body := s.do(http.MethodPost, "/update-manager", tt.body)
			assert.Equal(t, tt.status, w.Code)
			assert.EqualValues(t, tt.code, body["code"])
			assert.NotEmpty(t, body["detail"])
			assert.Equal(t, before, s.tree(t), "failed requests must not change the tree")
		})
	}
}

func TestRouter_MissingEmployeeIDMessage(t *testing.T) {
	s := newTestServer(t)

	_, body := s.do(http.MethodPost, "/update-manager", `{}`)
	assert.Equal(t, "employee_id is required", body["detail"])
	assert.Equal(t, "validation-error", body["message"])
}

func TestRouter_SubordinatesView(t *testing.T) {
	s := newTestServer(t)
	s.seedCEO(t)

	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees?view=subordinates", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var list []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.EqualValues(t, 1, list[0]["id"])
	subordinates, ok := list[0]["subordinates"].([]any)
	require.True(t, ok)
	assert.Len(t, subordinates, 2)

	w2, body := s.do(http.MethodGet, "/employees?view=flat", "")
	assert.Equal(t, http.StatusBadRequest, w2.Code)
	assert.EqualValues(t, cErr.BAD_REQUEST_PARAMS, body["code"])
}

func TestRouter_ReplaceTree(t *testing.T) {
	s := newTestServer(t)
	s.seedCEO(t)

	w, _ := s.do(http.MethodPut, "/employees",
		`{"name":"Ada","attributes":{"id":10,"title":"CEO","manager_id":0},"children":[{"name":"Bob","attributes":{"id":11,"title":"CTO","manager_id":null}}]}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	root := s.tree(t)
	assert.Equal(t, int64(10), root.ID())
	require.Len(t, root.Children, 1)
	assert.Equal(t, int64(10), *root.Children[0].Attributes.ManagerID)
	assert.NotNil(t, root.Children[0].Children)

	w, body := s.do(http.MethodPut, "/employees",
		`{"name":"Ada","attributes":{"id":10},"children":[{"name":"Ada again","attributes":{"id":10}}]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.EqualValues(t, cErr.BAD_REQUEST_BODY, body["code"])

	w, body = s.do(http.MethodPut, "/employees", `{"name":"Ada","attributes":{"id":10},"children":[null]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.EqualValues(t, cErr.BAD_REQUEST_BODY, body["code"])
	assert.Equal(t, int64(10), s.tree(t).ID(), "rejected body must not replace the tree")
}

func TestRouter_BatchAndSwap(t *testing.T) {
	s := newTestServer(t)
	s.seedCEO(t)

	w, body := s.do(http.MethodPost, "/employees/batch",
		`{"employees":[{"id":5,"name":"D","title":"Designer","manager_id":4},{"id":2,"name":"A2","title":"VP","manager_id":1}]}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.EqualValues(t, 2, body["updated"])

	w, body = s.do(http.MethodPost, "/employees/batch", `{"employees":[]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "employees must not be empty", body["detail"])

	w, _ = s.do(http.MethodPost, "/swap-positions", `{"employee1_id": 3, "employee2_id": 5}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	root := s.tree(t)
	a, _ := orgtree.FindNode(root, 2)
	c, _ := orgtree.FindNode(root, 4)
	assert.Equal(t, "A2", a.Name)
	assert.Equal(t, []int64{5}, childIDs(a))
	assert.Equal(t, []int64{3}, childIDs(c))

	w, body = s.do(http.MethodPost, "/swap-positions", `{"employee1_id": 2, "employee2_id": 5}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.EqualValues(t, cErr.INVALID_OPERATION, body["code"])
}

func TestRouter_Health(t *testing.T) {
	s := newTestServer(t)

	w, body := s.do(http.MethodGet, "/health-check", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "service is alive", body["message"])

	w, body = s.do(http.MethodGet, "/health/readiness", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "service is starting", body["reason"])

	s.health.SetReady(true)
	w, body = s.do(http.MethodGet, "/health/readiness", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ready", body["status"])
	assert.Equal(t, "file", body["storage"])

	w, _ = s.do(http.MethodHead, "/health/liveness", "")
	assert.Equal(t, http.StatusOK, w.Code)
}
