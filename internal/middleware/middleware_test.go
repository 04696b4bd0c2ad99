package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"orgchart/config"
	"orgchart/internal/database/client"
	fluentdRepo "orgchart/internal/database/fluentd/repository"
	redisRepo "orgchart/internal/database/redis/repository"
	cErr "orgchart/internal/pkg/error"
	"orgchart/internal/pkg/response"
	"orgchart/internal/telemetry"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newEngine(t *testing.T, conf *config.Configuration) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := zap.NewNop()
	trace := telemetry.NewNoopTrace()
	metric := telemetry.NewMetric(conf)
	fluentdClient, cleanup, err := client.NewFluentdClient(logger, conf)
	require.NoError(t, err)
	t.Cleanup(cleanup)
	logRepo := fluentdRepo.NewLogRepository(conf, fluentdClient)

	redisClient, redisCleanup, err := client.NewRedisClient(logger, conf)
	require.NoError(t, err)
	t.Cleanup(redisCleanup)

	r := gin.New()
	r.Use(
		NewTraceEntry(trace, metric, conf).Handler(),
		NewRecovery(logger, trace, metric, conf, logRepo).ErrorHandler(),
		NewLogger(logger, trace, conf, logRepo).LoggerHandler(),
		NewCors(trace).CorsHandler(),
		NewResponse(logger, trace, metric, conf, logRepo).FormatHandler(),
	)
	limiter := NewRateLimit(logger, trace, metric, conf, redisRepo.NewRateLimiterRepository(trace, redisClient))

	r.GET("/ok", func(c *gin.Context) { response.Success(c, "done") })
	r.GET("/raw", func(c *gin.Context) { response.Data(c, map[string]int{"id": 1}) })
	r.GET("/missing", func(c *gin.Context) { response.AbortWithError(c, cErr.NotFound("employee 9 not found")) })
	r.GET("/storage", func(c *gin.Context) {
		response.AbortWithError(c, cErr.StorageError(errors.New("permission denied: /data/tree.json")))
	})
	r.GET("/plain", func(c *gin.Context) { response.AbortWithError(c, errors.New("boom")) })
	r.GET("/panic", func(c *gin.Context) { panic("kaboom") })
	r.POST("/limited", limiter.Guard(), func(c *gin.Context) { response.Success(c, "limited ok") })
	return r
}

func do(r http.Handler, method, path string) (*httptest.ResponseRecorder, map[string]any) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(""))
	r.ServeHTTP(w, req)
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestResponse_SuccessEnvelope(t *testing.T) {
	r := newEngine(t, &config.Configuration{})

	w, body := do(r, http.MethodGet, "/ok")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "success", body["status"])
	assert.EqualValues(t, 200, body["code"])
	assert.Equal(t, "done", body["message"])
}

func TestResponse_RawData(t *testing.T) {
	r := newEngine(t, &config.Configuration{})

	w, body := do(r, http.MethodGet, "/raw")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]any{"id": float64(1)}, body)
}

func TestRecovery_AppError(t *testing.T) {
	r := newEngine(t, &config.Configuration{})

	w, body := do(r, http.MethodGet, "/missing")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.EqualValues(t, cErr.NOT_FOUND, body["code"])
	assert.Equal(t, "employee 9 not found", body["detail"])
	assert.NotEmpty(t, body["requestID"])
}

func TestRecovery_StorageErrorHidesCause(t *testing.T) {
	r := newEngine(t, &config.Configuration{})

	w, body := do(r, http.MethodGet, "/storage")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.EqualValues(t, cErr.STORAGE_ERROR, body["code"])
	assert.Equal(t, "storage unavailable", body["detail"])
	assert.NotContains(t, w.Body.String(), "permission denied")
}

func TestRecovery_UnknownErrorAndPanic(t *testing.T) {
	r := newEngine(t, &config.Configuration{})

	w, body := do(r, http.MethodGet, "/plain")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.EqualValues(t, cErr.INTERNAL_ERROR, body["code"])

	w, body = do(r, http.MethodGet, "/panic")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.EqualValues(t, cErr.INTERNAL_ERROR, body["code"])
}

func TestResponse_UnknownRoute(t *testing.T) {
	r := newEngine(t, &config.Configuration{})

	w, body := do(r, http.MethodGet, "/nope")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.EqualValues(t, cErr.NOT_FOUND, body["code"])
}

func TestRateLimit_PassThroughWithoutRedis(t *testing.T) {
	conf := &config.Configuration{RateLimit: config.RateLimit{Enabled: true, Limit: 1, WindowSec: 60}}
	r := newEngine(t, conf)

	for i := 0; i < 3; i++ {
		w, body := do(r, http.MethodPost, "/limited")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "limited ok", body["message"])
	}
}

func TestRateLimit_ReadsConfigPerRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	conf := &config.Configuration{RateLimit: config.RateLimit{Enabled: true, Limit: 0, WindowSec: 60}}
	observed, logs := observer.New(zapcore.WarnLevel)
	// 連不到的 Redis：真的去 Consume 時會留下警告並放行
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 100 * time.Millisecond, MaxRetries: -1})
	t.Cleanup(func() { _ = rdb.Close() })
	trace := telemetry.NewNoopTrace()
	limiter := NewRateLimit(zap.New(observed), trace, telemetry.NewMetric(conf), conf,
		redisRepo.NewRateLimiterRepository(trace, client.NewRedisClientFrom(zap.NewNop(), rdb)))

	r := gin.New()
	r.POST("/limited", limiter.Guard(), func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	w, _ := do(r, http.MethodPost, "/limited")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Zero(t, logs.FilterMessage("rate limiter unavailable").Len())

	// 模擬熱重載：同一個 handler 要看到新的 limit
	conf.RateLimit.Limit = 5
	w, _ = do(r, http.MethodPost, "/limited")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, logs.FilterMessage("rate limiter unavailable").Len())

	conf.RateLimit.Enabled = false
	w, _ = do(r, http.MethodPost, "/limited")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, logs.FilterMessage("rate limiter unavailable").Len())
}

func TestSkipInstrumentation(t *testing.T) {
	assert.True(t, skipInstrumentation("/metrics"))
	assert.True(t, skipInstrumentation("/health/readiness"))
	assert.True(t, skipInstrumentation("/debug/pprof/heap"))
	assert.False(t, skipInstrumentation("/employees"))
	assert.False(t, skipInstrumentation(""))
}
