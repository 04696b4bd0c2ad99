package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"orgchart/config"
	"orgchart/internal/core"
	"orgchart/internal/database/fluentd/model"
	"orgchart/internal/database/fluentd/repository"
	cErr "orgchart/internal/pkg/error"
	"orgchart/internal/pkg/response"
	"orgchart/internal/telemetry"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Response struct {
	logger            *zap.Logger
	trace             *telemetry.Trace
	metric            *telemetry.Metric
	config            *config.Configuration
	fluentdRepository *repository.LogRepository
}

func NewResponse(
	logger *zap.Logger,
	trace *telemetry.Trace,
	metric *telemetry.Metric,
	config *config.Configuration,
	fluentdRepository *repository.LogRepository,
) *Response {
	return &Response{
		logger:            logger,
		trace:             trace,
		metric:            metric,
		config:            config,
		fluentdRepository: fluentdRepository,
	}
}

// FormatHandler 把 handler 設定的 message/data 封裝成統一回應
func (middleware *Response) FormatHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		endpoint := c.FullPath()
		if skipInstrumentation(endpoint) {
			c.Next()
			return
		}

		requestTime := time.Now()
		if startTime, exists := c.Get("requestDuration"); exists {
			if t, ok := startTime.(time.Time); ok {
				requestTime = t
			}
		} else {
			c.Set("requestDuration", requestTime)
		}

		// 執行下游
		c.Next()

		skipWrap := false
		if raw, ok := c.Get(response.ContextKeyRaw); ok {
			if b, _ := raw.(bool); b {
				skipWrap = true
			}
		}
		// 若已經有錯誤交由 Recovery 處理，或已經寫出回應，就不要再動了
		if len(c.Errors) > 0 || c.Writer.Written() {
			return
		}

		// 以「下游結束後」的狀態碼為準
		statusCode := c.Writer.Status()

		// 未命中路由等情況：轉為應用錯誤交給 Recovery 統一輸出
		if statusCode >= http.StatusBadRequest {
			response.AbortWithError(c, cErr.MapHttpStatusToError(statusCode, "request error"))
			return
		}

		ctx, span, end := middleware.trace.WithSpan(c.Request.Context(), string(core.SpanResponseMiddleware))
		defer end(nil)

		msg, _ := c.Get(response.ContextKeyMessage)
		message := "Request Success"
		if s, ok := msg.(string); ok && s != "" {
			message = s
		}

		var body any = response.Response{
			Status:  "success",
			Code:    statusCode,
			Message: message,
		}
		if skipWrap {
			body, _ = c.Get(response.ContextKeyData)
		}

		duration := time.Since(requestTime)
		traceID := span.SpanContext().TraceID()
		spanID := span.SpanContext().SpanID()

		middleware.trace.ApplyTraceAttributes(span, core.TraceResponseMeta{
			Path:       c.Request.URL.Path,
			Method:     c.Request.Method,
			Status:     statusCode,
			Message:    message,
			Code:       statusCode,
			DurationMs: float64(duration.Milliseconds()),
			Data:       safePreviewJSON(body, 2000),
		})

		middleware.logger.Info("[Response] "+message,
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
			zap.Int("status", statusCode),
			zap.Duration("duration", duration),
			zap.String("spanId", fmt.Sprintf("%x", spanID[:])),
			zap.String("traceId", fmt.Sprintf("%x", traceID[:])),
		)

		jsonBytes, err := json.Marshal(body)
		if err != nil {
			// Marshal 失敗視為 500，交給 Recovery 處理
			response.AbortWithError(c, cErr.InternalServer("marshal response failed"))
			return
		}

		// fluentd
		if err := middleware.fluentdRepository.LogResponse(ctx, model.ResponseLog{
			RequestID:   fmt.Sprintf("%x", traceID[:]),
			ProjectName: middleware.config.App.Name,
			Code:        statusCode,
			StatusCode:  statusCode,
			Body:        toSafePreview(jsonBytes, 2000),
			ResponseTS:  time.Now().UTC().Format("2006-01-02 15:04:05.999999 UTC"),
			Version:     middleware.config.App.Version,
		}); err != nil {
			middleware.logger.Warn("fluentd response log failed", zap.Error(err))
		}
		middleware.metric.ObserveSuccess(endpoint, statusCode)

		c.Writer.Header().Set("Content-Type", "application/json; charset=utf-8")
		c.Writer.WriteHeader(statusCode)
		if _, werr := c.Writer.Write(jsonBytes); werr != nil {
			middleware.logger.Warn("write response failed", zap.Error(werr))
		}
	}
}

// safePreviewJSON 會把資料序列化為 JSON 字串（UTF-8），並限制長度。
func safePreviewJSON(data any, max int) string {
	b, err := json.Marshal(data)
	if err != nil {
		return fmt.Sprintf("[marshal error: %v]", err)
	}
	out := string(b)
	if len(out) > max {
		return out[:max] + "…"
	}
	return out
}
