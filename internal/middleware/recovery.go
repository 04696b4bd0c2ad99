package middleware

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"runtime/debug"
	"time"
	"unicode/utf8"

	"orgchart/config"
	"orgchart/internal/core"
	"orgchart/internal/database/fluentd/model"
	"orgchart/internal/database/fluentd/repository"
	cErr "orgchart/internal/pkg/error"
	res "orgchart/internal/pkg/response"
	"orgchart/internal/telemetry"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Recovery struct {
	logger            *zap.Logger
	trace             *telemetry.Trace
	metric            *telemetry.Metric
	config            *config.Configuration
	fluentdRepository *repository.LogRepository
}

func NewRecovery(
	logger *zap.Logger,
	trace *telemetry.Trace,
	metric *telemetry.Metric,
	config *config.Configuration,
	fluentdRepository *repository.LogRepository,
) *Recovery {
	return &Recovery{
		logger:            logger,
		trace:             trace,
		metric:            metric,
		config:            config,
		fluentdRepository: fluentdRepository,
	}
}

// ErrorHandler 攔截 panic 與 c.Errors，統一輸出錯誤格式
func (middleware *Recovery) ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestTime := time.Now()
		if startTime, exists := c.Get("requestDuration"); exists {
			if t, ok := startTime.(time.Time); ok {
				requestTime = t
			}
		}
		requestUUID, err := uuid.NewV7()
		if err != nil {
			requestUUID = uuid.New()
		}
		requestID := requestUUID.String()

		// ---- panic recover 必須在 c.Next() 之前註冊 ----
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			duration := time.Since(requestTime)

			ctx, span, end := middleware.trace.WithSpan(c.Request.Context(), string(core.SpanRecoveryMiddleware))
			traceID := span.SpanContext().TraceID()
			spanID := span.SpanContext().SpanID()

			meta := core.TracePanicMeta{
				Path:       c.Request.URL.Path,
				Method:     c.Request.Method,
				ClientIP:   c.ClientIP(),
				UserAgent:  c.Request.UserAgent(),
				DurationMs: float64(duration.Milliseconds()),
				Message:    toSafeString(fmt.Sprint(rec)),
				Stack:      toSafeStack(debug.Stack()),
				Status:     http.StatusInternalServerError,
			}
			middleware.trace.ApplyTraceAttributes(span, meta)

			middleware.logger.Error("[PANIC] Recovered",
				zap.String("path", meta.Path),
				zap.String("method", meta.Method),
				zap.String("client_ip", meta.ClientIP),
				zap.String("user_agent", meta.UserAgent),
				zap.Duration("duration", duration),
				zap.String("panic", meta.Message),
				zap.String("stacktrace", meta.Stack),
				zap.String("requestId", requestID),
				zap.String("spanId", fmt.Sprintf("%x", spanID[:])),
				zap.String("traceId", fmt.Sprintf("%x", traceID[:])),
			)

			appErr := cErr.InternalServer("unexpected panic")
			end(appErr)
			// 尚未回寫才輸出
			if !c.Writer.Written() {
				res.FailByErr(c, requestID, appErr)
			}
			middleware.ship(ctx, requestID, cErr.INTERNAL_ERROR, http.StatusInternalServerError, meta.Message)
			middleware.metric.ObserveFail("panic")
			c.Abort()
		}()

		// 執行下游
		c.Next()

		// ---- 統一處理非 panic 的 gin errors（若尚未回寫）----
		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		duration := time.Since(requestTime)

		ctx, span, end := middleware.trace.WithSpan(c.Request.Context(), string(core.SpanRecoveryMiddleware))
		traceID := span.SpanContext().TraceID()
		spanID := span.SpanContext().SpanID()

		// 找第一個 *cErr.Error
		for _, e := range c.Errors {
			appErr, ok := e.Err.(*cErr.Error)
			if !ok {
				continue
			}
			middleware.trace.ApplyTraceAttributes(span, core.TraceErrorMeta{
				Code:       appErr.ErrorCode(),
				Message:    appErr.Error(),
				Detail:     appErr.ErrorDesc(),
				DurationMs: float64(duration.Milliseconds()),
				Status:     appErr.HttpCode(),
			})
			fields := []zap.Field{
				zap.Int("code", appErr.ErrorCode()),
				zap.String("data", appErr.ErrorDesc()),
				zap.Duration("duration", duration),
				zap.String("requestId", requestID),
				zap.String("spanId", fmt.Sprintf("%x", spanID[:])),
				zap.String("traceId", fmt.Sprintf("%x", traceID[:])),
			}
			// 5xx 要記下真正原因，回應只給通用訊息
			if appErr.HttpCode() >= http.StatusInternalServerError {
				if cause := appErr.Cause(); cause != nil {
					fields = append(fields, zap.NamedError("cause", cause))
				}
				middleware.logger.Error(appErr.Error(), fields...)
				end(appErr)
			} else {
				middleware.logger.Warn(appErr.Error(), fields...)
				end(nil)
			}

			res.FailByErr(c, requestID, appErr)
			middleware.ship(ctx, requestID, appErr.ErrorCode(), appErr.HttpCode(), appErr.Error())
			middleware.metric.ObserveFail(appErr.Error())
			c.Abort()
			return
		}

		// 其餘未知錯誤
		unknown := c.Errors.String()
		middleware.trace.ApplyTraceAttributes(span, core.TraceErrorMeta{
			Code:       cErr.INTERNAL_ERROR,
			Message:    "unknown-error",
			Detail:     toSafeString(unknown),
			DurationMs: float64(duration.Milliseconds()),
			Status:     http.StatusInternalServerError,
		})
		middleware.logger.Error("[ERROR] unknown",
			zap.String("error", unknown),
			zap.Duration("duration", duration),
			zap.String("requestId", requestID),
			zap.String("spanId", fmt.Sprintf("%x", spanID[:])),
			zap.String("traceId", fmt.Sprintf("%x", traceID[:])),
		)
		end(c.Errors.Last().Err)
		res.Fail(c, requestID, http.StatusInternalServerError, cErr.INTERNAL_ERROR, "unknown-error", "internal error")
		middleware.ship(ctx, requestID, cErr.INTERNAL_ERROR, http.StatusInternalServerError, toSafeString(unknown))
		middleware.metric.ObserveFail("unknown")
		c.Abort()
	}
}

// ship 錯誤回應送往 Fluentd
func (middleware *Recovery) ship(ctx context.Context, requestID string, code, status int, message string) {
	err := middleware.fluentdRepository.LogResponse(ctx, model.ResponseLog{
		RequestID:   requestID,
		ProjectName: middleware.config.App.Name,
		Code:        code,
		StatusCode:  status,
		Error:       message,
		ResponseTS:  time.Now().UTC().Format("2006-01-02 15:04:05.999999 UTC"),
		Version:     middleware.config.App.Version,
	})
	if err != nil {
		middleware.logger.Warn("fluentd response log failed", zap.Error(err))
	}
}

// ---- helpers ----

func toSafeString(s string) string {
	const max = 8000
	if utf8.ValidString(s) {
		if len(s) > max {
			return s[:max] + "…"
		}
		return s
	}
	b := []byte(s)
	if len(b) > max {
		b = b[:max]
	}
	return "b64:" + base64.StdEncoding.EncodeToString(b)
}

func toSafeStack(b []byte) string {
	const max = 16000
	if utf8.Valid(b) {
		if len(b) > max {
			return string(b[:max]) + "…"
		}
		return string(b)
	}
	if len(b) > max {
		b = b[:max]
	}
	return "b64:" + base64.StdEncoding.EncodeToString(b)
}
