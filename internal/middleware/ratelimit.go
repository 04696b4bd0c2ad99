package middleware

import (
	"errors"
	"strconv"

	"orgchart/config"
	"orgchart/internal/core"
	"orgchart/internal/database/redis/repository"
	cErr "orgchart/internal/pkg/error"
	"orgchart/internal/pkg/response"
	"orgchart/internal/telemetry"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RateLimit struct {
	logger                *zap.Logger
	trace                 *telemetry.Trace
	metric                *telemetry.Metric
	config                *config.Configuration
	rateLimiterRepository *repository.RateLimiterRepository
}

func NewRateLimit(
	logger *zap.Logger,
	trace *telemetry.Trace,
	metric *telemetry.Metric,
	config *config.Configuration,
	rateLimiterRepository *repository.RateLimiterRepository,
) *RateLimit {
	return &RateLimit{
		logger:                logger,
		trace:                 trace,
		metric:                metric,
		config:                config,
		rateLimiterRepository: rateLimiterRepository,
	}
}

// Guard 依 client IP 限制寫入類端點的請求數；未啟用或 Redis 不可用時直接放行。
// 設定於每次請求時讀取，熱重載後立即生效
func (middleware *RateLimit) Guard() gin.HandlerFunc {
	return func(c *gin.Context) {
		settings := middleware.config.RateLimit
		limit, window := settings.Limit, settings.WindowSec
		if !settings.Enabled || !middleware.rateLimiterRepository.Enabled() || limit <= 0 || window <= 0 {
			c.Next()
			return
		}
		ctx, span, end := middleware.trace.WithSpan(c.Request.Context(), string(core.SpanRateLimitMiddleware))

		clientIP := c.ClientIP()
		remaining, ttlSec, err := middleware.rateLimiterRepository.Consume(ctx, clientIP, window, limit)
		blocked := errors.Is(err, repository.ErrRateLimitExceeded)
		if err != nil && !blocked {
			// Redis 錯誤不阻斷主流程
			middleware.logger.Warn("rate limiter unavailable", zap.Error(err))
			end(nil)
			c.Next()
			return
		}

		// 寫入回應標頭，方便呼叫端與排錯
		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		if ttlSec > 0 {
			c.Header("X-RateLimit-Reset", strconv.FormatInt(ttlSec, 10))
		}

		middleware.trace.ApplyTraceAttributes(span, core.TraceRateLimitMiddlewareMeta{
			ClientIP:    clientIP,
			ConfigLimit: limit,
			Remaining:   remaining,
			TTLSeconds:  ttlSec,
			Blocked:     blocked,
		})

		if blocked {
			if ttlSec > 0 {
				c.Header("Retry-After", strconv.FormatInt(ttlSec, 10))
			}
			appErr := cErr.RateLimitExceeded("rate limit exceeded")
			middleware.metric.ObserveRateLimited(c.FullPath())
			end(appErr)
			response.AbortWithError(c, appErr)
			return
		}
		end(nil)
		c.Next()
	}
}
