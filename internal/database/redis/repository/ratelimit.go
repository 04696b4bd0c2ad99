package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"orgchart/internal/core"
	client "orgchart/internal/database/client"
	"orgchart/internal/telemetry"

	"github.com/redis/go-redis/v9"
)

type RateLimiterRepository struct {
	trace  *telemetry.Trace
	client *redis.Client
}

func NewRateLimiterRepository(trace *telemetry.Trace, client *client.RedisClient) *RateLimiterRepository {
	return &RateLimiterRepository{trace: trace, client: client.Client()}
}

var (
	ErrRateLimitExceeded = errors.New("rate limit exceeded")
	ErrRedisDisabled     = errors.New("redis disabled")
)

// Enabled Redis 未啟用時 middleware 直接放行
func (repository *RateLimiterRepository) Enabled() bool {
	return repository.client != nil
}

// Consume 消耗一次配額；自動處理新週期初始化與剩餘 TTL。
// 回傳：remaining（剩餘次數）、ttlSec（剩餘秒數）、err（若超限為 ErrRateLimitExceeded）
func (repository *RateLimiterRepository) Consume(
	contextValue context.Context,
	clientKey string,
	windowSeconds int64,
	limitCount int,
) (remainingCount int, timeToLiveSeconds int64, returnedError error) {
	if !repository.Enabled() {
		return limitCount, 0, ErrRedisDisabled
	}

	contextValue, span, endSpan := repository.trace.WithSpan(contextValue)
	defer func() {
		endSpan(returnedError)
	}()

	traceMetadata := core.TraceRateLimitMeta{
		ClientKey: clientKey,
		Limit:     limitCount,
		WindowSec: windowSeconds,
		Op:        "consume",
	}
	repository.trace.ApplyTraceAttributes(span, traceMetadata)

	redisKey := repository.buildKey(clientKey)
	expirationDuration := time.Duration(windowSeconds) * time.Second

	// 嘗試初始化：SETNX key value EX expiration
	wasSet, setError := repository.client.SetNX(
		contextValue,
		redisKey,
		limitCount-1, // 本次消耗一次，所以初始值 = 總額-1
		expirationDuration,
	).Result()
	if setError != nil {
		returnedError = setError
		return 0, 0, returnedError
	}
	if wasSet {
		remainingCount = limitCount - 1
		if remainingCount < 0 {
			remainingCount = 0
			returnedError = ErrRateLimitExceeded
		}
		timeToLiveSeconds = windowSeconds
		traceMetadata.Remaining, traceMetadata.TTL = remainingCount, timeToLiveSeconds
		repository.trace.ApplyTraceAttributes(span, traceMetadata)
		return remainingCount, timeToLiveSeconds, returnedError
	}

	// Key 已存在 → 執行 DECR 扣一次
	newValue, decrError := repository.client.Decr(contextValue, redisKey).Result()
	if decrError != nil {
		returnedError = decrError
		return 0, 0, returnedError
	}

	ttlDuration, _ := repository.client.TTL(contextValue, redisKey).Result()
	if ttlDuration > 0 {
		timeToLiveSeconds = int64(ttlDuration.Seconds())
	}

	if newValue < 0 {
		remainingCount = 0
		traceMetadata.Remaining, traceMetadata.TTL = remainingCount, timeToLiveSeconds
		repository.trace.ApplyTraceAttributes(span, traceMetadata)
		returnedError = ErrRateLimitExceeded
		return remainingCount, timeToLiveSeconds, returnedError
	}

	remainingCount = int(newValue)
	traceMetadata.Remaining, traceMetadata.TTL = remainingCount, timeToLiveSeconds
	repository.trace.ApplyTraceAttributes(span, traceMetadata)
	return remainingCount, timeToLiveSeconds, nil
}

// Reset 刪除某個 client 的配額 key（管理與測試用）
func (repository *RateLimiterRepository) Reset(contextValue context.Context, clientKey string) (returnedError error) {
	if !repository.Enabled() {
		return ErrRedisDisabled
	}
	contextValue, span, endSpan := repository.trace.WithSpan(contextValue)
	defer func() { endSpan(returnedError) }()

	repository.trace.ApplyTraceAttributes(span, core.TraceRateLimitMeta{ClientKey: clientKey, Op: "reset"})
	returnedError = repository.client.Del(contextValue, repository.buildKey(clientKey)).Err()
	return returnedError
}

// buildKey 建構 RateLimiter 用的 Redis key
func (r *RateLimiterRepository) buildKey(clientKey string) string {
	return fmt.Sprintf("%s:%s:%s", core.RedisKeyServerName, core.RedisKeyRateLimit, clientKey)
}
