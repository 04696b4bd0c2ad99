package client

import (
	"context"
	"fmt"
	"orgchart/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisClient 連接 Redis；REDIS__ENABLED 為 false 時不建立連線
type RedisClient struct {
	client *redis.Client
	logger *zap.Logger
}

func NewRedisClient(logger *zap.Logger, config *config.Configuration) (*RedisClient, func(), error) {
	redisClient := &RedisClient{logger: logger}
	if !config.Redis.Enabled {
		logger.Debug("Redis disabled")
		return redisClient, func() {}, nil
	}
	client, err := redisClient.connectDB(config)
	if err != nil {
		logger.Error("failed to connect to Redis", zap.Error(err))
		return nil, nil, err
	}
	logger.Info("Connected to Redis")
	redisClient.client = client

	cleanup := func() {
		logger.Info("closing the Redis resources")
		if err := redisClient.Close(); err != nil {
			logger.Error("failed to close Redis client", zap.Error(err))
		}
	}

	return redisClient, cleanup, nil
}

func (client *RedisClient) connectDB(config *config.Configuration) (*redis.Client, error) {
	r := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", config.Redis.Host, config.Redis.Port),
		Password: config.Redis.Password,
		DB:       config.Redis.DB,
	})
	if _, err := r.Ping(context.Background()).Result(); err != nil {
		return nil, err
	}
	return r, nil
}

// NewRedisClientFrom 包裝既有的 go-redis client
func NewRedisClientFrom(logger *zap.Logger, c *redis.Client) *RedisClient {
	return &RedisClient{client: c, logger: logger}
}

// Close 關閉 Redis 連線
func (redisClient *RedisClient) Close() error {
	if redisClient.client == nil {
		return nil
	}
	return redisClient.client.Close()
}

// Client 回傳 Redis 連線（停用時為 nil）
func (redisClient *RedisClient) Client() *redis.Client {
	return redisClient.client
}

func (redisClient *RedisClient) Enabled() bool {
	return redisClient != nil && redisClient.client != nil
}
