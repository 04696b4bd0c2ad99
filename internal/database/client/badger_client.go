package client

import (
	"fmt"
	"orgchart/config"
	"orgchart/internal/core"
	"os"

	"github.com/dgraph-io/badger/v4"
	"go.uber.org/zap"
)

// BadgerClient 內嵌式 KV 後端
type BadgerClient struct {
	db     *badger.DB
	logger *zap.Logger
}

func NewBadgerClient(logger *zap.Logger, config *config.Configuration) (*BadgerClient, func(), error) {
	badgerClient := &BadgerClient{logger: logger}
	if core.StorageDriver(config.Storage.Driver) != core.StorageBadger {
		logger.Debug("Badger disabled", zap.String("storage", config.Storage.Driver))
		return badgerClient, func() {}, nil
	}
	db, err := badgerClient.open(config)
	if err != nil {
		logger.Error("failed to open Badger", zap.Error(err))
		return nil, nil, err
	}
	badgerClient.db = db
	logger.Info("Opened Badger", zap.String("path", config.Badger.Path), zap.Bool("in_memory", config.Badger.InMemory))

	cleanup := func() {
		logger.Info("closing the Badger resources")
		if err := badgerClient.Close(); err != nil {
			logger.Error("failed to close Badger", zap.Error(err))
		}
	}
	return badgerClient, cleanup, nil
}

func (client *BadgerClient) open(config *config.Configuration) (*badger.DB, error) {
	var opts badger.Options
	if config.Badger.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if config.Badger.Path == "" {
			return nil, fmt.Errorf("badger path is required")
		}
		if err := os.MkdirAll(config.Badger.Path, 0o755); err != nil {
			return nil, fmt.Errorf("create badger directory %s: %w", config.Badger.Path, err)
		}
		opts = badger.DefaultOptions(config.Badger.Path).WithSyncWrites(true)
	}
	opts = opts.WithNumVersionsToKeep(1).WithLogger(&badgerLogger{sugar: client.logger.Sugar()})
	return badger.Open(opts)
}

// Close 關閉 Badger
func (client *BadgerClient) Close() error {
	if client.db == nil {
		return nil
	}
	return client.db.Close()
}

// DB 回傳 Badger 連線（停用時為 nil）
func (client *BadgerClient) DB() *badger.DB {
	return client.db
}

// badgerLogger 將 badger 的內部日誌轉給 zap
type badgerLogger struct {
	sugar *zap.SugaredLogger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.sugar.Errorf(format, args...)
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.sugar.Warnf(format, args...)
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.sugar.Debugf(format, args...)
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.sugar.Debugf(format, args...)
}
