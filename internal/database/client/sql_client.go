package client

import (
	"context"
	"fmt"
	"orgchart/config"
	"orgchart/internal/core"
	"orgchart/internal/database/sql/migrations"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

func init() {
	sqlx.BindDriver(string(core.SQLDriverSQLite), sqlx.QUESTION)
}

// SQLClient 關聯式後端連線（sqlite 或 postgres），啟動時自動執行 goose migration
type SQLClient struct {
	db     *sqlx.DB
	driver core.SQLDriverName
	logger *zap.Logger
}

func NewSQLClient(logger *zap.Logger, config *config.Configuration) (*SQLClient, func(), error) {
	sqlClient := &SQLClient{logger: logger, driver: core.SQLDriverName(config.Database.Driver)}
	if core.StorageDriver(config.Storage.Driver) != core.StorageSQL {
		logger.Debug("SQL database disabled", zap.String("storage", config.Storage.Driver))
		return sqlClient, func() {}, nil
	}
	db, err := sqlClient.connectDB(config)
	if err != nil {
		logger.Error("failed to connect to SQL database", zap.String("driver", config.Database.Driver), zap.Error(err))
		return nil, nil, err
	}
	sqlClient.db = db
	logger.Info("Connected to SQL database", zap.String("driver", config.Database.Driver))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	applied, err := migrations.Up(ctx, db.DB, sqlClient.driver)
	if err != nil {
		_ = db.Close()
		logger.Error("failed to migrate SQL database", zap.Error(err))
		return nil, nil, err
	}
	logger.Info("SQL migrations applied", zap.Int("count", applied))

	cleanup := func() {
		logger.Info("closing the SQL database resources")
		if err := sqlClient.Close(); err != nil {
			logger.Error("failed to close SQL database", zap.Error(err))
		}
	}
	return sqlClient, cleanup, nil
}

func (client *SQLClient) connectDB(config *config.Configuration) (*sqlx.DB, error) {
	switch client.driver {
	case core.SQLDriverSQLite, core.SQLDriverPostgres:
	default:
		return nil, fmt.Errorf("unsupported sql driver %q", client.driver)
	}
	db, err := sqlx.Connect(string(client.driver), config.Database.DSN)
	if err != nil {
		return nil, err
	}
	maxOpen := config.Database.MaxOpenConns
	if client.driver == core.SQLDriverSQLite {
		// sqlite 單一寫入者；:memory: 也必須共用同一條連線
		maxOpen = 1
	}
	if maxOpen > 0 {
		db.SetMaxOpenConns(maxOpen)
	}
	if client.driver == core.SQLDriverSQLite {
		// sqlite 預設不檢查外鍵，manager_id 的 REFERENCES 須逐連線開啟
		if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("enable sqlite foreign keys: %w", err)
		}
	}
	return db, nil
}

// Close 關閉 SQL 連線
func (client *SQLClient) Close() error {
	if client.db == nil {
		return nil
	}
	return client.db.Close()
}

// DB 回傳 sqlx 連線（停用時為 nil）
func (client *SQLClient) DB() *sqlx.DB {
	return client.db
}

func (client *SQLClient) Driver() core.SQLDriverName {
	return client.driver
}
