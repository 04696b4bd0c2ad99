package database

import (
	"fmt"

	"orgchart/config"
	"orgchart/internal/core"
	badgerRepo "orgchart/internal/database/badger/repository"
	client "orgchart/internal/database/client"
	fileRepo "orgchart/internal/database/file/repository"
	fluentdRepo "orgchart/internal/database/fluentd/repository"
	mongoRepo "orgchart/internal/database/mongodb/repository"
	redisRepo "orgchart/internal/database/redis/repository"
	sqlRepo "orgchart/internal/database/sql/repository"
	"orgchart/internal/telemetry"

	"github.com/google/wire"
	"go.uber.org/zap"
)

// ProviderSet 定義所有 DB Client 的依賴
var ProviderSet = wire.NewSet(
	client.NewSQLClient,
	client.NewMongoClient,
	client.NewBadgerClient,
	client.NewRedisClient,
	client.NewFluentdClient,
	redisRepo.ProviderSet,
	fluentdRepo.ProviderSet,
	NewTreeStore,
)

// NewTreeStore 依 STORAGE__DRIVER 選擇組織樹的儲存後端
func NewTreeStore(
	conf *config.Configuration,
	logger *zap.Logger,
	trace *telemetry.Trace,
	sqlClient *client.SQLClient,
	mongoClient *client.MongoClient,
	badgerClient *client.BadgerClient,
) (TreeStore, error) {
	var store TreeStore
	switch core.StorageDriver(conf.Storage.Driver) {
	case core.StorageFile, "":
		path := conf.Storage.FilePath
		if path == "" {
			path = "tree.json"
		}
		store = fileRepo.NewTreeRepository(logger, trace, path)
	case core.StorageSQL:
		store = sqlRepo.NewEmployeeRepository(logger, trace, sqlClient)
	case core.StorageMongo:
		store = mongoRepo.NewMongoDBRepository(mongoRepo.NewOrgTreeRepository(logger, conf, mongoClient)).OrgTree()
	case core.StorageBadger:
		store = badgerRepo.NewTreeRepository(badgerClient)
	default:
		return nil, fmt.Errorf("unsupported storage driver %q, expected one of %v", conf.Storage.Driver, core.StorageDrivers)
	}
	logger.Info("tree store ready", zap.String("backend", store.Backend()))
	return store, nil
}
