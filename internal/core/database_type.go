package core

// ─── Storage Drivers ───────────────────────────────────────────────────────────

// StorageDriver 組織樹的儲存後端
type StorageDriver string

const (
	StorageFile   StorageDriver = "file"
	StorageSQL    StorageDriver = "sql"
	StorageMongo  StorageDriver = "mongo"
	StorageBadger StorageDriver = "badger"
)

// StorageDrivers contains all supported storage drivers
var StorageDrivers = []StorageDriver{StorageFile, StorageSQL, StorageMongo, StorageBadger}

// SQLDriverName database/sql 註冊的驅動名稱
type SQLDriverName string

const (
	SQLDriverSQLite   SQLDriverName = "sqlite"
	SQLDriverPostgres SQLDriverName = "pgx"
)

type RedisKey string
type FluentdSubTag string
type BadgerKey string

// ─── MongoDB ───────────────────────────────────────────────────────────────────

// MongoTreeDocumentID 整棵樹存放在單一文件中
const MongoTreeDocumentID = "org_tree"

// ─── Badger ────────────────────────────────────────────────────────────────────

const BadgerKeyOrgTree BadgerKey = "orgchart/tree"

// ─── Redis Keys ────────────────────────────────────────────────────────────────

const (
	RedisKeyRateLimit  RedisKey = "ratelimit"
	RedisKeyServerName RedisKey = "orgchart"
)

const (
	FluentdRequest   FluentdSubTag = "request_log"
	FluentdResponse  FluentdSubTag = "response_log"
	FluentdHierarchy FluentdSubTag = "hierarchy_event"
)
