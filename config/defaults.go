package config

// Defaults 以 viper key（"__" 分隔）列出的預設值
var Defaults = map[string]any{
	"APP__ENV":                   "development",
	"APP__PORT":                  8000,
	"APP__NAME":                  "organi-flow-api",
	"APP__VERSION":               "1.0.0",
	"LOG__LEVEL":                 "info",
	"STORAGE__DRIVER":            "file",
	"STORAGE__FILE_PATH":         "tree.json",
	"DATABASE__DRIVER":           "sqlite",
	"DATABASE__DSN":              "file:orgchart.db?_pragma=foreign_keys(1)",
	"DATABASE__MAX_OPEN_CONNS":   1,
	"MONGODB__URI":               "mongodb://localhost:27017",
	"MONGODB__DATABASE":          "orgchart",
	"MONGODB__COLLECTION":        "org_trees",
	"BADGER__PATH":               "data/badger",
	"REDIS__HOST":                "localhost",
	"REDIS__PORT":                6379,
	"RATE_LIMIT__LIMIT":          60,
	"RATE_LIMIT__WINDOW_SEC":     60,
	"FLUENTD__TAG_PREFIX":        "orgchart",
	"CRON__INTEGRITY_SPEC":       "0 */10 * * * *",
	"TELEMETRY__METRIC__ENABLED": true,
}
