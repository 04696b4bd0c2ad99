package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"orgchart/internal/core"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var FS embed.FS

func dialect(driver core.SQLDriverName) (goose.Dialect, error) {
	switch driver {
	case core.SQLDriverSQLite:
		return goose.DialectSQLite3, nil
	case core.SQLDriverPostgres:
		return goose.DialectPostgres, nil
	default:
		return "", fmt.Errorf("unsupported sql driver %q", driver)
	}
}

// Up 套用所有尚未執行的 migration，回傳本次套用的版本數
func Up(ctx context.Context, db *sql.DB, driver core.SQLDriverName) (int, error) {
	d, err := dialect(driver)
	if err != nil {
		return 0, err
	}
	provider, err := goose.NewProvider(d, db, FS)
	if err != nil {
		return 0, fmt.Errorf("goose provider: %w", err)
	}
	results, err := provider.Up(ctx)
	if err != nil {
		return 0, fmt.Errorf("goose up: %w", err)
	}
	return len(results), nil
}
