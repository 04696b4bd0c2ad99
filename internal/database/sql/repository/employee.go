package repository

import (
	"context"
	"fmt"

	"orgchart/internal/core"
	client "orgchart/internal/database/client"
	"orgchart/internal/database/sql/model"
	"orgchart/internal/orgtree"
	"orgchart/internal/telemetry"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

const (
	selectEmployees = `SELECT id, name, title, manager_id, sort_order FROM employees ORDER BY sort_order, id`
	upsertEmployee  = `INSERT INTO employees (id, name, title, manager_id, sort_order)
VALUES (:id, :name, :title, :manager_id, :sort_order)
ON CONFLICT (id) DO UPDATE SET
    name = excluded.name,
    title = excluded.title,
    manager_id = excluded.manager_id,
    sort_order = excluded.sort_order`
	deleteEmployeesIn = `DELETE FROM employees WHERE id NOT IN (?)`
	deleteEmployees   = `DELETE FROM employees`
	countEmployees    = `SELECT COUNT(*) FROM employees`
)

// EmployeeRepository 以扁平 employees 表保存組織樹。
// 讀取時以 orgtree.Build 重建森林；寫入時以 orgtree.Flatten 同步整張表。
type EmployeeRepository struct {
	db     *sqlx.DB
	driver core.SQLDriverName
	logger *zap.Logger
	trace  *telemetry.Trace
}

func NewEmployeeRepository(logger *zap.Logger, trace *telemetry.Trace, sqlClient *client.SQLClient) *EmployeeRepository {
	return &EmployeeRepository{
		db:     sqlClient.DB(),
		driver: sqlClient.Driver(),
		logger: logger,
		trace:  trace,
	}
}

func (repository *EmployeeRepository) Backend() string {
	return string(repository.driver)
}

func (repository *EmployeeRepository) Exists(contextValue context.Context) (bool, error) {
	var count int
	if err := repository.db.GetContext(contextValue, &count, countEmployees); err != nil {
		return false, fmt.Errorf("count employees: %w", err)
	}
	return count > 0, nil
}

// List 依 sort_order 讀出所有列
func (repository *EmployeeRepository) List(contextValue context.Context) ([]model.Employee, error) {
	return listEmployees(contextValue, repository.db)
}

func (repository *EmployeeRepository) Load(contextValue context.Context) (_ *orgtree.Node, returnedError error) {
	contextValue, span, endSpan := repository.trace.WithSpan(contextValue)
	defer func() { endSpan(returnedError) }()

	employees, err := listEmployees(contextValue, repository.db)
	if err != nil {
		return nil, err
	}
	repository.trace.ApplyTraceAttributes(span, core.TraceStorageMeta{
		Driver: repository.Backend(),
		Op:     "load",
		Rows:   len(employees),
	})
	return repository.build(employees), nil
}

func (repository *EmployeeRepository) Save(contextValue context.Context, root *orgtree.Node) (returnedError error) {
	contextValue, span, endSpan := repository.trace.WithSpan(contextValue)
	defer func() { endSpan(returnedError) }()

	tx, err := repository.db.BeginTxx(contextValue, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if returnedError != nil {
			_ = tx.Rollback()
		}
	}()

	rows, err := syncTree(contextValue, tx, root)
	if err != nil {
		return err
	}
	repository.trace.ApplyTraceAttributes(span, core.TraceStorageMeta{Driver: repository.Backend(), Op: "save", Rows: rows})
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Update 在單一交易中讀取、修改並同步整棵樹；fn 失敗時 rollback
func (repository *EmployeeRepository) Update(contextValue context.Context, fn func(root *orgtree.Node) error) (returnedError error) {
	contextValue, span, endSpan := repository.trace.WithSpan(contextValue)
	defer func() { endSpan(returnedError) }()

	tx, err := repository.db.BeginTxx(contextValue, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if returnedError != nil {
			_ = tx.Rollback()
		}
	}()

	employees, err := listEmployees(contextValue, tx)
	if err != nil {
		return err
	}
	root := repository.build(employees)
	if err := fn(root); err != nil {
		return err
	}
	rows, err := syncTree(contextValue, tx, root)
	if err != nil {
		return err
	}
	repository.trace.ApplyTraceAttributes(span, core.TraceStorageMeta{Driver: repository.Backend(), Op: "update", Rows: rows})
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (repository *EmployeeRepository) build(employees []model.Employee) *orgtree.Node {
	rows := make([]orgtree.Row, 0, len(employees))
	for _, e := range employees {
		rows = append(rows, e.ToRow())
	}
	root, anomalies := orgtree.Build(rows)
	for _, anomaly := range anomalies {
		repository.logger.Warn("inconsistent employee row",
			zap.String("kind", string(anomaly.Kind)),
			zap.Int64("id", anomaly.ID),
			zap.String("detail", anomaly.Detail),
		)
	}
	return root
}

func listEmployees(contextValue context.Context, q sqlx.QueryerContext) ([]model.Employee, error) {
	var employees []model.Employee
	if err := sqlx.SelectContext(contextValue, q, &employees, selectEmployees); err != nil {
		return nil, fmt.Errorf("select employees: %w", err)
	}
	return employees, nil
}

// syncTree 以前序 upsert 每一列（主管必先於部屬寫入），再刪除樹中已不存在的列
func syncTree(contextValue context.Context, tx *sqlx.Tx, root *orgtree.Node) (int, error) {
	rows := orgtree.Flatten(root)
	if len(rows) == 0 {
		if _, err := tx.ExecContext(contextValue, deleteEmployees); err != nil {
			return 0, fmt.Errorf("delete employees: %w", err)
		}
		return 0, nil
	}

	stmt, err := tx.PrepareNamedContext(contextValue, upsertEmployee)
	if err != nil {
		return 0, fmt.Errorf("prepare upsert: %w", err)
	}
	defer stmt.Close()

	ids := make([]int64, 0, len(rows))
	for i, row := range rows {
		if _, err := stmt.ExecContext(contextValue, model.FromRow(row, i)); err != nil {
			return 0, fmt.Errorf("upsert employee %d: %w", row.ID, err)
		}
		ids = append(ids, row.ID)
	}

	query, args, err := sqlx.In(deleteEmployeesIn, ids)
	if err != nil {
		return 0, fmt.Errorf("build delete: %w", err)
	}
	if _, err := tx.ExecContext(contextValue, tx.Rebind(query), args...); err != nil {
		return 0, fmt.Errorf("delete stale employees: %w", err)
	}
	return len(rows), nil
}
