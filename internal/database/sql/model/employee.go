package model

import (
	"database/sql"

	"orgchart/internal/orgtree"
)

// Employee employees 表的一列；manager_id 為指向同表的外鍵
type Employee struct {
	ID        int64         `db:"id"`
	Name      string        `db:"name"`
	Title     string        `db:"title"`
	ManagerID sql.NullInt64 `db:"manager_id"`
	// SortOrder 前序走訪的位置，讀回時用來還原兄弟順序
	SortOrder int `db:"sort_order"`
}

func (e Employee) ToRow() orgtree.Row {
	row := orgtree.Row{ID: e.ID, Name: e.Name, Title: e.Title}
	if e.ManagerID.Valid {
		row.ManagerID = orgtree.Int64(e.ManagerID.Int64)
	}
	return row
}

func FromRow(row orgtree.Row, order int) Employee {
	e := Employee{ID: row.ID, Name: row.Name, Title: row.Title, SortOrder: order}
	if row.ManagerID != nil {
		e.ManagerID = sql.NullInt64{Int64: *row.ManagerID, Valid: true}
	}
	return e
}
