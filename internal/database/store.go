package database

import (
	"context"

	"orgchart/internal/orgtree"
)

// TreeStore 以「整棵樹」為單位讀寫組織階層。
//
// Update 會在同一個邏輯單位內執行 load → fn → save；fn 回傳錯誤時不寫入，
// 並將該錯誤原封不動回傳給呼叫端。其餘儲存失敗以 fmt.Errorf 包裝後回傳。
type TreeStore interface {
	Load(ctx context.Context) (*orgtree.Node, error)
	Save(ctx context.Context, root *orgtree.Node) error
	Update(ctx context.Context, fn func(root *orgtree.Node) error) error
	Exists(ctx context.Context) (bool, error)
	// Backend 回傳實際使用的後端名稱，例如 file、sqlite、pgx、mongo、badger
	Backend() string
}
