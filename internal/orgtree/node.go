package orgtree

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound        = errors.New("employee not found")
	ErrManagerNotFound = errors.New("manager not found")
	ErrNilChild        = errors.New("children contains null")
)

// VirtualRootName 未初始化儲存體時的預設根節點名稱
const VirtualRootName = "Root"

type Attributes struct {
	ID        int64  `json:"id" bson:"id"`
	Title     string `json:"title" bson:"title"`
	ManagerID *int64 `json:"manager_id" bson:"manager_id"`
	// Position 僅保存，不影響排序
	Position *int `json:"position,omitempty" bson:"position,omitempty"`
}

// Node 組織樹中的一個員工及其直屬部屬
type Node struct {
	Name       string     `json:"name" bson:"name"`
	Attributes Attributes `json:"attributes" bson:"attributes"`
	Children   []*Node    `json:"children" bson:"children"`
}

// Row 關聯式（扁平）表示法的一列
type Row struct {
	ID        int64
	Name      string
	Title     string
	ManagerID *int64
}

func NewVirtualRoot() *Node {
	return &Node{Name: VirtualRootName, Children: []*Node{}}
}

// IsVirtual 回傳此節點是否為容器根（id 0），而非真實員工
func (n *Node) IsVirtual() bool {
	return n != nil && n.Attributes.ID == 0
}

func (n *Node) ID() int64 {
	return n.Attributes.ID
}

// Clone 深拷貝整棵子樹
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	cp := &Node{
		Name: n.Name,
		Attributes: Attributes{
			ID:    n.Attributes.ID,
			Title: n.Attributes.Title,
		},
		Children: make([]*Node, 0, len(n.Children)),
	}
	if n.Attributes.ManagerID != nil {
		cp.Attributes.ManagerID = Int64(*n.Attributes.ManagerID)
	}
	if n.Attributes.Position != nil {
		p := *n.Attributes.Position
		cp.Attributes.Position = &p
	}
	for _, child := range n.Children {
		cp.Children = append(cp.Children, child.Clone())
	}
	return cp
}

func Int64(v int64) *int64 {
	return &v
}

// FillChildren 將缺少或為 null 的 children 補成空陣列；children 中出現 null 元素時回傳 ErrNilChild
func FillChildren(node *Node) error {
	if node == nil {
		return nil
	}
	if node.Children == nil {
		node.Children = []*Node{}
	}
	for i, child := range node.Children {
		if child == nil {
			return fmt.Errorf("%w: employee %d, index %d", ErrNilChild, node.ID(), i)
		}
		if err := FillChildren(child); err != nil {
			return err
		}
	}
	return nil
}
