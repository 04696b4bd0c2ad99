package orgtree

import "fmt"

type AnomalyKind string

const (
	AnomalyDuplicateID     AnomalyKind = "duplicate_id"
	AnomalyInvalidID       AnomalyKind = "invalid_id"
	AnomalySelfManaged     AnomalyKind = "self_managed"
	AnomalyOrphan          AnomalyKind = "orphan"
	AnomalyCycle           AnomalyKind = "cycle"
	AnomalyUnreachable     AnomalyKind = "unreachable"
	AnomalyManagerMismatch AnomalyKind = "manager_mismatch"
)

// Anomaly 描述儲存資料中違反階層不變量的一處
type Anomaly struct {
	Kind   AnomalyKind `json:"kind"`
	ID     int64       `json:"id"`
	Detail string      `json:"detail"`
}

func (a Anomaly) String() string {
	return fmt.Sprintf("%s(id=%d): %s", a.Kind, a.ID, a.Detail)
}

// index 由扁平資料列建立的鄰接結構：id → row、manager id → 直屬 id（保留原始順序）
type index struct {
	order    []int64
	rows     map[int64]Row
	children map[int64][]int64
}

func newIndex(rows []Row) (*index, []Anomaly) {
	var anomalies []Anomaly
	idx := &index{
		order:    make([]int64, 0, len(rows)),
		rows:     make(map[int64]Row, len(rows)),
		children: make(map[int64][]int64),
	}
	for _, row := range rows {
		if _, dup := idx.rows[row.ID]; dup {
			anomalies = append(anomalies, Anomaly{Kind: AnomalyDuplicateID, ID: row.ID, Detail: "row ignored"})
			continue
		}
		idx.rows[row.ID] = row
		idx.order = append(idx.order, row.ID)
	}
	for _, id := range idx.order {
		row := idx.rows[id]
		if row.ManagerID == nil || *row.ManagerID == row.ID {
			continue
		}
		if _, ok := idx.rows[*row.ManagerID]; !ok {
			continue
		}
		idx.children[*row.ManagerID] = append(idx.children[*row.ManagerID], id)
	}
	return idx, anomalies
}

// Build 由扁平資料列重建以虛擬根為頂的森林。
// 每條路徑記錄祖先 id；若 id 在自己的路徑上再次出現，就以葉節點輸出、不再往下展開。
func Build(rows []Row) (*Node, []Anomaly) {
	idx, anomalies := newIndex(rows)
	root := NewVirtualRoot()
	visited := make(map[int64]bool, len(idx.order))

	var build func(id int64, path map[int64]bool) *Node
	build = func(id int64, path map[int64]bool) *Node {
		row := idx.rows[id]
		node := &Node{
			Name:       row.Name,
			Attributes: Attributes{ID: row.ID, Title: row.Title, ManagerID: row.ManagerID},
			Children:   []*Node{},
		}
		visited[id] = true
		path[id] = true
		defer delete(path, id)
		for _, childID := range idx.children[id] {
			if path[childID] {
				anomalies = append(anomalies, Anomaly{
					Kind:   AnomalyCycle,
					ID:     childID,
					Detail: fmt.Sprintf("reappears under %d", id),
				})
				child := idx.rows[childID]
				node.Children = append(node.Children, &Node{
					Name:       child.Name,
					Attributes: Attributes{ID: child.ID, Title: child.Title, ManagerID: child.ManagerID},
					Children:   []*Node{},
				})
				continue
			}
			node.Children = append(node.Children, build(childID, path))
		}
		return node
	}

	for _, id := range idx.order {
		row := idx.rows[id]
		switch {
		case row.ManagerID == nil:
		case *row.ManagerID == row.ID:
			anomalies = append(anomalies, Anomaly{Kind: AnomalySelfManaged, ID: id, Detail: "treated as top-level"})
		default:
			if _, ok := idx.rows[*row.ManagerID]; ok {
				continue
			}
			anomalies = append(anomalies, Anomaly{
				Kind:   AnomalyOrphan,
				ID:     id,
				Detail: fmt.Sprintf("manager %d does not exist", *row.ManagerID),
			})
		}
		root.Children = append(root.Children, build(id, map[int64]bool{}))
	}

	// 環上的成員無法從任何頂層節點到達
	for _, id := range idx.order {
		if visited[id] {
			continue
		}
		anomalies = append(anomalies, Anomaly{Kind: AnomalyUnreachable, ID: id, Detail: "not reachable from a top-level employee"})
		root.Children = append(root.Children, build(id, map[int64]bool{}))
	}
	return root, anomalies
}

// Flatten 以前序輸出資料列；manager 取自結構上的父節點，同一 id 只保留第一次出現
func Flatten(root *Node) []Row {
	rows := make([]Row, 0)
	seen := make(map[int64]bool)
	Walk(root, func(node, parent *Node, _ int) bool {
		if node.IsVirtual() {
			return true
		}
		if seen[node.ID()] {
			return false
		}
		seen[node.ID()] = true
		row := Row{ID: node.ID(), Name: node.Name, Title: node.Attributes.Title}
		if parent != nil && !parent.IsVirtual() {
			row.ManagerID = Int64(parent.ID())
		}
		rows = append(rows, row)
		return true
	})
	return rows
}

// Validate 檢查整棵樹的不變量
func Validate(root *Node) []Anomaly {
	var anomalies []Anomaly
	seen := make(map[int64]bool)
	Walk(root, func(node, parent *Node, _ int) bool {
		id := node.ID()
		if parent == nil && node.IsVirtual() {
			return true
		}
		if id <= 0 {
			anomalies = append(anomalies, Anomaly{Kind: AnomalyInvalidID, ID: id, Detail: fmt.Sprintf("employee %q has a non-positive id", node.Name)})
		}
		if seen[id] {
			anomalies = append(anomalies, Anomaly{Kind: AnomalyDuplicateID, ID: id, Detail: "id appears more than once"})
		}
		seen[id] = true
		managerID := node.Attributes.ManagerID
		if managerID != nil && *managerID == id {
			anomalies = append(anomalies, Anomaly{Kind: AnomalySelfManaged, ID: id, Detail: "employee manages itself"})
			return true
		}
		if parent == nil {
			if managerID != nil && *managerID != 0 {
				anomalies = append(anomalies, Anomaly{Kind: AnomalyManagerMismatch, ID: id, Detail: fmt.Sprintf("root has manager_id %d", *managerID)})
			}
			return true
		}
		if parent.IsVirtual() {
			if managerID != nil && *managerID != 0 {
				anomalies = append(anomalies, Anomaly{Kind: AnomalyManagerMismatch, ID: id, Detail: fmt.Sprintf("top-level employee has manager_id %d", *managerID)})
			}
			return true
		}
		if managerID == nil || *managerID != parent.ID() {
			anomalies = append(anomalies, Anomaly{Kind: AnomalyManagerMismatch, ID: id, Detail: fmt.Sprintf("listed under %d", parent.ID())})
		}
		return true
	})
	return anomalies
}

// Normalize 將每個子節點的 manager_id 改寫為結構上父節點的 id；
// 真實員工作為根時 manager_id 只保留 null 或 0
func Normalize(root *Node) {
	Walk(root, func(node, parent *Node, _ int) bool {
		if node.Children == nil {
			node.Children = []*Node{}
		}
		if parent == nil {
			if !node.IsVirtual() && node.Attributes.ManagerID != nil && *node.Attributes.ManagerID != 0 {
				node.Attributes.ManagerID = Int64(0)
			}
			return true
		}
		if parent.IsVirtual() {
			node.Attributes.ManagerID = nil
			return true
		}
		node.Attributes.ManagerID = Int64(parent.ID())
		return true
	})
}
