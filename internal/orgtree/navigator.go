package orgtree

// FindNode 以前序 DFS 尋找第一個 id 相符的節點
func FindNode(root *Node, id int64) (*Node, bool) {
	if root == nil {
		return nil, false
	}
	if root.Attributes.ID == id {
		return root, true
	}
	for _, child := range root.Children {
		if found, ok := FindNode(child, id); ok {
			return found, true
		}
	}
	return nil, false
}

// IsDescendant 檢查 id 是否位於以 node 為根的子樹中（包含 node 自己）
func IsDescendant(node *Node, id int64) bool {
	_, ok := FindNode(node, id)
	return ok
}

// Detach 以 BFS 找到節點並自父節點的 children 移除，保留兄弟順序。
// 根節點永遠不會被移除。
func Detach(root *Node, id int64) (*Node, error) {
	if root == nil || root.Attributes.ID == id {
		return nil, ErrNotFound
	}
	queue := []*Node{root}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for i, child := range current.Children {
			if child.Attributes.ID == id {
				current.Children = append(current.Children[:i:i], current.Children[i+1:]...)
				return child, nil
			}
			queue = append(queue, child)
		}
	}
	return nil, ErrNotFound
}

// Attach 將 node 加到 managerID 節點 children 的最後
func Attach(root *Node, managerID int64, node *Node) error {
	return AttachAt(root, managerID, node, -1)
}

// AttachAt 將 node 插入 managerID 節點 children 的 position 位置；
// position 小於 0 或超出範圍時附加在最後
func AttachAt(root *Node, managerID int64, node *Node, position int) error {
	manager, ok := FindNode(root, managerID)
	if !ok {
		return ErrManagerNotFound
	}
	if position < 0 || position >= len(manager.Children) {
		manager.Children = append(manager.Children, node)
		return nil
	}
	manager.Children = append(manager.Children, nil)
	copy(manager.Children[position+1:], manager.Children[position:])
	manager.Children[position] = node
	return nil
}

// ParentOf 回傳 id 節點的父節點與其在 children 中的索引
func ParentOf(root *Node, id int64) (*Node, int, bool) {
	if root == nil {
		return nil, -1, false
	}
	for i, child := range root.Children {
		if child.Attributes.ID == id {
			return root, i, true
		}
		if parent, idx, ok := ParentOf(child, id); ok {
			return parent, idx, true
		}
	}
	return nil, -1, false
}

// Walk 前序走訪；fn 回傳 false 時不再深入該節點的子樹。nil 節點直接略過
func Walk(root *Node, fn func(node *Node, parent *Node, depth int) bool) {
	var visit func(node, parent *Node, depth int)
	visit = func(node, parent *Node, depth int) {
		if node == nil || !fn(node, parent, depth) {
			return
		}
		for _, child := range node.Children {
			visit(child, node, depth+1)
		}
	}
	if root != nil {
		visit(root, nil, 0)
	}
}

// Len 回傳員工節點數（不含虛擬根）
func Len(root *Node) int {
	count := 0
	Walk(root, func(node, _ *Node, _ int) bool {
		if !node.IsVirtual() {
			count++
		}
		return true
	})
	return count
}
