package service

import (
	"fmt"
	"strings"

	"orgchart/internal/dto"
	"orgchart/internal/orgtree"
	cErr "orgchart/internal/pkg/error"
)

// managerOf 0 與 null 都代表沒有主管
func managerOf(id *int64) *int64 {
	if id == nil || *id == 0 {
		return nil
	}
	return id
}

// managerRef 依結構上的父節點決定 manager_id；虛擬根底下為 null
func managerRef(parent *orgtree.Node) *int64 {
	if parent == nil || parent.IsVirtual() {
		return nil
	}
	return orgtree.Int64(parent.ID())
}

// reparent 驗證後把 employeeID 移到 newManagerID 之下（nil 代表頂層）。
// 驗證順序：主管存在 → 不可自我管理 → 員工存在 → 不可形成循環；全部通過後才修改樹。
func reparent(root *orgtree.Node, employeeID int64, newManagerID *int64, position int) error {
	if newManagerID != nil {
		if _, ok := orgtree.FindNode(root, *newManagerID); !ok {
			return cErr.NotFound(fmt.Sprintf("manager %d not found", *newManagerID))
		}
		if *newManagerID == employeeID {
			return cErr.InvalidOperation("an employee cannot be their own manager")
		}
	}

	employee, ok := orgtree.FindNode(root, employeeID)
	if !ok || employee.IsVirtual() {
		return cErr.NotFound(fmt.Sprintf("employee %d not found", employeeID))
	}

	target := root.ID()
	if newManagerID == nil {
		if !root.IsVirtual() {
			return cErr.InvalidOperation("the hierarchy has a single root; every other employee needs a manager")
		}
	} else {
		if orgtree.IsDescendant(employee, *newManagerID) {
			return cErr.InvalidOperation(fmt.Sprintf("employee %d cannot report to %d: it would create a circular reporting chain", employeeID, *newManagerID))
		}
		target = *newManagerID
	}

	node, err := orgtree.Detach(root, employeeID)
	if err != nil {
		return cErr.InvalidOperation("the root employee cannot be moved")
	}
	if newManagerID == nil {
		node.Attributes.ManagerID = nil
	} else {
		node.Attributes.ManagerID = orgtree.Int64(*newManagerID)
	}
	if err := orgtree.AttachAt(root, target, node, position); err != nil {
		return cErr.NotFound(fmt.Sprintf("manager %d not found", target))
	}
	return nil
}

// swapPositions 兩位員工交換在階層中的位置，各自帶著自己的部屬
func swapPositions(root *orgtree.Node, id1, id2 int64) error {
	if id1 == id2 {
		return cErr.InvalidOperation("cannot swap an employee with themselves")
	}
	first, ok := orgtree.FindNode(root, id1)
	if !ok || first.IsVirtual() {
		return cErr.NotFound(fmt.Sprintf("employee %d not found", id1))
	}
	second, ok := orgtree.FindNode(root, id2)
	if !ok || second.IsVirtual() {
		return cErr.NotFound(fmt.Sprintf("employee %d not found", id2))
	}
	if first == root || second == root {
		return cErr.InvalidOperation("the root employee cannot be swapped")
	}
	if orgtree.IsDescendant(first, id2) || orgtree.IsDescendant(second, id1) {
		return cErr.InvalidOperation("cannot swap an employee with someone in their own reporting chain")
	}

	firstParent, firstIdx, _ := orgtree.ParentOf(root, id1)
	secondParent, secondIdx, _ := orgtree.ParentOf(root, id2)
	firstParent.Children[firstIdx], secondParent.Children[secondIdx] = second, first
	first.Attributes.ManagerID = managerRef(secondParent)
	second.Attributes.ManagerID = managerRef(firstParent)
	return nil
}

// upsertEmployees 依序套用批次資料；任何一筆失敗整批放棄
func upsertEmployees(root *orgtree.Node, employees []dto.BatchEmployeeDto) error {
	for _, item := range employees {
		managerID := managerOf(item.ManagerID)
		if managerID != nil && *managerID == item.ID {
			return cErr.InvalidOperation(fmt.Sprintf("employee %d cannot be their own manager", item.ID))
		}

		node, exists := orgtree.FindNode(root, item.ID)
		if exists {
			node.Name = item.Name
			node.Attributes.Title = item.Title
			// 根節點只更新資料，不調整主管
			if node == root {
				continue
			}
			parent, _, _ := orgtree.ParentOf(root, item.ID)
			if sameManager(parent, managerID) {
				continue
			}
			if err := reparent(root, item.ID, managerID, -1); err != nil {
				return err
			}
			continue
		}

		target := root.ID()
		if managerID == nil {
			if !root.IsVirtual() {
				return cErr.InvalidOperation(fmt.Sprintf("employee %d needs a manager", item.ID))
			}
		} else {
			if _, ok := orgtree.FindNode(root, *managerID); !ok {
				return cErr.NotFound(fmt.Sprintf("manager %d not found", *managerID))
			}
			target = *managerID
		}
		newcomer := &orgtree.Node{
			Name:       item.Name,
			Attributes: orgtree.Attributes{ID: item.ID, Title: item.Title, ManagerID: managerID},
			Children:   []*orgtree.Node{},
		}
		if err := orgtree.Attach(root, target, newcomer); err != nil {
			return cErr.NotFound(fmt.Sprintf("manager %d not found", target))
		}
	}
	return nil
}

func sameManager(parent *orgtree.Node, managerID *int64) bool {
	if managerID == nil {
		return parent.IsVirtual()
	}
	return !parent.IsVirtual() && parent.ID() == *managerID
}

// checkShape 正規化前的結構檢查：請求本體存在且 children 不含 null
func checkShape(root *orgtree.Node) error {
	if root == nil {
		return cErr.ValidateErr("tree body is required")
	}
	if err := orgtree.FillChildren(root); err != nil {
		return cErr.ValidateErr(err.Error())
	}
	return nil
}

// validateTree 整棵樹替換前的檢查：id 唯一且為正、每位員工都有名字
func validateTree(root *orgtree.Node) error {
	if err := checkShape(root); err != nil {
		return err
	}
	var missingName error
	orgtree.Walk(root, func(node, parent *orgtree.Node, _ int) bool {
		if parent == nil && node.IsVirtual() {
			return true
		}
		if missingName == nil && strings.TrimSpace(node.Name) == "" {
			missingName = cErr.ValidateErr(fmt.Sprintf("employee %d has no name", node.ID()))
		}
		return true
	})
	if missingName != nil {
		return missingName
	}
	if anomalies := orgtree.Validate(root); len(anomalies) > 0 {
		return cErr.ValidateErr(anomalies[0].String())
	}
	return nil
}

// topLevel 回傳頂層員工：虛擬根的 children，或單一根本身
func topLevel(root *orgtree.Node) []*orgtree.Node {
	if root.IsVirtual() {
		return root.Children
	}
	return []*orgtree.Node{root}
}
