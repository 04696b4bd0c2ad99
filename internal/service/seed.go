package service

import "orgchart/internal/orgtree"

// DefaultRoot 首次啟動且儲存體為空時寫入的 CEO
func DefaultRoot() *orgtree.Node {
	return &orgtree.Node{
		Name:       "John Smith",
		Attributes: orgtree.Attributes{ID: 1, Title: "CEO", ManagerID: orgtree.Int64(0)},
		Children:   []*orgtree.Node{},
	}
}

// SeedRows 範例組織資料（Peter Anderson 直屬 David Wilson）
func SeedRows() []orgtree.Row {
	m := orgtree.Int64
	return []orgtree.Row{
		{ID: 1, Name: "John Smith", Title: "CEO"},
		{ID: 2, Name: "David Wilson", Title: "Product Director", ManagerID: m(1)},
		{ID: 3, Name: "Peter Anderson", Title: "Product Manager", ManagerID: m(2)},
		{ID: 4, Name: "Michael Chen", Title: "Engineering Director", ManagerID: m(2)},
		{ID: 5, Name: "Emily Davis", Title: "Senior Developer", ManagerID: m(3)},
		{ID: 6, Name: "Sarah Johnson", Title: "CTO", ManagerID: m(1)},
		{ID: 7, Name: "Lisa Brown", Title: "HR Director", ManagerID: m(1)},
		{ID: 8, Name: "Jessica Miller", Title: "HR Manager", ManagerID: m(6)},
		{ID: 9, Name: "Emily Davis", Title: "Senior Developer", ManagerID: m(3)},
		{ID: 10, Name: "Alex Thompson", Title: "Junior Developer", ManagerID: m(4)},
		{ID: 11, Name: "David Wilson", Title: "Product Director", ManagerID: m(1)},
		{ID: 12, Name: "James Taylor", Title: "Frontend Lead", ManagerID: m(3)},
		{ID: 13, Name: "Maria Garcia", Title: "Backend Lead", ManagerID: m(3)},
		{ID: 14, Name: "Robert Kim", Title: "DevOps Engineer", ManagerID: m(8)},
		{ID: 15, Name: "Amanda White", Title: "UX Designer", ManagerID: m(7)},
	}
}

// singleRoot 只有一位頂層員工時以他為根，manager_id 使用 0 表示沒有主管
func singleRoot(root *orgtree.Node) *orgtree.Node {
	if !root.IsVirtual() || len(root.Children) != 1 {
		return root
	}
	top := root.Children[0]
	top.Attributes.ManagerID = orgtree.Int64(0)
	return top
}
