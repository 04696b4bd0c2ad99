package model

// HierarchyEventLog 每次變更組織樹後送出的稽核用事件
type HierarchyEventLog struct {
	RequestID    string `json:"request_id,omitempty"`
	ProjectName  string `json:"project_name,omitempty"`
	Op           string `json:"op"`
	Storage      string `json:"storage"`
	EmployeeID   int64  `json:"employee_id,omitempty"`
	NewManagerID *int64 `json:"new_manager_id,omitempty"`
	Employees    int    `json:"employees"`
	Result       string `json:"result"`
	Error        string `json:"error,omitempty"`
	Version      string `json:"version,omitempty"`
	LoggedAt     string `json:"logged_at"`
}
