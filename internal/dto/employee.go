package dto

import (
	"time"

	"orgchart/internal/orgtree"
	"orgchart/internal/pkg/request"
)

// 調整主管（/update-manager 與 /update-employee-manager 共用）
type UpdateManagerDto struct {
	EmployeeID int64 `json:"employee_id" binding:"required,gt=0"` // 被調整的員工
	// NewManagerID 為 null（或 0）時移到頂層，僅在多個頂層員工的森林中允許
	NewManagerID *int64 `json:"new_manager_id" binding:"omitempty,gte=0"`
	Position     *int   `json:"position,omitempty" binding:"omitempty,gte=0"` // 插入新主管 children 的位置，未給則附加在最後
}

func (UpdateManagerDto) GetMessages() request.ValidatorMessages {
	return request.ValidatorMessages{
		"EmployeeID.required": "employee_id is required",
		"EmployeeID.gt":       "employee_id must be a positive integer",
		"NewManagerID.gte":    "new_manager_id must not be negative",
		"Position.gte":        "position must not be negative",
	}
}

// 互換兩位員工在階層中的位置
type SwapPositionsDto struct {
	Employee1ID int64 `json:"employee1_id" binding:"required,gt=0"`
	Employee2ID int64 `json:"employee2_id" binding:"required,gt=0"`
}

// 批次新增或更新員工
type BatchEmployeeDto struct {
	ID        int64  `json:"id" binding:"required,gt=0"`
	Name      string `json:"name" binding:"required"`
	Title     string `json:"title"`
	ManagerID *int64 `json:"manager_id" binding:"omitempty,gte=0"`
}

type BatchUpsertDto struct {
	Employees []BatchEmployeeDto `json:"employees" binding:"required,min=1,dive"`
}

func (BatchUpsertDto) GetMessages() request.ValidatorMessages {
	return request.ValidatorMessages{
		"Employees.required": "employees is required",
		"Employees.min":      "employees must not be empty",
		"ID.gt":              "every employee needs a positive id",
		"ID.required":        "every employee needs a positive id",
		"Name.required":      "every employee needs a name",
	}
}

type BatchUpsertResponseDto struct {
	Status  string `json:"status"`
	Code    int    `json:"code"`
	Message string `json:"message"`
	Updated int    `json:"updated"`
}

// 關聯式檢視：頂層員工與巢狀部屬
type SubordinateDto struct {
	ID           int64             `json:"id"`
	Name         string            `json:"name"`
	Title        string            `json:"title"`
	ManagerID    *int64            `json:"manager_id"`
	Subordinates []*SubordinateDto `json:"subordinates"`
}

func NewSubordinateDtos(nodes []*orgtree.Node) []*SubordinateDto {
	out := make([]*SubordinateDto, 0, len(nodes))
	for _, node := range nodes {
		out = append(out, &SubordinateDto{
			ID:           node.ID(),
			Name:         node.Name,
			Title:        node.Attributes.Title,
			ManagerID:    node.Attributes.ManagerID,
			Subordinates: NewSubordinateDtos(node.Children),
		})
	}
	return out
}

type ApiInfoDto struct {
	API         string `json:"api"`
	Version     string `json:"version"`
	DateCreated string `json:"date_created"` // dd-mm-yyyy（UTC）
	Database    string `json:"database"`
}

type IntegrityReportDto struct {
	Backend   string            `json:"backend"`
	Employees int               `json:"employees"`
	Anomalies []orgtree.Anomaly `json:"anomalies"`
	CheckedAt time.Time         `json:"checked_at"`
}

func (r *IntegrityReportDto) Healthy() bool {
	return len(r.Anomalies) == 0
}
