package handler

import (
	"fmt"

	"orgchart/internal/dto"
	"orgchart/internal/orgtree"
	cErr "orgchart/internal/pkg/error"
	"orgchart/internal/pkg/response"
	"orgchart/internal/service"
	"orgchart/internal/telemetry"
	"orgchart/utils/validate"

	"github.com/gin-gonic/gin"
)

const viewSubordinates = "subordinates"

type EmployeeHandler struct {
	trace     *telemetry.Trace
	hierarchy *service.HierarchyService
}

func NewEmployeeHandler(trace *telemetry.Trace, hierarchy *service.HierarchyService) *EmployeeHandler {
	return &EmployeeHandler{trace: trace, hierarchy: hierarchy}
}

// GetEmployees 取得完整組織樹
// @Summary 取得組織樹
// @Description 預設回傳巢狀樹；view=subordinates 時回傳頂層員工與巢狀 subordinates
// @Tags Employee
// @Produce json
// @Param view query string false "subordinates"
// @Success 200 {object} orgtree.Node
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /employees [get]
func (h *EmployeeHandler) GetEmployees(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	var err error
	defer func() { end(err) }()

	switch view := c.Query("view"); view {
	case "":
		var root *orgtree.Node
		if root, err = h.hierarchy.Tree(ctx); err != nil {
			response.AbortWithError(c, err)
			return
		}
		response.Data(c, root)
	case viewSubordinates:
		var list []*dto.SubordinateDto
		if list, err = h.hierarchy.Subordinates(ctx); err != nil {
			response.AbortWithError(c, err)
			return
		}
		response.Data(c, list)
	default:
		err = cErr.BadRequestParams(fmt.Sprintf("unknown view %q", view))
		response.AbortWithError(c, err)
	}
}

// UpdateManager 調整員工的主管
// @Summary 調整主管
// @Description new_manager_id 為 null 或 0 時移到頂層（僅限多個頂層員工）
// @Tags Employee
// @Accept json
// @Produce json
// @Param body body dto.UpdateManagerDto true "調整內容"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /update-manager [post]
// @Router /update-employee-manager [post]
func (h *EmployeeHandler) UpdateManager(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	var req dto.UpdateManagerDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	if err := h.hierarchy.Reparent(ctx, &req); err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, "Tree updated successfully")
}

// ReplaceTree 整棵覆蓋組織樹
// @Summary 覆蓋組織樹
// @Tags Employee
// @Accept json
// @Produce json
// @Param body body orgtree.Node true "完整組織樹"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /employees [put]
func (h *EmployeeHandler) ReplaceTree(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	var root orgtree.Node
	if cause, respErr := validate.BindAndValidate(c, &root); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	if err := h.hierarchy.ReplaceTree(ctx, &root); err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, "Tree updated successfully")
}

// BatchUpsert 批次新增或更新員工
// @Summary 批次新增或更新員工
// @Description 依序套用，任何一筆失敗時整批不寫入
// @Tags Employee
// @Accept json
// @Produce json
// @Param body body dto.BatchUpsertDto true "員工清單"
// @Success 200 {object} dto.BatchUpsertResponseDto
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /employees/batch [post]
func (h *EmployeeHandler) BatchUpsert(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	var req dto.BatchUpsertDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	updated, err := h.hierarchy.BatchUpsert(ctx, &req)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Data(c, dto.BatchUpsertResponseDto{
		Status:  "success",
		Code:    200,
		Message: fmt.Sprintf("%d employees updated", updated),
		Updated: updated,
	})
}

// SwapPositions 兩位員工互換位置
// @Summary 互換位置
// @Tags Employee
// @Accept json
// @Produce json
// @Param body body dto.SwapPositionsDto true "兩位員工"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /swap-positions [post]
func (h *EmployeeHandler) SwapPositions(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	var req dto.SwapPositionsDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	if err := h.hierarchy.Swap(ctx, &req); err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, fmt.Sprintf("Employees %d and %d swapped", req.Employee1ID, req.Employee2ID))
}
