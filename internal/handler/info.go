package handler

import (
	"orgchart/internal/pkg/response"
	"orgchart/internal/service"

	"github.com/gin-gonic/gin"
)

type InfoHandler struct {
	hierarchy *service.HierarchyService
}

func NewInfoHandler(hierarchy *service.HierarchyService) *InfoHandler {
	return &InfoHandler{hierarchy: hierarchy}
}

// Info API 基本資訊
// @Summary API 資訊
// @Tags Info
// @Produce json
// @Success 200 {object} dto.ApiInfoDto
// @Router / [get]
func (h *InfoHandler) Info(c *gin.Context) {
	response.Data(c, h.hierarchy.Info())
}
