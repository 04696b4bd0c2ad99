package handler

import (
	"errors"
	"net/http"

	"orgchart/internal/service"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	healthStatus *service.HealthService
}

func NewHealthHandler(status *service.HealthService) *HealthHandler {
	return &HealthHandler{healthStatus: status}
}

// Liveness 行程存活
// @Summary 存活檢查
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health/liveness [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	if h.healthStatus.IsLive() {
		c.JSON(http.StatusOK, gin.H{"status": "alive"})
		return
	}
	c.Status(http.StatusServiceUnavailable)
}

// Readiness 啟動完成且組織樹儲存體可回應
// @Summary 就緒檢查
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health/readiness [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	backend, err := h.healthStatus.Readiness(c.Request.Context())
	if err != nil {
		reason := "storage unavailable"
		if errors.Is(err, service.ErrStarting) {
			reason = err.Error()
		}
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not-ready", "storage": backend, "reason": reason})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready", "storage": backend})
}
