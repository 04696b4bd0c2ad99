package command

import (
	"encoding/json"
	"fmt"

	"orgchart/internal/service"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type HierarchyHandler struct {
	logger    *zap.Logger
	hierarchy *service.HierarchyService
}

func NewHierarchyHandler(logger *zap.Logger, hierarchy *service.HierarchyService) *HierarchyHandler {
	return &HierarchyHandler{
		logger:    logger,
		hierarchy: hierarchy,
	}
}

// Seed 以範例資料覆蓋目前的組織樹
func (handler *HierarchyHandler) Seed(cmd *cobra.Command, args []string) error {
	count, err := handler.hierarchy.Seed(cmd.Context())
	if err != nil {
		return err
	}
	cmd.Printf("seeded %d employees into %s storage\n", count, handler.hierarchy.Info().Database)
	return nil
}

// Check 輸出整合性報告；有異常時回傳錯誤讓指令以非 0 結束
func (handler *HierarchyHandler) Check(cmd *cobra.Command, args []string) error {
	report, err := handler.hierarchy.CheckIntegrity(cmd.Context())
	if err != nil {
		return err
	}
	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	cmd.Println(string(out))
	if !report.Healthy() {
		return fmt.Errorf("hierarchy has %d anomalies", len(report.Anomalies))
	}
	return nil
}
