package cron

import (
	"context"
	"time"

	"orgchart/internal/service"

	"go.uber.org/zap"
)

const integrityTimeout = 30 * time.Second

// IntegrityJob 定期檢查儲存的組織樹
type IntegrityJob struct {
	logger    *zap.Logger
	hierarchy *service.HierarchyService
}

func NewIntegrityJob(logger *zap.Logger, hierarchy *service.HierarchyService) *IntegrityJob {
	return &IntegrityJob{logger: logger, hierarchy: hierarchy}
}

func (job *IntegrityJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), integrityTimeout)
	defer cancel()

	report, err := job.hierarchy.CheckIntegrity(ctx)
	if err != nil {
		job.logger.Error("integrity check failed", zap.Error(err))
		return
	}
	if report.Healthy() {
		job.logger.Debug("integrity check passed",
			zap.String("storage", report.Backend),
			zap.Int("employees", report.Employees),
		)
		return
	}
	job.logger.Warn("integrity check found anomalies",
		zap.String("storage", report.Backend),
		zap.Int("employees", report.Employees),
		zap.Int("anomalies", len(report.Anomalies)),
	)
}
