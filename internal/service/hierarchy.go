package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"orgchart/config"
	"orgchart/internal/core"
	"orgchart/internal/database"
	fluentdModel "orgchart/internal/database/fluentd/model"
	fluentdRepo "orgchart/internal/database/fluentd/repository"
	"orgchart/internal/dto"
	"orgchart/internal/orgtree"
	cErr "orgchart/internal/pkg/error"
	"orgchart/internal/telemetry"

	"go.uber.org/zap"
)

const (
	resultSuccess = "success"
	resultFailed  = "failed"
)

type HierarchyService struct {
	conf     *config.Configuration
	logger   *zap.Logger
	trace    *telemetry.Trace
	metric   *telemetry.Metric
	store    database.TreeStore
	eventLog *fluentdRepo.LogRepository
}

func NewHierarchyService(
	conf *config.Configuration,
	logger *zap.Logger,
	trace *telemetry.Trace,
	metric *telemetry.Metric,
	store database.TreeStore,
	eventLog *fluentdRepo.LogRepository,
) *HierarchyService {
	return &HierarchyService{
		conf:     conf,
		logger:   logger,
		trace:    trace,
		metric:   metric,
		store:    store,
		eventLog: eventLog,
	}
}

// Tree 回傳完整組織樹
func (s *HierarchyService) Tree(ctx context.Context) (*orgtree.Node, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	var err error
	defer func() { end(err) }()

	root, loadErr := s.store.Load(ctx)
	if loadErr != nil {
		err = s.translate("load tree", loadErr)
		return nil, err
	}
	return root, nil
}

// Subordinates 關聯式檢視：頂層員工與巢狀 subordinates
func (s *HierarchyService) Subordinates(ctx context.Context) ([]*dto.SubordinateDto, error) {
	root, err := s.Tree(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewSubordinateDtos(topLevel(root)), nil
}

// Reparent 將員工移到新主管之下；newManagerID 為 nil 或 0 時移到頂層。
// 驗證失敗時不會寫入儲存體。
func (s *HierarchyService) Reparent(ctx context.Context, req *dto.UpdateManagerDto) error {
	ctx, span, end := s.trace.WithSpan(ctx)
	var err error
	defer func() { end(err) }()

	managerID := managerOf(req.NewManagerID)
	position := -1
	if req.Position != nil {
		position = *req.Position
	}

	err = s.update(ctx, func(root *orgtree.Node) error {
		return reparent(root, req.EmployeeID, managerID, position)
	})

	meta := core.TraceHierarchyMeta{
		Op:         "reparent",
		Storage:    s.store.Backend(),
		EmployeeID: req.EmployeeID,
		Position:   position,
		Result:     resultOf(err),
	}
	if managerID != nil {
		meta.NewManagerID = *managerID
	}
	s.trace.ApplyTraceAttributes(span, meta)
	s.metric.ObserveReparent(meta.Result)
	s.recordEvent(ctx, fluentdModel.HierarchyEventLog{
		RequestID:    span.SpanContext().TraceID().String(),
		Op:           meta.Op,
		EmployeeID:   req.EmployeeID,
		NewManagerID: managerID,
	}, err)
	return err
}

// ReplaceTree 以請求內容整棵覆蓋組織樹
func (s *HierarchyService) ReplaceTree(ctx context.Context, root *orgtree.Node) error {
	ctx, span, end := s.trace.WithSpan(ctx)
	var err error
	defer func() { end(err) }()

	if err = checkShape(root); err != nil {
		return err
	}
	orgtree.Normalize(root)
	if err = validateTree(root); err != nil {
		return err
	}
	if saveErr := s.store.Save(ctx, root); saveErr != nil {
		err = s.translate("replace tree", saveErr)
	}

	s.trace.ApplyTraceAttributes(span, core.TraceHierarchyMeta{
		Op:        "replace",
		Storage:   s.store.Backend(),
		Employees: orgtree.Len(root),
		Result:    resultOf(err),
	})
	s.recordEvent(ctx, fluentdModel.HierarchyEventLog{
		RequestID: span.SpanContext().TraceID().String(),
		Op:        "replace",
		Employees: orgtree.Len(root),
	}, err)
	return err
}

// BatchUpsert 依序新增或更新多位員工；任何一筆失敗整批不寫入
func (s *HierarchyService) BatchUpsert(ctx context.Context, req *dto.BatchUpsertDto) (int, error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	var err error
	defer func() { end(err) }()

	err = s.update(ctx, func(root *orgtree.Node) error {
		return upsertEmployees(root, req.Employees)
	})

	s.trace.ApplyTraceAttributes(span, core.TraceHierarchyMeta{
		Op:        "batch",
		Storage:   s.store.Backend(),
		Employees: len(req.Employees),
		Result:    resultOf(err),
	})
	s.recordEvent(ctx, fluentdModel.HierarchyEventLog{
		RequestID: span.SpanContext().TraceID().String(),
		Op:        "batch",
		Employees: len(req.Employees),
	}, err)
	if err != nil {
		return 0, err
	}
	return len(req.Employees), nil
}

// Swap 兩位員工互換位置
func (s *HierarchyService) Swap(ctx context.Context, req *dto.SwapPositionsDto) error {
	ctx, span, end := s.trace.WithSpan(ctx)
	var err error
	defer func() { end(err) }()

	err = s.update(ctx, func(root *orgtree.Node) error {
		return swapPositions(root, req.Employee1ID, req.Employee2ID)
	})

	s.trace.ApplyTraceAttributes(span, core.TraceHierarchyMeta{
		Op:           "swap",
		Storage:      s.store.Backend(),
		EmployeeID:   req.Employee1ID,
		NewManagerID: req.Employee2ID,
		Result:       resultOf(err),
	})
	s.recordEvent(ctx, fluentdModel.HierarchyEventLog{
		RequestID:  span.SpanContext().TraceID().String(),
		Op:         "swap",
		EmployeeID: req.Employee1ID,
	}, err)
	return err
}

// Bootstrap 儲存體尚未初始化時寫入預設 CEO
func (s *HierarchyService) Bootstrap(ctx context.Context) (bool, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	var err error
	defer func() { end(err) }()

	exists, existsErr := s.store.Exists(ctx)
	if existsErr != nil {
		err = s.translate("check store", existsErr)
		return false, err
	}
	if exists {
		return false, nil
	}
	if saveErr := s.store.Save(ctx, DefaultRoot()); saveErr != nil {
		err = s.translate("bootstrap", saveErr)
		return false, err
	}
	s.logger.Info("hierarchy bootstrapped", zap.String("storage", s.store.Backend()))
	return true, nil
}

// Seed 以範例資料覆蓋組織樹，回傳寫入的員工數
func (s *HierarchyService) Seed(ctx context.Context) (int, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	var err error
	defer func() { end(err) }()

	root, anomalies := orgtree.Build(SeedRows())
	for _, a := range anomalies {
		s.logger.Warn("seed data anomaly", zap.String("anomaly", a.String()))
	}
	orgtree.Normalize(root)
	root = singleRoot(root)

	if saveErr := s.store.Save(ctx, root); saveErr != nil {
		err = s.translate("seed", saveErr)
		return 0, err
	}
	count := orgtree.Len(root)
	s.logger.Info("hierarchy seeded", zap.String("storage", s.store.Backend()), zap.Int("employees", count))
	return count, nil
}

// CheckIntegrity 檢查目前儲存的組織樹是否違反不變量
func (s *HierarchyService) CheckIntegrity(ctx context.Context) (*dto.IntegrityReportDto, error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	var err error
	defer func() { end(err) }()

	root, loadErr := s.store.Load(ctx)
	if loadErr != nil {
		err = s.translate("integrity check", loadErr)
		return nil, err
	}
	report := &dto.IntegrityReportDto{
		Backend:   s.store.Backend(),
		Employees: orgtree.Len(root),
		Anomalies: orgtree.Validate(root),
		CheckedAt: time.Now().UTC(),
	}
	if report.Anomalies == nil {
		report.Anomalies = []orgtree.Anomaly{}
	}

	s.metric.ObserveTree(report.Employees, len(report.Anomalies))
	s.trace.ApplyTraceAttributes(span, core.TraceHierarchyMeta{
		Op:        "integrity",
		Storage:   report.Backend,
		Employees: report.Employees,
		Anomalies: len(report.Anomalies),
		Result:    resultSuccess,
	})
	for _, a := range report.Anomalies {
		s.logger.Warn("hierarchy anomaly", zap.String("kind", string(a.Kind)), zap.Int64("id", a.ID), zap.String("detail", a.Detail))
	}
	return report, nil
}

// Info API 基本資訊
func (s *HierarchyService) Info() *dto.ApiInfoDto {
	return &dto.ApiInfoDto{
		API:         s.conf.App.Name,
		Version:     s.conf.App.Version,
		DateCreated: time.Now().UTC().Format("02-01-2006"),
		Database:    s.store.Backend(),
	}
}

func (s *HierarchyService) update(ctx context.Context, fn func(root *orgtree.Node) error) error {
	err := s.store.Update(ctx, fn)
	if err == nil {
		return nil
	}
	return s.translate("update tree", err)
}

// translate 業務錯誤原樣回傳，其餘一律視為儲存錯誤
func (s *HierarchyService) translate(op string, err error) error {
	var appErr *cErr.Error
	if errors.As(err, &appErr) {
		return appErr
	}
	s.logger.Error("storage failure",
		zap.String("op", op),
		zap.String("storage", s.store.Backend()),
		zap.Error(err),
	)
	return cErr.StorageError(fmt.Errorf("%s: %w", op, err))
}

func (s *HierarchyService) recordEvent(ctx context.Context, event fluentdModel.HierarchyEventLog, err error) {
	event.Storage = s.store.Backend()
	event.Result = resultOf(err)
	if err != nil {
		event.Error = err.Error()
	}
	if postErr := s.eventLog.LogHierarchyEvent(ctx, event); postErr != nil {
		s.logger.Warn("fluentd hierarchy event failed", zap.Error(postErr))
	}
}

func resultOf(err error) string {
	if err != nil {
		return resultFailed
	}
	return resultSuccess
}
