package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"orgchart/config"
	"orgchart/internal/database/client"
	fluentdRepo "orgchart/internal/database/fluentd/repository"
	"orgchart/internal/dto"
	"orgchart/internal/orgtree"
	cErr "orgchart/internal/pkg/error"
	"orgchart/internal/telemetry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// memStore 以記憶體保存組織樹；Update 在 fn 成功後才替換
type memStore struct {
	root    *orgtree.Node
	saves   int
	loadErr error
	saveErr error
}

func (m *memStore) Load(context.Context) (*orgtree.Node, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	if m.root == nil {
		return orgtree.NewVirtualRoot(), nil
	}
	return m.root.Clone(), nil
}

func (m *memStore) Save(_ context.Context, root *orgtree.Node) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.root = root.Clone()
	m.saves++
	return nil
}

func (m *memStore) Update(ctx context.Context, fn func(root *orgtree.Node) error) error {
	root, err := m.Load(ctx)
	if err != nil {
		return err
	}
	if err := fn(root); err != nil {
		return err
	}
	return m.Save(ctx, root)
}

func (m *memStore) Exists(context.Context) (bool, error) {
	return m.root != nil, m.loadErr
}

func (m *memStore) Backend() string {
	return "memory"
}

func newHierarchyService(t *testing.T, store *memStore) *HierarchyService {
	t.Helper()
	conf := &config.Configuration{App: config.App{Name: "organi-flow-api", Version: "1.0.0"}}
	fluentdClient, cleanup, err := client.NewFluentdClient(zap.NewNop(), conf)
	require.NoError(t, err)
	t.Cleanup(cleanup)
	return NewHierarchyService(
		conf,
		zap.NewNop(),
		telemetry.NewNoopTrace(),
		telemetry.NewMetric(conf),
		store,
		fluentdRepo.NewLogRepository(conf, fluentdClient),
	)
}

func TestHierarchyService_ReparentScenario(t *testing.T) {
	store := &memStore{root: ceoTree()}
	svc := newHierarchyService(t, store)
	ctx := t.Context()

	// B 移到 C 之下
	require.NoError(t, svc.Reparent(ctx, &dto.UpdateManagerDto{EmployeeID: 3, NewManagerID: orgtree.Int64(4)}))
	root, err := svc.Tree(ctx)
	require.NoError(t, err)
	c, _ := orgtree.FindNode(root, 4)
	assert.Equal(t, []int64{3}, ids(c.Children))
	assert.Equal(t, 1, store.saves)

	// A 不能移到自己底下
	err = svc.Reparent(ctx, &dto.UpdateManagerDto{EmployeeID: 2, NewManagerID: orgtree.Int64(2)})
	assert.Equal(t, cErr.INVALID_OPERATION, errorCode(t, err))

	// CEO 不能移到部屬底下
	err = svc.Reparent(ctx, &dto.UpdateManagerDto{EmployeeID: 1, NewManagerID: orgtree.Int64(3)})
	assert.Equal(t, cErr.INVALID_OPERATION, errorCode(t, err))

	// 不存在的主管
	err = svc.Reparent(ctx, &dto.UpdateManagerDto{EmployeeID: 3, NewManagerID: orgtree.Int64(999)})
	assert.Equal(t, cErr.NOT_FOUND, errorCode(t, err))

	assert.Equal(t, 1, store.saves, "failed operations must not persist")
	after, err := svc.Tree(ctx)
	require.NoError(t, err)
	assert.Equal(t, root, after)
}

func TestHierarchyService_ReparentZeroManagerMeansTopLevel(t *testing.T) {
	forest := orgtree.NewVirtualRoot()
	forest.Children = append(forest.Children, ceoTree())
	orgtree.Normalize(forest)
	store := &memStore{root: forest}
	svc := newHierarchyService(t, store)

	require.NoError(t, svc.Reparent(t.Context(), &dto.UpdateManagerDto{EmployeeID: 4, NewManagerID: orgtree.Int64(0)}))

	subordinates, err := svc.Subordinates(t.Context())
	require.NoError(t, err)
	require.Len(t, subordinates, 2)
	assert.Equal(t, int64(4), subordinates[1].ID)
	assert.Nil(t, subordinates[1].ManagerID)
	assert.Equal(t, int64(2), subordinates[0].Subordinates[0].ID)
}

func TestHierarchyService_StorageErrors(t *testing.T) {
	boom := errors.New("disk on fire")

	svc := newHierarchyService(t, &memStore{loadErr: boom})
	_, err := svc.Tree(t.Context())
	assert.Equal(t, cErr.STORAGE_ERROR, errorCode(t, err))
	assert.ErrorIs(t, err, boom)

	err = svc.Reparent(t.Context(), &dto.UpdateManagerDto{EmployeeID: 3, NewManagerID: orgtree.Int64(4)})
	assert.Equal(t, cErr.STORAGE_ERROR, errorCode(t, err))

	svc = newHierarchyService(t, &memStore{root: ceoTree(), saveErr: boom})
	err = svc.Reparent(t.Context(), &dto.UpdateManagerDto{EmployeeID: 3, NewManagerID: orgtree.Int64(4)})
	assert.Equal(t, cErr.STORAGE_ERROR, errorCode(t, err))
	assert.Equal(t, "storage unavailable", err.(*cErr.Error).ErrorDesc())
}

func TestHierarchyService_Bootstrap(t *testing.T) {
	store := &memStore{}
	svc := newHierarchyService(t, store)

	created, err := svc.Bootstrap(t.Context())
	require.NoError(t, err)
	assert.True(t, created)

	root, err := svc.Tree(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "John Smith", root.Name)
	assert.Equal(t, int64(0), *root.Attributes.ManagerID)

	created, err = svc.Bootstrap(t.Context())
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, 1, store.saves)
}

func TestHierarchyService_SeedAndCheck(t *testing.T) {
	svc := newHierarchyService(t, &memStore{})

	count, err := svc.Seed(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 15, count)

	report, err := svc.CheckIntegrity(t.Context())
	require.NoError(t, err)
	assert.True(t, report.Healthy())
	assert.Equal(t, 15, report.Employees)
	assert.Equal(t, "memory", report.Backend)
}

func TestHierarchyService_CheckReportsAnomalies(t *testing.T) {
	broken := ceoTree()
	broken.Children[1].Attributes.ManagerID = orgtree.Int64(2)
	svc := newHierarchyService(t, &memStore{root: broken})

	report, err := svc.CheckIntegrity(t.Context())
	require.NoError(t, err)
	require.Len(t, report.Anomalies, 1)
	assert.Equal(t, orgtree.AnomalyManagerMismatch, report.Anomalies[0].Kind)
}

func TestHierarchyService_ReplaceTree(t *testing.T) {
	store := &memStore{root: ceoTree()}
	svc := newHierarchyService(t, store)

	replacement := node(10, "New CEO", nil, node(11, "VP", orgtree.Int64(99)))
	require.NoError(t, svc.ReplaceTree(t.Context(), replacement))

	root, err := svc.Tree(t.Context())
	require.NoError(t, err)
	assert.Equal(t, int64(10), root.ID())
	assert.Equal(t, int64(10), *root.Children[0].Attributes.ManagerID, "normalized to structural parent")

	err = svc.ReplaceTree(t.Context(), node(10, "A", nil, node(10, "B", nil)))
	assert.Equal(t, cErr.BAD_REQUEST_BODY, errorCode(t, err))
	assert.Equal(t, 1, store.saves)
}

func TestHierarchyService_ReplaceTreeRejectsNullChild(t *testing.T) {
	store := &memStore{root: ceoTree()}
	svc := newHierarchyService(t, store)

	var body orgtree.Node
	require.NoError(t, json.Unmarshal([]byte(`{"name":"CEO","attributes":{"id":1},"children":[null]}`), &body))

	err := svc.ReplaceTree(t.Context(), &body)
	assert.Equal(t, cErr.BAD_REQUEST_BODY, errorCode(t, err))
	assert.Zero(t, store.saves)
}

func TestHierarchyService_ReplaceTreeResetsRootManager(t *testing.T) {
	store := &memStore{root: ceoTree()}
	svc := newHierarchyService(t, store)

	require.NoError(t, svc.ReplaceTree(t.Context(), node(10, "New CEO", orgtree.Int64(7))))

	root, err := svc.Tree(t.Context())
	require.NoError(t, err)
	assert.Equal(t, int64(0), *root.Attributes.ManagerID)
}

func TestHierarchyService_BatchIsAllOrNothing(t *testing.T) {
	store := &memStore{root: ceoTree()}
	svc := newHierarchyService(t, store)

	_, err := svc.BatchUpsert(t.Context(), &dto.BatchUpsertDto{Employees: []dto.BatchEmployeeDto{
		{ID: 5, Name: "D", ManagerID: orgtree.Int64(4)},
		{ID: 6, Name: "E", ManagerID: orgtree.Int64(404)},
	}})
	assert.Equal(t, cErr.NOT_FOUND, errorCode(t, err))
	assert.Zero(t, store.saves)

	updated, err := svc.BatchUpsert(t.Context(), &dto.BatchUpsertDto{Employees: []dto.BatchEmployeeDto{
		{ID: 5, Name: "D", ManagerID: orgtree.Int64(4)},
		{ID: 6, Name: "E", ManagerID: orgtree.Int64(5)},
	}})
	require.NoError(t, err)
	assert.Equal(t, 2, updated)

	root, _ := svc.Tree(t.Context())
	assert.Equal(t, 6, orgtree.Len(root))
}

func TestHierarchyService_Swap(t *testing.T) {
	svc := newHierarchyService(t, &memStore{root: ceoTree()})

	require.NoError(t, svc.Swap(t.Context(), &dto.SwapPositionsDto{Employee1ID: 3, Employee2ID: 4}))
	root, _ := svc.Tree(t.Context())
	assert.Equal(t, []int64{2, 3}, ids(root.Children))

	err := svc.Swap(t.Context(), &dto.SwapPositionsDto{Employee1ID: 3, Employee2ID: 3})
	assert.Equal(t, cErr.INVALID_OPERATION, errorCode(t, err))
}

func TestHierarchyService_Info(t *testing.T) {
	info := newHierarchyService(t, &memStore{}).Info()
	assert.Equal(t, "organi-flow-api", info.API)
	assert.Equal(t, "memory", info.Database)
	assert.Regexp(t, `^\d{2}-\d{2}-\d{4}$`, info.DateCreated)
}
