package service

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"orgchart/internal/database"
)

// ErrStarting bootstrap 尚未完成
var ErrStarting = errors.New("service is starting")

// readinessTimeout 儲存體探測的上限；超過視為未就緒
const readinessTimeout = 2 * time.Second

type HealthService struct {
	live  atomic.Bool
	ready atomic.Bool
	store database.TreeStore
}

func NewHealthService(store database.TreeStore) *HealthService {
	s := &HealthService{store: store}
	s.live.Store(true)
	s.ready.Store(false) // bootstrap 完成後再打開
	return s
}

func (s *HealthService) SetReady(v bool) {
	s.ready.Store(v)
}

func (s *HealthService) IsLive() bool {
	return s.live.Load()
}

// Readiness 啟動完成且儲存體可回應時才就緒，回傳後端名稱與失敗原因
func (s *HealthService) Readiness(ctx context.Context) (backend string, err error) {
	backend = s.store.Backend()
	if !s.ready.Load() {
		return backend, ErrStarting
	}
	ctx, cancel := context.WithTimeout(ctx, readinessTimeout)
	defer cancel()
	if _, err := s.store.Exists(ctx); err != nil {
		return backend, err
	}
	return backend, nil
}
