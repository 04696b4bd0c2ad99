package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"orgchart/internal/core"
	"orgchart/internal/orgtree"
	"orgchart/internal/telemetry"

	"go.uber.org/zap"
)

const (
	dirPerm  fs.FileMode = 0o755
	filePerm fs.FileMode = 0o644
)

// TreeRepository 將整棵樹以巢狀 JSON 存在單一檔案
type TreeRepository struct {
	path   string
	logger *zap.Logger
	trace  *telemetry.Trace
	// mu 只序列化同一行程內的 Update；多個行程同時寫入仍是 last-writer-wins
	mu sync.Mutex
}

func NewTreeRepository(logger *zap.Logger, trace *telemetry.Trace, path string) *TreeRepository {
	return &TreeRepository{path: path, logger: logger, trace: trace}
}

func (repository *TreeRepository) Backend() string {
	return string(core.StorageFile)
}

func (repository *TreeRepository) Exists(_ context.Context) (bool, error) {
	_, err := os.Stat(repository.path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("stat %s: %w", repository.path, err)
}

// Load 檔案不存在時回傳預設的 Root 節點
func (repository *TreeRepository) Load(contextValue context.Context) (_ *orgtree.Node, returnedError error) {
	_, span, endSpan := repository.trace.WithSpan(contextValue)
	defer func() { endSpan(returnedError) }()

	data, err := os.ReadFile(repository.path)
	if errors.Is(err, fs.ErrNotExist) {
		return orgtree.NewVirtualRoot(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", repository.path, err)
	}
	repository.trace.ApplyTraceAttributes(span, core.TraceStorageMeta{Driver: repository.Backend(), Op: "load", Bytes: len(data)})

	var root orgtree.Node
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("decode %s: %w", repository.path, err)
	}
	if err := orgtree.FillChildren(&root); err != nil {
		return nil, fmt.Errorf("decode %s: %w", repository.path, err)
	}
	return &root, nil
}

// Save 先寫入同目錄的暫存檔再 rename，讀者不會看到寫到一半的檔案
func (repository *TreeRepository) Save(contextValue context.Context, root *orgtree.Node) (returnedError error) {
	_, span, endSpan := repository.trace.WithSpan(contextValue)
	defer func() { endSpan(returnedError) }()

	data, err := json.MarshalIndent(root, "", "  ")
	if err != nil {
		return fmt.Errorf("encode tree: %w", err)
	}
	repository.trace.ApplyTraceAttributes(span, core.TraceStorageMeta{Driver: repository.Backend(), Op: "save", Bytes: len(data)})

	dir := filepath.Dir(repository.path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("create dir %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(repository.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		if returnedError != nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, filePerm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpName, repository.path); err != nil {
		return fmt.Errorf("rename %s: %w", repository.path, err)
	}
	return nil
}

func (repository *TreeRepository) Update(contextValue context.Context, fn func(root *orgtree.Node) error) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	root, err := repository.Load(contextValue)
	if err != nil {
		return err
	}
	if err := fn(root); err != nil {
		return err
	}
	return repository.Save(contextValue, root)
}
