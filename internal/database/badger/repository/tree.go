package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"orgchart/internal/core"
	client "orgchart/internal/database/client"
	"orgchart/internal/orgtree"

	"github.com/dgraph-io/badger/v4"
)

// TreeRepository 將整棵樹序列化後存在單一 key
type TreeRepository struct {
	db  *badger.DB
	key []byte
}

func NewTreeRepository(badgerClient *client.BadgerClient) *TreeRepository {
	return &TreeRepository{db: badgerClient.DB(), key: []byte(core.BadgerKeyOrgTree)}
}

func (repository *TreeRepository) Backend() string {
	return string(core.StorageBadger)
}

func (repository *TreeRepository) Exists(_ context.Context) (bool, error) {
	err := repository.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(repository.key)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("badger get: %w", err)
	}
	return true, nil
}

func (repository *TreeRepository) Load(_ context.Context) (*orgtree.Node, error) {
	var root *orgtree.Node
	err := repository.db.View(func(txn *badger.Txn) error {
		var err error
		root, err = repository.read(txn)
		return err
	})
	if err != nil {
		return nil, err
	}
	return root, nil
}

func (repository *TreeRepository) Save(_ context.Context, root *orgtree.Node) error {
	return repository.db.Update(func(txn *badger.Txn) error {
		return repository.write(txn, root)
	})
}

// Update 在同一個 badger 交易中讀寫；併發寫入衝突時回傳 badger.ErrConflict
func (repository *TreeRepository) Update(_ context.Context, fn func(root *orgtree.Node) error) error {
	return repository.db.Update(func(txn *badger.Txn) error {
		root, err := repository.read(txn)
		if err != nil {
			return err
		}
		if err := fn(root); err != nil {
			return err
		}
		return repository.write(txn, root)
	})
}

func (repository *TreeRepository) read(txn *badger.Txn) (*orgtree.Node, error) {
	item, err := txn.Get(repository.key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return orgtree.NewVirtualRoot(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("badger get: %w", err)
	}
	var root orgtree.Node
	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, &root)
	})
	if err != nil {
		return nil, fmt.Errorf("decode tree: %w", err)
	}
	if err := orgtree.FillChildren(&root); err != nil {
		return nil, fmt.Errorf("decode tree: %w", err)
	}
	return &root, nil
}

func (repository *TreeRepository) write(txn *badger.Txn, root *orgtree.Node) error {
	data, err := json.Marshal(root)
	if err != nil {
		return fmt.Errorf("encode tree: %w", err)
	}
	if err := txn.Set(repository.key, data); err != nil {
		return fmt.Errorf("badger set: %w", err)
	}
	return nil
}
