package repository

import (
	"errors"
	"testing"

	"orgchart/config"
	client "orgchart/internal/database/client"
	"orgchart/internal/orgtree"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newRepository(t *testing.T) *TreeRepository {
	t.Helper()
	conf := &config.Configuration{
		Storage: config.Storage{Driver: "badger"},
		Badger:  config.Badger{InMemory: true},
	}
	badgerClient, cleanup, err := client.NewBadgerClient(zap.NewNop(), conf)
	require.NoError(t, err)
	t.Cleanup(cleanup)
	return NewTreeRepository(badgerClient)
}

func sample() *orgtree.Node {
	root := orgtree.NewVirtualRoot()
	root.Children = append(root.Children, &orgtree.Node{
		Name:       "John Smith",
		Attributes: orgtree.Attributes{ID: 1, Title: "CEO"},
		Children: []*orgtree.Node{{
			Name:       "Sarah Johnson",
			Attributes: orgtree.Attributes{ID: 6, Title: "CTO", ManagerID: orgtree.Int64(1)},
			Children:   []*orgtree.Node{},
		}},
	})
	return root
}

func TestTreeRepository_EmptyStore(t *testing.T) {
	repository := newRepository(t)

	exists, err := repository.Exists(t.Context())
	require.NoError(t, err)
	assert.False(t, exists)

	root, err := repository.Load(t.Context())
	require.NoError(t, err)
	assert.True(t, root.IsVirtual())
	assert.Equal(t, "badger", repository.Backend())
}

func TestTreeRepository_SaveLoad(t *testing.T) {
	repository := newRepository(t)
	ctx := t.Context()

	require.NoError(t, repository.Save(ctx, sample()))
	got, err := repository.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, sample(), got)

	exists, err := repository.Exists(ctx)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestTreeRepository_UpdateIsAllOrNothing(t *testing.T) {
	repository := newRepository(t)
	ctx := t.Context()
	require.NoError(t, repository.Save(ctx, sample()))

	boom := errors.New("boom")
	err := repository.Update(ctx, func(root *orgtree.Node) error {
		_, _ = orgtree.Detach(root, 6)
		return boom
	})
	assert.ErrorIs(t, err, boom)
	got, err := repository.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, sample(), got)

	require.NoError(t, repository.Update(ctx, func(root *orgtree.Node) error {
		cto, err := orgtree.Detach(root, 6)
		if err != nil {
			return err
		}
		cto.Attributes.ManagerID = nil
		return orgtree.Attach(root, 0, cto)
	}))
	got, err = repository.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, got.Children, 2)
	assert.Empty(t, got.Children[0].Children)
}

func TestTreeRepository_LoadNullChildEntry(t *testing.T) {
	repository := newRepository(t)
	require.NoError(t, repository.db.Update(func(txn *badger.Txn) error {
		return txn.Set(repository.key, []byte(`{"name":"CEO","attributes":{"id":1},"children":[{"name":"A","attributes":{"id":2},"children":[null]}]}`))
	}))

	_, err := repository.Load(t.Context())
	require.Error(t, err)
	assert.True(t, errors.Is(err, orgtree.ErrNilChild))
	assert.Contains(t, err.Error(), "employee 2, index 0")
}
