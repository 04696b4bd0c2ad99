package command

import (
	"bytes"
	"path/filepath"
	"testing"

	"orgchart/config"
	commandHandler "orgchart/internal/command/handler"
	"orgchart/internal/database/client"
	fileRepo "orgchart/internal/database/file/repository"
	fluentdRepo "orgchart/internal/database/fluentd/repository"
	"orgchart/internal/orgtree"
	"orgchart/internal/service"
	"orgchart/internal/telemetry"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newRootCommand(t *testing.T) (*cobra.Command, *fileRepo.TreeRepository, *bytes.Buffer) {
	t.Helper()
	conf := &config.Configuration{Storage: config.Storage{Driver: "file", FilePath: filepath.Join(t.TempDir(), "tree.json")}}
	logger := zap.NewNop()
	trace := telemetry.NewNoopTrace()
	fluentdClient, cleanup, err := client.NewFluentdClient(logger, conf)
	require.NoError(t, err)
	t.Cleanup(cleanup)

	store := fileRepo.NewTreeRepository(logger, trace, conf.Storage.FilePath)
	hierarchy := service.NewHierarchyService(conf, logger, trace, telemetry.NewMetric(conf), store, fluentdRepo.NewLogRepository(conf, fluentdClient))

	out := &bytes.Buffer{}
	root := &cobra.Command{Use: "app", SilenceErrors: true}
	root.SetOut(out)
	root.SetErr(out)
	Register(root, func() (*Command, func(), error) {
		return NewCommand(commandHandler.NewHierarchyHandler(logger, hierarchy)), func() {}, nil
	})
	return root, store, out
}

func TestSeedThenCheck(t *testing.T) {
	root, store, out := newRootCommand(t)

	root.SetArgs([]string{"seed"})
	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "seeded 15 employees into file storage")

	tree, err := store.Load(t.Context())
	require.NoError(t, err)
	assert.Equal(t, int64(1), tree.ID())

	out.Reset()
	root.SetArgs([]string{"check"})
	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), `"employees": 15`)
}

func TestCheckFailsOnAnomalies(t *testing.T) {
	root, store, _ := newRootCommand(t)

	broken := &orgtree.Node{
		Name:       "CEO",
		Attributes: orgtree.Attributes{ID: 1},
		Children: []*orgtree.Node{
			{Name: "Wrong", Attributes: orgtree.Attributes{ID: 2, ManagerID: orgtree.Int64(7)}, Children: []*orgtree.Node{}},
		},
	}
	require.NoError(t, store.Save(t.Context(), broken))

	root.SetArgs([]string{"check"})
	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 anomalies")
}
