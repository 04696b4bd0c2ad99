package repository

import (
	"testing"

	"orgchart/config"
	"orgchart/internal/database/client"
	"orgchart/internal/database/fluentd/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLogRepository_DisabledClientIsNoop(t *testing.T) {
	conf := &config.Configuration{App: config.App{Name: "organi-flow-api"}}
	fluentdClient, cleanup, err := client.NewFluentdClient(zap.NewNop(), conf)
	require.NoError(t, err)
	defer cleanup()
	assert.False(t, fluentdClient.Enabled())
	assert.Equal(t, "orgchart.request_log", fluentdClient.Tag("request_log"))

	repository := NewLogRepository(conf, fluentdClient)
	assert.Equal(t, "1.0.0", repository.version)
	assert.NoError(t, repository.LogRequest(t.Context(), model.RequestLog{Path: "/employees"}))
	assert.NoError(t, repository.LogResponse(t.Context(), model.ResponseLog{StatusCode: 200}))
	assert.NoError(t, repository.LogHierarchyEvent(t.Context(), model.HierarchyEventLog{Op: "reparent"}))
}
