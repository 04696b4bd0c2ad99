package telemetry

import (
	"testing"

	"orgchart/config"

	"github.com/stretchr/testify/assert"
)

func TestMetricPrefix(t *testing.T) {
	assert.Equal(t, "organi_flow_api_", metricPrefix("organi-flow-api"))
	assert.Equal(t, "", metricPrefix(""))
}

func TestNewMetric_DisabledIsNoop(t *testing.T) {
	m := NewMetric(&config.Configuration{})
	assert.Nil(t, m.ReparentTotal)

	assert.NotPanics(t, func() {
		m.ObserveReparent("ok")
		m.ObserveTree(3, 0)
	})

	var nilMetric *Metric
	assert.NotPanics(t, func() { nilMetric.ObserveReparent("ok") })
}

func TestPrettifyFuncName(t *testing.T) {
	assert.Equal(t, "HierarchyService.Reparent",
		prettifyFuncName("orgchart/internal/service.(*HierarchyService).Reparent"))
	assert.Equal(t, "HierarchyService.Reparent",
		prettifyFuncName("orgchart/internal/service.(*HierarchyService).Reparent.func1"))
}

func TestNoopTrace(t *testing.T) {
	tr := NewNoopTrace()
	ctx, span, end := tr.WithSpan(t.Context(), "test")
	assert.NotNil(t, ctx)
	assert.NotNil(t, span)
	assert.NotPanics(t, func() { end(nil) })
	assert.NoError(t, tr.Shutdown(t.Context()))
}
