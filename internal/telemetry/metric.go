package telemetry

import (
	"strconv"
	"time"

	"orgchart/config"
	"orgchart/internal/core"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric struct
type Metric struct {
	HttpRequestsTotal   *prometheus.CounterVec
	HttpRequestDuration *prometheus.HistogramVec
	RequestSuccessTotal *prometheus.CounterVec
	RequestFailTotal    *prometheus.CounterVec
	ReparentTotal       *prometheus.CounterVec
	RateLimitedTotal    *prometheus.CounterVec
	TreeEmployees       prometheus.Gauge
	TreeAnomalies       prometheus.Gauge
	config              *config.Configuration
}

// NewMetric 建立所有指標
func NewMetric(config *config.Configuration) *Metric {
	if config == nil || !config.Telemetry.Metric.Enabled {
		return &Metric{}
	}
	buckets := prometheus.DefBuckets
	if len(config.Telemetry.Metric.Buckets) > 0 {
		buckets = config.Telemetry.Metric.Buckets
	}
	prefix := metricPrefix(config.App.Name)
	return &Metric{
		config: config,
		HttpRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + string(core.MetricHttpRequestsTotal),
				Help: "Total received API requests",
			},
			labelNames(core.MetricLabelEndpoint, core.MetricLabelStatus),
		),
		HttpRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    prefix + string(core.MetricHttpRequestDuration),
				Help:    "Request handling duration (seconds)",
				Buckets: buckets,
			},
			labelNames(core.MetricLabelEndpoint),
		),
		RequestSuccessTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + string(core.MetricRequestSuccessTotal),
				Help: "Successful request count",
			},
			labelNames(core.MetricLabelEndpoint, core.MetricLabelStatus),
		),
		RequestFailTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + string(core.MetricRequestFailTotal),
				Help: "Failed request count",
			},
			labelNames(core.MetricLabelReason),
		),
		ReparentTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + string(core.MetricReparentTotal),
				Help: "Reparent attempts by result",
			},
			labelNames(core.MetricLabelResult),
		),
		RateLimitedTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + string(core.MetricRateLimitTotal),
				Help: "Requests rejected by the rate limiter",
			},
			labelNames(core.MetricLabelEndpoint),
		),
		TreeEmployees: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: prefix + string(core.MetricTreeSizeGauge),
				Help: "Employees in the stored hierarchy at the last integrity check",
			},
		),
		TreeAnomalies: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: prefix + string(core.MetricTreeAnomalyGauge),
				Help: "Anomalies found by the last integrity check",
			},
		),
	}
}

// ObserveRequest 每個請求結束時記錄總數與耗時
func (m *Metric) ObserveRequest(endpoint string, status int, duration time.Duration) {
	if m == nil || m.HttpRequestsTotal == nil || m.HttpRequestDuration == nil {
		return
	}
	m.HttpRequestsTotal.WithLabelValues(endpoint, strconv.Itoa(status)).Inc()
	m.HttpRequestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *Metric) ObserveSuccess(endpoint string, status int) {
	if m == nil || m.RequestSuccessTotal == nil {
		return
	}
	m.RequestSuccessTotal.WithLabelValues(endpoint, strconv.Itoa(status)).Inc()
}

// ObserveFail reason 使用錯誤訊息代碼（例如 not-found），避免高基數
func (m *Metric) ObserveFail(reason string) {
	if m == nil || m.RequestFailTotal == nil {
		return
	}
	m.RequestFailTotal.WithLabelValues(reason).Inc()
}

func (m *Metric) ObserveRateLimited(endpoint string) {
	if m == nil || m.RateLimitedTotal == nil {
		return
	}
	m.RateLimitedTotal.WithLabelValues(endpoint).Inc()
}

// ObserveReparent 記錄一次 reparent 結果（未啟用時略過）
func (m *Metric) ObserveReparent(result string) {
	if m == nil || m.ReparentTotal == nil {
		return
	}
	m.ReparentTotal.WithLabelValues(result).Inc()
}

// ObserveTree 記錄整合性檢查的結果
func (m *Metric) ObserveTree(employees, anomalies int) {
	if m == nil || m.TreeEmployees == nil || m.TreeAnomalies == nil {
		return
	}
	m.TreeEmployees.Set(float64(employees))
	m.TreeAnomalies.Set(float64(anomalies))
}

// metricPrefix prometheus 名稱不允許 '-'
func metricPrefix(appName string) string {
	out := []rune(appName)
	for i, r := range out {
		if r == '-' || r == '.' || r == ' ' {
			out[i] = '_'
		}
	}
	if len(out) == 0 {
		return ""
	}
	return string(out) + "_"
}

// labelNames helper: LabelName slice 轉成 []string
func labelNames(labels ...core.MetricLabelName) []string {
	strs := make([]string, len(labels))
	for i, l := range labels {
		strs[i] = string(l)
	}
	return strs
}
