package core

const ContextTraceKey = "telemetry_trace_ctx"

// ==== 型別安全 span name ====
type TraceSpanName string

const (
	SpanHttpRequest         TraceSpanName = "http_request"
	SpanLoggerMiddleware    TraceSpanName = "logger_middleware"
	SpanRecoveryMiddleware  TraceSpanName = "recovery_middleware"
	SpanCorsMiddleware      TraceSpanName = "cors_middleware"
	SpanResponseMiddleware  TraceSpanName = "response_middleware"
	SpanRateLimitMiddleware TraceSpanName = "ratelimit_middleware"
)

// 指標名稱常數
type MetricName string

const (
	MetricHttpRequestsTotal   MetricName = "requests_total"
	MetricHttpRequestDuration MetricName = "request_duration_seconds"
	MetricRequestSuccessTotal MetricName = "request_success_total"
	MetricRequestFailTotal    MetricName = "request_fail_total"
	MetricReparentTotal       MetricName = "reparent_total"
	MetricTreeSizeGauge       MetricName = "tree_employees"
	MetricTreeAnomalyGauge    MetricName = "tree_anomalies"
	MetricRateLimitTotal      MetricName = "rate_limited_total"
)

// label name 常數
type MetricLabelName string

const (
	MetricLabelEndpoint MetricLabelName = "endpoint"
	MetricLabelStatus   MetricLabelName = "status"
	MetricLabelReason   MetricLabelName = "reason"
	MetricLabelResult   MetricLabelName = "result"
)

type LoggerRequestMeta struct {
	Method     string            `trace:"request.method"`
	Path       string            `trace:"request.path"`
	FullPath   string            `trace:"request.full_path"`
	Query      string            `trace:"request.query"`
	Body       string            `trace:"request.body"`
	Scheme     string            `trace:"http.scheme"`
	Host       string            `trace:"http.host"`
	UserAgent  string            `trace:"http.user_agent"`
	ContentLen int64             `trace:"http.request_content_length"`
	Proto      string            `trace:"http.flavor"`
	ClientIP   string            `trace:"net.peer.ip"`
	Headers    map[string]string `trace:"http.request.header"`
	Params     map[string]string `trace:"http.request.param"`
}

// 供 Redis 限流 Consume 使用
type TraceRateLimitMeta struct {
	ClientKey string `trace:"rl.client_key"`
	Limit     int    `trace:"rl.limit_count"`
	WindowSec int64  `trace:"rl.window_sec"`
	Remaining int    `trace:"rl.remaining,omitempty"`
	TTL       int64  `trace:"rl.ttl_sec,omitempty"`
	Op        string `trace:"rl.op"`
}

type TraceRateLimitMiddlewareMeta struct {
	ClientIP    string `trace:"ratelimit.client_ip"`
	ConfigLimit int    `trace:"ratelimit.config.limit"`
	Remaining   int    `trace:"ratelimit.remaining"`
	TTLSeconds  int64  `trace:"ratelimit.ttl_sec"`
	Blocked     bool   `trace:"ratelimit.blocked"`
}

type TracePanicMeta struct {
	Path       string  `trace:"http.path"`
	Method     string  `trace:"http.method"`
	ClientIP   string  `trace:"net.peer.ip"`
	UserAgent  string  `trace:"http.user_agent"`
	DurationMs float64 `trace:"response.latency_ms"`
	Status     int     `trace:"http.status_code"`
	Message    string  `trace:"error.message"`
	Stack      string  `trace:"error.stack"`
}

type TraceErrorMeta struct {
	Code       int     `trace:"error.code"`
	Message    string  `trace:"error.message"`
	Detail     string  `trace:"error.detail"`
	Status     int     `trace:"http.status_code"`
	DurationMs float64 `trace:"response.latency_ms"`
}

type TraceResponseMeta struct {
	Path       string  `trace:"http.path"`
	Method     string  `trace:"http.method"`
	Status     int     `trace:"http.status_code"`
	Message    string  `trace:"response.message"`
	Code       int     `trace:"response.code"`
	DurationMs float64 `trace:"response.latency_ms"`
	Data       string  `trace:"response.data_preview"`
}

type TraceHttpServerMeta struct {
	ClientAddr        string `trace:"client.address"`
	HttpRequestMethod string `trace:"http.request.method"`
	HttpRoute         string `trace:"http.route"`
	UrlPath           string `trace:"http.request.path"`
	UrlScheme         string `trace:"http.request.url.scheme"`
	UserAgent         string `trace:"user_agent.original"`
	ServerAddress     string `trace:"server.address"`
	NetworkPeerAddr   string `trace:"network.peer.address"`
	NetworkPeerPort   int    `trace:"network.peer.port"`
	NetworkProtoVer   string `trace:"network.protocol.version"`
	SpanTraceID       string `trace:"span.trace_id"`
	HttpStatusCode    int    `trace:"http.response.status_code"`
}

// 組織樹操作（service 層）
type TraceHierarchyMeta struct {
	Op           string `trace:"hierarchy.op"`
	Storage      string `trace:"hierarchy.storage"`
	EmployeeID   int64  `trace:"hierarchy.employee_id,omitempty"`
	NewManagerID int64  `trace:"hierarchy.new_manager_id,omitempty"`
	Position     int    `trace:"hierarchy.position,omitempty"`
	Employees    int    `trace:"hierarchy.employees,omitempty"`
	Anomalies    int    `trace:"hierarchy.anomalies,omitempty"`
	Result       string `trace:"hierarchy.result"`
}

type TraceStorageMeta struct {
	Driver string `trace:"storage.driver"`
	Op     string `trace:"storage.op"`
	Rows   int    `trace:"storage.rows,omitempty"`
	Bytes  int    `trace:"storage.bytes,omitempty"`
}
