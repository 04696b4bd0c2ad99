package middleware

import "strings"

// skipInstrumentation 這些路徑不做 logging/tracing/封裝
func skipInstrumentation(endpoint string) bool {
	return strings.HasPrefix(endpoint, "/swagger") ||
		strings.HasPrefix(endpoint, "/metrics") ||
		strings.HasPrefix(endpoint, "/version") ||
		strings.HasPrefix(endpoint, "/health") ||
		strings.HasPrefix(endpoint, "/debug/pprof")
}
