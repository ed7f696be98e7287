package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/vfg2006/ads-analyzer-api/internal/metrics"
)

// MetricsMiddleware instrumenta cada requisição com contadores e
// histogramas Prometheus
func MetricsMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/metrics" {
				next.ServeHTTP(w, r)
				return
			}

			lrw := newLoggingResponseWriter(w)
			startTime := time.Now()

			next.ServeHTTP(lrw, r)

			metrics.DefaultMetrics.RecordHTTPRequest(r.Method, routeTemplate(r.URL.Path), lrw.statusCode, time.Since(startTime))
		})
	}
}

// routeTemplate colapsa os segmentos de identificador das rotas
// parametrizadas para manter a cardinalidade dos labels limitada
func routeTemplate(path string) string {
	parts := strings.Split(path, "/")
	if len(parts) != 5 || parts[1] != "v1" {
		return path
	}

	switch {
	case parts[2] == "ads" && parts[4] == "demographics":
		return "/v1/ads/:id/demographics"
	case parts[2] == "campaigns" && parts[4] == "adsets":
		return "/v1/campaigns/:id/adsets"
	case parts[2] == "adsets" && parts[4] == "ads":
		return "/v1/adsets/:id/ads"
	}

	return path
}
