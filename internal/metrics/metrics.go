package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics agrupa as métricas Prometheus do serviço.
type Metrics struct {
	// HTTP
	HTTPRequests *prometheus.CounterVec
	HTTPLatency  *prometheus.HistogramVec

	// Chamadas à API do Meta e ao registro de anúncios públicos
	UpstreamCalls   *prometheus.CounterVec
	UpstreamLatency *prometheus.HistogramVec

	// Sessões
	ActiveSessions  prometheus.Gauge
	SessionsCreated prometheus.Counter
	SessionsSwept   prometheus.Counter

	// Diagnóstico
	Recommendations *prometheus.CounterVec
}

// DefaultMetrics é a instância global de métricas
var DefaultMetrics *Metrics

func init() {
	DefaultMetrics = New()
}

func New() *Metrics {
	return &Metrics{
		HTTPRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ads_analyzer",
			Name:      "http_requests_total",
			Help:      "Total de requisições HTTP por método, rota e status.",
		}, []string{"method", "path", "status"}),

		HTTPLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "ads_analyzer",
			Name:      "http_request_duration_seconds",
			Help:      "Duração das requisições HTTP.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),

		UpstreamCalls: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ads_analyzer",
			Name:      "upstream_calls_total",
			Help:      "Chamadas a serviços externos por endpoint e resultado.",
		}, []string{"service", "endpoint", "outcome"}),

		UpstreamLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "ads_analyzer",
			Name:      "upstream_call_duration_seconds",
			Help:      "Duração das chamadas a serviços externos.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"service", "endpoint"}),

		ActiveSessions: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: "ads_analyzer",
			Name:      "active_sessions",
			Help:      "Sessões ativas no momento.",
		}),

		SessionsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "ads_analyzer",
			Name:      "sessions_created_total",
			Help:      "Total de sessões criadas.",
		}),

		SessionsSwept: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "ads_analyzer",
			Name:      "sessions_swept_total",
			Help:      "Total de sessões expiradas removidas pelo sweeper.",
		}),

		Recommendations: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ads_analyzer",
			Name:      "recommendations_total",
			Help:      "Recomendações emitidas por métrica e severidade.",
		}, []string{"metric", "severity"}),
	}
}

// RecordHTTPRequest registra uma requisição finalizada
func (m *Metrics) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	m.HTTPRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.HTTPLatency.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordUpstreamCall registra uma chamada externa finalizada
func (m *Metrics) RecordUpstreamCall(service, endpoint, outcome string, duration time.Duration) {
	m.UpstreamCalls.WithLabelValues(service, endpoint, outcome).Inc()
	m.UpstreamLatency.WithLabelValues(service, endpoint).Observe(duration.Seconds())
}

// Handler expõe o endpoint /metrics
func Handler() http.Handler {
	return promhttp.Handler()
}
