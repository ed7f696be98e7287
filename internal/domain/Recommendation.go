package domain

// Trend é a tendência de uma métrica ao longo da série diária
type Trend string

const (
	TrendRising  Trend = "rising"
	TrendFalling Trend = "falling"
	TrendStable  Trend = "stable"
	TrendUnknown Trend = "unknown"
)

// Severity indica o tom da recomendação para a camada de apresentação
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
)

// Recommendation é uma recomendação textual derivada das métricas e
// vereditos. Regenerada a cada visualização, nunca persistida.
type Recommendation struct {
	Metric   string   `json:"metric"`
	Verdict  Verdict  `json:"verdict,omitempty"`
	Trend    Trend    `json:"trend,omitempty"`
	Severity Severity `json:"severity"`
	Title    string   `json:"title"`
	Message  string   `json:"message"`
	Actions  []string `json:"actions,omitempty"`
}
