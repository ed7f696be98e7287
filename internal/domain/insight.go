package domain

import "time"

// Nível de agregação dos insights na API do Meta
const (
	LevelAccount  = "account"
	LevelCampaign = "campaign"
	LevelAdSet    = "adset"
	LevelAd       = "ad"
)

// InsightFilters delimita a consulta de insights: nível, objeto e período
type InsightFilters struct {
	Level     string     `json:"level"`
	ObjectID  string     `json:"object_id"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
	Niche     string     `json:"niche,omitempty"`
}

// InsightsResponse é a resposta completa do ciclo buscar → derivar →
// comparar → recomendar. Tudo é função pura da última busca e da tabela
// de benchmarks; nada aqui é persistido.
type InsightsResponse struct {
	Records         []MetricRecord     `json:"records"`
	Derived         []DerivedMetrics   `json:"derived"`
	Aggregate       *DerivedMetrics    `json:"aggregate,omitempty"`
	Verdicts        *BenchmarkVerdicts `json:"verdicts,omitempty"`
	Recommendations []Recommendation   `json:"recommendations"`
	Filters         *InsightFilters    `json:"filters"`
}

// SeriesResponse é a resposta reduzida para gráficos de série temporal
type SeriesResponse struct {
	Records []MetricRecord   `json:"records"`
	Derived []DerivedMetrics `json:"derived"`
	Filters *InsightFilters  `json:"filters"`
}
