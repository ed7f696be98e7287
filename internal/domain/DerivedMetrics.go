package domain

import "time"

// DerivedMetrics são as métricas de razão calculadas a partir de um
// MetricRecord. Campos nil indicam divisão por zero (dados insuficientes)
// e são serializados como null; a camada de apresentação decide como exibir.
//
// CTR e taxa de conversão são frações (0.02 = 2%), não porcentagens.
type DerivedMetrics struct {
	Date           *time.Time `json:"date,omitempty"`
	CTR            *float64   `json:"ctr"`
	CPC            *float64   `json:"cpc"`
	CPM            *float64   `json:"cpm"`
	CPA            *float64   `json:"cpa"`
	ROAS           *float64   `json:"roas"`
	Frequency      *float64   `json:"frequency"`
	ConversionRate *float64   `json:"conversion_rate"`
}

// Float é um helper para construir ponteiros de métricas em testes e tabelas
func Float(v float64) *float64 {
	return &v
}
