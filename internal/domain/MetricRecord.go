package domain

import "time"

// MetricRecord é uma linha de dados brutos da API de relatórios do Meta,
// normalmente um bucket diário. Imutável depois de buscada.
type MetricRecord struct {
	Date        time.Time `json:"date"`
	Impressions int       `json:"impressions"`
	Clicks      int       `json:"clicks"`
	Spend       float64   `json:"spend"`
	Conversions int       `json:"conversions"`
	Reach       int       `json:"reach"`
	Revenue     float64   `json:"revenue"`
}

// DemographicRecord é uma linha de insights com breakdown demográfico
type DemographicRecord struct {
	Age         string  `json:"age,omitempty"`
	Gender      string  `json:"gender,omitempty"`
	Country     string  `json:"country,omitempty"`
	Impressions int     `json:"impressions"`
	Clicks      int     `json:"clicks"`
	Spend       float64 `json:"spend"`
	Conversions int     `json:"conversions"`
}
