package deriving

import (
	"github.com/vfg2006/ads-analyzer-api/internal/domain"
)

// Derive calcula as métricas de razão de cada registro bruto. O resultado
// tem o mesmo tamanho da entrada, na mesma ordem. Razões com denominador
// zero ficam nil e viram null na serialização.
func Derive(records []domain.MetricRecord) []domain.DerivedMetrics {
	derived := make([]domain.DerivedMetrics, 0, len(records))
	for i := range records {
		derived = append(derived, deriveOne(&records[i]))
	}

	return derived
}

// Aggregate soma os registros do período e calcula as razões sobre os
// totais. Somar razões diárias distorceria o resultado.
func Aggregate(records []domain.MetricRecord) *domain.DerivedMetrics {
	if len(records) == 0 {
		return &domain.DerivedMetrics{}
	}

	var total domain.MetricRecord
	for i := range records {
		r := records[i]
		total.Impressions += r.Impressions
		total.Clicks += r.Clicks
		total.Spend += r.Spend
		total.Conversions += r.Conversions
		total.Reach += r.Reach
		total.Revenue += r.Revenue
	}

	derived := deriveOne(&total)
	return &derived
}

func deriveOne(r *domain.MetricRecord) domain.DerivedMetrics {
	d := domain.DerivedMetrics{
		CTR:            ratio(float64(r.Clicks), float64(r.Impressions)),
		CPC:            ratio(r.Spend, float64(r.Clicks)),
		CPM:            scaledRatio(r.Spend, float64(r.Impressions), 1000),
		CPA:            ratio(r.Spend, float64(r.Conversions)),
		ROAS:           ratio(r.Revenue, r.Spend),
		Frequency:      ratio(float64(r.Impressions), float64(r.Reach)),
		ConversionRate: ratio(float64(r.Conversions), float64(r.Clicks)),
	}

	if !r.Date.IsZero() {
		date := r.Date
		d.Date = &date
	}

	return d
}

// ratio retorna numerador/denominador ou nil quando o denominador é zero
func ratio(numerator, denominator float64) *float64 {
	if denominator == 0 {
		return nil
	}

	v := numerator / denominator
	return &v
}

func scaledRatio(numerator, denominator, scale float64) *float64 {
	r := ratio(numerator, denominator)
	if r == nil {
		return nil
	}

	v := *r * scale
	return &v
}

// Trend classifica a tendência de uma série comparando a média da primeira
// metade com a da segunda. Variações dentro da banda morta contam como
// estável; séries curtas ou sem valores válidos ficam indefinidas.
func Trend(values []*float64, deadBandPercent float64) domain.Trend {
	valid := make([]float64, 0, len(values))
	for _, v := range values {
		if v != nil {
			valid = append(valid, *v)
		}
	}

	if len(valid) < 2 {
		return domain.TrendUnknown
	}

	half := len(valid) / 2
	first := mean(valid[:half])
	second := mean(valid[len(valid)-half:])

	if first == 0 {
		if second == 0 {
			return domain.TrendStable
		}
		return domain.TrendRising
	}

	change := (second - first) / first * 100
	switch {
	case change > deadBandPercent:
		return domain.TrendRising
	case change < -deadBandPercent:
		return domain.TrendFalling
	default:
		return domain.TrendStable
	}
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}

	return sum / float64(len(values))
}
