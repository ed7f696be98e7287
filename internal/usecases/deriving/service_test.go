package deriving

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-analyzer-api/internal/domain"
)

func TestDerive(t *testing.T) {
	day := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		records  []domain.MetricRecord
		validate func(t *testing.T, derived []domain.DerivedMetrics)
	}{
		{
			name: "Deve calcular todas as razões de um registro completo",
			records: []domain.MetricRecord{
				{
					Date:        day,
					Impressions: 1000,
					Clicks:      20,
					Spend:       100.0,
					Conversions: 4,
					Reach:       500,
					Revenue:     400.0,
				},
			},
			validate: func(t *testing.T, derived []domain.DerivedMetrics) {
				require.Len(t, derived, 1)
				d := derived[0]

				require.NotNil(t, d.CTR)
				assert.InDelta(t, 0.02, *d.CTR, 1e-9)

				require.NotNil(t, d.CPC)
				assert.InDelta(t, 5.0, *d.CPC, 1e-9)

				require.NotNil(t, d.CPM)
				assert.InDelta(t, 100.0, *d.CPM, 1e-9)

				require.NotNil(t, d.CPA)
				assert.InDelta(t, 25.0, *d.CPA, 1e-9)

				require.NotNil(t, d.ROAS)
				assert.InDelta(t, 4.0, *d.ROAS, 1e-9)

				require.NotNil(t, d.Frequency)
				assert.InDelta(t, 2.0, *d.Frequency, 1e-9)

				require.NotNil(t, d.ConversionRate)
				assert.InDelta(t, 0.2, *d.ConversionRate, 1e-9)

				require.NotNil(t, d.Date)
				assert.Equal(t, day, *d.Date)
			},
		},
		{
			name: "Divisão por zero deve produzir nil, não pânico",
			records: []domain.MetricRecord{
				{
					Date:        day,
					Impressions: 0,
					Clicks:      0,
					Spend:       100.0,
					Conversions: 0,
					Reach:       0,
					Revenue:     0,
				},
			},
			validate: func(t *testing.T, derived []domain.DerivedMetrics) {
				require.Len(t, derived, 1)
				d := derived[0]

				assert.Nil(t, d.CTR)
				assert.Nil(t, d.CPC)
				assert.Nil(t, d.CPM)
				assert.Nil(t, d.CPA)
				assert.Nil(t, d.Frequency)
				assert.Nil(t, d.ConversionRate)

				// ROAS tem denominador spend > 0
				require.NotNil(t, d.ROAS)
				assert.Equal(t, 0.0, *d.ROAS)
			},
		},
		{
			name:    "Entrada vazia deve produzir saída vazia",
			records: []domain.MetricRecord{},
			validate: func(t *testing.T, derived []domain.DerivedMetrics) {
				assert.Empty(t, derived)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			derived := Derive(tt.records)
			tt.validate(t, derived)
		})
	}
}

func TestDerive_LengthEqualsInput(t *testing.T) {
	records := make([]domain.MetricRecord, 17)
	for i := range records {
		records[i] = domain.MetricRecord{
			Date:        time.Date(2026, 8, 1+i, 0, 0, 0, 0, time.UTC),
			Impressions: 100 * (i + 1),
			Clicks:      i,
			Spend:       float64(i) * 1.5,
		}
	}

	derived := Derive(records)
	assert.Len(t, derived, len(records))
}

func TestDerive_NonNegativeValues(t *testing.T) {
	records := []domain.MetricRecord{
		{Impressions: 1000, Clicks: 20, Spend: 50, Conversions: 2, Reach: 800, Revenue: 120},
		{Impressions: 500, Clicks: 5, Spend: 10, Conversions: 1, Reach: 400, Revenue: 30},
	}

	for _, d := range Derive(records) {
		for _, v := range []*float64{d.CTR, d.CPC, d.CPM, d.CPA, d.ROAS, d.Frequency, d.ConversionRate} {
			if v != nil {
				assert.GreaterOrEqual(t, *v, 0.0)
			}
		}
	}
}

func TestAggregate(t *testing.T) {
	tests := []struct {
		name     string
		records  []domain.MetricRecord
		validate func(t *testing.T, aggregate *domain.DerivedMetrics)
	}{
		{
			name: "Deve somar antes de dividir, não somar razões diárias",
			records: []domain.MetricRecord{
				{Impressions: 1000, Clicks: 10, Spend: 50, Conversions: 1, Reach: 500, Revenue: 100},
				{Impressions: 3000, Clicks: 90, Spend: 150, Conversions: 3, Reach: 1500, Revenue: 500},
			},
			validate: func(t *testing.T, aggregate *domain.DerivedMetrics) {
				require.NotNil(t, aggregate.CTR)
				assert.InDelta(t, 100.0/4000.0, *aggregate.CTR, 1e-9)

				require.NotNil(t, aggregate.CPA)
				assert.InDelta(t, 50.0, *aggregate.CPA, 1e-9)

				require.NotNil(t, aggregate.ROAS)
				assert.InDelta(t, 3.0, *aggregate.ROAS, 1e-9)

				require.NotNil(t, aggregate.Frequency)
				assert.InDelta(t, 2.0, *aggregate.Frequency, 1e-9)
			},
		},
		{
			name:    "Sem registros deve retornar agregado vazio",
			records: []domain.MetricRecord{},
			validate: func(t *testing.T, aggregate *domain.DerivedMetrics) {
				require.NotNil(t, aggregate)
				assert.Nil(t, aggregate.CTR)
				assert.Nil(t, aggregate.CPA)
			},
		},
		{
			name: "Gasto sem conversão deve deixar CPA nil",
			records: []domain.MetricRecord{
				{Impressions: 1000, Clicks: 20, Spend: 100, Conversions: 0},
			},
			validate: func(t *testing.T, aggregate *domain.DerivedMetrics) {
				assert.Nil(t, aggregate.CPA)
				require.NotNil(t, aggregate.CTR)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, Aggregate(tt.records))
		})
	}
}

func TestTrend(t *testing.T) {
	tests := []struct {
		name     string
		values   []*float64
		expected domain.Trend
	}{
		{
			name:     "Série crescente deve indicar alta",
			values:   []*float64{domain.Float(1), domain.Float(1), domain.Float(2), domain.Float(2)},
			expected: domain.TrendRising,
		},
		{
			name:     "Série decrescente deve indicar queda",
			values:   []*float64{domain.Float(4), domain.Float(4), domain.Float(2), domain.Float(2)},
			expected: domain.TrendFalling,
		},
		{
			name:     "Variação dentro da banda morta deve indicar estabilidade",
			values:   []*float64{domain.Float(100), domain.Float(100), domain.Float(102), domain.Float(102)},
			expected: domain.TrendStable,
		},
		{
			name:     "Série curta demais deve ficar indefinida",
			values:   []*float64{domain.Float(1)},
			expected: domain.TrendUnknown,
		},
		{
			name:     "Valores nil devem ser ignorados no cálculo",
			values:   []*float64{nil, domain.Float(1), nil, domain.Float(2)},
			expected: domain.TrendRising,
		},
		{
			name:     "Somente nil deve ficar indefinida",
			values:   []*float64{nil, nil, nil},
			expected: domain.TrendUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Trend(tt.values, 5.0))
		})
	}
}
