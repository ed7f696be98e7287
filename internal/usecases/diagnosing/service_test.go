package diagnosing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-analyzer-api/internal/config"
	"github.com/vfg2006/ads-analyzer-api/internal/domain"
)

func newTestService() *Service {
	cfg := &config.Config{}
	cfg.Diagnostics.SaturationFrequency = 4.0
	return NewService(cfg)
}

func TestEvaluate(t *testing.T) {
	service := newTestService()

	tests := []struct {
		name     string
		input    *Input
		validate func(t *testing.T, recommendations []domain.Recommendation)
	}{
		{
			name: "CTR abaixo da média deve disparar recomendação de erro",
			input: &Input{
				Aggregate: &domain.DerivedMetrics{},
				Verdicts: &domain.BenchmarkVerdicts{
					CTR:  domain.VerdictBelowAverage,
					CPA:  domain.VerdictUnknown,
					ROAS: domain.VerdictUnknown,
				},
			},
			validate: func(t *testing.T, recommendations []domain.Recommendation) {
				require.Len(t, recommendations, 1)
				assert.Equal(t, "ctr", recommendations[0].Metric)
				assert.Equal(t, domain.SeverityError, recommendations[0].Severity)
				assert.Equal(t, "CTR Baixo", recommendations[0].Title)
				assert.NotEmpty(t, recommendations[0].Actions)
			},
		},
		{
			name: "Todas as regras que casarem devem disparar, sem curto-circuito",
			input: &Input{
				Aggregate: &domain.DerivedMetrics{},
				Verdicts: &domain.BenchmarkVerdicts{
					CTR:  domain.VerdictBelowAverage,
					CPA:  domain.VerdictBelowAverage,
					ROAS: domain.VerdictBelowAverage,
				},
				Trends: map[string]domain.Trend{
					"ctr": domain.TrendFalling,
					"cpa": domain.TrendRising,
				},
			},
			validate: func(t *testing.T, recommendations []domain.Recommendation) {
				// CTR baixo, CTR em queda, CPA alto, CPA subindo, ROAS baixo
				require.Len(t, recommendations, 5)

				// Ordem segue a tabela de regras
				assert.Equal(t, "CTR Baixo", recommendations[0].Title)
				assert.Equal(t, "CTR em Queda", recommendations[1].Title)
				assert.Equal(t, "Custo Alto por Conversão", recommendations[2].Title)
				assert.Equal(t, "Custo por Conversão Subindo", recommendations[3].Title)
				assert.Equal(t, "ROAS Baixo", recommendations[4].Title)
			},
		},
		{
			name: "Frequência acima do limiar deve disparar aviso de saturação",
			input: &Input{
				Aggregate: &domain.DerivedMetrics{
					Frequency: domain.Float(5.0),
				},
				Verdicts: &domain.BenchmarkVerdicts{
					CTR:  domain.VerdictUnknown,
					CPA:  domain.VerdictUnknown,
					ROAS: domain.VerdictUnknown,
				},
			},
			validate: func(t *testing.T, recommendations []domain.Recommendation) {
				require.Len(t, recommendations, 1)
				assert.Equal(t, "frequency", recommendations[0].Metric)
				assert.Equal(t, domain.SeverityWarning, recommendations[0].Severity)
				assert.Equal(t, "Frequência Elevada", recommendations[0].Title)
			},
		},
		{
			name: "Frequência no limiar exato não deve disparar saturação",
			input: &Input{
				Aggregate: &domain.DerivedMetrics{
					Frequency: domain.Float(4.0),
				},
			},
			validate: func(t *testing.T, recommendations []domain.Recommendation) {
				assert.Empty(t, recommendations)
			},
		},
		{
			name: "Saturação dispara mesmo com vereditos positivos",
			input: &Input{
				Aggregate: &domain.DerivedMetrics{
					Frequency: domain.Float(6.2),
				},
				Verdicts: &domain.BenchmarkVerdicts{
					CTR:  domain.VerdictAboveAverage,
					CPA:  domain.VerdictAboveAverage,
					ROAS: domain.VerdictAboveAverage,
				},
			},
			validate: func(t *testing.T, recommendations []domain.Recommendation) {
				require.Len(t, recommendations, 4)
				last := recommendations[len(recommendations)-1]
				assert.Equal(t, "frequency", last.Metric)
				assert.Equal(t, domain.SeverityWarning, last.Severity)
			},
		},
		{
			name:  "Entrada nil não deve gerar recomendações",
			input: nil,
			validate: func(t *testing.T, recommendations []domain.Recommendation) {
				assert.Empty(t, recommendations)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, service.Evaluate(tt.input))
		})
	}
}

func TestEvaluate_Deterministic(t *testing.T) {
	service := newTestService()

	input := &Input{
		Aggregate: &domain.DerivedMetrics{
			Frequency: domain.Float(5.5),
		},
		Verdicts: &domain.BenchmarkVerdicts{
			CTR:  domain.VerdictBelowAverage,
			CPA:  domain.VerdictBelowAverage,
			ROAS: domain.VerdictAboveAverage,
		},
		Trends: map[string]domain.Trend{
			"ctr": domain.TrendFalling,
		},
	}

	first := service.Evaluate(input)
	second := service.Evaluate(input)

	assert.Equal(t, first, second)
}
