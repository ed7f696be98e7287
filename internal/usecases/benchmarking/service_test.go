package benchmarking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ads-analyzer-api/internal/config"
	"github.com/vfg2006/ads-analyzer-api/internal/domain"
)

func newTestService() *Service {
	cfg := &config.Config{}
	cfg.Benchmark.TolerancePercent = 10.0
	return NewService(cfg)
}

func TestCompare(t *testing.T) {
	service := newTestService()

	// Benchmark de ecommerce: CTR 0.016, CPA 45.0, ROAS 3.5
	tests := []struct {
		name     string
		derived  *domain.DerivedMetrics
		niche    string
		validate func(t *testing.T, verdicts *domain.BenchmarkVerdicts)
	}{
		{
			name: "Valor exatamente igual ao benchmark fica dentro da média",
			derived: &domain.DerivedMetrics{
				CTR:  domain.Float(0.016),
				CPA:  domain.Float(45.0),
				ROAS: domain.Float(3.5),
			},
			niche: "ecommerce",
			validate: func(t *testing.T, verdicts *domain.BenchmarkVerdicts) {
				assert.Equal(t, domain.VerdictWithinAverage, verdicts.CTR)
				assert.Equal(t, domain.VerdictWithinAverage, verdicts.CPA)
				assert.Equal(t, domain.VerdictWithinAverage, verdicts.ROAS)
			},
		},
		{
			name: "CTR acima da banda de tolerância fica acima da média",
			derived: &domain.DerivedMetrics{
				CTR: domain.Float(0.020),
			},
			niche: "ecommerce",
			validate: func(t *testing.T, verdicts *domain.BenchmarkVerdicts) {
				assert.Equal(t, domain.VerdictAboveAverage, verdicts.CTR)
			},
		},
		{
			name: "CTR abaixo da banda de tolerância fica abaixo da média",
			derived: &domain.DerivedMetrics{
				CTR: domain.Float(0.010),
			},
			niche: "ecommerce",
			validate: func(t *testing.T, verdicts *domain.BenchmarkVerdicts) {
				assert.Equal(t, domain.VerdictBelowAverage, verdicts.CTR)
			},
		},
		{
			name: "CTR dentro da banda superior fica dentro da média",
			derived: &domain.DerivedMetrics{
				CTR: domain.Float(0.0175),
			},
			niche: "ecommerce",
			validate: func(t *testing.T, verdicts *domain.BenchmarkVerdicts) {
				assert.Equal(t, domain.VerdictWithinAverage, verdicts.CTR)
			},
		},
		{
			name: "CPA tem direção invertida: custo menor é desempenho acima da média",
			derived: &domain.DerivedMetrics{
				CPA: domain.Float(30.0),
			},
			niche: "ecommerce",
			validate: func(t *testing.T, verdicts *domain.BenchmarkVerdicts) {
				assert.Equal(t, domain.VerdictAboveAverage, verdicts.CPA)
			},
		},
		{
			name: "CPA acima da banda fica abaixo da média",
			derived: &domain.DerivedMetrics{
				CPA: domain.Float(60.0),
			},
			niche: "ecommerce",
			validate: func(t *testing.T, verdicts *domain.BenchmarkVerdicts) {
				assert.Equal(t, domain.VerdictBelowAverage, verdicts.CPA)
			},
		},
		{
			name: "Nicho desconhecido deve resultar em vereditos unknown, sem erro",
			derived: &domain.DerivedMetrics{
				CTR:  domain.Float(0.02),
				CPA:  domain.Float(10.0),
				ROAS: domain.Float(8.0),
			},
			niche: "petshop_de_dinossauros",
			validate: func(t *testing.T, verdicts *domain.BenchmarkVerdicts) {
				assert.True(t, verdicts.Unknown())
				assert.Equal(t, "petshop_de_dinossauros", verdicts.Niche)
			},
		},
		{
			name: "Métrica nil deve resultar em veredito unknown para ela",
			derived: &domain.DerivedMetrics{
				CTR: domain.Float(0.016),
			},
			niche: "ecommerce",
			validate: func(t *testing.T, verdicts *domain.BenchmarkVerdicts) {
				assert.Equal(t, domain.VerdictWithinAverage, verdicts.CTR)
				assert.Equal(t, domain.VerdictUnknown, verdicts.CPA)
				assert.Equal(t, domain.VerdictUnknown, verdicts.ROAS)
			},
		},
		{
			name:    "Derivadas nil devem resultar em tudo unknown",
			derived: nil,
			niche:   "ecommerce",
			validate: func(t *testing.T, verdicts *domain.BenchmarkVerdicts) {
				assert.True(t, verdicts.Unknown())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, service.Compare(tt.derived, tt.niche))
		})
	}
}

func TestNiches(t *testing.T) {
	service := newTestService()

	niches := service.Niches()

	assert.Len(t, niches, len(benchmarksByNiche))
	assert.Contains(t, niches, "ecommerce")

	// Ordem alfabética estável para a API
	for i := 1; i < len(niches); i++ {
		assert.Less(t, niches[i-1], niches[i])
	}
}
