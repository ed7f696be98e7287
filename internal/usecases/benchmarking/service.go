package benchmarking

import (
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-analyzer-api/internal/config"
	"github.com/vfg2006/ads-analyzer-api/internal/domain"
)

// Comparator compara métricas derivadas com a tabela de benchmarks
type Comparator interface {
	Compare(derived *domain.DerivedMetrics, niche string) *domain.BenchmarkVerdicts
	Niches() []string
}

type Service struct {
	cfg   *config.Config
	table map[string]domain.Benchmark
}

func NewService(cfg *config.Config) *Service {
	return &Service{
		cfg:   cfg,
		table: benchmarksByNiche,
	}
}

// Compare emite o veredito de cada métrica frente ao benchmark do nicho.
// Nicho desconhecido ou métrica ausente resultam em veredito unknown, sem
// erro: o restante da análise segue normalmente.
func (s *Service) Compare(derived *domain.DerivedMetrics, niche string) *domain.BenchmarkVerdicts {
	verdicts := &domain.BenchmarkVerdicts{
		Niche: niche,
		CTR:   domain.VerdictUnknown,
		CPA:   domain.VerdictUnknown,
		ROAS:  domain.VerdictUnknown,
	}

	benchmark, ok := s.table[niche]
	if !ok {
		if niche != "" {
			logrus.WithField("niche", niche).Warn("benchmarks: nicho sem referência na tabela")
		}
		return verdicts
	}

	if derived == nil {
		return verdicts
	}

	tolerance := s.cfg.Benchmark.TolerancePercent

	verdicts.CTR = verdictHigherIsBetter(derived.CTR, benchmark.AvgCTR, tolerance)
	verdicts.CPA = verdictLowerIsBetter(derived.CPA, benchmark.AvgCPA, tolerance)
	verdicts.ROAS = verdictHigherIsBetter(derived.ROAS, benchmark.AvgROAS, tolerance)

	return verdicts
}

// Niches lista os nichos disponíveis na tabela em ordem alfabética
func (s *Service) Niches() []string {
	niches := make([]string, 0, len(s.table))
	for niche := range s.table {
		niches = append(niches, niche)
	}

	sort.Strings(niches)

	return niches
}

// verdictHigherIsBetter aplica a banda de tolerância para métricas em que
// valores maiores são melhores. Valor exatamente igual ao benchmark fica
// dentro da média.
func verdictHigherIsBetter(value *float64, benchmark, tolerancePercent float64) domain.Verdict {
	if value == nil || benchmark == 0 {
		return domain.VerdictUnknown
	}

	band := benchmark * tolerancePercent / 100
	switch {
	case *value > benchmark+band:
		return domain.VerdictAboveAverage
	case *value < benchmark-band:
		return domain.VerdictBelowAverage
	default:
		return domain.VerdictWithinAverage
	}
}

// verdictLowerIsBetter inverte a direção para métricas de custo: CPA menor
// que o benchmark é desempenho acima da média
func verdictLowerIsBetter(value *float64, benchmark, tolerancePercent float64) domain.Verdict {
	if value == nil || benchmark == 0 {
		return domain.VerdictUnknown
	}

	band := benchmark * tolerancePercent / 100
	switch {
	case *value < benchmark-band:
		return domain.VerdictAboveAverage
	case *value > benchmark+band:
		return domain.VerdictBelowAverage
	default:
		return domain.VerdictWithinAverage
	}
}
