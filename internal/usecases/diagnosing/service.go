package diagnosing

import (
	"fmt"

	"github.com/vfg2006/ads-analyzer-api/internal/config"
	"github.com/vfg2006/ads-analyzer-api/internal/domain"
	"github.com/vfg2006/ads-analyzer-api/internal/metrics"
)

// Input agrupa o que o motor de diagnóstico avalia: o agregado do período,
// os vereditos de benchmark e a tendência de cada métrica na série diária
type Input struct {
	Aggregate *domain.DerivedMetrics
	Verdicts  *domain.BenchmarkVerdicts
	Trends    map[string]domain.Trend
}

// Diagnoser aplica a tabela de regras e gera as recomendações
type Diagnoser interface {
	Evaluate(input *Input) []domain.Recommendation
}

type Service struct {
	cfg *config.Config
}

func NewService(cfg *config.Config) *Service {
	return &Service{cfg: cfg}
}

// Evaluate percorre a tabela de regras e dispara todas as que casarem, na
// ordem da tabela. O aviso de saturação é avaliado por último e depende
// apenas da frequência agregada, não dos vereditos.
func (s *Service) Evaluate(input *Input) []domain.Recommendation {
	recommendations := []domain.Recommendation{}
	if input == nil {
		return recommendations
	}

	for i := range rules {
		rule := rules[i]
		verdict := verdictFor(input.Verdicts, rule.Metric)
		trend := trendFor(input.Trends, rule.Metric)

		if !rule.Matches(verdict, trend) {
			continue
		}

		recommendations = append(recommendations, domain.Recommendation{
			Metric:   rule.Metric,
			Verdict:  verdict,
			Trend:    trend,
			Severity: rule.Severity,
			Title:    rule.Title,
			Message:  rule.Message,
			Actions:  rule.Actions,
		})

		metrics.DefaultMetrics.Recommendations.WithLabelValues(rule.Metric, string(rule.Severity)).Inc()
	}

	if saturation := s.saturationWarning(input.Aggregate); saturation != nil {
		recommendations = append(recommendations, *saturation)
		metrics.DefaultMetrics.Recommendations.WithLabelValues("frequency", string(domain.SeverityWarning)).Inc()
	}

	return recommendations
}

// saturationWarning dispara quando a frequência agregada passa do limiar
// configurado, independente dos demais vereditos
func (s *Service) saturationWarning(aggregate *domain.DerivedMetrics) *domain.Recommendation {
	if aggregate == nil || aggregate.Frequency == nil {
		return nil
	}

	if *aggregate.Frequency <= s.cfg.Diagnostics.SaturationFrequency {
		return nil
	}

	return &domain.Recommendation{
		Metric:   "frequency",
		Severity: domain.SeverityWarning,
		Title:    "Frequência Elevada",
		Message:  fmt.Sprintf("Média de %.1f impressões por usuário (risco de fadiga)", *aggregate.Frequency),
		Actions: []string{
			"Reduza o orçamento ou pause temporariamente",
			"Atualize o criativo para evitar saturação",
			"Expanda o público-alvo",
		},
	}
}

func verdictFor(verdicts *domain.BenchmarkVerdicts, metric string) domain.Verdict {
	if verdicts == nil {
		return domain.VerdictUnknown
	}

	switch metric {
	case "ctr":
		return verdicts.CTR
	case "cpa":
		return verdicts.CPA
	case "roas":
		return verdicts.ROAS
	default:
		return domain.VerdictUnknown
	}
}

func trendFor(trends map[string]domain.Trend, metric string) domain.Trend {
	if trends == nil {
		return domain.TrendUnknown
	}

	if trend, ok := trends[metric]; ok {
		return trend
	}

	return domain.TrendUnknown
}
