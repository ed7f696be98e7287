package insighting

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-analyzer-api/internal/config"
	"github.com/vfg2006/ads-analyzer-api/internal/domain"
	"github.com/vfg2006/ads-analyzer-api/internal/usecases/deriving"
	"github.com/vfg2006/ads-analyzer-api/internal/usecases/diagnosing"
)

type Service struct {
	cfg        *config.Config
	fetcher    Fetcher
	comparator Comparator
	diagnoser  Diagnoser
}

func NewService(cfg *config.Config, fetcher Fetcher, comparator Comparator, diagnoser Diagnoser) *Service {
	return &Service{
		cfg:        cfg,
		fetcher:    fetcher,
		comparator: comparator,
		diagnoser:  diagnoser,
	}
}

// GetInsights executa o ciclo completo de análise do período: busca a
// série diária, deriva as razões, compara com o benchmark do nicho e gera
// as recomendações. Período sem dados não é erro: a resposta sai vazia
// com uma recomendação informativa.
func (s *Service) GetInsights(ctx context.Context, session *domain.Session, filters *domain.InsightFilters) (*domain.InsightsResponse, error) {
	records, err := s.fetcher.GetDailyMetrics(ctx, session, filters)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyResult) {
			return emptyInsightsResponse(filters), nil
		}
		return nil, err
	}

	derived := deriving.Derive(records)
	aggregate := deriving.Aggregate(records)
	verdicts := s.comparator.Compare(aggregate, filters.Niche)

	recommendations := s.diagnoser.Evaluate(&diagnosing.Input{
		Aggregate: aggregate,
		Verdicts:  verdicts,
		Trends:    seriesTrends(derived, s.cfg.Diagnostics.TrendDeadBandPercent),
	})

	logrus.WithFields(logrus.Fields{
		"level":                 filters.Level,
		"niche":                 filters.Niche,
		"total_records":         len(records),
		"total_recommendations": len(recommendations),
	}).Debug("insights: análise do período concluída")

	return &domain.InsightsResponse{
		Records:         records,
		Derived:         derived,
		Aggregate:       aggregate,
		Verdicts:        verdicts,
		Recommendations: recommendations,
		Filters:         filters,
	}, nil
}

// GetSeries devolve a série diária bruta e derivada, sem vereditos nem
// recomendações. Pensada para gráficos.
func (s *Service) GetSeries(ctx context.Context, session *domain.Session, filters *domain.InsightFilters) (*domain.SeriesResponse, error) {
	records, err := s.fetcher.GetDailyMetrics(ctx, session, filters)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyResult) {
			return &domain.SeriesResponse{
				Records: []domain.MetricRecord{},
				Derived: []domain.DerivedMetrics{},
				Filters: filters,
			}, nil
		}
		return nil, err
	}

	return &domain.SeriesResponse{
		Records: records,
		Derived: deriving.Derive(records),
		Filters: filters,
	}, nil
}

// GetDemographics devolve os breakdowns demográficos de um anúncio.
// Resultado vazio vira slice vazio, não erro.
func (s *Service) GetDemographics(ctx context.Context, session *domain.Session, adID string, filters *domain.InsightFilters) ([]domain.DemographicRecord, error) {
	records, err := s.fetcher.GetAdDemographics(ctx, session, adID, filters)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyResult) {
			return []domain.DemographicRecord{}, nil
		}
		return nil, err
	}

	return records, nil
}

func (s *Service) ListCampaigns(ctx context.Context, session *domain.Session) ([]domain.Campaign, error) {
	return s.fetcher.ListCampaigns(ctx, session)
}

func (s *Service) ListAdSets(ctx context.Context, session *domain.Session, campaignID string) ([]domain.AdSet, error) {
	return s.fetcher.ListAdSets(ctx, session, campaignID)
}

func (s *Service) ListAds(ctx context.Context, session *domain.Session, adSetID string) ([]domain.Ad, error) {
	return s.fetcher.ListAds(ctx, session, adSetID)
}

// seriesTrends calcula a tendência de cada métrica ao longo da série
func seriesTrends(derived []domain.DerivedMetrics, deadBandPercent float64) map[string]domain.Trend {
	ctr := make([]*float64, 0, len(derived))
	cpa := make([]*float64, 0, len(derived))
	roas := make([]*float64, 0, len(derived))

	for i := range derived {
		ctr = append(ctr, derived[i].CTR)
		cpa = append(cpa, derived[i].CPA)
		roas = append(roas, derived[i].ROAS)
	}

	return map[string]domain.Trend{
		"ctr":  deriving.Trend(ctr, deadBandPercent),
		"cpa":  deriving.Trend(cpa, deadBandPercent),
		"roas": deriving.Trend(roas, deadBandPercent),
	}
}

// emptyInsightsResponse monta a resposta para períodos sem nenhum dado
func emptyInsightsResponse(filters *domain.InsightFilters) *domain.InsightsResponse {
	return &domain.InsightsResponse{
		Records:   []domain.MetricRecord{},
		Derived:   []domain.DerivedMetrics{},
		Aggregate: &domain.DerivedMetrics{},
		Verdicts: &domain.BenchmarkVerdicts{
			Niche: filters.Niche,
			CTR:   domain.VerdictUnknown,
			CPA:   domain.VerdictUnknown,
			ROAS:  domain.VerdictUnknown,
		},
		Recommendations: []domain.Recommendation{
			{
				Metric:   "general",
				Severity: domain.SeverityInfo,
				Title:    "Sem Dados no Período",
				Message:  "Nenhuma métrica foi encontrada para o período selecionado",
				Actions: []string{
					"Verifique se o período selecionado teve campanhas ativas",
					"Amplie o intervalo de datas da consulta",
				},
			},
		},
		Filters: filters,
	}
}
