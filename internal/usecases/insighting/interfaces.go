package insighting

import (
	"context"

	"github.com/vfg2006/ads-analyzer-api/internal/domain"
	"github.com/vfg2006/ads-analyzer-api/internal/usecases/diagnosing"
)

// Fetcher define a interface para obter métricas brutas da API do Meta
type Fetcher interface {
	// ListCampaigns lista as campanhas da conta da sessão
	ListCampaigns(ctx context.Context, session *domain.Session) ([]domain.Campaign, error)

	// ListAdSets lista os conjuntos de anúncios de uma campanha
	ListAdSets(ctx context.Context, session *domain.Session, campaignID string) ([]domain.AdSet, error)

	// ListAds lista os anúncios de um conjunto
	ListAds(ctx context.Context, session *domain.Session, adSetID string) ([]domain.Ad, error)

	// GetDailyMetrics obtém a série diária de métricas do objeto filtrado
	GetDailyMetrics(ctx context.Context, session *domain.Session, filters *domain.InsightFilters) ([]domain.MetricRecord, error)

	// GetAdDemographics obtém os breakdowns demográficos de um anúncio
	GetAdDemographics(ctx context.Context, session *domain.Session, adID string, filters *domain.InsightFilters) ([]domain.DemographicRecord, error)
}

// Comparator compara métricas derivadas com a tabela de benchmarks
type Comparator interface {
	Compare(derived *domain.DerivedMetrics, niche string) *domain.BenchmarkVerdicts
	Niches() []string
}

// Diagnoser gera recomendações a partir do agregado, vereditos e tendências
type Diagnoser interface {
	Evaluate(input *diagnosing.Input) []domain.Recommendation
}

// Insighter orquestra o ciclo completo buscar → derivar → comparar →
// recomendar sobre a conta da sessão
type Insighter interface {
	// GetInsights executa o ciclo completo e devolve a análise do período
	GetInsights(ctx context.Context, session *domain.Session, filters *domain.InsightFilters) (*domain.InsightsResponse, error)

	// GetSeries devolve apenas a série diária bruta e derivada
	GetSeries(ctx context.Context, session *domain.Session, filters *domain.InsightFilters) (*domain.SeriesResponse, error)

	// GetDemographics devolve os breakdowns demográficos de um anúncio
	GetDemographics(ctx context.Context, session *domain.Session, adID string, filters *domain.InsightFilters) ([]domain.DemographicRecord, error)

	// ListCampaigns lista as campanhas da conta da sessão
	ListCampaigns(ctx context.Context, session *domain.Session) ([]domain.Campaign, error)

	// ListAdSets lista os conjuntos de anúncios de uma campanha
	ListAdSets(ctx context.Context, session *domain.Session, campaignID string) ([]domain.AdSet, error)

	// ListAds lista os anúncios de um conjunto
	ListAds(ctx context.Context, session *domain.Session, adSetID string) ([]domain.Ad, error)
}
