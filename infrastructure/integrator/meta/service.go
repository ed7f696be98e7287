package meta

import (
	"context"
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-analyzer-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-analyzer-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-analyzer-api/internal/config"
	"github.com/vfg2006/ads-analyzer-api/internal/domain"
	"github.com/vfg2006/ads-analyzer-api/pkg/utils"
)

type MetaIntegrator struct {
	cfg    *config.Config
	Client metaclient.Client
}

func New(cfg *config.Config, client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// ValidateCredentials confirma o acesso à conta e retorna o nome dela
func (s *MetaIntegrator) ValidateCredentials(ctx context.Context, creds *domain.Credentials) (string, error) {
	return s.Client.ValidateCredentials(ctx, creds)
}

// ListCampaigns lista as campanhas da conta da sessão
func (s *MetaIntegrator) ListCampaigns(ctx context.Context, session *domain.Session) ([]domain.Campaign, error) {
	resp, err := s.Client.GetCampaignsByAccountID(ctx, session.Credentials)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": session.Credentials.AdAccountID,
			"error":      err.Error(),
		}).Error("insights: falha ao buscar campanhas da conta")
		return nil, err
	}

	campaigns := make([]domain.Campaign, 0, len(resp))
	for i := range resp {
		c := resp[i]
		campaigns = append(campaigns, domain.Campaign{
			ID:         c.ID,
			Name:       c.Name,
			Objective:  c.Objective,
			Status:     c.Status,
			StartTime:  c.StartTime,
			StopTime:   c.StopTime,
			BuyingType: c.BuyingType,
		})
	}

	logrus.WithField("total_campaigns", len(campaigns)).Debug("insights: campanhas recuperadas com sucesso")

	return campaigns, nil
}

// ListAdSets lista os conjuntos de anúncios de uma campanha
func (s *MetaIntegrator) ListAdSets(ctx context.Context, session *domain.Session, campaignID string) ([]domain.AdSet, error) {
	resp, err := s.Client.GetAdSetsByCampaignID(ctx, session.Credentials, campaignID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaignID,
			"error":       err.Error(),
		}).Error("insights: falha ao buscar conjuntos de anúncios")
		return nil, err
	}

	adSets := make([]domain.AdSet, 0, len(resp))
	for i := range resp {
		a := resp[i]
		adSets = append(adSets, domain.AdSet{
			ID:               a.ID,
			Name:             a.Name,
			DailyBudget:      utils.SafeFloat(a.DailyBudget) / 100, // API reporta centavos
			LifetimeBudget:   utils.SafeFloat(a.LifetimeBudget) / 100,
			StartTime:        a.StartTime,
			EndTime:          a.EndTime,
			OptimizationGoal: a.OptimizationGoal,
			BillingEvent:     a.BillingEvent,
			BidStrategy:      a.BidStrategy,
		})
	}

	return adSets, nil
}

// ListAds lista os anúncios de um conjunto
func (s *MetaIntegrator) ListAds(ctx context.Context, session *domain.Session, adSetID string) ([]domain.Ad, error) {
	resp, err := s.Client.GetAdsByAdSetID(ctx, session.Credentials, adSetID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"adset_id": adSetID,
			"error":    err.Error(),
		}).Error("insights: falha ao buscar anúncios do conjunto")
		return nil, err
	}

	ads := make([]domain.Ad, 0, len(resp))
	for i := range resp {
		a := resp[i]
		ads = append(ads, domain.Ad{
			ID:          a.ID,
			Name:        a.Name,
			Status:      a.Status,
			CreatedTime: a.CreatedTime,
			AdSetID:     a.AdSetID,
			BidAmount:   utils.SafeFloat(a.BidAmount) / 100,
		})
	}

	return ads, nil
}

// GetDailyMetrics busca a série diária de métricas brutas do objeto dos
// filtros, ordenada por data ascendente
func (s *MetaIntegrator) GetDailyMetrics(ctx context.Context, session *domain.Session, filters *domain.InsightFilters) ([]domain.MetricRecord, error) {
	rows, err := s.Client.GetDailyInsights(ctx, session.Credentials, filters)
	if err != nil {
		if !errors.Is(err, domain.ErrEmptyResult) {
			logrus.WithFields(logrus.Fields{
				"account_id": session.Credentials.AdAccountID,
				"level":      filters.Level,
				"object_id":  filters.ObjectID,
				"error":      err.Error(),
			}).Error("insights: falha ao buscar série diária de insights")
		}
		return nil, err
	}

	records := make([]domain.MetricRecord, 0, len(rows))
	for i := range rows {
		records = append(records, FactoryMetricRecord(&rows[i]))
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Date.Before(records[j].Date)
	})

	logrus.WithFields(logrus.Fields{
		"account_id":    session.Credentials.AdAccountID,
		"total_records": len(records),
	}).Debug("insights: série diária recuperada com sucesso")

	return records, nil
}

// GetAdDemographics busca os breakdowns demográficos de um anúncio
func (s *MetaIntegrator) GetAdDemographics(ctx context.Context, session *domain.Session, adID string, filters *domain.InsightFilters) ([]domain.DemographicRecord, error) {
	rows, err := s.Client.GetAdDemographics(ctx, session.Credentials, adID, filters)
	if err != nil {
		if !errors.Is(err, domain.ErrEmptyResult) {
			logrus.WithFields(logrus.Fields{
				"ad_id": adID,
				"error": err.Error(),
			}).Error("insights: falha ao buscar dados demográficos do anúncio")
		}
		return nil, err
	}

	records := make([]domain.DemographicRecord, 0, len(rows))
	for i := range rows {
		r := rows[i]
		records = append(records, domain.DemographicRecord{
			Age:         r.Age,
			Gender:      r.Gender,
			Country:     r.Country,
			Impressions: utils.SafeInt(r.Impressions),
			Clicks:      utils.SafeInt(r.Clicks),
			Spend:       utils.SafeFloat(r.Spend),
			Conversions: r.ConversionsTotal(),
		})
	}

	return records, nil
}

// FactoryMetricRecord converte uma linha bruta da API em MetricRecord.
// Campos numéricos chegam como string; valores inválidos viram zero com
// aviso no log.
func FactoryMetricRecord(row *metadomain.InsightRow) domain.MetricRecord {
	date, err := time.Parse(time.DateOnly, row.DateStart)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"date_start": row.DateStart,
			"error":      err.Error(),
		}).Warn("insights: erro ao converter data do bucket")
	}

	return domain.MetricRecord{
		Date:        date,
		Impressions: utils.SafeInt(row.Impressions),
		Clicks:      utils.SafeInt(row.Clicks),
		Spend:       utils.SafeFloat(row.Spend),
		Conversions: row.ConversionsTotal(),
		Reach:       utils.SafeInt(row.Reach),
		Revenue:     row.RevenueTotal(),
	}
}
