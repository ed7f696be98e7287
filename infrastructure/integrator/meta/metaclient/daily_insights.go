package metaclient

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-analyzer-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-analyzer-api/internal/domain"
)

type ResponseDailyInsights struct {
	Data   []metadomain.InsightRow `json:"data"`
	Paging metadomain.Paging       `json:"paging"`
}

// GetDailyInsights busca a série diária de insights (time_increment=1) do
// objeto indicado nos filtros: a conta inteira, uma campanha, um conjunto
// ou um anúncio. Resultado vazio retorna domain.ErrEmptyResult, que os
// chamadores tratam como vazio válido e não como falha.
func (c *MetaClient) GetDailyInsights(ctx context.Context, creds *domain.Credentials, filters *domain.InsightFilters) ([]metadomain.InsightRow, error) {
	params := url.Values{}
	params.Add("fields", "account_id,account_name,impressions,reach,clicks,spend,frequency,ctr,actions,action_values")
	params.Add("level", insightLevel(filters.Level))
	params.Add("time_increment", "1")
	params.Add("time_range", timeRangeParam(filters))
	params.Add("limit", "500")
	params.Add("access_token", creds.AccessToken)

	body, err := c.doGet(ctx, "daily_insights", insightPath(creds, filters), params)
	if err != nil {
		return nil, err
	}

	var response ResponseDailyInsights
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	if len(response.Data) == 0 {
		return nil, domain.ErrEmptyResult
	}

	return response.Data, nil
}

// insightPath resolve o caminho de insights conforme o nível da consulta
func insightPath(creds *domain.Credentials, filters *domain.InsightFilters) string {
	if filters.Level == domain.LevelAccount || filters.ObjectID == "" {
		return "/act_" + creds.AdAccountID + "/insights"
	}
	return "/" + filters.ObjectID + "/insights"
}

// insightLevel traduz o nível do domínio para o parâmetro da API
func insightLevel(level string) string {
	switch level {
	case domain.LevelCampaign, domain.LevelAdSet, domain.LevelAd:
		return level
	default:
		return domain.LevelAccount
	}
}
