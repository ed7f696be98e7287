package metaclient

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-analyzer-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-analyzer-api/internal/domain"
)

type ResponseDemographics struct {
	Data   []metadomain.DemographicRow `json:"data"`
	Paging metadomain.Paging           `json:"paging"`
}

// GetAdDemographics busca os insights do anúncio com breakdown por idade e
// gênero e, em chamada separada, por país. Os resultados são combinados,
// como a API exige breakdowns de geografia isolados dos demais.
func (c *MetaClient) GetAdDemographics(ctx context.Context, creds *domain.Credentials, adID string, filters *domain.InsightFilters) ([]metadomain.DemographicRow, error) {
	ageGender, err := c.adInsightsWithBreakdowns(ctx, creds, adID, filters, "age,gender")
	if err != nil {
		return nil, err
	}

	country, err := c.adInsightsWithBreakdowns(ctx, creds, adID, filters, "country")
	if err != nil {
		return nil, err
	}

	combined := make([]metadomain.DemographicRow, 0, len(ageGender)+len(country))
	combined = append(combined, ageGender...)
	combined = append(combined, country...)

	if len(combined) == 0 {
		return nil, domain.ErrEmptyResult
	}

	return combined, nil
}

func (c *MetaClient) adInsightsWithBreakdowns(ctx context.Context, creds *domain.Credentials, adID string, filters *domain.InsightFilters, breakdowns string) ([]metadomain.DemographicRow, error) {
	params := url.Values{}
	params.Add("fields", "impressions,clicks,spend,actions")
	params.Add("breakdowns", breakdowns)
	params.Add("level", "ad")
	params.Add("time_range", timeRangeParam(filters))
	params.Add("access_token", creds.AccessToken)

	body, err := c.doGet(ctx, "ad_demographics", "/"+adID+"/insights", params)
	if err != nil {
		return nil, err
	}

	var response ResponseDemographics
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return response.Data, nil
}
