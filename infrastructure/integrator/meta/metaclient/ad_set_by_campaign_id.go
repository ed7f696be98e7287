package metaclient

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-analyzer-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-analyzer-api/internal/domain"
)

type ResponseAdSets struct {
	Data   []metadomain.AdSet `json:"data"`
	Paging metadomain.Paging  `json:"paging"`
}

func (c *MetaClient) GetAdSetsByCampaignID(ctx context.Context, creds *domain.Credentials, campaignID string) ([]metadomain.AdSet, error) {
	params := url.Values{}
	params.Add("fields", "id,name,daily_budget,lifetime_budget,start_time,end_time,optimization_goal,billing_event,bid_strategy")
	params.Add("limit", "100")
	params.Add("access_token", creds.AccessToken)

	body, err := c.doGet(ctx, "adsets", "/"+campaignID+"/adsets", params)
	if err != nil {
		return nil, err
	}

	var response ResponseAdSets
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return response.Data, nil
}
