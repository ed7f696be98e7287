package metaclient

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-analyzer-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-analyzer-api/internal/domain"
)

type ResponseCampaigns struct {
	Data   []metadomain.Campaign `json:"data"`
	Paging metadomain.Paging     `json:"paging"`
}

func (c *MetaClient) GetCampaignsByAccountID(ctx context.Context, creds *domain.Credentials) ([]metadomain.Campaign, error) {
	params := url.Values{}
	params.Add("fields", "id,name,objective,status,start_time,stop_time,buying_type")
	params.Add("limit", "200")
	params.Add("access_token", creds.AccessToken)

	body, err := c.doGet(ctx, "campaigns", "/act_"+creds.AdAccountID+"/campaigns", params)
	if err != nil {
		return nil, err
	}

	var response ResponseCampaigns
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return response.Data, nil
}
