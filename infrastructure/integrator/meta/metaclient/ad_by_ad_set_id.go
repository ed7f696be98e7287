package metaclient

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-analyzer-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-analyzer-api/internal/domain"
)

type ResponseAds struct {
	Data   []metadomain.Ad   `json:"data"`
	Paging metadomain.Paging `json:"paging"`
}

func (c *MetaClient) GetAdsByAdSetID(ctx context.Context, creds *domain.Credentials, adSetID string) ([]metadomain.Ad, error) {
	params := url.Values{}
	params.Add("fields", "id,name,status,created_time,adset_id,bid_amount")
	params.Add("limit", "100")
	params.Add("access_token", creds.AccessToken)

	body, err := c.doGet(ctx, "ads", "/"+adSetID+"/ads", params)
	if err != nil {
		return nil, err
	}

	var response ResponseAds
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return response.Data, nil
}
