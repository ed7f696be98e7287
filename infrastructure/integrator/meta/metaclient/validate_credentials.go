package metaclient

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-analyzer-api/internal/domain"
)

type responseAdAccount struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ValidateCredentials confirma que o token tem acesso à conta de anúncios
// informada e retorna o nome da conta. Chamado uma única vez, na criação
// da sessão.
func (c *MetaClient) ValidateCredentials(ctx context.Context, creds *domain.Credentials) (string, error) {
	params := url.Values{}
	params.Add("fields", "id,name")
	params.Add("access_token", creds.AccessToken)

	body, err := c.doGet(ctx, "validate_credentials", "/act_"+creds.AdAccountID, params)
	if err != nil {
		return "", err
	}

	var response responseAdAccount
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return "", err
	}

	return response.Name, nil
}
