package metaclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-analyzer-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-analyzer-api/internal/config"
	"github.com/vfg2006/ads-analyzer-api/internal/domain"
	"github.com/vfg2006/ads-analyzer-api/internal/metrics"
)

type Client interface {
	ValidateCredentials(ctx context.Context, creds *domain.Credentials) (string, error)
	GetCampaignsByAccountID(ctx context.Context, creds *domain.Credentials) ([]metadomain.Campaign, error)
	GetAdSetsByCampaignID(ctx context.Context, creds *domain.Credentials, campaignID string) ([]metadomain.AdSet, error)
	GetAdsByAdSetID(ctx context.Context, creds *domain.Credentials, adSetID string) ([]metadomain.Ad, error)
	GetDailyInsights(ctx context.Context, creds *domain.Credentials, filters *domain.InsightFilters) ([]metadomain.InsightRow, error)
	GetAdDemographics(ctx context.Context, creds *domain.Credentials, adID string, filters *domain.InsightFilters) ([]metadomain.DemographicRow, error)
}

type MetaClient struct {
	Cfg  *config.Config
	HTTP *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &MetaClient{
		Cfg: cfg,
		// O timeout do http.Client cobre a requisição inteira, inclusive a
		// leitura do corpo; chamadas não podem bloquear indefinidamente
		HTTP: &http.Client{Timeout: cfg.Meta.RequestTimeout},
	}
}

// doGet executa uma requisição GET à Graph API e classifica falhas de
// transporte e de negócio na fronteira do cliente
func (c *MetaClient) doGet(ctx context.Context, endpoint string, path string, params url.Values) ([]byte, error) {
	fullURL := c.Cfg.Meta.URL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}

	startTime := time.Now()

	resp, err := c.HTTP.Do(req)
	if err != nil {
		metrics.DefaultMetrics.RecordUpstreamCall("meta", endpoint, "transport_error", time.Since(startTime))
		return nil, classifyTransportError(err)
	}
	defer resp.Body.Close()

	body, err := c.HandleResponse(resp)
	if err != nil {
		metrics.DefaultMetrics.RecordUpstreamCall("meta", endpoint, "api_error", time.Since(startTime))
		return nil, err
	}

	metrics.DefaultMetrics.RecordUpstreamCall("meta", endpoint, "ok", time.Since(startTime))

	return body, nil
}

// HandleResponse lê o corpo e converte erros da API nos erros de domínio
// correspondentes (credenciais, rate limit)
func (c *MetaClient) HandleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler resposta da API do Meta")
	}

	if resp.StatusCode == http.StatusOK {
		return body, nil
	}

	var errResp metadomain.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil {
		return nil, errors.Errorf("erro inesperado da API do Meta: status %s", resp.Status)
	}

	logrus.WithFields(logrus.Fields{
		"status":        resp.StatusCode,
		"error_code":    errResp.Error.Code,
		"error_subcode": errResp.Error.ErrorSubcode,
		"fbtrace_id":    errResp.Error.FBTraceID,
	}).Warn("meta: API retornou erro")

	switch {
	case errResp.Error.IsAuthError():
		return nil, errors.Wrap(domain.ErrAuth, errResp.Error.Message)
	case errResp.Error.IsRateLimited():
		return nil, errors.Wrap(domain.ErrRateLimited, errResp.Error.Message)
	}

	return nil, errors.Errorf("erro da API do Meta: %s (code %d)", errResp.Error.Message, errResp.Error.Code)
}

// classifyTransportError converte falhas de transporte em erros de domínio
func classifyTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return errors.Wrap(domain.ErrTimeout, err.Error())
	}

	var netErr interface{ Timeout() bool }
	if errors.As(err, &netErr) && netErr.Timeout() {
		return errors.Wrap(domain.ErrTimeout, err.Error())
	}

	logrus.WithError(err).Error("Erro ao fazer a requisição")
	return err
}

// timeRangeParam monta o parâmetro time_range no formato da Graph API
func timeRangeParam(filters *domain.InsightFilters) string {
	return `{"since":"` + filters.StartDate.Format(time.DateOnly) + `","until":"` + filters.EndDate.Format(time.DateOnly) + `"}`
}
