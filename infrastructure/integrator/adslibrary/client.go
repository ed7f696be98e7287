package adslibrary

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-analyzer-api/internal/config"
	"github.com/vfg2006/ads-analyzer-api/internal/domain"
	"github.com/vfg2006/ads-analyzer-api/internal/metrics"
)

// Client consulta páginas públicas de anúncios do Meta e estima o
// desempenho a partir dos metadados disponíveis.
type Client interface {
	Lookup(ctx context.Context, adURL string) (*domain.PublicAdEstimate, error)
}

type AdsLibraryClient struct {
	cfg  *config.Config
	HTTP *http.Client
}

func NewClient(cfg *config.Config) *AdsLibraryClient {
	return &AdsLibraryClient{
		cfg: cfg,
		HTTP: &http.Client{
			Timeout: cfg.AdsLibrary.RequestTimeout,
		},
	}
}

// Lookup valida a URL, extrai os metadados OpenGraph da página pública e
// gera a estimativa determinística de desempenho
func (c *AdsLibraryClient) Lookup(ctx context.Context, adURL string) (*domain.PublicAdEstimate, error) {
	platform, err := platformFromURL(adURL)
	if err != nil {
		return nil, err
	}

	metadata, err := c.fetchMetadata(ctx, adURL)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"url":   adURL,
			"error": err.Error(),
		}).Warn("ads_library: falha ao extrair metadados da página, usando apenas a URL")
		metadata = &domain.PublicAdMetadata{URL: adURL}
	}

	metadata.Platform = platform
	metadata.AdType = adTypeFromContent(adURL, metadata)

	estimate := Estimate(adURL, metadata)

	return estimate, nil
}

// platformFromURL valida o host da URL e identifica a plataforma
func platformFromURL(adURL string) (string, error) {
	parsed, err := url.Parse(adURL)
	if err != nil || parsed.Host == "" {
		return "", errors.Wrap(domain.ErrAdNotFound, "URL inválida")
	}

	host := strings.TrimPrefix(strings.ToLower(parsed.Host), "www.")
	switch {
	case host == "facebook.com" || host == "fb.com" || strings.HasSuffix(host, ".facebook.com"):
		return "Facebook", nil
	case host == "instagram.com" || strings.HasSuffix(host, ".instagram.com"):
		return "Instagram", nil
	default:
		return "", errors.Wrap(domain.ErrAdNotFound, "URL não pertence ao Facebook ou Instagram")
	}
}

// fetchMetadata baixa a página e extrai as tags OpenGraph
func (c *AdsLibraryClient) fetchMetadata(ctx context.Context, adURL string) (*domain.PublicAdMetadata, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, adURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.cfg.AdsLibrary.UserAgent)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		metrics.DefaultMetrics.RecordUpstreamCall("ads_library", "lookup", "transport_error", 0)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.DefaultMetrics.RecordUpstreamCall("ads_library", "lookup", "api_error", 0)
		return nil, errors.Errorf("página retornou status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, err
	}

	metrics.DefaultMetrics.RecordUpstreamCall("ads_library", "lookup", "ok", 0)

	metadata := &domain.PublicAdMetadata{
		URL:         adURL,
		Title:       ogContent(doc, "og:title"),
		Description: ogContent(doc, "og:description"),
		ImageURL:    ogContent(doc, "og:image"),
	}

	if metadata.Title == "" {
		metadata.Title = strings.TrimSpace(doc.Find("title").First().Text())
	}

	return metadata, nil
}

func ogContent(doc *goquery.Document, property string) string {
	content, _ := doc.Find("meta[property='" + property + "']").First().Attr("content")
	return strings.TrimSpace(content)
}

// adTypeFromContent infere o formato do anúncio pela URL e pelos metadados
func adTypeFromContent(adURL string, metadata *domain.PublicAdMetadata) string {
	haystack := strings.ToLower(adURL + " " + metadata.Title + " " + metadata.Description)
	switch {
	case strings.Contains(haystack, "video") || strings.Contains(haystack, "watch") || strings.Contains(haystack, "reel"):
		return "video"
	case strings.Contains(haystack, "carousel") || strings.Contains(haystack, "carrossel"):
		return "carousel"
	case strings.Contains(haystack, "stories") || strings.Contains(haystack, "story"):
		return "story"
	default:
		return "image"
	}
}
