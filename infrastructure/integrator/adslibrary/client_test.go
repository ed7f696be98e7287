package adslibrary

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-analyzer-api/internal/config"
	"github.com/vfg2006/ads-analyzer-api/internal/domain"
)

func newTestClient() *AdsLibraryClient {
	cfg := &config.Config{}
	cfg.AdsLibrary.RequestTimeout = 5 * time.Second
	cfg.AdsLibrary.UserAgent = "test-agent"
	return NewClient(cfg)
}

func TestPlatformFromURL(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected string
		wantErr  bool
	}{
		{
			name:     "URL do Facebook",
			url:      "https://www.facebook.com/ads/library/?id=123",
			expected: "Facebook",
		},
		{
			name:     "URL curta fb.com",
			url:      "https://fb.com/watch/?v=456",
			expected: "Facebook",
		},
		{
			name:     "Subdomínio do Facebook",
			url:      "https://m.facebook.com/story.php?id=789",
			expected: "Facebook",
		},
		{
			name:     "URL do Instagram",
			url:      "https://www.instagram.com/p/abc123/",
			expected: "Instagram",
		},
		{
			name:    "Domínio de fora das plataformas deve falhar",
			url:     "https://example.com/anuncio",
			wantErr: true,
		},
		{
			name:    "URL sem host deve falhar",
			url:     "nao-e-url",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			platform, err := platformFromURL(tt.url)

			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrAdNotFound)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, platform)
		})
	}
}

func TestLookup_UnknownHost(t *testing.T) {
	client := newTestClient()

	estimate, err := client.Lookup(context.Background(), "https://example.com/ads/123")

	assert.ErrorIs(t, err, domain.ErrAdNotFound)
	assert.Nil(t, estimate)
}

func TestFetchMetadata(t *testing.T) {
	page := `<html><head>
		<meta property="og:title" content="Tênis de Corrida ProMax">
		<meta property="og:description" content="Promoção por tempo limitado">
		<meta property="og:image" content="https://cdn.example.com/tenis.jpg">
		<title>fallback</title>
	</head><body></body></html>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))
		w.Write([]byte(page))
	}))
	defer server.Close()

	client := newTestClient()

	metadata, err := client.fetchMetadata(context.Background(), server.URL)

	require.NoError(t, err)
	assert.Equal(t, "Tênis de Corrida ProMax", metadata.Title)
	assert.Equal(t, "Promoção por tempo limitado", metadata.Description)
	assert.Equal(t, "https://cdn.example.com/tenis.jpg", metadata.ImageURL)
}

func TestFetchMetadata_TitleFallback(t *testing.T) {
	page := `<html><head><title>Página do Anúncio</title></head><body></body></html>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(page))
	}))
	defer server.Close()

	client := newTestClient()

	metadata, err := client.fetchMetadata(context.Background(), server.URL)

	require.NoError(t, err)
	assert.Equal(t, "Página do Anúncio", metadata.Title)
	assert.Empty(t, metadata.ImageURL)
}

func TestFetchMetadata_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := newTestClient()

	metadata, err := client.fetchMetadata(context.Background(), server.URL)

	assert.Error(t, err)
	assert.Nil(t, metadata)
}

func TestAdTypeFromContent(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		metadata *domain.PublicAdMetadata
		expected string
	}{
		{
			name:     "URL de vídeo",
			url:      "https://www.facebook.com/watch/?v=123",
			metadata: &domain.PublicAdMetadata{},
			expected: "video",
		},
		{
			name:     "Reel do Instagram",
			url:      "https://www.instagram.com/reel/abc/",
			metadata: &domain.PublicAdMetadata{},
			expected: "video",
		},
		{
			name:     "Carrossel identificado pelo título",
			url:      "https://www.facebook.com/ads/library/?id=1",
			metadata: &domain.PublicAdMetadata{Title: "Carousel de produtos"},
			expected: "carousel",
		},
		{
			name:     "Stories identificado pela descrição",
			url:      "https://www.instagram.com/p/abc/",
			metadata: &domain.PublicAdMetadata{Description: "Confira nossos stories"},
			expected: "story",
		},
		{
			name:     "Sem pistas cai em imagem",
			url:      "https://www.facebook.com/ads/library/?id=2",
			metadata: &domain.PublicAdMetadata{Title: "Promoção"},
			expected: "image",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, adTypeFromContent(tt.url, tt.metadata))
		})
	}
}
