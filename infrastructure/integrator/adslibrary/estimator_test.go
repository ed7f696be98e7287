package adslibrary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-analyzer-api/internal/domain"
)

func TestEstimate_Deterministic(t *testing.T) {
	metadata := &domain.PublicAdMetadata{
		URL:      "https://www.facebook.com/ads/library/?id=123",
		Platform: "Facebook",
		AdType:   "video",
	}

	first := Estimate(metadata.URL, metadata)
	second := Estimate(metadata.URL, metadata)

	// Mesma URL sempre produz a mesma estimativa
	assert.Equal(t, first, second)
}

func TestEstimate_DifferentURLsDiffer(t *testing.T) {
	metadata := &domain.PublicAdMetadata{Platform: "Facebook", AdType: "image"}

	a := Estimate("https://www.facebook.com/ads/library/?id=111", metadata)
	b := Estimate("https://www.facebook.com/ads/library/?id=222", metadata)

	assert.NotEqual(t, a.Impressions, b.Impressions)
}

func TestEstimate_ConsistentValues(t *testing.T) {
	tests := []struct {
		name     string
		platform string
		adType   string
	}{
		{name: "Facebook vídeo", platform: "Facebook", adType: "video"},
		{name: "Facebook imagem", platform: "Facebook", adType: "image"},
		{name: "Instagram stories", platform: "Instagram", adType: "story"},
		{name: "Instagram feed", platform: "Instagram", adType: "image"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metadata := &domain.PublicAdMetadata{
				URL:      "https://www.facebook.com/ads/library/?id=999",
				Platform: tt.platform,
				AdType:   tt.adType,
			}

			estimate := Estimate(metadata.URL, metadata)

			require.NotNil(t, estimate)
			assert.True(t, estimate.Estimated)

			// Grandezas coerentes entre si
			assert.Greater(t, estimate.Impressions, 0)
			assert.Greater(t, estimate.Reach, 0)
			assert.LessOrEqual(t, estimate.Reach, estimate.Impressions)
			assert.GreaterOrEqual(t, estimate.Frequency, 1.0)
			assert.Greater(t, estimate.Clicks, 0)
			assert.Less(t, estimate.Clicks, estimate.Impressions)
			assert.Greater(t, estimate.Spend, 0.0)
			assert.Greater(t, estimate.CTR, 0.0)
			assert.Less(t, estimate.CTR, 1.0)
			assert.LessOrEqual(t, estimate.Conversions, estimate.Clicks)

			if estimate.Conversions > 0 {
				require.NotNil(t, estimate.CostPerConversion)
				assert.Greater(t, *estimate.CostPerConversion, 0.0)
			} else {
				assert.Nil(t, estimate.CostPerConversion)
			}
		})
	}
}

func TestProfileFor(t *testing.T) {
	// Vídeo no Facebook tem o maior CTR base; stories no Instagram, o menor
	fbVideo := profileFor("Facebook", "video")
	igStory := profileFor("Instagram", "story")

	assert.Greater(t, fbVideo.CTR, igStory.CTR)
	assert.Greater(t, fbVideo.CPC, igStory.CPC)
}
