package adslibrary

import (
	"crypto/sha256"
	"encoding/binary"
	"math"
	"math/rand"

	"github.com/vfg2006/ads-analyzer-api/internal/domain"
	"github.com/vfg2006/ads-analyzer-api/pkg/utils"
)

// adTypeProfile define a faixa típica de CTR e CPC por formato de anúncio
type adTypeProfile struct {
	CTR float64 // fração, 0.025 = 2.5%
	CPC float64 // custo por clique em reais
}

// profileFor retorna o perfil típico da combinação plataforma e formato.
// Valores médios de mercado usados como base das estimativas.
func profileFor(platform, adType string) adTypeProfile {
	if platform == "Instagram" {
		if adType == "story" {
			return adTypeProfile{CTR: 0.012, CPC: 0.80}
		}
		return adTypeProfile{CTR: 0.015, CPC: 1.00}
	}
	if adType == "video" {
		return adTypeProfile{CTR: 0.025, CPC: 1.20}
	}
	return adTypeProfile{CTR: 0.018, CPC: 1.50}
}

// Estimate gera uma estimativa de desempenho para um anúncio público.
// O gerador é semeado pelo hash da URL, então a mesma URL sempre produz
// a mesma estimativa.
func Estimate(adURL string, metadata *domain.PublicAdMetadata) *domain.PublicAdEstimate {
	sum := sha256.Sum256([]byte(adURL))
	seed := int64(binary.BigEndian.Uint64(sum[:8]) & math.MaxInt64)
	rng := rand.New(rand.NewSource(seed))

	profile := profileFor(metadata.Platform, metadata.AdType)

	// Impressões seguem distribuição lognormal em torno de ~36 mil
	impressions := int(math.Exp(rng.NormFloat64()*0.3 + 10.5))

	// CTR e CPC variam até 20% em torno do perfil base
	ctr := profile.CTR * (0.8 + rng.Float64()*0.4)
	cpc := profile.CPC * (0.8 + rng.Float64()*0.4)

	frequency := 1.2 + rng.Float64()*1.3
	reach := int(float64(impressions) / frequency)

	clicks := int(float64(impressions) * ctr)
	spend := float64(clicks) * cpc

	cpm := 0.0
	if impressions > 0 {
		cpm = spend / float64(impressions) * 1000
	}

	conversionRate := 0.02 + rng.Float64()*0.03
	conversions := int(float64(clicks) * conversionRate)

	var costPerConversion *float64
	if conversions > 0 {
		costPerConversion = domain.Float(utils.RoundWithTwoDecimalPlace(spend / float64(conversions)))
	}

	engagementRate := 0.03 + rng.Float64()*0.05
	engagements := int(float64(impressions) * engagementRate)

	return &domain.PublicAdEstimate{
		Metadata:          *metadata,
		Impressions:       impressions,
		Reach:             reach,
		Frequency:         utils.RoundWithTwoDecimalPlace(frequency),
		Clicks:            clicks,
		CTR:               ctr,
		CPC:               utils.RoundWithTwoDecimalPlace(cpc),
		CPM:               utils.RoundWithTwoDecimalPlace(cpm),
		Spend:             utils.RoundWithTwoDecimalPlace(spend),
		Conversions:       conversions,
		ConversionRate:    conversionRate,
		CostPerConversion: costPerConversion,
		EngagementRate:    engagementRate,
		Engagements:       engagements,
		Estimated:         true,
	}
}
