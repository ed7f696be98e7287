package domain

// PublicAdMetadata são os metadados extraídos da página pública do anúncio
type PublicAdMetadata struct {
	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url,omitempty"`
	Platform    string `json:"platform"`
	AdType      string `json:"ad_type"`
}

// PublicAdEstimate é a estimativa de desempenho de um anúncio público.
// Os valores são aproximados: o registro público de anúncios não expõe
// números exatos de performance.
type PublicAdEstimate struct {
	Metadata          PublicAdMetadata `json:"metadata"`
	Impressions       int              `json:"impressions"`
	Reach             int              `json:"reach"`
	Frequency         float64          `json:"frequency"`
	Clicks            int              `json:"clicks"`
	CTR               float64          `json:"ctr"`
	CPC               float64          `json:"cpc"`
	CPM               float64          `json:"cpm"`
	Spend             float64          `json:"spend"`
	Conversions       int              `json:"conversions"`
	ConversionRate    float64          `json:"conversion_rate"`
	CostPerConversion *float64         `json:"cost_per_conversion"`
	EngagementRate    float64          `json:"engagement_rate"`
	Engagements       int              `json:"engagements"`
	Estimated         bool             `json:"estimated"`
}
