package handler

import (
	"net/http"

	"github.com/vfg2006/ads-analyzer-api/infrastructure/integrator/adslibrary"
	"github.com/vfg2006/ads-analyzer-api/internal/api/handler/router"
	"github.com/vfg2006/ads-analyzer-api/internal/metrics"
	"github.com/vfg2006/ads-analyzer-api/internal/usecases/benchmarking"
	"github.com/vfg2006/ads-analyzer-api/internal/usecases/insighting"
	"github.com/vfg2006/ads-analyzer-api/internal/usecases/sessioning"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metrics.Handler(),
		},
	}
}

func Sessions(service sessioning.SessionManager) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sessions",
			Method:  http.MethodPost,
			Handler: CreateSession(service),
		},
		{
			Path:    "/v1/sessions/current",
			Method:  http.MethodDelete,
			Handler: DestroySession(service),
		},
	}
}

func Insights(service insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/insights",
			Method:  http.MethodGet,
			Handler: GetInsights(service),
		},
		{
			Path:    "/v1/insights/series",
			Method:  http.MethodGet,
			Handler: GetSeries(service),
		},
		{
			Path:    "/v1/ads/:id/demographics",
			Method:  http.MethodGet,
			Handler: GetAdDemographics(service),
		},
	}
}

func Campaigns(service insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/campaigns",
			Method:  http.MethodGet,
			Handler: ListCampaigns(service),
		},
		{
			Path:    "/v1/campaigns/:id/adsets",
			Method:  http.MethodGet,
			Handler: ListAdSets(service),
		},
		{
			Path:    "/v1/adsets/:id/ads",
			Method:  http.MethodGet,
			Handler: ListAds(service),
		},
	}
}

func PublicAds(service adslibrary.Client) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/public-ads/lookup",
			Method:  http.MethodGet,
			Handler: LookupPublicAd(service),
		},
	}
}

func Benchmarks(service benchmarking.Comparator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/benchmarks/niches",
			Method:  http.MethodGet,
			Handler: ListNiches(service),
		},
	}
}
