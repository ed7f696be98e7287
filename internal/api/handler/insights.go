package handler

import (
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/ads-analyzer-api/internal/domain"
	"github.com/vfg2006/ads-analyzer-api/internal/usecases/insighting"
	"github.com/vfg2006/ads-analyzer-api/pkg/apiErrors"
	"github.com/vfg2006/ads-analyzer-api/pkg/log"
	"github.com/vfg2006/ads-analyzer-api/pkg/middleware"
	"github.com/vfg2006/ads-analyzer-api/pkg/utils"
)

// filtersFromRequest monta os filtros de consulta a partir da query string.
// Sem preset e sem datas explícitas o período cai nos últimos 30 dias.
func filtersFromRequest(r *http.Request) (*domain.InsightFilters, error) {
	query := r.URL.Query()

	startDate, endDate, err := utils.ResolveDateRange(
		query.Get("date_preset"),
		query.Get("start_date"),
		query.Get("end_date"),
		time.Now(),
	)
	if err != nil {
		return nil, err
	}

	return &domain.InsightFilters{
		Level:     query.Get("level"),
		ObjectID:  query.Get("id"),
		StartDate: startDate,
		EndDate:   endDate,
		Niche:     query.Get("niche"),
	}, nil
}

// GetInsights executa a análise completa do período: métricas brutas,
// derivadas, vereditos de benchmark e recomendações
func GetInsights(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		session := middleware.SessionFromContext(r.Context())
		if session == nil {
			apiErrors.WriteError(w, apiErrors.ErrSessionNotFound, "Sessão não encontrada", nil)
			return
		}

		filters, err := filtersFromRequest(r)
		if err != nil {
			logger.WithField("error", err.Error()).Warn("insights: parâmetros de período inválidos")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		logger.WithFields(log.Fields{
			"level":      filters.Level,
			"object_id":  filters.ObjectID,
			"niche":      filters.Niche,
			"start_date": filters.StartDate.Format(time.DateOnly),
			"end_date":   filters.EndDate.Format(time.DateOnly),
		}).Info("insights: iniciando análise do período")

		insights, err := service.GetInsights(r.Context(), session, filters)
		if err != nil {
			logger.WithFields(log.Fields{
				"level":     filters.Level,
				"object_id": filters.ObjectID,
				"error":     err.Error(),
			}).Error("insights: falha na análise do período")
			writeDomainError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(insights); err != nil {
			logger.WithField("error", err.Error()).Error("insights: falha ao serializar resposta")
		}
	})
}

// GetSeries devolve a série diária bruta e derivada para gráficos
func GetSeries(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		session := middleware.SessionFromContext(r.Context())
		if session == nil {
			apiErrors.WriteError(w, apiErrors.ErrSessionNotFound, "Sessão não encontrada", nil)
			return
		}

		filters, err := filtersFromRequest(r)
		if err != nil {
			logger.WithField("error", err.Error()).Warn("insights: parâmetros de período inválidos")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		series, err := service.GetSeries(r.Context(), session, filters)
		if err != nil {
			logger.WithFields(log.Fields{
				"level":     filters.Level,
				"object_id": filters.ObjectID,
				"error":     err.Error(),
			}).Error("insights: falha ao buscar série diária")
			writeDomainError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(series); err != nil {
			logger.WithField("error", err.Error()).Error("insights: falha ao serializar resposta")
		}
	})
}

// GetAdDemographics devolve os breakdowns de idade, gênero e país de um anúncio
func GetAdDemographics(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		session := middleware.SessionFromContext(r.Context())
		if session == nil {
			apiErrors.WriteError(w, apiErrors.ErrSessionNotFound, "Sessão não encontrada", nil)
			return
		}

		adID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if adID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Identificador do anúncio é obrigatório", nil)
			return
		}

		filters, err := filtersFromRequest(r)
		if err != nil {
			logger.WithField("error", err.Error()).Warn("insights: parâmetros de período inválidos")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		demographics, err := service.GetDemographics(r.Context(), session, adID, filters)
		if err != nil {
			logger.WithFields(log.Fields{
				"ad_id": adID,
				"error": err.Error(),
			}).Error("insights: falha ao buscar dados demográficos")
			writeDomainError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(demographics); err != nil {
			logger.WithField("error", err.Error()).Error("insights: falha ao serializar resposta")
		}
	})
}
