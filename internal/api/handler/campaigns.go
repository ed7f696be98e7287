package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/ads-analyzer-api/internal/usecases/insighting"
	"github.com/vfg2006/ads-analyzer-api/pkg/apiErrors"
	"github.com/vfg2006/ads-analyzer-api/pkg/log"
	"github.com/vfg2006/ads-analyzer-api/pkg/middleware"
)

// ListCampaigns lista as campanhas da conta da sessão
func ListCampaigns(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		session := middleware.SessionFromContext(r.Context())
		if session == nil {
			apiErrors.WriteError(w, apiErrors.ErrSessionNotFound, "Sessão não encontrada", nil)
			return
		}

		campaigns, err := service.ListCampaigns(r.Context(), session)
		if err != nil {
			logger.WithField("error", err.Error()).Error("campaigns: falha ao listar campanhas")
			writeDomainError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(campaigns); err != nil {
			logger.WithField("error", err.Error()).Error("campaigns: falha ao serializar resposta")
		}
	})
}

// ListAdSets lista os conjuntos de anúncios de uma campanha
func ListAdSets(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		session := middleware.SessionFromContext(r.Context())
		if session == nil {
			apiErrors.WriteError(w, apiErrors.ErrSessionNotFound, "Sessão não encontrada", nil)
			return
		}

		campaignID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if campaignID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Identificador da campanha é obrigatório", nil)
			return
		}

		adSets, err := service.ListAdSets(r.Context(), session, campaignID)
		if err != nil {
			logger.WithFields(log.Fields{
				"campaign_id": campaignID,
				"error":       err.Error(),
			}).Error("campaigns: falha ao listar conjuntos de anúncios")
			writeDomainError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(adSets); err != nil {
			logger.WithField("error", err.Error()).Error("campaigns: falha ao serializar resposta")
		}
	})
}

// ListAds lista os anúncios de um conjunto
func ListAds(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		session := middleware.SessionFromContext(r.Context())
		if session == nil {
			apiErrors.WriteError(w, apiErrors.ErrSessionNotFound, "Sessão não encontrada", nil)
			return
		}

		adSetID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if adSetID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Identificador do conjunto é obrigatório", nil)
			return
		}

		ads, err := service.ListAds(r.Context(), session, adSetID)
		if err != nil {
			logger.WithFields(log.Fields{
				"adset_id": adSetID,
				"error":    err.Error(),
			}).Error("campaigns: falha ao listar anúncios")
			writeDomainError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(ads); err != nil {
			logger.WithField("error", err.Error()).Error("campaigns: falha ao serializar resposta")
		}
	})
}
