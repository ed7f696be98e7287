package handler

import (
	"net/http"

	"github.com/vfg2006/ads-analyzer-api/infrastructure/integrator/adslibrary"
	"github.com/vfg2006/ads-analyzer-api/pkg/apiErrors"
	"github.com/vfg2006/ads-analyzer-api/pkg/log"
)

// LookupPublicAd extrai metadados de um anúncio público do Facebook ou
// Instagram e devolve a estimativa de desempenho. Não exige sessão: usa
// apenas dados públicos.
func LookupPublicAd(service adslibrary.Client) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		adURL := r.URL.Query().Get("url")
		if adURL == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetro url é obrigatório", nil)
			return
		}

		estimate, err := service.Lookup(r.Context(), adURL)
		if err != nil {
			logger.WithFields(log.Fields{
				"url":   adURL,
				"error": err.Error(),
			}).Warn("ads_library: falha no lookup do anúncio público")
			writeDomainError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(estimate); err != nil {
			logger.WithField("error", err.Error()).Error("ads_library: falha ao serializar resposta")
		}
	})
}
