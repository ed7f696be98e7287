package handler

import (
	"net/http"

	"github.com/vfg2006/ads-analyzer-api/internal/usecases/benchmarking"
	"github.com/vfg2006/ads-analyzer-api/pkg/log"
)

// ListNiches devolve os nichos com benchmark disponível
func ListNiches(service benchmarking.Comparator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string][]string{"niches": service.Niches()}); err != nil {
			logger.WithField("error", err.Error()).Error("benchmarks: falha ao serializar resposta")
		}
	})
}
