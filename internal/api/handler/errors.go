package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/ads-analyzer-api/internal/domain"
	"github.com/vfg2006/ads-analyzer-api/pkg/apiErrors"
)

// writeDomainError converte os erros de domínio no código de API
// correspondente. Erros não classificados viram erro interno genérico,
// sem vazar detalhes do upstream para o cliente.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		apiErrors.WriteError(w, apiErrors.ErrMissingCredentials, "Informe app_id, app_secret, access_token e ad_account_id", nil)
	case errors.Is(err, domain.ErrAuth):
		apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "Credenciais rejeitadas pela plataforma de anúncios", nil)
	case errors.Is(err, domain.ErrRateLimited):
		apiErrors.WriteError(w, apiErrors.ErrRateLimited, "Limite de requisições da plataforma atingido, tente novamente em instantes", nil)
	case errors.Is(err, domain.ErrTimeout):
		apiErrors.WriteError(w, apiErrors.ErrUpstreamTimeout, "Tempo limite excedido na comunicação com a plataforma", nil)
	case errors.Is(err, domain.ErrAdNotFound):
		apiErrors.WriteError(w, apiErrors.ErrPublicAdNotFound, "URL não corresponde a um anúncio público do Facebook ou Instagram", nil)
	case errors.Is(err, domain.ErrSessionExpired):
		apiErrors.WriteError(w, apiErrors.ErrSessionExpired, "Sessão expirada, crie uma nova sessão", nil)
	case errors.Is(err, domain.ErrSessionNotFound):
		apiErrors.WriteError(w, apiErrors.ErrSessionNotFound, "Sessão não encontrada", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao consultar a plataforma de anúncios", nil)
	}
}
