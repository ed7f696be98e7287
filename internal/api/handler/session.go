package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/ads-analyzer-api/internal/domain"
	"github.com/vfg2006/ads-analyzer-api/internal/usecases/sessioning"
	"github.com/vfg2006/ads-analyzer-api/pkg/apiErrors"
	"github.com/vfg2006/ads-analyzer-api/pkg/log"
	"github.com/vfg2006/ads-analyzer-api/pkg/middleware"
)

// CreateSessionRequest carrega as credenciais informadas pelo usuário.
// Os valores ficam apenas em memória e nunca aparecem em logs ou respostas.
type CreateSessionRequest struct {
	AppID       string `json:"app_id"`
	AppSecret   string `json:"app_secret"`
	AccessToken string `json:"access_token"`
	AdAccountID string `json:"ad_account_id"`
}

type CreateSessionResponse struct {
	Token       string    `json:"token"`
	SessionID   string    `json:"session_id"`
	AccountName string    `json:"account_name,omitempty"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// CreateSession valida as credenciais na plataforma e abre uma sessão de análise
func CreateSession(service sessioning.SessionManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req CreateSessionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.WithField("error", err.Error()).Warn("sessions: corpo da requisição inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		creds := &domain.Credentials{
			AppID:       req.AppID,
			AppSecret:   req.AppSecret,
			AccessToken: req.AccessToken,
			AdAccountID: req.AdAccountID,
		}

		token, session, err := service.Create(r.Context(), creds)
		if err != nil {
			logger.WithField("error", err.Error()).Warn("sessions: falha ao criar sessão")
			writeDomainError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(CreateSessionResponse{
			Token:       token,
			SessionID:   session.ID,
			AccountName: session.AccountName,
			ExpiresAt:   session.ExpiresAt,
		}); err != nil {
			logger.WithField("error", err.Error()).Error("sessions: falha ao serializar resposta")
		}
	})
}

// DestroySession encerra a sessão corrente e descarta as credenciais
func DestroySession(service sessioning.SessionManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		session := middleware.SessionFromContext(r.Context())
		if session == nil {
			apiErrors.WriteError(w, apiErrors.ErrSessionNotFound, "Sessão não encontrada", nil)
			return
		}

		if err := service.Destroy(session.ID); err != nil {
			logger.WithFields(log.Fields{
				"session_id": session.ID,
				"error":      err.Error(),
			}).Warn("sessions: falha ao encerrar sessão")
			writeDomainError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
