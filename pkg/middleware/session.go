package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/vfg2006/ads-analyzer-api/internal/domain"
	"github.com/vfg2006/ads-analyzer-api/internal/usecases/sessioning"
	"github.com/vfg2006/ads-analyzer-api/pkg/apiErrors"
)

type contextKey string

const (
	// ContextKeySession é a chave da sessão resolvida no contexto da requisição
	ContextKeySession contextKey = "session"
)

// Rotas públicas que dispensam sessão
var publicPaths = map[string]bool{
	"/healthcheck":          true,
	"/metrics":              true,
	"/v1/sessions":          true,
	"/v1/public-ads/lookup": true,
	"/v1/benchmarks/niches": true,
}

// SessionMiddleware resolve o token Bearer para a sessão de credenciais e
// injeta a sessão no contexto das rotas de análise
func SessionMiddleware(sessions sessioning.SessionManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if publicPaths[r.URL.Path] || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Cabeçalho Authorization é obrigatório", nil)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token Bearer é obrigatório", nil)
				return
			}

			session, err := sessions.Resolve(tokenString)
			if err != nil {
				switch {
				case err == domain.ErrSessionExpired:
					apiErrors.WriteError(w, apiErrors.ErrSessionExpired, "Sessão expirada, crie uma nova sessão", nil)
				case err == domain.ErrSessionNotFound:
					apiErrors.WriteError(w, apiErrors.ErrSessionNotFound, "Sessão não encontrada", nil)
				default:
					apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token de sessão inválido", nil)
				}
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeySession, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFromContext obtém a sessão resolvida pelo middleware
func SessionFromContext(ctx context.Context) *domain.Session {
	if session, ok := ctx.Value(ContextKeySession).(*domain.Session); ok {
		return session
	}
	return nil
}
