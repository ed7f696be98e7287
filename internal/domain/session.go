package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Credentials agrupa as credenciais da API do Meta informadas pelo usuário.
// Vivem apenas em memória pela duração da sessão e nunca são logadas,
// serializadas em respostas ou gravadas em disco.
type Credentials struct {
	AppID       string `json:"app_id"`
	AppSecret   string `json:"app_secret"`
	AccessToken string `json:"access_token"`
	AdAccountID string `json:"ad_account_id"`
}

// Valid verifica se todos os campos obrigatórios foram preenchidos
func (c *Credentials) Valid() bool {
	return c != nil && c.AppID != "" && c.AppSecret != "" && c.AccessToken != "" && c.AdAccountID != ""
}

// Session representa uma sessão de análise vinculada a um conjunto de
// credenciais. Somente leitura após a criação.
type Session struct {
	ID          string       `json:"id"`
	Credentials *Credentials `json:"-"`
	AccountName string       `json:"account_name,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	ExpiresAt   time.Time    `json:"expires_at"`
}

// Expired indica se a sessão já passou do prazo de expiração
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// Destroy zera as credenciais da sessão
func (s *Session) Destroy() {
	if s.Credentials != nil {
		*s.Credentials = Credentials{}
		s.Credentials = nil
	}
}

// SessionClaims são as claims do token JWT emitido na criação da sessão
type SessionClaims struct {
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}
