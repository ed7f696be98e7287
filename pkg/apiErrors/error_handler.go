package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro retornados pela API
const (
	// Erros de sessão e credenciais (AUTH)
	ErrInvalidCredentials = "AUTH_001" // Credenciais rejeitadas pela plataforma
	ErrMissingCredentials = "AUTH_002" // Credenciais incompletas
	ErrInvalidToken       = "AUTH_003" // Token de sessão inválido
	ErrSessionExpired     = "AUTH_004" // Sessão expirada
	ErrSessionNotFound    = "AUTH_005" // Sessão não encontrada

	// Erros da plataforma de anúncios (META)
	ErrRateLimited     = "RATE_001"    // Throttling da plataforma, tentar novamente com atraso
	ErrUpstreamTimeout = "TIMEOUT_001" // Tempo limite na chamada à plataforma

	// Erros do lookup de anúncios públicos (ADLIB)
	ErrPublicAdNotFound = "ADLIB_001" // URL não resolve para um anúncio público conhecido

	// Erros de validação (VAL)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido

	// Erros do servidor (SRV)
	ErrInternalServer  = "SRV_001" // Erro interno do servidor
	ErrExternalService = "SRV_002" // Erro em serviço externo
	ErrCommunication   = "SRV_003" // Erro de comunicação
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidCredentials:  http.StatusUnauthorized,
	ErrMissingCredentials:  http.StatusBadRequest,
	ErrInvalidToken:        http.StatusUnauthorized,
	ErrSessionExpired:      http.StatusUnauthorized,
	ErrSessionNotFound:     http.StatusUnauthorized,
	ErrRateLimited:         http.StatusTooManyRequests,
	ErrUpstreamTimeout:     http.StatusGatewayTimeout,
	ErrPublicAdNotFound:    http.StatusNotFound,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrExternalService:     http.StatusBadGateway,
	ErrCommunication:       http.StatusServiceUnavailable,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
