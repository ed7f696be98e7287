package metadomain

// ErrorResponse representa a estrutura de erro da API do Meta
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro da API do Meta
type ErrorDetails struct {
	Message      string      `json:"message"`
	Type         string      `json:"type"`
	Code         int         `json:"code"`
	ErrorSubcode int         `json:"error_subcode,omitempty"`
	FBTraceID    string      `json:"fbtrace_id"`
	ErrorData    interface{} `json:"error_data,omitempty"`
}

// IsAuthError verifica se o erro é de credenciais inválidas ou expiradas.
// O código 190 representa token inválido/expirado nas respostas da API do
// Meta; subcódigos 460, 463 e 467 são variações do mesmo problema.
func (e *ErrorDetails) IsAuthError() bool {
	return e.Code == 190 ||
		e.Code == 102 ||
		(e.Type == "OAuthException" && (e.ErrorSubcode == 460 || e.ErrorSubcode == 463 || e.ErrorSubcode == 467))
}

// IsRateLimited verifica se o erro é de throttling da plataforma.
// Códigos 4 (app), 17 (usuário), 32 (página) e 613 são limites de
// requisição; o subcódigo 2446079 é o limite específico de insights.
func (e *ErrorDetails) IsRateLimited() bool {
	switch e.Code {
	case 4, 17, 32, 613:
		return true
	}
	return e.ErrorSubcode == 2446079
}
