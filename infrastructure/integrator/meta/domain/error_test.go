package metadomain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorDetails_Classification(t *testing.T) {
	tests := []struct {
		name        string
		details     ErrorDetails
		auth        bool
		rateLimited bool
	}{
		{
			name:    "Código 190 (token inválido)",
			details: ErrorDetails{Code: 190, Type: "OAuthException"},
			auth:    true,
		},
		{
			name:    "Código 102 (sessão inválida)",
			details: ErrorDetails{Code: 102, Type: "OAuthException"},
			auth:    true,
		},
		{
			name:    "Subcódigo 463 (token expirado)",
			details: ErrorDetails{Code: 100, Type: "OAuthException", ErrorSubcode: 463},
			auth:    true,
		},
		{
			name:    "Subcódigo 463 fora de OAuthException não é erro de credencial",
			details: ErrorDetails{Code: 100, Type: "GraphMethodException", ErrorSubcode: 463},
		},
		{
			name:        "Código 4 (limite do app)",
			details:     ErrorDetails{Code: 4},
			rateLimited: true,
		},
		{
			name:        "Código 613 (limite de chamadas)",
			details:     ErrorDetails{Code: 613},
			rateLimited: true,
		},
		{
			name:        "Subcódigo 2446079 (limite de insights)",
			details:     ErrorDetails{Code: 100, ErrorSubcode: 2446079},
			rateLimited: true,
		},
		{
			name:    "Código 100 sem subcódigo não classifica",
			details: ErrorDetails{Code: 100, Type: "GraphMethodException"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.auth, tt.details.IsAuthError())
			assert.Equal(t, tt.rateLimited, tt.details.IsRateLimited())
		})
	}
}
