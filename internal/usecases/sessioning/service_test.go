package sessioning

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-analyzer-api/internal/config"
	"github.com/vfg2006/ads-analyzer-api/internal/domain"
	"github.com/vfg2006/ads-analyzer-api/internal/usecases/sessioning/mocks"
	"go.uber.org/mock/gomock"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Session.TTL = 4 * time.Hour
	cfg.Auth.Secret = "segredo-de-teste"
	return cfg
}

func validCredentials() *domain.Credentials {
	return &domain.Credentials{
		AppID:       "app",
		AppSecret:   "secret",
		AccessToken: "token",
		AdAccountID: "123456",
	}
}

func TestService_CreateAndResolve(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockValidator := mocks.NewMockCredentialValidator(ctrl)
	store := NewStore()
	service := NewService(newTestConfig(), store, mockValidator)

	creds := validCredentials()

	mockValidator.EXPECT().
		ValidateCredentials(gomock.Any(), creds).
		Return("Minha Loja", nil)

	token, session, err := service.Create(context.Background(), creds)

	require.NoError(t, err)
	require.NotNil(t, session)
	assert.NotEmpty(t, token)
	assert.NotEmpty(t, session.ID)
	assert.Equal(t, "Minha Loja", session.AccountName)
	assert.True(t, session.ExpiresAt.After(time.Now()))
	assert.Equal(t, 1, store.Len())

	// O token emitido resolve de volta para a mesma sessão
	resolved, err := service.Resolve(token)
	require.NoError(t, err)
	assert.Equal(t, session.ID, resolved.ID)
	assert.Equal(t, creds.AdAccountID, resolved.Credentials.AdAccountID)
}

func TestService_Create_InvalidCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockValidator := mocks.NewMockCredentialValidator(ctrl)
	service := NewService(newTestConfig(), NewStore(), mockValidator)

	tests := []struct {
		name  string
		creds *domain.Credentials
	}{
		{
			name:  "Sem access_token",
			creds: &domain.Credentials{AppID: "app", AppSecret: "secret", AdAccountID: "123"},
		},
		{
			name:  "Sem ad_account_id",
			creds: &domain.Credentials{AppID: "app", AppSecret: "secret", AccessToken: "token"},
		},
		{
			name:  "Credenciais vazias",
			creds: &domain.Credentials{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Validador não deve nem ser chamado
			token, session, err := service.Create(context.Background(), tt.creds)

			assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
			assert.Empty(t, token)
			assert.Nil(t, session)
		})
	}
}

func TestService_Create_PlatformRejects(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockValidator := mocks.NewMockCredentialValidator(ctrl)
	store := NewStore()
	service := NewService(newTestConfig(), store, mockValidator)

	mockValidator.EXPECT().
		ValidateCredentials(gomock.Any(), gomock.Any()).
		Return("", domain.ErrAuth)

	token, session, err := service.Create(context.Background(), validCredentials())

	assert.ErrorIs(t, err, domain.ErrAuth)
	assert.Empty(t, token)
	assert.Nil(t, session)
	assert.Equal(t, 0, store.Len())
}

func TestService_Resolve_InvalidToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(newTestConfig(), NewStore(), mocks.NewMockCredentialValidator(ctrl))

	tests := []struct {
		name  string
		token string
	}{
		{name: "Token vazio", token: ""},
		{name: "Token malformado", token: "nao-e-um-jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session, err := service.Resolve(tt.token)

			assert.ErrorIs(t, err, domain.ErrSessionNotFound)
			assert.Nil(t, session)
		})
	}
}

func TestService_Resolve_SessionExpired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockValidator := mocks.NewMockCredentialValidator(ctrl)
	store := NewStore()

	cfg := newTestConfig()
	service := NewService(cfg, store, mockValidator)

	mockValidator.EXPECT().
		ValidateCredentials(gomock.Any(), gomock.Any()).
		Return("Loja", nil)

	token, session, err := service.Create(context.Background(), validCredentials())
	require.NoError(t, err)

	// Expira a sessão no armazenamento sem mexer no token
	session.ExpiresAt = time.Now().Add(-time.Minute)

	resolved, err := service.Resolve(token)

	assert.ErrorIs(t, err, domain.ErrSessionExpired)
	assert.Nil(t, resolved)

	// Sessão expirada é removida na resolução
	assert.Equal(t, 0, store.Len())
}

func TestService_Destroy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockValidator := mocks.NewMockCredentialValidator(ctrl)
	store := NewStore()
	service := NewService(newTestConfig(), store, mockValidator)

	mockValidator.EXPECT().
		ValidateCredentials(gomock.Any(), gomock.Any()).
		Return("Loja", nil)

	token, session, err := service.Create(context.Background(), validCredentials())
	require.NoError(t, err)

	require.NoError(t, service.Destroy(session.ID))
	assert.Equal(t, 0, store.Len())

	// As credenciais são zeradas no encerramento
	assert.Nil(t, session.Credentials)

	// O token não resolve mais
	resolved, err := service.Resolve(token)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	assert.Nil(t, resolved)

	// Destruir de novo devolve sessão não encontrada
	assert.ErrorIs(t, service.Destroy(session.ID), domain.ErrSessionNotFound)
}

func TestService_SweepExpired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockValidator := mocks.NewMockCredentialValidator(ctrl)
	store := NewStore()
	service := NewService(newTestConfig(), store, mockValidator)

	mockValidator.EXPECT().
		ValidateCredentials(gomock.Any(), gomock.Any()).
		Return("Loja", nil).
		Times(3)

	_, expired1, err := service.Create(context.Background(), validCredentials())
	require.NoError(t, err)
	_, expired2, err := service.Create(context.Background(), validCredentials())
	require.NoError(t, err)
	_, alive, err := service.Create(context.Background(), validCredentials())
	require.NoError(t, err)

	expired1.ExpiresAt = time.Now().Add(-time.Hour)
	expired2.ExpiresAt = time.Now().Add(-time.Minute)

	removed := service.SweepExpired()

	assert.Equal(t, 2, removed)
	assert.Equal(t, 1, store.Len())

	_, ok := store.Get(alive.ID)
	assert.True(t, ok)
}
