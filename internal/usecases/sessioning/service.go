package sessioning

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-analyzer-api/internal/config"
	"github.com/vfg2006/ads-analyzer-api/internal/domain"
	"github.com/vfg2006/ads-analyzer-api/internal/metrics"
)

// CredentialValidator confirma as credenciais junto à API do Meta antes
// de abrir a sessão
type CredentialValidator interface {
	ValidateCredentials(ctx context.Context, creds *domain.Credentials) (string, error)
}

// SessionManager controla o ciclo de vida das sessões de análise
type SessionManager interface {
	Create(ctx context.Context, creds *domain.Credentials) (string, *domain.Session, error)
	Resolve(tokenString string) (*domain.Session, error)
	Destroy(sessionID string) error
	SweepExpired() int
}

type Service struct {
	cfg       *config.Config
	store     *Store
	validator CredentialValidator
}

func NewService(cfg *config.Config, store *Store, validator CredentialValidator) *Service {
	return &Service{
		cfg:       cfg,
		store:     store,
		validator: validator,
	}
}

// Create valida as credenciais no Meta e abre uma sessão com TTL
// configurável. Retorna o token JWT que o cliente usa nas demais rotas.
func (s *Service) Create(ctx context.Context, creds *domain.Credentials) (string, *domain.Session, error) {
	if !creds.Valid() {
		return "", nil, domain.ErrInvalidCredentials
	}

	accountName, err := s.validator.ValidateCredentials(ctx, creds)
	if err != nil {
		return "", nil, err
	}

	sessionID, err := gonanoid.New()
	if err != nil {
		return "", nil, errors.Wrap(err, "erro ao gerar o identificador da sessão")
	}

	now := time.Now()
	session := &domain.Session{
		ID:          sessionID,
		Credentials: creds,
		AccountName: accountName,
		CreatedAt:   now,
		ExpiresAt:   now.Add(s.cfg.Session.TTL),
	}

	tokenString, err := s.signToken(session)
	if err != nil {
		return "", nil, errors.Wrap(err, "erro ao assinar o token da sessão")
	}

	s.store.Put(session)
	metrics.DefaultMetrics.SessionsCreated.Inc()
	metrics.DefaultMetrics.ActiveSessions.Set(float64(s.store.Len()))

	logrus.WithFields(logrus.Fields{
		"session_id": session.ID,
		"expires_at": session.ExpiresAt.Format(time.RFC3339),
	}).Info("sessions: sessão criada com sucesso")

	return tokenString, session, nil
}

// Resolve valida o token JWT e retorna a sessão correspondente
func (s *Service) Resolve(tokenString string) (*domain.Session, error) {
	claims := &domain.SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("método de assinatura inesperado: %v", t.Header["alg"])
		}
		return []byte(s.cfg.Auth.Secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrSessionExpired
		}
		return nil, domain.ErrSessionNotFound
	}

	if !token.Valid || claims.SessionID == "" {
		return nil, domain.ErrSessionNotFound
	}

	session, ok := s.store.Get(claims.SessionID)
	if !ok {
		return nil, domain.ErrSessionNotFound
	}

	if session.Expired(time.Now()) {
		s.store.Delete(session.ID)
		metrics.DefaultMetrics.ActiveSessions.Set(float64(s.store.Len()))
		return nil, domain.ErrSessionExpired
	}

	return session, nil
}

// Destroy encerra a sessão e zera as credenciais associadas
func (s *Service) Destroy(sessionID string) error {
	if !s.store.Delete(sessionID) {
		return domain.ErrSessionNotFound
	}

	metrics.DefaultMetrics.ActiveSessions.Set(float64(s.store.Len()))

	logrus.WithField("session_id", sessionID).Info("sessions: sessão encerrada pelo cliente")

	return nil
}

// SweepExpired remove as sessões vencidas. Chamado pelo scheduler.
func (s *Service) SweepExpired() int {
	removed := s.store.DeleteExpired(time.Now())
	if removed > 0 {
		metrics.DefaultMetrics.SessionsSwept.Add(float64(removed))
		metrics.DefaultMetrics.ActiveSessions.Set(float64(s.store.Len()))

		logrus.WithField("total_removed", removed).Info("sessions: sessões expiradas removidas")
	}

	return removed
}

func (s *Service) signToken(session *domain.Session) (string, error) {
	claims := &domain.SessionClaims{
		SessionID: session.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(session.CreatedAt),
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Auth.Secret))
}
