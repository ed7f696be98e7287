package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-analyzer-api/internal/config"
	"github.com/vfg2006/ads-analyzer-api/internal/domain"
)

type stubSessionManager struct {
	sweeps  int
	removed int
}

func (s *stubSessionManager) Create(ctx context.Context, creds *domain.Credentials) (string, *domain.Session, error) {
	return "", nil, nil
}

func (s *stubSessionManager) Resolve(tokenString string) (*domain.Session, error) {
	return nil, domain.ErrSessionNotFound
}

func (s *stubSessionManager) Destroy(sessionID string) error {
	return nil
}

func (s *stubSessionManager) SweepExpired() int {
	s.sweeps++
	return s.removed
}

func newTestConfig(enabled bool) *config.Config {
	cfg := &config.Config{}
	cfg.Session.SweepCron = "*/10 * * * *"
	cfg.Session.SweepEnabled = enabled
	return cfg
}

func TestRunNow(t *testing.T) {
	sessions := &stubSessionManager{removed: 3}
	service := NewSessionSweepService(sessions, newTestConfig(true))

	service.RunNow()

	assert.Equal(t, 1, sessions.sweeps)

	status := service.GetStatus()
	assert.Equal(t, 3, status["last_sweep_total"])
	assert.WithinDuration(t, time.Now(), status["last_sweep_at"].(time.Time), time.Second)
}

func TestStart_Disabled(t *testing.T) {
	sessions := &stubSessionManager{}
	service := NewSessionSweepService(sessions, newTestConfig(false))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, service.Start(ctx))

	// Desabilitado, nada é agendado nem executado
	assert.Equal(t, 0, sessions.sweeps)
}

func TestGetStatus(t *testing.T) {
	service := NewSessionSweepService(&stubSessionManager{}, newTestConfig(true))

	status := service.GetStatus()

	assert.Equal(t, true, status["sweep_enabled"])
	assert.Equal(t, "*/10 * * * *", status["sweep_cron"])
	assert.Equal(t, 0, status["last_sweep_total"])
}
