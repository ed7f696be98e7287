package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-analyzer-api/internal/config"
	"github.com/vfg2006/ads-analyzer-api/internal/usecases/sessioning"
)

// SessionSweepConfig representa a configuração do agendador de limpeza de sessões
type SessionSweepConfig struct {
	CronSchedule string
	SweepEnabled bool
}

// SessionSweepService agenda a remoção periódica de sessões expiradas.
// Sessões vencidas também são recusadas na resolução do token; o sweeper
// garante que as credenciais não fiquem em memória além do necessário.
type SessionSweepService struct {
	scheduler      *gocron.Scheduler
	config         SessionSweepConfig
	sessions       sessioning.SessionManager
	sweepRunning   bool
	sweepMutex     sync.Mutex
	lastSweepAt    time.Time
	lastSweepTotal int
}

// NewSessionSweepService cria uma nova instância do serviço de limpeza de sessões
func NewSessionSweepService(sessions sessioning.SessionManager, appConfig *config.Config) *SessionSweepService {
	sweepConfig := SessionSweepConfig{
		CronSchedule: appConfig.Session.SweepCron,
		SweepEnabled: appConfig.Session.SweepEnabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": sweepConfig.CronSchedule,
		"sweep_enabled": sweepConfig.SweepEnabled,
	}).Info("Configuração do agendador de limpeza de sessões carregada")

	return &SessionSweepService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    sweepConfig,
		sessions:  sessions,
	}
}

// Start inicia o agendador
func (s *SessionSweepService) Start(ctx context.Context) error {
	if !s.config.SweepEnabled {
		logrus.Info("Limpeza periódica de sessões desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de limpeza de sessões")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.sweep()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza de sessões: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de limpeza de sessões")
		s.scheduler.Stop()
	}()

	return nil
}

// sweep executa uma rodada de limpeza, ignorando chamadas concorrentes
func (s *SessionSweepService) sweep() {
	s.sweepMutex.Lock()
	if s.sweepRunning {
		s.sweepMutex.Unlock()
		logrus.Info("Limpeza de sessões já em andamento, ignorando")
		return
	}
	s.sweepRunning = true
	s.sweepMutex.Unlock()

	defer func() {
		s.sweepMutex.Lock()
		s.sweepRunning = false
		s.sweepMutex.Unlock()
	}()

	removed := s.sessions.SweepExpired()

	s.lastSweepAt = time.Now()
	s.lastSweepTotal = removed
}

// RunNow executa manualmente uma rodada de limpeza
func (s *SessionSweepService) RunNow() {
	s.sweep()
}

// GetStatus retorna o status atual do agendador
func (s *SessionSweepService) GetStatus() map[string]any {
	return map[string]any{
		"sweep_enabled":    s.config.SweepEnabled,
		"sweep_cron":       s.config.CronSchedule,
		"last_sweep_at":    s.lastSweepAt,
		"last_sweep_total": s.lastSweepTotal,
	}
}
