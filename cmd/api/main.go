package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-analyzer-api/infrastructure/integrator/adslibrary"
	"github.com/vfg2006/ads-analyzer-api/infrastructure/integrator/meta"
	"github.com/vfg2006/ads-analyzer-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-analyzer-api/internal/api"
	"github.com/vfg2006/ads-analyzer-api/internal/config"
	"github.com/vfg2006/ads-analyzer-api/internal/scheduler"
	"github.com/vfg2006/ads-analyzer-api/internal/usecases/benchmarking"
	"github.com/vfg2006/ads-analyzer-api/internal/usecases/diagnosing"
	"github.com/vfg2006/ads-analyzer-api/internal/usecases/insighting"
	"github.com/vfg2006/ads-analyzer-api/internal/usecases/sessioning"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	metaClient := metaclient.NewClient(cfg)
	metaIntegrator := meta.New(cfg, metaClient)

	adsLibraryService := adslibrary.NewClient(cfg)

	sessionStore := sessioning.NewStore()
	sessionService := sessioning.NewService(cfg, sessionStore, metaIntegrator)

	benchmarkService := benchmarking.NewService(cfg)
	diagnosticService := diagnosing.NewService(cfg)

	insightService := insighting.NewService(cfg, metaIntegrator, benchmarkService, diagnosticService)

	// Inicia o agendador de limpeza de sessões expiradas
	sessionSweepService := scheduler.NewSessionSweepService(sessionService, cfg)
	if err := sessionSweepService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de limpeza de sessões")
	} else {
		logrus.Info("Agendador de limpeza de sessões iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		sessionService,
		insightService,
		benchmarkService,
		adsLibraryService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
