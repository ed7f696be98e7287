package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Meta        Meta        `mapstructure:",squash"`
	AdsLibrary  AdsLibrary  `mapstructure:",squash"`
	Session     Session     `mapstructure:",squash"`
	Benchmark   Benchmark   `mapstructure:",squash"`
	Diagnostics Diagnostics `mapstructure:",squash"`
	Auth        Auth        `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Meta struct {
	BaseURL        string        `mapstructure:"meta_base_url"`
	URL            string        `mapstructure:"-"`
	Version        string        `mapstructure:"meta_version"`
	RequestTimeout time.Duration `mapstructure:"meta_request_timeout"`
}

type AdsLibrary struct {
	RequestTimeout time.Duration `mapstructure:"ads_library_request_timeout"`
	UserAgent      string        `mapstructure:"ads_library_user_agent"`
}

type Session struct {
	TTL          time.Duration `mapstructure:"session_ttl"`
	SweepCron    string        `mapstructure:"session_sweep_cron"`
	SweepEnabled bool          `mapstructure:"session_sweep_enabled"`
}

type Benchmark struct {
	// Banda de tolerância do comparador: dentro de ±N% do benchmark o
	// veredito é within_average
	TolerancePercent float64 `mapstructure:"benchmark_tolerance_percent"`
}

type Diagnostics struct {
	// Frequência acima da qual o alerta de saturação é emitido
	SaturationFrequency float64 `mapstructure:"diagnostics_saturation_frequency"`
	// Banda morta da detecção de tendência, em porcentagem
	TrendDeadBandPercent float64 `mapstructure:"diagnostics_trend_dead_band_percent"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v22.0")
	viper.SetDefault("META_REQUEST_TIMEOUT", "30s")

	viper.SetDefault("ADS_LIBRARY_REQUEST_TIMEOUT", "15s")
	viper.SetDefault("ADS_LIBRARY_USER_AGENT", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")

	viper.SetDefault("SESSION_TTL", "4h")
	viper.SetDefault("SESSION_SWEEP_CRON", "*/10 * * * *") // A cada 10 minutos
	viper.SetDefault("SESSION_SWEEP_ENABLED", true)

	viper.SetDefault("BENCHMARK_TOLERANCE_PERCENT", 10.0)

	viper.SetDefault("DIAGNOSTICS_SATURATION_FREQUENCY", 4.0)
	viper.SetDefault("DIAGNOSTICS_TREND_DEAD_BAND_PERCENT", 5.0)

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
