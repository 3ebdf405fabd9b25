package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	DefaultBookingAPIURL  = "http://localhost:8081/api"
	DefaultCheckRemoteURL = "https://net-quentin-alessandrocoretti-69422591.koyeb.app/api"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	BookingAPI  BookingAPI  `mapstructure:",squash"`
	Report      Report      `mapstructure:",squash"`
	CheckRemote CheckRemote `mapstructure:",squash"`
	StatsReport StatsReport `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// BookingAPI aponta para o backend de agendamentos consultado pelo relatório
type BookingAPI struct {
	URL       string        `mapstructure:"booking_api_url"`
	Timeout   time.Duration `mapstructure:"booking_api_timeout"`
	UserAgent string        `mapstructure:"booking_api_user_agent"`
}

type Report struct {
	SeedWhenEmpty bool `mapstructure:"report_seed_when_empty"`
}

// CheckRemote configura o verificador de conectividade do deploy remoto
type CheckRemote struct {
	URL       string        `mapstructure:"check_remote_url"`
	Timeout   time.Duration `mapstructure:"check_remote_timeout"`
	UserAgent string        `mapstructure:"check_remote_user_agent"`
}

type StatsReport struct {
	CronSchedule string `mapstructure:"stats_report_cron"`
	Enabled      bool   `mapstructure:"stats_report_cron_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", "8000")
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000")

	viper.SetDefault("BOOKING_API_URL", DefaultBookingAPIURL)
	viper.SetDefault("BOOKING_API_TIMEOUT", "2s")
	viper.SetDefault("BOOKING_API_USER_AGENT", "")

	viper.SetDefault("REPORT_SEED_WHEN_EMPTY", true) // Cria um agendamento de teste quando não há nenhum

	viper.SetDefault("CHECK_REMOTE_URL", DefaultCheckRemoteURL)
	viper.SetDefault("CHECK_REMOTE_TIMEOUT", "10s")
	viper.SetDefault("CHECK_REMOTE_USER_AGENT", "Mozilla/5.0") // Alguns WAFs bloqueiam clientes sem user agent

	viper.SetDefault("STATS_REPORT_CRON", "0 * * * *") // A cada hora cheia
	viper.SetDefault("STATS_REPORT_CRON_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "info")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
	} else {
		logrus.Debug("Arquivo .env lido pelo Viper com sucesso")
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

	if config.BookingAPI.URL == "" {
		config.BookingAPI.URL = DefaultBookingAPIURL
	}
	if config.CheckRemote.URL == "" {
		config.CheckRemote.URL = DefaultCheckRemoteURL
	}

	return config, nil
}

// loadEnvFile tenta carregar o .env do diretório atual ou dos diretórios acima
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Debug("Arquivo .env carregado de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
