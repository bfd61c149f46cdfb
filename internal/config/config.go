package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// ErrUnconfigured indica credenciais ou URLs obrigatórias ausentes
var ErrUnconfigured = errors.New("required configuration is missing")

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	LLM          LLM          `mapstructure:",squash"`
	Profile      Profile      `mapstructure:",squash"`
	Redis        Redis        `mapstructure:",squash"`
	Kafka        Kafka        `mapstructure:",squash"`
	GhostedSweep GhostedSweep `mapstructure:",squash"`
	SecretKey    string       `mapstructure:"secret_key"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// LLM configura o backend de geração de texto em streaming
type LLM struct {
	BaseURL         string        `mapstructure:"llm_base_url"`
	APIKey          string        `mapstructure:"llm_api_key"`
	Model           string        `mapstructure:"llm_model"`
	MaxOutputTokens int           `mapstructure:"llm_max_output_tokens"`
	Timeout         time.Duration `mapstructure:"llm_timeout"`
}

// Profile configura o provedor externo de perfis de criadores
type Profile struct {
	URL      string        `mapstructure:"profile_api_url"`
	APIKey   string        `mapstructure:"profile_api_key"`
	Timeout  time.Duration `mapstructure:"profile_api_timeout"`
	CacheTTL time.Duration `mapstructure:"profile_cache_ttl"`
}

type Redis struct {
	URL string `mapstructure:"redis_url"`
}

type Kafka struct {
	Brokers []string `mapstructure:"kafka_brokers"`
	Topic   string   `mapstructure:"kafka_outreach_topic"`
}

type GhostedSweep struct {
	CronSchedule string `mapstructure:"ghosted_sweep_cron"`
	AfterDays    int    `mapstructure:"ghosted_sweep_after_days"`
	Enabled      bool   `mapstructure:"ghosted_sweep_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/creator_pitch?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("LLM_BASE_URL", "https://api.openai.com/v1")
	viper.SetDefault("LLM_API_KEY", "")
	viper.SetDefault("LLM_MODEL", "gpt-4o-mini")
	viper.SetDefault("LLM_MAX_OUTPUT_TOKENS", 500)
	viper.SetDefault("LLM_TIMEOUT", "2m")

	viper.SetDefault("PROFILE_API_URL", "")
	viper.SetDefault("PROFILE_API_KEY", "")
	viper.SetDefault("PROFILE_API_TIMEOUT", "15s")
	viper.SetDefault("PROFILE_CACHE_TTL", "6h")

	viper.SetDefault("REDIS_URL", "")

	viper.SetDefault("KAFKA_BROKERS", "")
	viper.SetDefault("KAFKA_OUTREACH_TOPIC", "creator-pitch.outreach")

	// Sweep de outreach sem resposta
	viper.SetDefault("GHOSTED_SWEEP_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("GHOSTED_SWEEP_AFTER_DAYS", 30)    // 30 dias sem atualização
	viper.SetDefault("GHOSTED_SWEEP_ENABLED", false)    // Desabilitado por padrão

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

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

	config.Kafka.Brokers = compactList(config.Kafka.Brokers)
	config.Server.AllowedOrigins = compactList(config.Server.AllowedOrigins)
	config.LLM.BaseURL = strings.TrimRight(config.LLM.BaseURL, "/")
	config.Profile.URL = strings.TrimRight(config.Profile.URL, "/")

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Validate verifica se os backends obrigatórios estão configurados.
// A aplicação não deve subir sem eles.
func (c *Config) Validate() error {
	missing := make([]string, 0)

	if strings.TrimSpace(c.LLM.BaseURL) == "" {
		missing = append(missing, "LLM_BASE_URL")
	}
	if strings.TrimSpace(c.LLM.APIKey) == "" {
		missing = append(missing, "LLM_API_KEY")
	}
	if strings.TrimSpace(c.LLM.Model) == "" {
		missing = append(missing, "LLM_MODEL")
	}
	if strings.TrimSpace(c.Profile.URL) == "" {
		missing = append(missing, "PROFILE_API_URL")
	}
	if strings.TrimSpace(c.Profile.APIKey) == "" {
		missing = append(missing, "PROFILE_API_KEY")
	}
	if strings.TrimSpace(c.SecretKey) == "" {
		missing = append(missing, "SECRET_KEY")
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrUnconfigured, strings.Join(missing, ", "))
	}

	if c.LLM.MaxOutputTokens <= 0 {
		return fmt.Errorf("%w: LLM_MAX_OUTPUT_TOKENS must be positive", ErrUnconfigured)
	}

	return nil
}

func compactList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
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
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
