package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/StormyDevil/azure-communication-services-solution/internal/secrets"
)

// Environment variables and Key Vault secret names used for resolving the
// Communication Services credentials.
const (
	EnvConnectionString = "ACS_CONNECTION_STRING"
	EnvEndpoint         = "ACS_ENDPOINT"
	EnvKeyVaultURL      = "KEY_VAULT_URL"

	SecretConnectionString = "acs-connection-string"
	SecretEndpoint         = "acs-endpoint"
)

type Config struct {
	App struct {
		Name string
		Env  string
	}

	ACS struct {
		// ConnectionString authenticates SMS, email and identity calls.
		// Empty when neither the environment nor the vault provided one.
		ConnectionString string
		// Endpoint is required only by the chat service.
		Endpoint string
		// KeyVaultURL enables the secret-store fallback when set.
		KeyVaultURL string
	}

	SMS struct {
		FromNumber string
	}

	Email struct {
		SenderAddress string
		PollInterval  time.Duration
	}

	API struct {
		Host string
		Port string
	}

	DB struct {
		Host     string
		Port     int
		User     string
		Password string
		Name     string
		SSLMode  string
	}

	Redis struct {
		Addr     string
		Password string
		DB       int
	}

	Scheduler struct {
		Interval     time.Duration
		BatchTimeout time.Duration
	}

	Worker struct {
		BatchSize         int
		MaxWorkers        int
		PerMessageTimeout time.Duration
	}
}

// New loads configuration from the environment (and .env, when present).
// The ACS credentials may still be empty afterwards; call ResolveACS to
// apply the Key Vault fallback before validating.
func New() *Config {
	_ = godotenv.Load()

	cfg := &Config{}

	// App
	cfg.App.Name = getEnv("APP_NAME", "acs-solution")
	cfg.App.Env = getEnv("APP_ENV", "development")

	// ACS credentials (environment pass; the vault fallback is separate)
	cfg.ACS.ConnectionString = getEnv(EnvConnectionString, "")
	cfg.ACS.Endpoint = getEnv(EnvEndpoint, "")
	cfg.ACS.KeyVaultURL = getEnv(EnvKeyVaultURL, "")

	// Senders
	cfg.SMS.FromNumber = getEnv("ACS_SMS_FROM", "")
	cfg.Email.SenderAddress = getEnv("ACS_EMAIL_SENDER", "")
	cfg.Email.PollInterval = getDuration("ACS_EMAIL_POLL_INTERVAL", 2*time.Second)

	// API
	cfg.API.Host = getEnv("API_HOST", "0.0.0.0")
	cfg.API.Port = getEnv("API_PORT", "8080")

	// DB
	cfg.DB.Host = getEnv("DB_HOST", "db")
	cfg.DB.Port = getInt("DB_PORT", 5432)
	cfg.DB.User = getEnv("DB_USER", "root")
	cfg.DB.Password = getEnv("DB_PASSWORD", "")
	cfg.DB.Name = getEnv("DB_NAME", "db_acs_outbox")
	cfg.DB.SSLMode = getEnv("DB_SSLMODE", "disable")

	// Redis
	cfg.Redis.Addr = getEnv("REDIS_ADDR", "redis:6379")
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	cfg.Redis.DB = getInt("REDIS_DB", 0)

	// Scheduler
	cfg.Scheduler.Interval = getDuration("SCHEDULER_INTERVAL", 5*time.Second)
	cfg.Scheduler.BatchTimeout = getDuration("SCHEDULER_BATCH_TIMEOUT", 30*time.Second)

	// Worker / outbox processing
	cfg.Worker.BatchSize = getInt("MESSAGE_BATCH_SIZE", 100)
	cfg.Worker.MaxWorkers = getInt("MESSAGE_MAX_WORKERS", 4)
	cfg.Worker.PerMessageTimeout = getDuration("MESSAGE_PER_MESSAGE_TIMEOUT", 5*time.Second)

	return cfg
}

// SourceFactory builds a secret source for a vault URL. Injected so tests
// (and callers without Azure credentials) can substitute a fake store.
type SourceFactory func(vaultURL string) (secrets.Source, error)

// ResolveACS applies the secret-store fallback: when no connection string
// came from the environment and a vault URL is configured, both ACS
// secrets are fetched from the vault. Any store failure is logged as a
// warning and resolution continues with the values left empty; validating
// before use is the caller's job. No caching, no retry.
func (c *Config) ResolveACS(ctx context.Context, newSource SourceFactory, logger *zap.Logger) {
	if c.ACS.ConnectionString != "" {
		return
	}
	if c.ACS.KeyVaultURL == "" || newSource == nil {
		return
	}

	source, err := newSource(c.ACS.KeyVaultURL)
	if err != nil {
		logger.Warn("could not open key vault, continuing without it",
			zap.String("vault", c.ACS.KeyVaultURL), zap.Error(err))
		return
	}

	connectionString, err := source.GetSecret(ctx, SecretConnectionString)
	if err != nil {
		logger.Warn("could not load connection string from key vault",
			zap.String("vault", c.ACS.KeyVaultURL), zap.Error(err))
		return
	}

	endpoint, err := source.GetSecret(ctx, SecretEndpoint)
	if err != nil {
		logger.Warn("could not load endpoint from key vault",
			zap.String("vault", c.ACS.KeyVaultURL), zap.Error(err))
		return
	}

	c.ACS.ConnectionString = connectionString
	c.ACS.Endpoint = endpoint
	logger.Info("configuration loaded from key vault", zap.String("vault", c.ACS.KeyVaultURL))
}

func getEnv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func getInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

func getDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

func (c *Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.DB.Host,
		c.DB.Port,
		c.DB.User,
		c.DB.Password,
		c.DB.Name,
		c.DB.SSLMode,
	)
}
