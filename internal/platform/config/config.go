package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/backoffice_ledger/internal/core/domain"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	DBMaxConns     int32
	DBLockTimeout  time.Duration
	MigrationsPath string

	JWTSecret string
	JWTIssuer string

	RateLimit          string // ulule formatted, e.g. "100-M"
	CORSAllowedOrigins []string

	RedisURL    string // empty disables the distributed entry lock
	LockExpiry  time.Duration
	LockRetries int

	CurrencyPrecision    int32
	CancellationPolicies domain.CancellationPolicies
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()
	return loadFrom(viper.New())
}

func loadFrom(v *viper.Viper) (*Config, error) {
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_LOCK_TIMEOUT", "5s")
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_ISSUER", "backoffice-ledger")
	v.SetDefault("RATE_LIMIT", "300-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("LOCK_EXPIRY", "10s")
	v.SetDefault("LOCK_RETRIES", 32)
	v.SetDefault("LEDGER_CURRENCY_PRECISION", int(domain.DefaultCurrencyPrecision))
	v.SetDefault("LEDGER_CANCEL_POLICY_INVOICE", string(domain.CancelInPlace))
	v.SetDefault("LEDGER_CANCEL_POLICY_PAYMENT", string(domain.CancelInPlace))
	v.SetDefault("LEDGER_CANCEL_POLICY_MANUAL", string(domain.CancelInPlace))

	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:    v.GetString("PGSQL_URL"),
		Port:           v.GetString("PORT"),
		IsProduction:   v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:  v.GetBool("ENABLE_DB_CHECK"),
		DBMaxConns:     v.GetInt32("DB_MAX_CONNS"),
		MigrationsPath: v.GetString("MIGRATIONS_PATH"),
		JWTSecret:      v.GetString("JWT_SECRET"),
		JWTIssuer:      v.GetString("JWT_ISSUER"),
		RateLimit:      v.GetString("RATE_LIMIT"),
		RedisURL:       v.GetString("REDIS_URL"),
		LockRetries:    v.GetInt("LOCK_RETRIES"),
	}

	if cfg.DatabaseURL == "" {
		slog.Warn("PGSQL_URL environment variable not set.")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
		slog.Warn("PORT environment variable not set, using default", slog.String("port", cfg.Port))
	}
	if cfg.JWTSecret == defaultJWTSecret {
		if cfg.IsProduction {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		slog.Warn("JWT_SECRET environment variable not set. Using default insecure key.")
	}

	var err error
	if cfg.DBLockTimeout, err = parseDuration(v, "DB_LOCK_TIMEOUT", 5*time.Second); err != nil {
		return nil, err
	}
	if cfg.LockExpiry, err = parseDuration(v, "LOCK_EXPIRY", 10*time.Second); err != nil {
		return nil, err
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	precision := v.GetInt("LEDGER_CURRENCY_PRECISION")
	if precision < 0 || precision > 8 {
		return nil, fmt.Errorf("LEDGER_CURRENCY_PRECISION must be between 0 and 8, got %d", precision)
	}
	cfg.CurrencyPrecision = int32(precision)

	cfg.CancellationPolicies = domain.CancellationPolicies{}
	for docType, key := range map[domain.DocumentType]string{
		domain.DocumentInvoice: "LEDGER_CANCEL_POLICY_INVOICE",
		domain.DocumentPayment: "LEDGER_CANCEL_POLICY_PAYMENT",
		domain.DocumentManual:  "LEDGER_CANCEL_POLICY_MANUAL",
	} {
		policy, err := domain.ParseCancellationPolicy(v.GetString(key))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		cfg.CancellationPolicies[docType] = policy
	}

	if cfg.RedisURL == "" {
		slog.Info("REDIS_URL not set, journal entry locks rely on database row locks only.")
	}

	return cfg, nil
}

func parseDuration(v *viper.Viper, key string, fallback time.Duration) (time.Duration, error) {
	raw := v.GetString(key)
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s (%q): %w", key, raw, err)
	}
	return d, nil
}
