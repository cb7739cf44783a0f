package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"product-catalog/internal/products"
)

const (
	defaultHTTPAddr        = ":8080"
	defaultMigrationsPath  = "migrations/catalog"
	defaultShutdownTimeout = 10 * time.Second
	defaultJWTTTL          = time.Hour

	defaultDBMaxOpenConns    = 25
	defaultDBMaxIdleConns    = 5
	defaultDBConnMaxLifetime = 5 * time.Minute
	defaultDBPingTimeout     = 5 * time.Second
	defaultReadHeaderTimeout = 5 * time.Second

	minJWTSecretLength = 32
)

// Account is a login provisioned from the environment rather than the users
// table. Empty accounts are disabled.
type Account struct {
	Email    string
	Password string
}

func (a Account) Enabled() bool {
	return a.Email != "" && a.Password != ""
}

type Catalog struct {
	DatabaseURL       string
	RabbitMQURL       string
	EventsQueue       string
	HTTPAddr          string
	MigrationsPath    string
	JWTSecret         string
	JWTTTL            time.Duration
	Admin             Account
	SuperAdmin        Account
	ShutdownTimeout   time.Duration
	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxLifetime time.Duration
	DBPingTimeout     time.Duration
	ReadHeaderTimeout time.Duration
}

func LoadCatalog() (Catalog, error) {
	ttl, err := getDuration("JWT_TTL", defaultJWTTTL)
	if err != nil {
		return Catalog{}, err
	}

	cfg := Catalog{
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		RabbitMQURL:    getEnv("RABBITMQ_URL", ""),
		EventsQueue:    getEnv("EVENTS_QUEUE", products.EventsQueue),
		HTTPAddr:       getEnv("HTTP_ADDR", defaultHTTPAddr),
		MigrationsPath: getEnv("MIGRATIONS_PATH", defaultMigrationsPath),
		JWTSecret:      getEnv("JWT_SECRET", ""),
		JWTTTL:         ttl,
		Admin: Account{
			Email:    strings.ToLower(getEnv("ADMIN_EMAIL", "")),
			Password: getEnv("ADMIN_PASSWORD", ""),
		},
		SuperAdmin: Account{
			Email:    strings.ToLower(getEnv("SUPER_ADMIN_EMAIL", "")),
			Password: getEnv("SUPER_ADMIN_PASSWORD", ""),
		},
		ShutdownTimeout:   defaultShutdownTimeout,
		DBMaxOpenConns:    defaultDBMaxOpenConns,
		DBMaxIdleConns:    defaultDBMaxIdleConns,
		DBConnMaxLifetime: defaultDBConnMaxLifetime,
		DBPingTimeout:     defaultDBPingTimeout,
		ReadHeaderTimeout: defaultReadHeaderTimeout,
	}

	if cfg.DatabaseURL == "" {
		return Catalog{}, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.RabbitMQURL == "" {
		return Catalog{}, fmt.Errorf("RABBITMQ_URL is required")
	}
	if cfg.JWTSecret == "" {
		return Catalog{}, fmt.Errorf("JWT_SECRET is required")
	}
	if len(cfg.JWTSecret) < minJWTSecretLength {
		return Catalog{}, fmt.Errorf("JWT_SECRET must be at least %d bytes", minJWTSecretLength)
	}
	if cfg.JWTTTL <= 0 {
		return Catalog{}, fmt.Errorf("JWT_TTL must be positive")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q", key, value)
	}
	return d, nil
}
