package config

import (
	"os"
	"testing"
	"time"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestLoadCatalog(t *testing.T) {
	base := map[string]string{
		"DATABASE_URL": "postgres://localhost/db",
		"RABBITMQ_URL": "amqp://localhost",
		"JWT_SECRET":   testSecret,
	}
	with := func(extra map[string]string, drop ...string) map[string]string {
		env := make(map[string]string, len(base)+len(extra))
		for k, v := range base {
			env[k] = v
		}
		for k, v := range extra {
			env[k] = v
		}
		for _, k := range drop {
			delete(env, k)
		}
		return env
	}

	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
		check   func(t *testing.T, cfg Catalog)
	}{
		{
			name:    "missing DATABASE_URL",
			env:     with(nil, "DATABASE_URL"),
			wantErr: "DATABASE_URL is required",
		},
		{
			name:    "missing RABBITMQ_URL",
			env:     with(nil, "RABBITMQ_URL"),
			wantErr: "RABBITMQ_URL is required",
		},
		{
			name:    "missing JWT_SECRET",
			env:     with(nil, "JWT_SECRET"),
			wantErr: "JWT_SECRET is required",
		},
		{
			name:    "short JWT_SECRET",
			env:     with(map[string]string{"JWT_SECRET": "short"}),
			wantErr: "JWT_SECRET must be at least 32 bytes",
		},
		{
			name:    "malformed JWT_TTL",
			env:     with(map[string]string{"JWT_TTL": "soon"}),
			wantErr: `JWT_TTL: invalid duration "soon"`,
		},
		{
			name:    "negative JWT_TTL",
			env:     with(map[string]string{"JWT_TTL": "-1m"}),
			wantErr: "JWT_TTL must be positive",
		},
		{
			name: "valid config with defaults",
			env:  with(nil),
			check: func(t *testing.T, cfg Catalog) {
				if cfg.HTTPAddr != defaultHTTPAddr {
					t.Fatalf("want default HTTPAddr %q, got %q", defaultHTTPAddr, cfg.HTTPAddr)
				}
				if cfg.MigrationsPath != defaultMigrationsPath {
					t.Fatalf("want MigrationsPath %q, got %q", defaultMigrationsPath, cfg.MigrationsPath)
				}
				if cfg.JWTTTL != defaultJWTTTL {
					t.Fatalf("want JWTTTL %v, got %v", defaultJWTTTL, cfg.JWTTTL)
				}
				if cfg.EventsQueue != "products.events" {
					t.Fatalf("want EventsQueue products.events, got %q", cfg.EventsQueue)
				}
				if cfg.Admin.Enabled() || cfg.SuperAdmin.Enabled() {
					t.Fatalf("bootstrap accounts must be disabled by default")
				}
				if cfg.DBMaxOpenConns != defaultDBMaxOpenConns {
					t.Fatalf("want DBMaxOpenConns %d, got %d", defaultDBMaxOpenConns, cfg.DBMaxOpenConns)
				}
				if cfg.ShutdownTimeout != defaultShutdownTimeout {
					t.Fatalf("want ShutdownTimeout %v, got %v", defaultShutdownTimeout, cfg.ShutdownTimeout)
				}
			},
		},
		{
			name: "overrides",
			env: with(map[string]string{
				"HTTP_ADDR":      ":9090",
				"JWT_TTL":        "15m",
				"ADMIN_EMAIL":    "Admin@Shop.test",
				"ADMIN_PASSWORD": "secret",
			}),
			check: func(t *testing.T, cfg Catalog) {
				if cfg.HTTPAddr != ":9090" {
					t.Fatalf("want HTTPAddr :9090, got %q", cfg.HTTPAddr)
				}
				if cfg.JWTTTL != 15*time.Minute {
					t.Fatalf("want JWTTTL 15m, got %v", cfg.JWTTTL)
				}
				if !cfg.Admin.Enabled() || cfg.Admin.Email != "admin@shop.test" {
					t.Fatalf("want enabled admin with lower-cased email, got %+v", cfg.Admin)
				}
				if cfg.SuperAdmin.Enabled() {
					t.Fatalf("super admin must stay disabled")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearConfigEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := LoadCatalog()
			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.wantErr)
				}
				if err.Error() != tt.wantErr {
					t.Fatalf("want error %q, got %q", tt.wantErr, err.Error())
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.DatabaseURL != tt.env["DATABASE_URL"] {
				t.Fatalf("want DatabaseURL %q, got %q", tt.env["DATABASE_URL"], cfg.DatabaseURL)
			}
			if cfg.JWTSecret != tt.env["JWT_SECRET"] {
				t.Fatalf("want JWTSecret from env")
			}
			tt.check(t, cfg)
		})
	}
}

func TestLoadNotifications(t *testing.T) {
	tests := []struct {
		name        string
		env         map[string]string
		wantErr     string
		wantTimeout time.Duration
	}{
		{
			name:    "missing RABBITMQ_URL",
			env:     map[string]string{},
			wantErr: "RABBITMQ_URL is required",
		},
		{
			name:        "valid config",
			env:         map[string]string{"RABBITMQ_URL": "amqp://localhost"},
			wantTimeout: defaultShutdownTimeout,
		},
		{
			name:        "custom shutdown timeout",
			env:         map[string]string{"RABBITMQ_URL": "amqp://localhost", "SHUTDOWN_TIMEOUT": "3s"},
			wantTimeout: 3 * time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearConfigEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := LoadNotifications()
			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.wantErr)
				}
				if err.Error() != tt.wantErr {
					t.Fatalf("want error %q, got %q", tt.wantErr, err.Error())
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.RabbitMQURL != tt.env["RABBITMQ_URL"] {
				t.Fatalf("want RabbitMQURL %q, got %q", tt.env["RABBITMQ_URL"], cfg.RabbitMQURL)
			}
			if cfg.ShutdownTimeout != tt.wantTimeout {
				t.Fatalf("want ShutdownTimeout %v, got %v", tt.wantTimeout, cfg.ShutdownTimeout)
			}
		})
	}
}

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"DATABASE_URL", "RABBITMQ_URL", "EVENTS_QUEUE", "HTTP_ADDR", "MIGRATIONS_PATH",
		"JWT_SECRET", "JWT_TTL", "SHUTDOWN_TIMEOUT",
		"ADMIN_EMAIL", "ADMIN_PASSWORD", "SUPER_ADMIN_EMAIL", "SUPER_ADMIN_PASSWORD",
	} {
		if val, ok := os.LookupEnv(key); ok {
			t.Setenv(key, val)
		}
		os.Unsetenv(key)
	}
}
