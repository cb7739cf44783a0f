package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"product-catalog/internal/auth"
	authhttp "product-catalog/internal/auth/http"
	authrepo "product-catalog/internal/auth/repository"
	"product-catalog/internal/config"
	producthttp "product-catalog/internal/products/http"
	"product-catalog/internal/products/messaging"
	"product-catalog/internal/products/repository"
	"product-catalog/internal/products/service"

	_ "product-catalog/docs"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	metricCreatedTotal  = "catalog_products_created_total"
	metricUpdatedTotal  = "catalog_products_updated_total"
	metricDeletedTotal  = "catalog_products_deleted_total"
	metricRejectedTotal = "catalog_products_rejected_total"
	migrateSourcePrefix = "file://"
	postgresDriverName  = "postgres"
)

// @title                       Product Catalog API
// @version                     1.0
// @description                 Product catalog with validated mutations and change events.
// @host                        localhost:8080
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	os.Exit(run(logger))
}

func run(logger *slog.Logger) int {
	cfg, err := config.LoadCatalog()
	if err != nil {
		logger.Error("load config", "error", err)
		return 1
	}

	if err := runMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		logger.Error("run migrations", "error", err)
		return 1
	}

	db, err := sql.Open(postgresDriverName, cfg.DatabaseURL)
	if err != nil {
		logger.Error("open database", "error", err)
		return 1
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxIdleConns)
	db.SetConnMaxLifetime(cfg.DBConnMaxLifetime)

	pingCtx, pingCancel := context.WithTimeout(context.Background(), cfg.DBPingTimeout)
	defer pingCancel()
	if err := db.PingContext(pingCtx); err != nil {
		logger.Error("ping database", "error", err)
		return 1
	}

	rabbitConn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		logger.Error("connect rabbitmq", "error", err)
		return 1
	}
	defer rabbitConn.Close()

	publisher, err := messaging.NewRabbitPublisher(rabbitConn, cfg.EventsQueue)
	if err != nil {
		logger.Error("init publisher", "error", err)
		return 1
	}
	defer publisher.Close()

	metrics := newMetrics()

	repo := repository.NewPostgres(db)
	svc := service.New(repo, publisher, logger, metrics)

	authSvc := auth.NewService(
		authrepo.NewPostgresUsers(db),
		auth.NewTokens(cfg.JWTSecret, cfg.JWTTTL),
		logger,
		bootstrapAccounts(cfg)...,
	)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(producthttp.RequestIDMiddleware())
	router.Use(producthttp.AccessLogMiddleware(logger))
	router.Use(producthttp.ErrorHandler(logger))
	producthttp.RegisterRoutes(router, producthttp.NewHandler(svc), repo,
		authhttp.RequireAuth(authSvc),
		authhttp.RequireRole(auth.RoleAdmin, auth.RoleSuperAdmin),
	)
	authhttp.RegisterRoutes(router, authhttp.NewHandler(authSvc))

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("catalog service started", "addr", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	exitCode := 0
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("http server failed", "error", err)
		exitCode = 1
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
		return 1
	}
	logger.Info("catalog service stopped")
	return exitCode
}

func newMetrics() service.Metrics {
	m := service.Metrics{
		Created: prometheus.NewCounter(prometheus.CounterOpts{
			Name: metricCreatedTotal,
			Help: "Total number of products created",
		}),
		Updated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: metricUpdatedTotal,
			Help: "Total number of products updated",
		}),
		Deleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: metricDeletedTotal,
			Help: "Total number of products deleted",
		}),
		Rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: metricRejectedTotal,
			Help: "Create, update and delete requests rejected with a catalog error, by error code",
		}, []string{"code"}),
	}
	prometheus.MustRegister(m.Created, m.Updated, m.Deleted, m.Rejected)
	return m
}

// bootstrapAccounts returns the configured admin logins that are enabled.
func bootstrapAccounts(cfg config.Catalog) []auth.Account {
	var accounts []auth.Account
	if cfg.Admin.Enabled() {
		accounts = append(accounts, auth.Account{Email: cfg.Admin.Email, Password: cfg.Admin.Password, Role: auth.RoleAdmin})
	}
	if cfg.SuperAdmin.Enabled() {
		accounts = append(accounts, auth.Account{Email: cfg.SuperAdmin.Email, Password: cfg.SuperAdmin.Password, Role: auth.RoleSuperAdmin})
	}
	return accounts
}

func runMigrations(databaseURL, migrationsPath string) error {
	m, err := migrate.New(migrateSourcePrefix+migrationsPath, databaseURL)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	return nil
}
