package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"product-catalog/internal/config"
	"product-catalog/internal/notifications"

	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	os.Exit(run(logger))
}

func run(logger *slog.Logger) int {
	cfg, err := config.LoadNotifications()
	if err != nil {
		logger.Error("load config", "error", err)
		return 1
	}

	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		logger.Error("connect rabbitmq", "error", err)
		return 1
	}
	defer conn.Close()

	consumer, err := notifications.NewConsumer(conn, cfg.EventsQueue, logger)
	if err != nil {
		logger.Error("init consumer", "error", err)
		return 1
	}
	defer consumer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	done := make(chan error, 1)
	go func() {
		logger.Info("notifications service started", "queue", cfg.EventsQueue)
		done <- consumer.Listen(ctx)
	}()

	select {
	case err := <-done:
		if err != nil {
			logger.Error("consumer failed", "error", err)
			return 1
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received")
		if code := drain(done, cfg.ShutdownTimeout, logger); code != 0 {
			return code
		}
	}

	logger.Info("notifications service stopped")
	return 0
}

// drain waits for the consumer loop to return after cancellation.
func drain(done <-chan error, timeout time.Duration, logger *slog.Logger) int {
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()

	select {
	case err := <-done:
		if err != nil {
			logger.Error("consumer stop failed", "error", err)
			return 1
		}
	case <-deadline.C:
		logger.Warn("consumer shutdown timeout reached")
	}
	return 0
}
