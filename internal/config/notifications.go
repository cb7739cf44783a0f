package config

import (
	"fmt"
	"time"

	"product-catalog/internal/products"
)

type Notifications struct {
	RabbitMQURL     string
	EventsQueue     string
	ShutdownTimeout time.Duration
}

func LoadNotifications() (Notifications, error) {
	timeout, err := getDuration("SHUTDOWN_TIMEOUT", defaultShutdownTimeout)
	if err != nil {
		return Notifications{}, err
	}

	cfg := Notifications{
		RabbitMQURL:     getEnv("RABBITMQ_URL", ""),
		EventsQueue:     getEnv("EVENTS_QUEUE", products.EventsQueue),
		ShutdownTimeout: timeout,
	}

	if cfg.RabbitMQURL == "" {
		return Notifications{}, fmt.Errorf("RABBITMQ_URL is required")
	}

	return cfg, nil
}
