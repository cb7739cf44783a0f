package notifications

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"product-catalog/internal/products"
	"product-catalog/internal/products/messaging"

	amqp "github.com/rabbitmq/amqp091-go"
)

const consumerTag = "notifications-service"

// ErrUnknownEvent is returned for events this service has no notice for.
var ErrUnknownEvent = errors.New("unknown event type")

type Consumer struct {
	channel *amqp.Channel
	queue   string
	logger  *slog.Logger
}

func NewConsumer(conn *amqp.Connection, queue string, logger *slog.Logger) (*Consumer, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if _, err := messaging.DeclareQueue(ch, queue); err != nil {
		_ = ch.Close()
		return nil, err
	}

	return &Consumer{
		channel: ch,
		queue:   queue,
		logger:  logger,
	}, nil
}

func (c *Consumer) Listen(ctx context.Context) error {
	msgs, err := c.channel.Consume(
		c.queue,
		consumerTag,
		false, // manual ack
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("consume queue %q: %w", c.queue, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-msgs:
			if !ok {
				return nil
			}

			if err := Handle(c.logger, msg.Body); err != nil {
				// Malformed or unknown events never succeed on redelivery.
				c.logger.Error("handle message failed",
					"message_id", msg.MessageId,
					"error", err,
				)
				_ = msg.Nack(false, false)
				continue
			}

			_ = msg.Ack(false)
		}
	}
}

// Handle decodes one catalog event and logs the matching notice.
func Handle(logger *slog.Logger, body []byte) error {
	var event products.ProductEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return fmt.Errorf("unmarshal event: %w", err)
	}

	notice, err := Notice(event)
	if err != nil {
		return err
	}

	logger.Info(notice,
		"event_type", event.EventType,
		"product_id", event.ProductID,
		"code", event.Code,
		"timestamp", event.Timestamp,
	)
	return nil
}

func Notice(event products.ProductEvent) (string, error) {
	switch event.EventType {
	case products.EventCreated:
		return fmt.Sprintf("product %q added to the catalog", event.Title), nil
	case products.EventUpdated:
		return fmt.Sprintf("product %q updated", event.Title), nil
	case products.EventDeleted:
		return fmt.Sprintf("product %d removed from the catalog", event.ProductID), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownEvent, event.EventType)
	}
}

func (c *Consumer) Close() error {
	return c.channel.Close()
}
