// Package rabbitmq publishes order lifecycle events to a RabbitMQ topic
// exchange. Event names double as routing keys, so consumers can bind to
// "order.*" for everything or to a single event name.
package rabbitmq

import (
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	ExchangeName = "order_events"
	ExchangeType = "topic"
)

const (
	connectAttempts = 5
	connectBackoff  = 2 * time.Second
)

// SetupConn dials the broker and declares the order events exchange.
// Retries the dial a few times so the service survives starting before
// the broker container is ready. Callers own closing both return values.
func SetupConn(url string, logger *slog.Logger) (*amqp.Connection, *amqp.Channel, error) {
	var conn *amqp.Connection
	var err error

	for i := 0; i < connectAttempts; i++ {
		conn, err = amqp.Dial(url)
		if err == nil {
			break
		}
		logger.Warn("failed to connect to RabbitMQ, retrying",
			"attempt", i+1,
			"error", err)
		time.Sleep(connectBackoff)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		return nil, nil, fmt.Errorf("could not open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		ExchangeName, // name
		ExchangeType, // type
		true,         // durable
		false,        // auto-deleted
		false,        // internal
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		return nil, nil, fmt.Errorf("could not declare exchange: %w", err)
	}

	return conn, ch, nil
}
