package events

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher sends account events to the broker. Each Publish dials its own
// connection and channel and tears them down afterwards, so a call carries
// full connection setup cost but never leaves broker state behind on failure.
// No broker confirm is awaited: once the message is handed to the transport
// the call is complete.
type Publisher struct {
	url string
}

// NewPublisher creates a Publisher that dials the given AMQP URL per call.
func NewPublisher(url string) *Publisher {
	return &Publisher{url: url}
}

// Publish declares the exchange (durable, idempotent) and sends payload as
// JSON under the given routing key.
func (p *Publisher) Publish(ctx context.Context, routingKey, exchange, kind string, payload any) error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		return fmt.Errorf("failed to connect to broker: %w", err)
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}
	defer ch.Close()

	if err := declareExchange(ch, exchange, kind); err != nil {
		return fmt.Errorf("failed to declare exchange %s: %w", exchange, err)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}

	err = ch.PublishWithContext(ctx,
		exchange,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish %s: %w", routingKey, err)
	}
	return nil
}

func declareExchange(ch *amqp.Channel, name, kind string) error {
	return ch.ExchangeDeclare(
		name,
		kind,
		true,  // durable (survive broker restarts)
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,   // arguments
	)
}
