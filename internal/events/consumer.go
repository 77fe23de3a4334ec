package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Handler is the domain reaction a subsystem binds to one routing key.
type Handler func(ctx context.Context, msg AccountMessage) error

// ConsumerService binds one durable queue to one routing key on the accounts
// exchange and dispatches every received message to its handler. Messages are
// consumed with auto-acknowledge: a message counts as delivered the moment it
// is handed over, regardless of handler outcome.
type ConsumerService struct {
	url        string
	queue      string
	routingKey string
	handler    Handler
}

// NewConsumerService creates a consumer for the given subsystem and routing
// key. The queue name is derived from both so it stays stable across restarts.
func NewConsumerService(url, subsystem, routingKey string, handler Handler) *ConsumerService {
	return &ConsumerService{
		url:        url,
		queue:      QueueName(subsystem, routingKey),
		routingKey: routingKey,
		handler:    handler,
	}
}

// Start consumes until ctx is cancelled. Transport failures are logged and
// followed by a redial after a short pause, so a broker restart does not kill
// the service.
func (s *ConsumerService) Start(ctx context.Context) error {
	for {
		err := s.consume(ctx)
		if ctx.Err() != nil {
			log.Printf("consumer stopping: queue=%s", s.queue)
			return ctx.Err()
		}
		log.Printf("consumer error on queue %s: %v", s.queue, err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Second):
		}
	}
}

func (s *ConsumerService) consume(ctx context.Context) error {
	conn, err := amqp.Dial(s.url)
	if err != nil {
		return fmt.Errorf("failed to connect to broker: %w", err)
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}
	defer ch.Close()

	if err := declareExchange(ch, AccountsExchange, ExchangeDirect); err != nil {
		return fmt.Errorf("failed to declare exchange: %w", err)
	}

	_, err = ch.QueueDeclare(
		s.queue,
		true,  // durable (survive broker restarts)
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare queue %s: %w", s.queue, err)
	}

	if err := ch.QueueBind(s.queue, s.routingKey, AccountsExchange, false, nil); err != nil {
		return fmt.Errorf("failed to bind queue %s: %w", s.queue, err)
	}

	deliveries, err := ch.Consume(
		s.queue,
		"",    // consumer tag
		true,  // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		return fmt.Errorf("failed to consume from %s: %w", s.queue, err)
	}

	log.Printf("consumer listening: queue=%s routingKey=%s", s.queue, s.routingKey)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-deliveries:
			if !ok {
				return fmt.Errorf("delivery channel closed for queue %s", s.queue)
			}
			s.dispatch(ctx, d)
		}
	}
}

// dispatch decodes one delivery and invokes the handler. The message is
// already acknowledged at this point, so failures can only be logged.
func (s *ConsumerService) dispatch(ctx context.Context, d amqp.Delivery) {
	var msg AccountMessage
	if err := json.Unmarshal(d.Body, &msg); err != nil {
		log.Printf("dropping undecodable message on %s: %v", s.queue, err)
		return
	}
	if err := s.handler(ctx, msg); err != nil {
		log.Printf("handler error for %s on %s: %v", d.RoutingKey, s.queue, err)
	}
}
