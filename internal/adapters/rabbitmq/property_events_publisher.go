package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"

	amqp "github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 10 * time.Second

// PropertyEventsPublisher pushes catalog mutation events to a durable
// direct exchange. Callers treat delivery as best effort; the adapter only
// reports the error so the write path can log and move on.
type PropertyEventsPublisher struct {
	conn       *amqp.Connection
	routingKey string
	exchange   string

	mu      sync.Mutex
	channel *amqp.Channel
}

func NewPropertyEventsPublisher(url, exchange, routingKey string) (*PropertyEventsPublisher, error) {
	if url == "" {
		return nil, fmt.Errorf("rabbitmq adapter: url cannot be empty")
	}
	if exchange == "" || routingKey == "" {
		return nil, fmt.Errorf("rabbitmq adapter: exchange and routing key cannot be empty")
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq adapter: failed to connect: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("rabbitmq adapter: failed to open channel: %w", err)
	}

	err = channel.ExchangeDeclare(exchange, "direct", true, false, false, false, nil)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("rabbitmq adapter: failed to declare exchange %s: %w", exchange, err)
	}

	return &PropertyEventsPublisher{
		conn:       conn,
		channel:    channel,
		exchange:   exchange,
		routingKey: routingKey,
	}, nil
}

func (a *PropertyEventsPublisher) PublishPropertyEvent(ctx context.Context, event domain.PropertyEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("rabbitmq adapter: failed to marshal event: %w", err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		Headers:      make(amqp.Table),
	}

	traceID := contextkeys.TraceIDFromContext(ctx)
	if traceID != "" {
		msg.Headers["x-trace-id"] = traceID
	}

	publishCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	a.mu.Lock()
	defer a.mu.Unlock()

	err = a.channel.PublishWithContext(publishCtx, a.exchange, a.routingKey, false, false, msg)
	if err != nil {
		logger := contextkeys.LoggerFromContext(ctx)
		logger.Error("Failed to publish property event", err, port.Fields{
			"action":      event.Action,
			"property_id": event.PropertyID,
		})
		return fmt.Errorf("rabbitmq adapter: failed to publish %s for %s: %w", event.Action, event.PropertyID, err)
	}
	return nil
}

func (a *PropertyEventsPublisher) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.channel != nil {
		a.channel.Close()
	}
	if a.conn != nil {
		return a.conn.Close()
	}
	return nil
}
