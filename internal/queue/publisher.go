package queue

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// queueName is the durable queue catalog events are routed to via the
// default exchange.
const queueName = "catalog.events"

// Publisher sends CatalogEvents to RabbitMQ. An empty URL disables
// publishing entirely. Each publish dials its own short-lived
// connection; there is no pooled channel to manage or recover.
type Publisher struct {
	url string
}

// NewPublisher builds a Publisher for the given broker URL. Pass an
// empty string to disable publishing.
func NewPublisher(url string) *Publisher {
	return &Publisher{url: url}
}

// Publish fills in the event id and timestamp, then sends the event as
// a persistent JSON message. Errors are logged and returned; API
// handlers discard them so a broker outage never fails a request.
func (p *Publisher) Publish(ctx context.Context, ev CatalogEvent) error {
	if p == nil || p.url == "" {
		return nil
	}
	ev.EventID = uuid.NewString()
	ev.OccurredAt = time.Now().UTC().Format(time.RFC3339)

	conn, err := amqp.Dial(p.url)
	if err != nil {
		log.Printf("rabbitmq: dial failed: %v", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Printf("rabbitmq: channel open failed: %v", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	// Idempotent declare; durable so events survive broker restarts.
	if _, err := ch.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		log.Printf("rabbitmq: queue declare failed: %v", err)
		return err
	}

	body, err := json.Marshal(ev)
	if err != nil {
		log.Printf("rabbitmq: marshal event failed: %v", err)
		return err
	}

	err = ch.PublishWithContext(ctx, "", queueName, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
	if err != nil {
		log.Printf("rabbitmq: publish failed: %v", err)
	}
	return err
}
