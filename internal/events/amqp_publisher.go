package events

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/helpdesk-labs/ticket-tracker/internal/config"
)

// AMQPPublisher forwards dispatched events to a durable RabbitMQ queue.
// Publish failures are logged and swallowed so the request flow is never
// interrupted by the broker.
type AMQPPublisher struct {
	cfg    config.AMQPConfig
	logger *zap.Logger
}

// NewAMQPPublisher creates the publisher.
func NewAMQPPublisher(cfg config.AMQPConfig, logger *zap.Logger) *AMQPPublisher {
	return &AMQPPublisher{cfg: cfg, logger: logger}
}

// RegisterHandlers subscribes every ticket event type.
func (p *AMQPPublisher) RegisterHandlers(dispatcher Dispatcher) {
	if dispatcher == nil || p.cfg.URL == "" {
		return
	}
	for _, eventType := range []EventType{EventTicketCreated, EventTicketStatusChanged, EventUserSignedUp} {
		dispatcher.Subscribe(eventType, p.handle)
	}
}

func (p *AMQPPublisher) handle(ctx context.Context, event Event) error {
	conn, err := amqp.Dial(p.cfg.URL)
	if err != nil {
		p.logger.Warn("amqp dial failed", zap.Error(err))
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		p.logger.Warn("amqp channel open failed", zap.Error(err))
		return err
	}
	defer func() { _ = ch.Close() }()

	// Idempotent declare; durable so messages survive broker restarts.
	if _, err := ch.QueueDeclare(p.cfg.Queue, true, false, false, false, nil); err != nil {
		p.logger.Warn("amqp queue declare failed", zap.Error(err))
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		p.logger.Warn("amqp marshal event failed", zap.Error(err))
		return err
	}

	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = ch.PublishWithContext(pubCtx, "", p.cfg.Queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    event.Timestamp,
		Body:         body,
	})
	if err != nil {
		p.logger.Warn("amqp publish failed", zap.Error(err))
	}
	return err
}
