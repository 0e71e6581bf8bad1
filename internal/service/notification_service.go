package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/helpdesk-labs/ticket-tracker/internal/events"
)

// NotificationService logs notifications for domain events. Delivery
// channels (email, webhooks) are out of scope; the hook points exist so
// a real sender can be dropped in.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger) *NotificationService {
	return &NotificationService{dispatcher: dispatcher, logger: logger}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventTicketCreated, n.handleTicketCreated)
	n.dispatcher.Subscribe(events.EventTicketStatusChanged, n.handleTicketStatusChanged)
	n.dispatcher.Subscribe(events.EventUserSignedUp, n.handleUserSignedUp)
}

func (n *NotificationService) handleTicketCreated(_ context.Context, event events.Event) error {
	n.logger.Info("TicketCreated", zap.String("ticket_id", event.TicketID), zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleTicketStatusChanged(_ context.Context, event events.Event) error {
	n.logger.Info("TicketStatusChanged", zap.String("ticket_id", event.TicketID), zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleUserSignedUp(_ context.Context, event events.Event) error {
	n.logger.Info("UserSignedUp", zap.String("user_id", event.ActorID))
	return nil
}
