package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/helpdesk-labs/ticket-tracker/internal/auth"
	"github.com/helpdesk-labs/ticket-tracker/internal/domain"
	"github.com/helpdesk-labs/ticket-tracker/internal/events"
	"github.com/helpdesk-labs/ticket-tracker/internal/repository"
	apperrors "github.com/helpdesk-labs/ticket-tracker/pkg/util"
)

// TicketService coordinates ticket workflows.
type TicketService struct {
	tickets    repository.TicketRepository
	audit      repository.TicketAuditRepository
	dispatcher events.Dispatcher
}

// TicketDependencies bundles repositories for ticket service.
type TicketDependencies struct {
	TicketRepo repository.TicketRepository
	AuditRepo  repository.TicketAuditRepository
	Dispatcher events.Dispatcher
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	return &TicketService{
		tickets:    deps.TicketRepo,
		audit:      deps.AuditRepo,
		dispatcher: deps.Dispatcher,
	}
}

// Create persists a new ticket owned by the caller, always status=open.
func (s *TicketService) Create(ctx context.Context, ownerID, title, description string) (*domain.Ticket, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	if title == "" || description == "" {
		return nil, apperrors.NewValidationError("title and description are required", nil)
	}

	ticket := &domain.Ticket{
		OwnerID:     ownerID,
		Title:       title,
		Description: description,
		Status:      domain.TicketStatusOpen,
	}
	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, err
	}

	publishEvent(ctx, s.dispatcher, events.Event{
		Type:     events.EventTicketCreated,
		TicketID: ticket.ID,
		ActorID:  ownerID,
		Payload:  events.TicketCreatedPayload{Title: ticket.Title, OwnerID: ownerID},
	})
	return ticket, nil
}

// List returns all tickets for admins, own tickets otherwise.
func (s *TicketService) List(ctx context.Context, principal *auth.Principal) ([]domain.Ticket, error) {
	if principal == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	if principal.IsAdmin() {
		return s.tickets.ListAll(ctx)
	}
	return s.tickets.ListByOwner(ctx, principal.UserID)
}

// UpdateStatus mutates a ticket's status in place. Admin only; any status
// may transition to any other.
func (s *TicketService) UpdateStatus(ctx context.Context, principal *auth.Principal, ticketID string, newStatus domain.TicketStatus) (*domain.Ticket, error) {
	if !principal.IsAdmin() {
		return nil, apperrors.NewForbidden("admin role required")
	}
	if !newStatus.Valid() {
		return nil, apperrors.NewValidationError("invalid status", map[string]any{"status": newStatus})
	}

	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("ticket", map[string]any{"id": ticketID})
		}
		return nil, err
	}

	oldStatus := ticket.Status
	ticket.Status = newStatus
	if err := s.tickets.UpdateStatus(ctx, ticket); err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("ticket", map[string]any{"id": ticketID})
		}
		return nil, err
	}

	if s.audit != nil {
		entry := &domain.TicketAudit{
			TicketID:  ticket.ID,
			ActorID:   principal.UserID,
			OldStatus: oldStatus,
			NewStatus: newStatus,
		}
		if err := s.audit.Create(ctx, entry); err != nil {
			return nil, err
		}
	}

	publishEvent(ctx, s.dispatcher, events.Event{
		Type:     events.EventTicketStatusChanged,
		TicketID: ticket.ID,
		ActorID:  principal.UserID,
		Payload:  events.TicketStatusChangedPayload{OldStatus: oldStatus, NewStatus: newStatus},
	})
	return ticket, nil
}

// ListAudit returns the status-change trail of a ticket. Admin only.
func (s *TicketService) ListAudit(ctx context.Context, principal *auth.Principal, ticketID string) ([]domain.TicketAudit, error) {
	if !principal.IsAdmin() {
		return nil, apperrors.NewForbidden("admin role required")
	}
	if s.audit == nil {
		return []domain.TicketAudit{}, nil
	}
	if _, err := s.tickets.GetByID(ctx, ticketID); err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("ticket", map[string]any{"id": ticketID})
		}
		return nil, err
	}
	return s.audit.ListByTicket(ctx, ticketID)
}

func publishEvent(ctx context.Context, dispatcher events.Dispatcher, event events.Event) {
	if dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = dispatcher.Publish(ctx, event)
}
