package dto

import (
	"time"

	"github.com/helpdesk-labs/ticket-tracker/internal/domain"
)

// CreateTicketRequest payload.
type CreateTicketRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// UpdateStatusRequest payload.
type UpdateStatusRequest struct {
	Status domain.TicketStatus `json:"status"`
}

// TicketOwner identifies the owning user in admin listings.
type TicketOwner struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// TicketResponse response.
type TicketResponse struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Status      domain.TicketStatus `json:"status"`
	Owner       TicketOwner         `json:"user"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// TicketAuditResponse represents one status-change record.
type TicketAuditResponse struct {
	ID        string              `json:"id"`
	TicketID  string              `json:"ticket_id"`
	ActorID   string              `json:"actor_id"`
	OldStatus domain.TicketStatus `json:"old_status"`
	NewStatus domain.TicketStatus `json:"new_status"`
	CreatedAt time.Time           `json:"created_at"`
}

// NewTicketResponse maps the domain model, including owner identity when
// the repository resolved it.
func NewTicketResponse(ticket *domain.Ticket) TicketResponse {
	return TicketResponse{
		ID:          ticket.ID,
		Title:       ticket.Title,
		Description: ticket.Description,
		Status:      ticket.Status,
		Owner: TicketOwner{
			ID:    ticket.OwnerID,
			Name:  ticket.OwnerName,
			Email: ticket.OwnerEmail,
		},
		CreatedAt: ticket.CreatedAt,
		UpdatedAt: ticket.UpdatedAt,
	}
}

// NewTicketAuditResponse maps an audit entry.
func NewTicketAuditResponse(entry *domain.TicketAudit) TicketAuditResponse {
	return TicketAuditResponse{
		ID:        entry.ID,
		TicketID:  entry.TicketID,
		ActorID:   entry.ActorID,
		OldStatus: entry.OldStatus,
		NewStatus: entry.NewStatus,
		CreatedAt: entry.CreatedAt,
	}
}
