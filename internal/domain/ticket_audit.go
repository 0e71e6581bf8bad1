package domain

import "time"

// TicketAudit is an immutable record of a status change.
type TicketAudit struct {
	ID        string
	TicketID  string
	ActorID   string
	OldStatus TicketStatus
	NewStatus TicketStatus
	CreatedAt time.Time
}
