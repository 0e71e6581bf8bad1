package domain

import "time"

// TicketStatus enumerates lifecycle states for tickets.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "open"
	TicketStatusInProgress TicketStatus = "in progress"
	TicketStatusClosed     TicketStatus = "closed"
)

// Valid reports whether the status is one of the three accepted values.
func (s TicketStatus) Valid() bool {
	return s == TicketStatusOpen || s == TicketStatusInProgress || s == TicketStatusClosed
}

// Ticket is a unit of support work owned by exactly one user. Only the
// status (and updated timestamp) mutates after creation; any status may
// move to any other, there is no ordering constraint.
type Ticket struct {
	ID          string
	OwnerID     string
	Title       string
	Description string
	Status      TicketStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// OwnerName and OwnerEmail are resolved for admin listings only.
	OwnerName  string
	OwnerEmail string
}
