package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/helpdesk-labs/ticket-tracker/internal/domain"
)

// TicketAuditRepository records immutable status-change entries.
type TicketAuditRepository interface {
	Create(ctx context.Context, entry *domain.TicketAudit) error
	ListByTicket(ctx context.Context, ticketID string) ([]domain.TicketAudit, error)
}

type ticketAuditRepository struct {
	pool *pgxpool.Pool
}

// NewTicketAuditRepository instantiates repository.
func NewTicketAuditRepository(pool *pgxpool.Pool) TicketAuditRepository {
	return &ticketAuditRepository{pool: pool}
}

func (r *ticketAuditRepository) Create(ctx context.Context, entry *domain.TicketAudit) error {
	const query = `
        INSERT INTO ticket_audit (ticket_id, actor_user_id, old_status, new_status)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		entry.TicketID,
		entry.ActorID,
		entry.OldStatus,
		entry.NewStatus,
	).Scan(&entry.ID, &entry.CreatedAt)
}

func (r *ticketAuditRepository) ListByTicket(ctx context.Context, ticketID string) ([]domain.TicketAudit, error) {
	const query = `
        SELECT id, ticket_id, actor_user_id, old_status, new_status, created_at
        FROM ticket_audit WHERE ticket_id=$1
        ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, ticketID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.TicketAudit
	for rows.Next() {
		var entry domain.TicketAudit
		if err := rows.Scan(
			&entry.ID,
			&entry.TicketID,
			&entry.ActorID,
			&entry.OldStatus,
			&entry.NewStatus,
			&entry.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, entry)
	}
	return result, rows.Err()
}
