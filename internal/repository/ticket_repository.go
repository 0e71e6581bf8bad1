package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/helpdesk-labs/ticket-tracker/internal/domain"
)

// TicketRepository encapsulates ticket persistence.
type TicketRepository interface {
	Create(ctx context.Context, ticket *domain.Ticket) error
	GetByID(ctx context.Context, id string) (*domain.Ticket, error)
	UpdateStatus(ctx context.Context, ticket *domain.Ticket) error
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Ticket, error)
	ListAll(ctx context.Context) ([]domain.Ticket, error)
}

type ticketRepository struct {
	pool *pgxpool.Pool
}

// NewTicketRepository instantiates repository.
func NewTicketRepository(pool *pgxpool.Pool) TicketRepository {
	return &ticketRepository{pool: pool}
}

func (r *ticketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	const query = `
        INSERT INTO tickets (owner_user_id, title, description, status)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		ticket.OwnerID,
		ticket.Title,
		ticket.Description,
		ticket.Status,
	).Scan(&ticket.ID, &ticket.CreatedAt, &ticket.UpdatedAt)
}

func (r *ticketRepository) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	const query = `
        SELECT id, owner_user_id, title, description, status, created_at, updated_at
        FROM tickets WHERE id=$1`

	var ticket domain.Ticket
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&ticket.ID,
		&ticket.OwnerID,
		&ticket.Title,
		&ticket.Description,
		&ticket.Status,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &ticket, nil
}

// UpdateStatus performs the single in-place update that gives
// last-writer-wins semantics on concurrent changes.
func (r *ticketRepository) UpdateStatus(ctx context.Context, ticket *domain.Ticket) error {
	const query = `
        UPDATE tickets SET status=$1, updated_at=NOW()
        WHERE id=$2
        RETURNING updated_at`
	return r.pool.QueryRow(ctx, query, ticket.Status, ticket.ID).Scan(&ticket.UpdatedAt)
}

func (r *ticketRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Ticket, error) {
	const query = `
        SELECT id, owner_user_id, title, description, status, created_at, updated_at
        FROM tickets WHERE owner_user_id=$1
        ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Ticket
	for rows.Next() {
		var ticket domain.Ticket
		if err := rows.Scan(
			&ticket.ID,
			&ticket.OwnerID,
			&ticket.Title,
			&ticket.Description,
			&ticket.Status,
			&ticket.CreatedAt,
			&ticket.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, ticket)
	}
	return result, rows.Err()
}

// ListAll returns every ticket with owner identity resolved for display.
func (r *ticketRepository) ListAll(ctx context.Context) ([]domain.Ticket, error) {
	const query = `
        SELECT t.id, t.owner_user_id, t.title, t.description, t.status, t.created_at, t.updated_at,
               u.name, u.email
        FROM tickets t
        JOIN users u ON u.id = t.owner_user_id
        ORDER BY t.created_at`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Ticket
	for rows.Next() {
		var ticket domain.Ticket
		if err := rows.Scan(
			&ticket.ID,
			&ticket.OwnerID,
			&ticket.Title,
			&ticket.Description,
			&ticket.Status,
			&ticket.CreatedAt,
			&ticket.UpdatedAt,
			&ticket.OwnerName,
			&ticket.OwnerEmail,
		); err != nil {
			return nil, err
		}
		result = append(result, ticket)
	}
	return result, rows.Err()
}
