package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/helpdesk-labs/ticket-tracker/internal/config"
	"github.com/helpdesk-labs/ticket-tracker/internal/domain"
)

// In-memory repositories standing in for the Postgres implementations.
// They mirror the store contract the services rely on: pgx.ErrNoRows for
// missing rows, ids and timestamps assigned at insert.

type memoryUserRepo struct {
	mu    sync.Mutex
	seq   int
	users map[string]*domain.User
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{users: make(map[string]*domain.User)}
}

func (r *memoryUserRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	user.ID = fmt.Sprintf("user-%d", r.seq)
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *memoryUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user, ok := r.users[id]; ok {
		clone := *user
		return &clone, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *memoryUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

type memoryTicketRepo struct {
	mu      sync.Mutex
	seq     int
	tickets map[string]*domain.Ticket
	order   []string
	users   *memoryUserRepo
}

func newMemoryTicketRepo(users *memoryUserRepo) *memoryTicketRepo {
	return &memoryTicketRepo{tickets: make(map[string]*domain.Ticket), users: users}
}

func (r *memoryTicketRepo) Create(_ context.Context, ticket *domain.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	ticket.ID = fmt.Sprintf("ticket-%d", r.seq)
	now := time.Now()
	ticket.CreatedAt = now
	ticket.UpdatedAt = now
	clone := *ticket
	r.tickets[ticket.ID] = &clone
	r.order = append(r.order, ticket.ID)
	return nil
}

func (r *memoryTicketRepo) GetByID(_ context.Context, id string) (*domain.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ticket, ok := r.tickets[id]; ok {
		clone := *ticket
		return &clone, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *memoryTicketRepo) UpdateStatus(_ context.Context, ticket *domain.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.tickets[ticket.ID]
	if !ok {
		return pgx.ErrNoRows
	}
	stored.Status = ticket.Status
	stored.UpdatedAt = time.Now()
	ticket.UpdatedAt = stored.UpdatedAt
	return nil
}

func (r *memoryTicketRepo) ListByOwner(_ context.Context, ownerID string) ([]domain.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []domain.Ticket
	for _, id := range r.order {
		if ticket := r.tickets[id]; ticket.OwnerID == ownerID {
			result = append(result, *ticket)
		}
	}
	return result, nil
}

func (r *memoryTicketRepo) ListAll(ctx context.Context) ([]domain.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []domain.Ticket
	for _, id := range r.order {
		ticket := *r.tickets[id]
		if r.users != nil {
			if owner, err := r.users.GetByID(ctx, ticket.OwnerID); err == nil {
				ticket.OwnerName = owner.Name
				ticket.OwnerEmail = owner.Email
			}
		}
		result = append(result, ticket)
	}
	return result, nil
}

type memoryAuditRepo struct {
	mu      sync.Mutex
	seq     int
	entries []domain.TicketAudit
}

func newMemoryAuditRepo() *memoryAuditRepo {
	return &memoryAuditRepo{}
}

func (r *memoryAuditRepo) Create(_ context.Context, entry *domain.TicketAudit) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	entry.ID = fmt.Sprintf("audit-%d", r.seq)
	entry.CreatedAt = time.Now()
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *memoryAuditRepo) ListByTicket(_ context.Context, ticketID string) ([]domain.TicketAudit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []domain.TicketAudit
	for _, entry := range r.entries {
		if entry.TicketID == ticketID {
			result = append(result, entry)
		}
	}
	return result, nil
}

func testConfig() config.Config {
	return config.Config{
		Auth: config.AuthConfig{
			JWTSecret:             "test-secret",
			AccessTokenTTLMinutes: 15,
			BcryptCost:            4,
		},
	}
}
