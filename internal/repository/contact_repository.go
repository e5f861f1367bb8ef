package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/portfolio-api/internal/domain"
)

// ContactRepository defines persistence access for contact submissions.
type ContactRepository interface {
	Create(ctx context.Context, contact *domain.Contact) error
}

type contactRepository struct {
	pool *pgxpool.Pool
}

// NewContactRepository returns a Postgres-backed implementation.
func NewContactRepository(pool *pgxpool.Pool) ContactRepository {
	return &contactRepository{pool: pool}
}

func (r *contactRepository) Create(ctx context.Context, contact *domain.Contact) error {
	const query = `
        INSERT INTO contacts (first_name, last_name, email, phone, subject, message, newsletter, ip_address)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		contact.FirstName,
		contact.LastName,
		contact.Email,
		contact.Phone,
		contact.Subject,
		contact.Message,
		contact.Newsletter,
		contact.IPAddress,
	).Scan(&contact.ID, &contact.CreatedAt)
}
