// Package postgres implements the dispatch repository contracts against
// PostgreSQL using database/sql and lib/pq.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/Vishalchandrakumar07/dummy-Mailer/internal/domain"
	"github.com/Vishalchandrakumar07/dummy-Mailer/internal/service/dispatch"
)

// ContactRepo implements dispatch.Repository against the contacts table.
// All coordination relies on the unique email index; no in-process locking,
// so multiple service instances can share the table safely.
type ContactRepo struct{ db *sql.DB }

// NewContactRepo creates a Postgres-backed contact repository.
func NewContactRepo(db *sql.DB) *ContactRepo { return &ContactRepo{db: db} }

func (r *ContactRepo) Upsert(ctx context.Context, email, fullName string) (*domain.Contact, bool, error) {
	c := &domain.Contact{}
	var (
		state    string
		inserted bool
	)
	// xmax = 0 distinguishes a fresh insert from a conflict update.
	// email_sent is deliberately absent from the update list: re-registering
	// an existing contact preserves the prior delivery state.
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO contacts (id, email, full_name, email_sent, created_at, updated_at)
		VALUES ($1, $2, $3, 'pending', NOW(), NOW())
		ON CONFLICT (email) DO UPDATE
		SET full_name = EXCLUDED.full_name, updated_at = NOW()
		RETURNING id, email, full_name, email_sent, (xmax = 0), created_at, updated_at
	`, uuid.New().String(), email, fullName).Scan(
		&c.ID, &c.Email, &c.FullName, &state, &inserted, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, false, fmt.Errorf("upsert contact: %w", err)
	}
	c.EmailSent = domain.DeliveryState(state)
	return c, inserted, nil
}

func (r *ContactRepo) ClaimRetry(ctx context.Context, email string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE contacts
		SET email_sent = 'pending', updated_at = NOW()
		WHERE email = $1 AND email_sent = 'failed'
	`, email)
	if err != nil {
		return false, fmt.Errorf("claim retry: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("claim retry rows: %w", err)
	}
	return n > 0, nil
}

func (r *ContactRepo) SetDeliveryState(ctx context.Context, email string, state domain.DeliveryState) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE contacts
		SET email_sent = $2, updated_at = NOW()
		WHERE email = $1
	`, email, string(state))
	if err != nil {
		return fmt.Errorf("set delivery state: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("set delivery state rows: %w", err)
	}
	if n == 0 {
		return dispatch.ErrContactNotFound
	}
	return nil
}

func (r *ContactRepo) Get(ctx context.Context, email string) (*domain.Contact, error) {
	c := &domain.Contact{}
	var state string
	err := r.db.QueryRowContext(ctx, `
		SELECT id, email, full_name, email_sent, created_at, updated_at
		FROM contacts
		WHERE email = $1
	`, email).Scan(&c.ID, &c.Email, &c.FullName, &state, &c.CreatedAt, &c.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, dispatch.ErrContactNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get contact: %w", err)
	}
	c.EmailSent = domain.DeliveryState(state)
	return c, nil
}
