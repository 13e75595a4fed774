package tenant

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PgxPool is the subset of pgxpool.Pool the repository needs; pgxmock
// satisfies it in tests.
type PgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repository reads tenant profiles from the relational store.
type Repository struct {
	pool PgxPool
}

// NewRepository initializes a repo backed by pgxpool.
func NewRepository(pool PgxPool) *Repository {
	if pool == nil {
		panic("tenant: pgx pool required")
	}
	return &Repository{pool: pool}
}

// GetProfile fetches a profile by id, ErrNotFound when absent.
func (r *Repository) GetProfile(ctx context.Context, id string) (*Profile, error) {
	query := `
		SELECT id, name, industry, notify_email, hours, price_catalog, service_duration,
		       address, persona_instructions, tone, voice, language, created_at
		FROM tenants
		WHERE id = $1
	`
	row := r.pool.QueryRow(ctx, query, id)
	var p Profile
	if err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Industry,
		&p.NotifyEmail,
		&p.Hours,
		&p.PriceCatalog,
		&p.ServiceDuration,
		&p.Address,
		&p.PersonaInstructions,
		&p.Tone,
		&p.Voice,
		&p.Language,
		&p.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("tenant: load profile: %w", err)
	}
	return &p, nil
}
