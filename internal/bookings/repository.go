// Package bookings persists confirmed bookings extracted from voice turns.
package bookings

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// StatusConfirmed is the only status this engine ever writes. Bookings are
// append-only; there is no update or cancel path here.
const StatusConfirmed = "confirmed"

// Booking is one confirmed appointment recorded from a call.
type Booking struct {
	ID        uuid.UUID `json:"id"`
	TenantID  string    `json:"tenant_id"`
	Detail    string    `json:"detail"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// PgxPool is the subset of pgxpool.Pool the repository needs.
type PgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repository provides persistence helpers for bookings.
type Repository struct {
	pool PgxPool
}

// NewRepository creates a repository backed by pgx pool.
func NewRepository(pool PgxPool) *Repository {
	if pool == nil {
		panic("bookings: pgx pool required")
	}
	return &Repository{pool: pool}
}

// Append inserts a confirmed booking row. The detail may be empty; an
// agreed booking with a malformed detail is still worth recording.
func (r *Repository) Append(ctx context.Context, tenantID, detail string, createdAt time.Time) (*Booking, error) {
	booking := &Booking{
		ID:        uuid.New(),
		TenantID:  tenantID,
		Detail:    detail,
		Status:    StatusConfirmed,
		CreatedAt: createdAt.UTC(),
	}
	query := `
		INSERT INTO bookings (id, tenant_id, detail, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := r.pool.Exec(ctx, query,
		booking.ID,
		booking.TenantID,
		booking.Detail,
		booking.Status,
		booking.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("bookings: insert: %w", err)
	}
	return booking, nil
}

// ListForTenant returns the tenant's bookings, newest first.
func (r *Repository) ListForTenant(ctx context.Context, tenantID string) ([]Booking, error) {
	query := `
		SELECT id, tenant_id, detail, status, created_at
		FROM bookings
		WHERE tenant_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("bookings: list: %w", err)
	}
	defer rows.Close()

	var bookings []Booking
	for rows.Next() {
		var b Booking
		if err := rows.Scan(&b.ID, &b.TenantID, &b.Detail, &b.Status, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("bookings: scan: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("bookings: iterate: %w", err)
	}
	return bookings, nil
}
