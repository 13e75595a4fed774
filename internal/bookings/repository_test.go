package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v4"
)

func TestAppendInsertsConfirmedRow(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	createdAt := time.Date(2026, 3, 14, 15, 9, 0, 0, time.UTC)
	mock.ExpectExec("INSERT INTO bookings").
		WithArgs(pgxmock.AnyArg(), "tenant-1", "Haircut, Friday, 3pm", StatusConfirmed, createdAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	repo := NewRepository(mock)
	booking, err := repo.Append(context.Background(), "tenant-1", "Haircut, Friday, 3pm", createdAt)
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if booking.Status != StatusConfirmed {
		t.Errorf("expected status %q, got %q", StatusConfirmed, booking.Status)
	}
	if booking.ID == uuid.Nil {
		t.Error("expected a generated booking id")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestAppendAllowsEmptyDetail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	mock.ExpectExec("INSERT INTO bookings").
		WithArgs(pgxmock.AnyArg(), "tenant-1", "", StatusConfirmed, pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	repo := NewRepository(mock)
	if _, err := repo.Append(context.Background(), "tenant-1", "", time.Now()); err != nil {
		t.Fatalf("Append with empty detail: %v", err)
	}
}

func TestListForTenantOrdersNewestFirst(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	now := time.Now().UTC()
	rows := pgxmock.NewRows([]string{"id", "tenant_id", "detail", "status", "created_at"}).
		AddRow(uuid.New(), "tenant-1", "Massage, Monday", StatusConfirmed, now).
		AddRow(uuid.New(), "tenant-1", "Haircut, Friday", StatusConfirmed, now.Add(-time.Hour))
	mock.ExpectQuery("SELECT id, tenant_id, detail, status, created_at").
		WithArgs("tenant-1").
		WillReturnRows(rows)

	repo := NewRepository(mock)
	bookings, err := repo.ListForTenant(context.Background(), "tenant-1")
	if err != nil {
		t.Fatalf("ListForTenant: %v", err)
	}
	if len(bookings) != 2 {
		t.Fatalf("expected 2 bookings, got %d", len(bookings))
	}
	if bookings[0].Detail != "Massage, Monday" {
		t.Errorf("unexpected first booking %q", bookings[0].Detail)
	}
}
