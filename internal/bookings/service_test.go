package bookings

import (
	"context"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"

	"github.com/romanlp3005/agent-ia/internal/tenant"
)

type recordingNotifier struct {
	profiles []tenant.Profile
	bookings []Booking
}

func (n *recordingNotifier) BookingRecorded(ctx context.Context, profile tenant.Profile, booking Booking) {
	n.profiles = append(n.profiles, profile)
	n.bookings = append(n.bookings, booking)
}

func TestRecordWritesThenNotifies(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	mock.ExpectExec("INSERT INTO bookings").
		WithArgs(pgxmock.AnyArg(), "tenant-1", "Haircut, Friday, 3pm", StatusConfirmed, pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	notifier := &recordingNotifier{}
	svc := NewService(NewRepository(mock), notifier, nil)

	profile := tenant.Profile{ID: "tenant-1", Name: "Glow Spa"}
	booking, err := svc.Record(context.Background(), profile, "Haircut, Friday, 3pm")
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if booking.Detail != "Haircut, Friday, 3pm" {
		t.Errorf("unexpected detail %q", booking.Detail)
	}
	if len(notifier.bookings) != 1 {
		t.Fatalf("expected one notification, got %d", len(notifier.bookings))
	}
	if notifier.profiles[0].Name != "Glow Spa" {
		t.Errorf("notifier got wrong profile %q", notifier.profiles[0].Name)
	}
}

func TestRecordDoesNotNotifyOnWriteFailure(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	mock.ExpectExec("INSERT INTO bookings").
		WillReturnError(context.DeadlineExceeded)

	notifier := &recordingNotifier{}
	svc := NewService(NewRepository(mock), notifier, nil)

	if _, err := svc.Record(context.Background(), tenant.Profile{ID: "tenant-1"}, "detail"); err == nil {
		t.Fatal("expected error from failed write")
	}
	if len(notifier.bookings) != 0 {
		t.Errorf("expected no notification after failed write, got %d", len(notifier.bookings))
	}
}
