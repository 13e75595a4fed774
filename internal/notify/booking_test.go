package notify

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/romanlp3005/agent-ia/internal/bookings"
	"github.com/romanlp3005/agent-ia/internal/tenant"
)

type channelSender struct {
	sent chan EmailMessage
}

func (s *channelSender) Send(ctx context.Context, msg EmailMessage) error {
	s.sent <- msg
	return nil
}

func TestBookingRecordedSendsEmail(t *testing.T) {
	sender := &channelSender{sent: make(chan EmailMessage, 1)}
	notifier := NewBookingNotifier(sender, nil)

	profile := tenant.Profile{ID: "tenant-1", Name: "Glow Spa", NotifyEmail: "owner@glowspa.test"}
	booking := bookings.Booking{
		ID:        uuid.New(),
		TenantID:  "tenant-1",
		Detail:    "Haircut, Friday, 3pm",
		Status:    bookings.StatusConfirmed,
		CreatedAt: time.Now().UTC(),
	}

	notifier.BookingRecorded(context.Background(), profile, booking)

	select {
	case msg := <-sender.sent:
		if msg.To != "owner@glowspa.test" {
			t.Errorf("unexpected recipient %q", msg.To)
		}
		if !strings.Contains(msg.Subject, "Glow Spa") {
			t.Errorf("unexpected subject %q", msg.Subject)
		}
		if !strings.Contains(msg.Body, "Haircut, Friday, 3pm") {
			t.Errorf("body missing booking detail: %q", msg.Body)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("notification never sent")
	}
}

func TestBookingRecordedSkipsWithoutEmail(t *testing.T) {
	sender := &channelSender{sent: make(chan EmailMessage, 1)}
	notifier := NewBookingNotifier(sender, nil)

	profile := tenant.Profile{ID: "tenant-1", Name: "Glow Spa"}
	notifier.BookingRecorded(context.Background(), profile, bookings.Booking{ID: uuid.New()})

	select {
	case <-sender.sent:
		t.Fatal("no notify email configured, nothing should be sent")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestBookingRecordedNilSender(t *testing.T) {
	notifier := NewBookingNotifier(nil, nil)
	// Must not panic.
	notifier.BookingRecorded(context.Background(), tenant.Profile{ID: "tenant-1", NotifyEmail: "x@y.test"}, bookings.Booking{})
}

func TestBuildBookingEmailEmptyDetail(t *testing.T) {
	msg := buildBookingEmail(tenant.Profile{Name: "Glow Spa", NotifyEmail: "owner@glowspa.test"}, bookings.Booking{ID: uuid.New()})
	if !strings.Contains(msg.Body, "no detail captured") {
		t.Errorf("empty detail should be called out: %q", msg.Body)
	}
}
