package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/romanlp3005/agent-ia/internal/bookings"
	"github.com/romanlp3005/agent-ia/internal/tenant"
	"github.com/romanlp3005/agent-ia/pkg/logging"
)

const sendTimeout = 15 * time.Second

// BookingNotifier emails tenant operators when a caller books. Delivery is
// fire-and-forget: the voice turn never waits on it and never sees its
// errors.
type BookingNotifier struct {
	sender EmailSender
	logger *logging.Logger
}

// NewBookingNotifier creates a booking notifier. sender may be nil, in
// which case every notification is skipped.
func NewBookingNotifier(sender EmailSender, logger *logging.Logger) *BookingNotifier {
	if logger == nil {
		logger = logging.Default()
	}
	return &BookingNotifier{sender: sender, logger: logger}
}

// BookingRecorded sends the confirmation email in the background. The
// send runs on a fresh context so a finished webhook request cannot cancel
// an in-flight delivery.
func (n *BookingNotifier) BookingRecorded(ctx context.Context, profile tenant.Profile, booking bookings.Booking) {
	if n.sender == nil {
		return
	}
	if profile.NotifyEmail == "" {
		n.logger.Debug("no notify email configured, skipping booking notification", "tenant_id", profile.ID)
		return
	}

	msg := buildBookingEmail(profile, booking)
	go func() {
		sendCtx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		defer cancel()
		if err := n.sender.Send(sendCtx, msg); err != nil {
			n.logger.Error("booking notification failed", "error", err, "tenant_id", profile.ID, "booking_id", booking.ID)
		}
	}()
}

func buildBookingEmail(profile tenant.Profile, booking bookings.Booking) EmailMessage {
	detail := booking.Detail
	if detail == "" {
		detail = "(no detail captured; check the call recording)"
	}
	body := fmt.Sprintf("A caller just booked an appointment.\n\nBooking: %s\nRecorded: %s\nReference: %s\n",
		detail, booking.CreatedAt.Format(time.RFC1123), booking.ID)
	return EmailMessage{
		To:      profile.NotifyEmail,
		ToName:  profile.DisplayName(),
		Subject: fmt.Sprintf("New booking for %s", profile.DisplayName()),
		Body:    body,
	}
}

var _ bookings.Notifier = (*BookingNotifier)(nil)
