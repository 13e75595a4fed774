package bookings

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/romanlp3005/agent-ia/internal/tenant"
	"github.com/romanlp3005/agent-ia/pkg/logging"
)

var bookingsTracer = otel.Tracer("agentia.internal.bookings")

// Notifier is told about each recorded booking. Implementations must not
// block the turn; delivery is best-effort.
type Notifier interface {
	BookingRecorded(ctx context.Context, profile tenant.Profile, booking Booking)
}

// Service records bookings and fans out notifications.
type Service struct {
	repo     *Repository
	notifier Notifier
	logger   *logging.Logger
}

// NewService constructs a bookings service. notifier may be nil.
func NewService(repo *Repository, notifier Notifier, logger *logging.Logger) *Service {
	if repo == nil {
		panic("bookings: repository required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{repo: repo, notifier: notifier, logger: logger}
}

// Record durably appends a confirmed booking for the tenant. The write must
// complete before the caller builds its spoken response, so a crash after
// this returns never loses an agreed booking.
func (s *Service) Record(ctx context.Context, profile tenant.Profile, detail string) (*Booking, error) {
	ctx, span := bookingsTracer.Start(ctx, "bookings.record")
	defer span.End()
	span.SetAttributes(
		attribute.String("agentia.tenant_id", profile.ID),
		attribute.Int("agentia.booking.detail_len", len(detail)),
	)

	booking, err := s.repo.Append(ctx, profile.ID, detail, time.Now().UTC())
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	s.logger.Info("booking recorded",
		"tenant_id", profile.ID,
		"booking_id", booking.ID,
		"detail_empty", detail == "",
	)

	if s.notifier != nil {
		s.notifier.BookingRecorded(ctx, profile, *booking)
	}
	return booking, nil
}

// List returns the tenant's bookings, newest first. This is the read side
// consumed by the administrative dashboard.
func (s *Service) List(ctx context.Context, tenantID string) ([]Booking, error) {
	return s.repo.ListForTenant(ctx, tenantID)
}
