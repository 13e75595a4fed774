package voice

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/romanlp3005/agent-ia/internal/bookings"
	"github.com/romanlp3005/agent-ia/internal/llm"
	"github.com/romanlp3005/agent-ia/internal/observability/metrics"
	"github.com/romanlp3005/agent-ia/internal/telephony"
	"github.com/romanlp3005/agent-ia/internal/tenancy"
	"github.com/romanlp3005/agent-ia/internal/tenant"
	"github.com/romanlp3005/agent-ia/pkg/logging"
)

var voiceTracer = otel.Tracer("agentia.internal.voice")

// Caller-facing phrases. Callers only ever hear natural language; technical
// detail stays in logs and metrics.
const (
	apologySpeech        = "I'm sorry, we're having a technical issue right now. Could you say that again?"
	bookingFailedSpeech  = "I'm sorry, I couldn't save your booking just now. Could you repeat your request?"
	tenantMissingSpeech  = "Sorry, this number isn't set up yet. Please call back later."
	greetingFormat       = "Hi! Thanks for calling %s. How can I help you today?"
	completionEmptyError = "completion service returned empty text"
)

// Turn outcomes for metrics.
const (
	outcomeGreeting         = "greeting"
	outcomeReply            = "reply"
	outcomeBookingRecorded  = "booking_recorded"
	outcomeCompletionFailed = "completion_failed"
	outcomeBookingFailed    = "booking_write_failed"
	outcomeTenantNotFound   = "tenant_not_found"
	outcomeProfileError     = "profile_error"
)

// HandlerConfig tunes one webhook handler instance.
type HandlerConfig struct {
	// SignatureSecret enables gateway signature validation when non-empty.
	SignatureSecret string
	// Model is the completion model id forwarded to the client.
	Model string
	// MaxTokens bounds one spoken reply.
	MaxTokens int32
	// CompletionTimeout bounds the completion call; a hung turn blocks a
	// live phone call.
	CompletionTimeout time.Duration
	// BookingTimeout bounds the booking write.
	BookingTimeout time.Duration
	// GatherTimeout is the silence timeout handed to the gateway, seconds.
	GatherTimeout string
	// SpeechTimeout is the gateway's end-of-speech detection setting.
	SpeechTimeout string
}

func (c *HandlerConfig) applyDefaults() {
	if c.MaxTokens <= 0 {
		c.MaxTokens = 200
	}
	if c.CompletionTimeout <= 0 {
		c.CompletionTimeout = 10 * time.Second
	}
	if c.BookingTimeout <= 0 {
		c.BookingTimeout = 5 * time.Second
	}
	if c.GatherTimeout == "" {
		c.GatherTimeout = "2"
	}
	if c.SpeechTimeout == "" {
		c.SpeechTimeout = "auto"
	}
}

// Handler dispatches one webhook invocation per conversation turn. It is
// stateless across invocations: the tenant profile plus the latest
// utterance are the entire memory of the call.
type Handler struct {
	tenants  tenant.Store
	client   llm.Client
	bookings *bookings.Service
	metrics  *metrics.VoiceMetrics
	logger   *logging.Logger
	cfg      HandlerConfig
}

// NewHandler constructs the voice webhook handler.
func NewHandler(tenants tenant.Store, client llm.Client, bookingSvc *bookings.Service, m *metrics.VoiceMetrics, logger *logging.Logger, cfg HandlerConfig) *Handler {
	if tenants == nil {
		panic("voice: tenant store required")
	}
	if client == nil {
		panic("voice: completion client required")
	}
	if bookingSvc == nil {
		panic("voice: bookings service required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	cfg.applyDefaults()
	return &Handler{
		tenants:  tenants,
		client:   client,
		bookings: bookingSvc,
		metrics:  m,
		logger:   logger,
		cfg:      cfg,
	}
}

// HandleTurn processes POST /voice/{tenantID}. Per turn it resolves the
// profile, composes the prompt, calls the completion service, extracts a
// possible confirmation, records the booking before responding, and tells
// the gateway to collect the next utterance. The loop only ends when the
// caller hangs up, which this engine observes as silence.
func (h *Handler) HandleTurn(w http.ResponseWriter, r *http.Request) {
	ctx, span := voiceTracer.Start(r.Context(), "voice.turn")
	defer span.End()

	tenantID := chi.URLParam(r, "tenantID")
	ctx = tenancy.WithTenantID(ctx, tenantID)
	span.SetAttributes(attribute.String("agentia.tenant_id", tenantID))

	if h.cfg.SignatureSecret != "" {
		if !telephony.ValidateSignature(r, h.cfg.SignatureSecret, telephony.AbsoluteURL(r)) {
			h.logger.Warn("invalid gateway signature", "tenant_id", tenantID)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			span.RecordError(errors.New("invalid gateway signature"))
			return
		}
	}

	req, err := telephony.ParseVoiceWebhook(r)
	if err != nil {
		h.logger.Error("failed to parse voice webhook", "error", err, "tenant_id", tenantID)
		http.Error(w, "Bad Request", http.StatusBadRequest)
		span.RecordError(err)
		return
	}

	h.logger.Info("voice turn received",
		"tenant_id", tenantID,
		"call_sid", req.CallSid,
		"from", telephony.MaskPhone(req.From),
		"has_speech", req.SpeechResult != "",
	)

	profile, err := h.tenants.GetProfile(ctx, tenantID)
	if err != nil {
		if errors.Is(err, tenant.ErrNotFound) {
			// Fatal for this call: terminal spoken error, no continuation.
			h.logger.Warn("voice call for unknown tenant", "tenant_id", tenantID)
			h.metrics.ObserveTurn(outcomeTenantNotFound)
			h.respond(w, span, telephony.Terminal(tenantMissingSpeech, "", ""))
			return
		}
		// Store hiccup: recoverable, keep the loop alive with defaults.
		h.logger.Error("failed to load tenant profile", "error", err, "tenant_id", tenantID)
		span.RecordError(err)
		h.metrics.ObserveTurn(outcomeProfileError)
		h.respondTurn(w, r, span, tenant.Profile{ID: tenantID}, apologySpeech)
		return
	}

	if req.SpeechResult == "" {
		// Call just connected: fixed greeting, no completion call.
		h.metrics.ObserveTurn(outcomeGreeting)
		h.respondTurn(w, r, span, *profile, fmt.Sprintf(greetingFormat, profile.DisplayName()))
		return
	}

	speech, outcome := h.processUtterance(ctx, *profile, req.SpeechResult)
	h.metrics.ObserveTurn(outcome)
	h.respondTurn(w, r, span, *profile, speech)
}

// processUtterance runs the completion and booking steps of one turn and
// returns the text to speak plus the metrics outcome. Every failure is
// normalized to a spoken apology; no retries happen inside a turn — the
// caller repeating themselves is the retry.
func (h *Handler) processUtterance(ctx context.Context, profile tenant.Profile, utterance string) (string, string) {
	completionCtx, cancel := context.WithTimeout(ctx, h.cfg.CompletionTimeout)
	defer cancel()

	start := time.Now()
	resp, err := h.client.Complete(completionCtx, llm.Request{
		Model:       h.cfg.Model,
		System:      []string{ComposePrompt(profile)},
		Messages:    []llm.ChatMessage{{Role: llm.ChatRoleUser, Content: utterance}},
		MaxTokens:   h.cfg.MaxTokens,
		Temperature: -1,
	})
	h.metrics.ObserveCompletionLatency(time.Since(start).Seconds())
	if err == nil && resp.Text == "" {
		err = errors.New(completionEmptyError)
	}
	if err != nil {
		h.logger.Error("completion failed", "error", err, "tenant_id", profile.ID)
		return apologySpeech, outcomeCompletionFailed
	}

	reply := ParseReply(resp.Text)
	if !reply.HasBooking {
		return reply.Speech, outcomeReply
	}

	writeCtx, cancelWrite := context.WithTimeout(ctx, h.cfg.BookingTimeout)
	defer cancelWrite()
	if _, err := h.bookings.Record(writeCtx, profile, reply.Detail); err != nil {
		// Never claim success to the caller; the loop still continues.
		h.logger.Error("booking write failed", "error", err, "tenant_id", profile.ID)
		return bookingFailedSpeech, outcomeBookingFailed
	}
	h.metrics.ObserveBookingRecorded()
	return reply.Speech, outcomeBookingRecorded
}

// respondTurn writes the standard speak-gather-redirect document that keeps
// the conversation loop alive.
func (h *Handler) respondTurn(w http.ResponseWriter, r *http.Request, span trace.Span, profile tenant.Profile, speech string) {
	doc := telephony.Turn(telephony.TurnParams{
		Speech:        speech,
		Voice:         profile.SpeechVoice(),
		Language:      profile.SpeechLanguage(),
		ActionURL:     r.URL.Path,
		Timeout:       h.cfg.GatherTimeout,
		SpeechTimeout: h.cfg.SpeechTimeout,
	})
	h.respond(w, span, doc)
}

func (h *Handler) respond(w http.ResponseWriter, span trace.Span, doc telephony.Document) {
	body, err := doc.Encode()
	if err != nil {
		h.logger.Error("failed to encode twiml", "error", err)
		span.RecordError(err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
