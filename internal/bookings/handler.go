package bookings

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/romanlp3005/agent-ia/internal/tenancy"
	"github.com/romanlp3005/agent-ia/pkg/logging"
)

// Handler exposes the bookings read side over HTTP.
type Handler struct {
	service *Service
	logger  *logging.Logger
}

// NewHandler creates a bookings HTTP handler.
func NewHandler(service *Service, logger *logging.Logger) *Handler {
	if service == nil {
		panic("bookings: service required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{service: service, logger: logger}
}

// List handles GET /tenants/{tenantID}/bookings.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	tenantID := chi.URLParam(r, "tenantID")
	if tenantID == "" {
		http.Error(w, "tenant id required", http.StatusBadRequest)
		return
	}
	ctx := tenancy.WithTenantID(r.Context(), tenantID)

	list, err := h.service.List(ctx, tenantID)
	if err != nil {
		h.logger.Error("failed to list bookings", "error", err, "tenant_id", tenantID)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if list == nil {
		list = []Booking{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]any{"bookings": list}); err != nil {
		h.logger.Error("failed to encode bookings response", "error", err, "tenant_id", tenantID)
	}
}
