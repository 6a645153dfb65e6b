package list_services

import (
	"net/http"

	"github.com/m04kA/MYB-BookingService/internal/api/handlers"
)

type Handler struct {
	service ServicesService
	// allowInactive разрешает запрашивать неактивные услуги
	// (включено только на админском маршруте)
	allowInactive bool
	logger        Logger
}

func NewHandler(service ServicesService, allowInactive bool, logger Logger) *Handler {
	return &Handler{
		service:       service,
		allowInactive: allowInactive,
		logger:        logger,
	}
}

// Handle GET /api/v1/services и GET /api/v1/admin/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	includeInactive := h.allowInactive && r.URL.Query().Get("includeInactive") == "true"

	result, err := h.service.List(r.Context(), includeInactive)
	if err != nil {
		h.logger.Error("GET /services - Failed to list services: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /services - Services retrieved: count=%d, includeInactive=%t",
		len(result.Services), includeInactive)
	handlers.RespondJSON(w, http.StatusOK, result.Services)
}
