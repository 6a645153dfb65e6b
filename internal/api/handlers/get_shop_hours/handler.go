package get_shop_hours

import (
	"net/http"

	"github.com/m04kA/MYB-BookingService/internal/api/handlers"
)

type Handler struct {
	service ShopConfigService
	logger  Logger
}

func NewHandler(service ShopConfigService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/shop/hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetHours(r.Context())
	if err != nil {
		h.logger.Error("GET /shop/hours - Failed to get shop hours: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /shop/hours - Shop hours retrieved: %s", result.Hours)
	handlers.RespondJSON(w, http.StatusOK, result)
}
