package update_shop_hours

import (
	"errors"
	"net/http"

	"github.com/m04kA/MYB-BookingService/internal/api/handlers"
	"github.com/m04kA/MYB-BookingService/internal/service/shopconfig"
	"github.com/m04kA/MYB-BookingService/internal/service/shopconfig/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidHours       = "некорректные часы работы, ожидается \"HH:MM - HH:MM\" в пределах одних суток"
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

// Handle PUT /api/v1/admin/shop/hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateHoursRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/shop/hours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.SetHours(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, shopconfig.ErrInvalidHours):
			h.logger.Warn("PUT /admin/shop/hours - Invalid hours: %q", req.Hours)
			handlers.RespondBadRequest(w, msgInvalidHours)

		default:
			h.logger.Error("PUT /admin/shop/hours - Failed to update shop hours: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/shop/hours - Shop hours updated: %s", result.Hours)
	handlers.RespondJSON(w, http.StatusOK, result)
}
