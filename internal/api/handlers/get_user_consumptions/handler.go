package get_user_consumptions

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/MYB-BookingService/internal/api/handlers"
	"github.com/m04kA/MYB-BookingService/internal/api/middleware"
	"github.com/m04kA/MYB-BookingService/internal/service/consumptions/models"
)

const (
	msgInvalidUserID = "некорректный ID пользователя"
	msgMissingUserID = "отсутствует ID пользователя"
	msgForbidden     = "доступ запрещен"
)

type Handler struct {
	service ConsumptionService
	logger  Logger
}

func NewHandler(service ConsumptionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/{userId}/consumptions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID, err := strconv.ParseInt(vars["userId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /users/{userId}/consumptions - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	// Пользователь может смотреть только свою историю
	authUserID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /users/{userId}/consumptions - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	if authUserID != userID {
		h.logger.Warn("GET /users/{userId}/consumptions - Access denied: user_id=%d, requested=%d",
			authUserID, userID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	req := &models.GetUserConsumptionsRequest{UserID: userID}

	// limit и offset опциональны
	if limit := r.URL.Query().Get("limit"); limit != "" {
		if parsed, err := strconv.ParseUint(limit, 10, 64); err == nil {
			req.Limit = parsed
		}
	}
	if offset := r.URL.Query().Get("offset"); offset != "" {
		if parsed, err := strconv.ParseUint(offset, 10, 64); err == nil {
			req.Offset = parsed
		}
	}

	result, err := h.service.GetUserConsumptions(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /users/{userId}/consumptions - Failed to get records: user_id=%d, error=%v",
			userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /users/{userId}/consumptions - Records retrieved: user_id=%d, count=%d",
		userID, len(result.Consumptions))
	handlers.RespondJSON(w, http.StatusOK, result.Consumptions)
}
