package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/MYB-BookingService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/MYB-BookingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidQuery      = "некорректные параметры запроса"
	msgInvalidDate       = "некорректная дата, ожидается YYYY-MM-DD"
	msgServiceNotFound   = "услуга не найдена"
	msgDateInPast        = "дата не может быть в прошлом"
	msgMissingDate       = "параметр date обязателен"
	msgInvalidInputQuery = "некорректные входные данные"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots?date=YYYY-MM-DD&serviceId=1&durationMinutes=30&stepMinutes=5
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	date := query.Get("date")
	if date == "" {
		h.logger.Warn("GET /slots - Missing date parameter")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := parseQuery(date, query.Get("serviceId"), query.Get("durationMinutes"), query.Get("stepMinutes"))
	if err != nil {
		h.logger.Warn("GET /slots - Failed to parse query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /slots - Service not found: service_id=%v", useCaseReq.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /slots - Date in past: date=%s", date)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInputQuery)

		default:
			h.logger.Error("GET /slots - Failed to get slots: date=%s, error=%v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /slots - Slots retrieved successfully: date=%s, count=%d", date, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
