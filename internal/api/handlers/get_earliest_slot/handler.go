package get_earliest_slot

import (
	"errors"
	"net/http"

	"github.com/m04kA/MYB-BookingService/internal/api/handlers"
	getEarliestSlot "github.com/m04kA/MYB-BookingService/internal/usecase/get_earliest_slot"
)

const (
	msgInvalidQuery    = "некорректные параметры запроса"
	msgMissingDate     = "параметр date обязателен"
	msgServiceNotFound = "услуга не найдена"
	msgDateInPast      = "дата не может быть в прошлом"
	msgInvalidInput    = "некорректные входные данные"
)

type Handler struct {
	useCase GetEarliestSlotUseCase
	logger  Logger
}

func NewHandler(useCase GetEarliestSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots/earliest?date=YYYY-MM-DD&serviceId=1&durationMinutes=30
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	date := query.Get("date")
	if date == "" {
		h.logger.Warn("GET /slots/earliest - Missing date parameter")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := parseQuery(date, query.Get("serviceId"), query.Get("durationMinutes"))
	if err != nil {
		h.logger.Warn("GET /slots/earliest - Failed to parse query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getEarliestSlot.ErrServiceNotFound):
			h.logger.Warn("GET /slots/earliest - Service not found: service_id=%v", useCaseReq.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getEarliestSlot.ErrInvalidDate):
			h.logger.Warn("GET /slots/earliest - Date in past: date=%s", date)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, getEarliestSlot.ErrInvalidInput):
			h.logger.Warn("GET /slots/earliest - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /slots/earliest - Failed to get slot: date=%s, error=%v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /slots/earliest - Earliest slot: date=%s, found=%t, start=%q",
		date, result.Found, result.StartTime)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
