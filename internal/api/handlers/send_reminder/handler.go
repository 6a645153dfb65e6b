package send_reminder

import (
	"errors"
	"net/http"

	"github.com/m04kA/MYB-BookingService/internal/api/handlers"
	"github.com/m04kA/MYB-BookingService/internal/service/reminders"
	"github.com/m04kA/MYB-BookingService/internal/service/reminders/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgBookingNotFound    = "бронирование не найдено"
	msgBookingInactive    = "напоминания доступны только по предстоящим бронированиям"
	msgInvalidInput       = "некорректные данные напоминания"
)

type Handler struct {
	service ReminderService
	logger  Logger
}

func NewHandler(service ReminderService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/reminders
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.SendReminderRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/reminders - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Send(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, reminders.ErrBookingNotFound):
			h.logger.Warn("POST /admin/reminders - Booking not found: booking_id=%d", req.BookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, reminders.ErrBookingInactive):
			h.logger.Warn("POST /admin/reminders - Booking inactive: booking_id=%d", req.BookingID)
			handlers.RespondError(w, http.StatusConflict, msgBookingInactive)

		case errors.Is(err, reminders.ErrInvalidInput):
			h.logger.Warn("POST /admin/reminders - Invalid input: booking_id=%d, type=%s",
				req.BookingID, req.Type)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /admin/reminders - Failed to send reminder: booking_id=%d, error=%v",
				req.BookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/reminders - Reminder sent: reminder_id=%d, booking_id=%d",
		result.ID, result.BookingID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
