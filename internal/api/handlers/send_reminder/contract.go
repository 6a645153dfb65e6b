package send_reminder

import (
	"context"

	"github.com/m04kA/MYB-BookingService/internal/service/reminders/models"
)

type ReminderService interface {
	Send(ctx context.Context, req *models.SendReminderRequest) (*models.ReminderResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
