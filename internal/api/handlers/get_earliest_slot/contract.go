package get_earliest_slot

import (
	"context"

	getEarliestSlot "github.com/m04kA/MYB-BookingService/internal/usecase/get_earliest_slot"
)

type GetEarliestSlotUseCase interface {
	Execute(ctx context.Context, req *getEarliestSlot.Request) (*getEarliestSlot.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
