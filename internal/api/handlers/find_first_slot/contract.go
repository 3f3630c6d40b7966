package find_first_slot

import (
	"context"

	findFirstSlot "github.com/m04kA/SMC-AppointmentService/internal/usecase/find_first_slot"
)

type FindFirstSlotUseCase interface {
	Execute(ctx context.Context, req *findFirstSlot.Request) (*findFirstSlot.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
