package confirm_rescheduled

import (
	"context"

	confirmRescheduled "github.com/m04kA/SMC-ClinicReservationService/internal/usecase/confirm_rescheduled"
)

type ConfirmRescheduledUseCase interface {
	Execute(ctx context.Context, req *confirmRescheduled.Request) (*confirmRescheduled.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
