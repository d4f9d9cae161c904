package confirm_pending

import (
	"context"

	confirmPending "github.com/m04kA/SMC-ClinicReservationService/internal/usecase/confirm_pending"
)

type ConfirmPendingUseCase interface {
	Execute(ctx context.Context, req *confirmPending.Request) (*confirmPending.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
