package get_blocked_times

import (
	"context"

	"github.com/m04kA/SMC-ClinicReservationService/internal/service/blockedtimes/models"
)

type BlockedTimeService interface {
	ListByDate(ctx context.Context, rawDate string) (*models.BlockedTimeListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
