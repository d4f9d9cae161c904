package blockedtime

import (
	"github.com/m04kA/SMC-ClinicReservationService/pkg/dbmetrics"
)

type DBExecutor = dbmetrics.DBExecutor
