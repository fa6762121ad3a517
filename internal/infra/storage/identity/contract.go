package identity

import "github.com/m04kA/SMC-StylistBooking/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
