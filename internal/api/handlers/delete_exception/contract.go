package delete_exception

import (
	"context"

	"github.com/m04kA/SMC-StylistBooking/internal/domain"
)

type AvailabilityService interface {
	DeleteException(ctx context.Context, actor domain.Actor, id string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
