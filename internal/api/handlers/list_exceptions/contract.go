package list_exceptions

import (
	"context"
	"time"

	"github.com/m04kA/SMC-StylistBooking/internal/domain"
	"github.com/m04kA/SMC-StylistBooking/internal/service/availability/models"
)

type AvailabilityService interface {
	ListExceptions(ctx context.Context, actor domain.Actor, from, to *time.Time) (*models.ExceptionListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
