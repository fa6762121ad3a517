package create_exception

import (
	"context"

	"github.com/m04kA/SMC-StylistBooking/internal/domain"
	"github.com/m04kA/SMC-StylistBooking/internal/service/availability/models"
)

type AvailabilityService interface {
	CreateException(ctx context.Context, actor domain.Actor, req *models.CreateExceptionRequest) (*models.ExceptionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
