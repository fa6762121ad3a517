package cancel_booking

import (
	"context"

	"github.com/m04kA/SMC-StylistBooking/internal/domain"
	"github.com/m04kA/SMC-StylistBooking/internal/service/bookings/models"
)

type BookingService interface {
	Cancel(ctx context.Context, id string, actor domain.Actor, reason *string) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
