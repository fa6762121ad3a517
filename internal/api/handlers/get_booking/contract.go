package get_booking

import (
	"context"

	"github.com/m04kA/SMC-StylistBooking/internal/domain"
	"github.com/m04kA/SMC-StylistBooking/internal/service/bookings/models"
)

type BookingService interface {
	GetByID(ctx context.Context, id string, actor domain.Actor) (*models.BookingResponse, error)
	GetPublic(ctx context.Context, id string) (*models.PublicBookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
