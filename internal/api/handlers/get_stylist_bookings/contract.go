package get_stylist_bookings

import (
	"context"

	"github.com/m04kA/SMC-StylistBooking/internal/domain"
	"github.com/m04kA/SMC-StylistBooking/internal/service/bookings/models"
)

type BookingService interface {
	ListForStylist(ctx context.Context, actor domain.Actor, status *string) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
