package cancel_booking

import (
	"errors"
	"io"
	"net/http"

	"github.com/m04kA/SMC-StylistBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StylistBooking/internal/service/bookings/models"
)

// decodeCancelRequest читает необязательное тело с причиной отмены
func decodeCancelRequest(r *http.Request) (*models.CancelBookingRequest, error) {
	var req models.CancelBookingRequest
	if r.Body == nil || r.ContentLength == 0 {
		return &req, nil
	}
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return &req, nil
}
