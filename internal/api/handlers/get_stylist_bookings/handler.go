package get_stylist_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StylistBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StylistBooking/internal/api/middleware"
	"github.com/m04kA/SMC-StylistBooking/internal/service/bookings"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgForbidden     = "доступно только стилистам"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/stylists/bookings?status=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("GET /stylists/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	status := r.URL.Query().Get("status")
	var statusPtr *string
	if status != "" {
		statusPtr = &status
	}

	result, err := h.service.ListForStylist(r.Context(), actor, statusPtr)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /stylists/bookings - Access denied: user_id=%s", actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /stylists/bookings - Invalid status: user_id=%s, status=%s", actor.UserID, status)
			handlers.RespondDomainError(w, err)

		default:
			h.logger.Error("GET /stylists/bookings - Failed to get bookings: user_id=%s, error=%v", actor.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /stylists/bookings - Bookings retrieved successfully: stylist_id=%s, count=%d",
		actor.UserID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
