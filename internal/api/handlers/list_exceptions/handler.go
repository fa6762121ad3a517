package list_exceptions

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-StylistBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StylistBooking/internal/api/middleware"
	"github.com/m04kA/SMC-StylistBooking/internal/domain"
	"github.com/m04kA/SMC-StylistBooking/internal/service/availability"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgForbidden     = "доступно только стилистам"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/stylists/exceptions
// Query params: startDate, endDate (optional, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("GET /stylists/exceptions - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	from, err := parseDateParam(r, "startDate")
	if err != nil {
		h.logger.Warn("GET /stylists/exceptions - Invalid startDate: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	to, err := parseDateParam(r, "endDate")
	if err != nil {
		h.logger.Warn("GET /stylists/exceptions - Invalid endDate: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.ListExceptions(r.Context(), actor, from, to)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrAccessDenied):
			h.logger.Warn("GET /stylists/exceptions - Access denied: user_id=%s", actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("GET /stylists/exceptions - Invalid range: user_id=%s, error=%v", actor.UserID, err)
			handlers.RespondDomainError(w, err)

		default:
			h.logger.Error("GET /stylists/exceptions - Failed to list exceptions: user_id=%s, error=%v", actor.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /stylists/exceptions - Exceptions retrieved successfully: stylist_id=%s, count=%d",
		actor.UserID, len(result.Exceptions))
	handlers.RespondJSON(w, http.StatusOK, result)
}

func parseDateParam(r *http.Request, name string) (*time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	date, err := domain.ParseDate(raw)
	if err != nil {
		return nil, err
	}
	return &date, nil
}
