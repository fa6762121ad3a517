package get_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StylistBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StylistBooking/internal/api/middleware"
	"github.com/m04kA/SMC-StylistBooking/internal/domain"
	"github.com/m04kA/SMC-StylistBooking/internal/service/availability"
)

const (
	msgMissingUserID    = "отсутствует ID пользователя"
	msgForbidden        = "доступно только стилистам"
	msgScheduleNotFound = "расписание не настроено"
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

// Handle GET /api/v1/stylists/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("GET /stylists/availability - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	if actor.Role != domain.RoleProvider {
		h.logger.Warn("GET /stylists/availability - Not a stylist: user_id=%s", actor.UserID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	result, err := h.service.GetAvailability(r.Context(), actor.UserID)
	if err != nil {
		if errors.Is(err, availability.ErrScheduleNotFound) {
			h.logger.Warn("GET /stylists/availability - Schedule not found: stylist_id=%s", actor.UserID)
			handlers.RespondNotFound(w, msgScheduleNotFound)
			return
		}
		h.logger.Error("GET /stylists/availability - Failed to get schedule: stylist_id=%s, error=%v", actor.UserID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /stylists/availability - Schedule retrieved successfully: stylist_id=%s", actor.UserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
