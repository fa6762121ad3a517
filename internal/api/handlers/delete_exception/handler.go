package delete_exception

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StylistBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StylistBooking/internal/api/middleware"
	"github.com/m04kA/SMC-StylistBooking/internal/service/availability"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgNotFound      = "исключение не найдено"
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

// Handle DELETE /api/v1/stylists/exceptions/{exceptionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	exceptionID := mux.Vars(r)["exceptionId"]

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("DELETE /stylists/exceptions/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.DeleteException(r.Context(), actor, exceptionID); err != nil {
		switch {
		case errors.Is(err, availability.ErrExceptionNotFound):
			h.logger.Warn("DELETE /stylists/exceptions/{id} - Exception not found: exception_id=%s", exceptionID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, availability.ErrAccessDenied):
			h.logger.Warn("DELETE /stylists/exceptions/{id} - Access denied: user_id=%s", actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /stylists/exceptions/{id} - Failed to delete exception: exception_id=%s, error=%v",
				exceptionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /stylists/exceptions/{id} - Exception deleted successfully: exception_id=%s", exceptionID)
	w.WriteHeader(http.StatusNoContent)
}
