package create_exception

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StylistBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StylistBooking/internal/api/middleware"
	"github.com/m04kA/SMC-StylistBooking/internal/service/availability"
	"github.com/m04kA/SMC-StylistBooking/internal/service/availability/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "исключения могут создавать только стилисты"
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

// Handle POST /api/v1/stylists/exceptions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("POST /stylists/exceptions - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.CreateExceptionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /stylists/exceptions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateException(r.Context(), actor, &req)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrAccessDenied):
			h.logger.Warn("POST /stylists/exceptions - Access denied: user_id=%s", actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("POST /stylists/exceptions - Invalid exception: user_id=%s, error=%v", actor.UserID, err)
			handlers.RespondDomainError(w, err)

		default:
			h.logger.Error("POST /stylists/exceptions - Failed to create exception: user_id=%s, error=%v", actor.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /stylists/exceptions - Exception created successfully: exception_id=%s, stylist_id=%s",
		result.ID, actor.UserID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
