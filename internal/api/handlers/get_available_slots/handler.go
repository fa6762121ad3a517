package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StylistBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StylistBooking/internal/api/middleware"
	"github.com/m04kA/SMC-StylistBooking/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-StylistBooking/internal/usecase/get_available_slots"
)

const (
	msgMissingStylistID  = "ID стилиста обязателен"
	msgMissingDate       = "дата обязательна"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgScheduleNotFound  = "у стилиста нет расписания"
	msgMissingUserID     = "отсутствует ID пользователя"
	msgOnlyStylistAccess = "доступно только стилистам"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/public/stylists/{stylistId}/slots
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	stylistID := mux.Vars(r)["stylistId"]
	if stylistID == "" {
		h.logger.Warn("GET /public/stylists/{id}/slots - Missing stylist ID")
		handlers.RespondBadRequest(w, msgMissingStylistID)
		return
	}

	h.serve(w, r, "GET /public/stylists/{id}/slots", stylistID)
}

// HandleOwn GET /api/v1/stylists/availability/slots
// Слоты текущего стилиста, query params: date (required, YYYY-MM-DD)
func (h *Handler) HandleOwn(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("GET /stylists/availability/slots - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	if actor.Role != domain.RoleProvider {
		h.logger.Warn("GET /stylists/availability/slots - Not a stylist: user_id=%s", actor.UserID)
		handlers.RespondForbidden(w, msgOnlyStylistAccess)
		return
	}

	h.serve(w, r, "GET /stylists/availability/slots", actor.UserID)
}

func (h *Handler) serve(w http.ResponseWriter, r *http.Request, route, stylistID string) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("%s - Missing date", route)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(stylistID, dateStr)
	if err != nil {
		h.logger.Warn("%s - Invalid date format: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrScheduleNotFound):
			h.logger.Warn("%s - Schedule not found: stylist_id=%s", route, stylistID)
			handlers.RespondNotFound(w, msgScheduleNotFound)

		case errors.Is(err, getAvailableSlots.ErrInternal):
			h.logger.Error("%s - Failed to get slots: stylist_id=%s, error=%v", route, stylistID, err)
			handlers.RespondInternalError(w)

		default:
			h.logger.Warn("%s - Rejected: stylist_id=%s, error=%v", route, stylistID, err)
			handlers.RespondDomainError(w, err)
		}
		return
	}

	h.logger.Info("%s - Slots retrieved successfully: stylist_id=%s, date=%s, slots_count=%d",
		route, stylistID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
