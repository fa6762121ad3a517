package reschedule_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StylistBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StylistBooking/internal/api/middleware"
	rescheduleBooking "github.com/m04kA/SMC-StylistBooking/internal/usecase/reschedule_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректная дата или время, ожидается YYYY-MM-DD и HH:MM"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgNotFound           = "бронирование не найдено"
	msgForbidden          = "доступ запрещен"
	msgNotConfirmed       = "переносить можно только подтверждённые записи"
	msgSlotTaken          = "выбранный временной слот уже занят"
)

type Handler struct {
	useCase RescheduleBookingUseCase
	logger  Logger
}

func NewHandler(useCase RescheduleBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/reschedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings/{id}/reschedule - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req RescheduleBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{id}/reschedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(bookingID, actor)
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/reschedule - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, rescheduleBooking.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/reschedule - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, rescheduleBooking.ErrAccessDenied):
			h.logger.Warn("POST /bookings/{id}/reschedule - Access denied: booking_id=%s, user_id=%s",
				bookingID, actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, rescheduleBooking.ErrNotConfirmed):
			h.logger.Warn("POST /bookings/{id}/reschedule - Not confirmed: booking_id=%s", bookingID)
			handlers.RespondBadRequest(w, msgNotConfirmed)

		case errors.Is(err, rescheduleBooking.ErrSlotTaken):
			h.logger.Warn("POST /bookings/{id}/reschedule - Slot taken: booking_id=%s", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case handlers.StatusFor(err) == http.StatusInternalServerError:
			h.logger.Error("POST /bookings/{id}/reschedule - Failed to reschedule: booking_id=%s, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)

		default:
			h.logger.Warn("POST /bookings/{id}/reschedule - Reschedule rejected: booking_id=%s, error=%v",
				bookingID, err)
			handlers.RespondDomainError(w, err)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/reschedule - Booking rescheduled: booking_id=%s, new_booking_id=%s, user_id=%s",
		bookingID, result.Rescheduled.ID, actor.UserID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
