package send_reminder

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StylistBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StylistBooking/internal/api/middleware"
	sendReminders "github.com/m04kA/SMC-StylistBooking/internal/usecase/send_reminders"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgNotFound      = "бронирование не найдено"
	msgForbidden     = "доступ запрещен"
	msgNotConfirmed  = "напоминание можно отправить только для подтверждённой записи"
	msgSendFailed    = "не удалось отправить напоминание"
)

type Handler struct {
	useCase ReminderUseCase
	logger  Logger
}

func NewHandler(useCase ReminderUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/stylists/bookings/{bookingId}/reminder
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("POST /stylists/bookings/{id}/reminder - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.useCase.SendOne(r.Context(), bookingID, actor); err != nil {
		switch {
		case errors.Is(err, sendReminders.ErrBookingNotFound):
			h.logger.Warn("POST /stylists/bookings/{id}/reminder - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, sendReminders.ErrAccessDenied):
			h.logger.Warn("POST /stylists/bookings/{id}/reminder - Access denied: booking_id=%s, user_id=%s",
				bookingID, actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, sendReminders.ErrNotConfirmed):
			h.logger.Warn("POST /stylists/bookings/{id}/reminder - Not confirmed: booking_id=%s", bookingID)
			handlers.RespondBadRequest(w, msgNotConfirmed)

		case errors.Is(err, sendReminders.ErrSendFailed):
			h.logger.Error("POST /stylists/bookings/{id}/reminder - Send failed: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgSendFailed)

		default:
			h.logger.Error("POST /stylists/bookings/{id}/reminder - Failed to send reminder: booking_id=%s, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /stylists/bookings/{id}/reminder - Reminder sent: booking_id=%s, user_id=%s",
		bookingID, actor.UserID)
	w.WriteHeader(http.StatusNoContent)
}
