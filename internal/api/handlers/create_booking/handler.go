package create_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StylistBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StylistBooking/internal/api/middleware"
	"github.com/m04kA/SMC-StylistBooking/internal/domain"
	"github.com/m04kA/SMC-StylistBooking/internal/service/bookings/models"
	createBooking "github.com/m04kA/SMC-StylistBooking/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректная дата или время, ожидается YYYY-MM-DD и HH:MM"
	msgMissingStylistID   = "ID стилиста обязателен"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgOnlyCustomers      = "записываться могут только клиенты"
	msgStylistNotFound    = "стилист не найден"
	msgCustomerNotFound   = "клиент не найден"
	msgSlotTaken          = "выбранный временной слот уже занят"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings?stylistId=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	if actor.Role != domain.RoleCustomer {
		h.logger.Warn("POST /bookings - Not a customer: user_id=%s, role=%s", actor.UserID, actor.Role)
		handlers.RespondForbidden(w, msgOnlyCustomers)
		return
	}

	stylistID := r.URL.Query().Get("stylistId")
	if stylistID == "" {
		h.logger.Warn("POST /bookings - Missing stylist ID")
		handlers.RespondBadRequest(w, msgMissingStylistID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(stylistID, actor.UserID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	booking, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		h.respondError(w, "POST /bookings", stylistID, err)
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, customer_id=%s, stylist_id=%s",
		booking.ID, actor.UserID, stylistID)
	handlers.RespondJSON(w, http.StatusCreated, models.FromDomainBooking(booking))
}

// HandlePublic POST /api/v1/public/stylists/{stylistId}/book
func (h *Handler) HandlePublic(w http.ResponseWriter, r *http.Request) {
	stylistID := mux.Vars(r)["stylistId"]

	var req CreatePublicBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /public/stylists/{id}/book - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(stylistID)
	if err != nil {
		h.logger.Warn("POST /public/stylists/{id}/book - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	booking, err := h.useCase.ExecutePublic(r.Context(), useCaseReq)
	if err != nil {
		h.respondError(w, "POST /public/stylists/{id}/book", stylistID, err)
		return
	}

	h.logger.Info("POST /public/stylists/{id}/book - Booking created successfully: booking_id=%s, customer_id=%s, stylist_id=%s",
		booking.ID, booking.CustomerID, stylistID)
	handlers.RespondJSON(w, http.StatusCreated, models.FromDomainBooking(booking))
}

func (h *Handler) respondError(w http.ResponseWriter, route, stylistID string, err error) {
	switch {
	case errors.Is(err, createBooking.ErrStylistNotFound):
		h.logger.Warn("%s - Stylist not found: stylist_id=%s", route, stylistID)
		handlers.RespondNotFound(w, msgStylistNotFound)

	case errors.Is(err, createBooking.ErrCustomerNotFound):
		h.logger.Warn("%s - Customer not found: stylist_id=%s", route, stylistID)
		handlers.RespondNotFound(w, msgCustomerNotFound)

	case errors.Is(err, createBooking.ErrSlotTaken):
		h.logger.Warn("%s - Slot taken: stylist_id=%s", route, stylistID)
		handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

	case handlers.StatusFor(err) == http.StatusInternalServerError:
		h.logger.Error("%s - Failed to create booking: stylist_id=%s, error=%v", route, stylistID, err)
		handlers.RespondInternalError(w)

	default:
		h.logger.Warn("%s - Booking rejected: stylist_id=%s, error=%v", route, stylistID, err)
		handlers.RespondDomainError(w, err)
	}
}
