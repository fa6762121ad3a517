package reschedule_booking

import (
	"time"

	"github.com/m04kA/SMC-StylistBooking/internal/domain"
	"github.com/m04kA/SMC-StylistBooking/pkg/types"
)

// Request модель запроса на перенос записи
type Request struct {
	BookingID string
	Actor     domain.Actor
	NewDate   time.Time        // Новая дата (без времени)
	StartTime types.TimeString // Новое начало, "HH:MM"
	EndTime   types.TimeString // Новый конец, "HH:MM"
}

// Response исходная запись в статусе rescheduled и новая подтверждённая запись
type Response struct {
	Original    *domain.Booking
	Rescheduled *domain.Booking
}
