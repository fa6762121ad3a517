package reschedule_booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StylistBooking/internal/domain"
)

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = fmt.Errorf("reschedule_booking: booking not found: %w", domain.ErrNotFound)

	// ErrAccessDenied возвращается, когда пользователь не может переносить запись
	ErrAccessDenied = fmt.Errorf("reschedule_booking: access denied: %w", domain.ErrForbidden)

	// ErrNotConfirmed возвращается, когда переносится неподтверждённая запись
	ErrNotConfirmed = fmt.Errorf("reschedule_booking: only confirmed bookings can be rescheduled: %w", domain.ErrInvalidTransition)

	// ErrNoSchedule возвращается, когда у стилиста нет рабочего расписания
	ErrNoSchedule = fmt.Errorf("reschedule_booking: stylist has no working schedule: %w", domain.ErrInvalidSchedule)

	// ErrSlotTaken возвращается, когда новый интервал занят параллельной записью
	ErrSlotTaken = fmt.Errorf("reschedule_booking: slot already taken: %w", domain.ErrConflict)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("reschedule_booking: invalid input data: %w", domain.ErrInvalidInput)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reschedule_booking: internal error")
)
