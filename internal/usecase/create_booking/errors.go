package create_booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StylistBooking/internal/domain"
)

var (
	// ErrStylistNotFound возвращается, когда стилист не найден или не одобрен
	ErrStylistNotFound = fmt.Errorf("create_booking: stylist not found or not approved: %w", domain.ErrNotFound)

	// ErrCustomerNotFound возвращается, когда клиент не найден
	ErrCustomerNotFound = fmt.Errorf("create_booking: customer not found: %w", domain.ErrNotFound)

	// ErrNoSchedule возвращается, когда у стилиста нет рабочего расписания
	ErrNoSchedule = fmt.Errorf("create_booking: stylist has no working schedule: %w", domain.ErrInvalidSchedule)

	// ErrSlotTaken возвращается, когда интервал занят параллельной записью
	ErrSlotTaken = fmt.Errorf("create_booking: slot already taken: %w", domain.ErrConflict)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("create_booking: invalid input data: %w", domain.ErrInvalidInput)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
