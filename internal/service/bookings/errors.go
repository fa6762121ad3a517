package bookings

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StylistBooking/internal/domain"
)

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = fmt.Errorf("booking not found: %w", domain.ErrNotFound)

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = fmt.Errorf("access denied: %w", domain.ErrForbidden)

	// ErrCannotCancel возвращается, когда бронирование не может быть отменено
	ErrCannotCancel = fmt.Errorf("booking cannot be cancelled: %w", domain.ErrInvalidTransition)

	// ErrStatusChanged возвращается, когда статус изменился параллельно
	ErrStatusChanged = fmt.Errorf("booking status changed concurrently: %w", domain.ErrConflict)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("invalid input data: %w", domain.ErrInvalidInput)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
