package availability

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StylistBooking/internal/domain"
)

var (
	// ErrScheduleNotFound возвращается, когда расписание не найдено
	ErrScheduleNotFound = fmt.Errorf("schedule not found: %w", domain.ErrNotFound)

	// ErrExceptionNotFound возвращается, когда исключение не найдено у стилиста
	ErrExceptionNotFound = fmt.Errorf("exception not found: %w", domain.ErrNotFound)

	// ErrAccessDenied возвращается, когда пользователь не стилист
	ErrAccessDenied = fmt.Errorf("access denied: %w", domain.ErrForbidden)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("invalid input data: %w", domain.ErrInvalidInput)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
