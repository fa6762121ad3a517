package get_available_slots

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StylistBooking/internal/domain"
)

var (
	// ErrScheduleNotFound возвращается, когда у стилиста нет рабочего расписания
	ErrScheduleNotFound = fmt.Errorf("get_available_slots: schedule not found: %w", domain.ErrNotFound)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("get_available_slots: invalid input data: %w", domain.ErrInvalidInput)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
