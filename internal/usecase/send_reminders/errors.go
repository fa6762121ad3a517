package send_reminders

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StylistBooking/internal/domain"
)

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = fmt.Errorf("send_reminders: booking not found: %w", domain.ErrNotFound)

	// ErrAccessDenied возвращается, когда напоминание запрашивает не стилист записи
	ErrAccessDenied = fmt.Errorf("send_reminders: access denied: %w", domain.ErrForbidden)

	// ErrNotConfirmed возвращается для неподтверждённой записи
	ErrNotConfirmed = fmt.Errorf("send_reminders: only confirmed bookings get reminders: %w", domain.ErrInvalidTransition)

	// ErrSendFailed возвращается, когда отправка напоминания не удалась
	ErrSendFailed = errors.New("send_reminders: failed to send reminder")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("send_reminders: internal error")
)
