package notify

import (
	"context"

	"github.com/m04kA/SMC-StylistBooking/internal/domain"
	"github.com/m04kA/SMC-StylistBooking/internal/integrations/sms"
)

// Sender отправитель SMS (sms.Client или sms.LogSender)
type Sender interface {
	Send(ctx context.Context, template sms.Template, phone string, details sms.BookingDetails) error
}

// Directory источник данных о стилистах и клиентах
type Directory interface {
	GetUser(ctx context.Context, id string) (*domain.User, error)
	GetStylistIfApproved(ctx context.Context, userID string) (*domain.Stylist, error)
}

// Metrics счётчики уведомлений
type Metrics interface {
	IncNotification(kind string, ok bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
