package send_reminder

import (
	"context"

	"github.com/m04kA/SMC-StylistBooking/internal/domain"
)

type ReminderUseCase interface {
	SendOne(ctx context.Context, bookingID string, actor domain.Actor) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
