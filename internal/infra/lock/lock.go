package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-StylistBooking/internal/domain"
)

// ErrLockTimeout блокировку не удалось взять до истечения контекста
var ErrLockTimeout = errors.New("lock: timed out waiting for lock")

// Unlock освобождает блокировку; повторный вызов ничего не делает
type Unlock func()

// Locker взаимное исключение по ключу, общее для Memory и Redis
type Locker interface {
	Lock(ctx context.Context, key string) (Unlock, error)
}

var (
	_ Locker = (*Memory)(nil)
	_ Locker = (*Redis)(nil)
)

// BookingKey ключ блокировки дня стилиста: "stylistId:YYYY-MM-DD"
func BookingKey(stylistID string, date time.Time) string {
	return fmt.Sprintf("%s:%s", stylistID, date.Format(domain.DateFormat))
}
