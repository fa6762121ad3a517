package create_booking

import (
	"time"

	"github.com/m04kA/SMC-StylistBooking/pkg/types"
)

// Метки потока для метрик
const (
	FlowAuthenticated = "authenticated"
	FlowPublic        = "public"
)

// Slot желаемое время записи и данные, которые клиент передаёт вместе с ним
type Slot struct {
	Date          time.Time        // Дата записи (без времени)
	StartTime     types.TimeString // Начало, "HH:MM"
	EndTime       types.TimeString // Конец, "HH:MM"
	CustomerNotes *string
	DepositAmount *float64
	TotalAmount   *float64
}

// Request запись авторизованного клиента
type Request struct {
	StylistID  string
	CustomerID string
	Slot
}

// PublicRequest запись без авторизации: клиент ищется или создаётся по телефону
type PublicRequest struct {
	StylistID     string
	CustomerPhone string
	CustomerName  *string
	Slot
}
