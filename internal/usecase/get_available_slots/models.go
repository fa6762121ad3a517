package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-StylistBooking/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	StylistID string    // ID стилиста
	Date      time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date                time.Time // Дата, на которую запрашивались слоты
	StylistID           string    // ID стилиста
	SlotDurationMinutes int       // Длительность слота
	Slots               []Slot    // Свободные слоты по возрастанию
}

// Slot модель временного слота
type Slot struct {
	StartTime types.TimeString // Время начала слота (например, "10:00")
	EndTime   types.TimeString // Время окончания слота
}
