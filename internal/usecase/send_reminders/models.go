package send_reminders

import "time"

// DefaultInterval период обхода по умолчанию
const DefaultInterval = time.Hour

// Result итог одного обхода
type Result struct {
	Found   int // Записей на завтра без напоминания
	Sent    int // Отправлено и отмечено
	Failed  int // Ошибка отправки, повторим на следующем обходе
	Skipped int // Отмечено параллельно или запись больше не подтверждена
}
