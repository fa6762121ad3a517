package sms

import "context"

// LogSender пишет сообщения в лог вместо отправки (локальная разработка)
type LogSender struct {
	log Logger
}

// NewLogSender создает отправителя, который только логирует
func NewLogSender(log Logger) *LogSender {
	return &LogSender{log: log}
}

// Send логирует сообщение
func (s *LogSender) Send(_ context.Context, template Template, phone string, details BookingDetails) error {
	s.log.Info("SMS [%s] to %s: booking=%s date=%s %s-%s stylist=%q customer=%q",
		template, phone, details.BookingID, details.BookingDate, details.StartTime, details.EndTime,
		details.StylistName, details.CustomerName)
	return nil
}
