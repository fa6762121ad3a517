package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор Prometheus метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration *prometheus.HistogramVec
	DBConnections   *prometheus.GaugeVec

	BookingsCreated  *prometheus.CounterVec
	BookingConflicts *prometheus.CounterVec
	Notifications    *prometheus.CounterVec
	RemindersSent    *prometheus.CounterVec
}

// New создает метрики и регистрирует их в глобальном реестре Prometheus
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики и регистрирует их в переданном реестре
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests.",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency.",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency.",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),

		DBConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_connections",
			Help:        "Database connection pool state.",
			ConstLabels: constLabels,
		}, []string{"state"}),

		BookingsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_created_total",
			Help:        "Bookings committed, by flow.",
			ConstLabels: constLabels,
		}, []string{"flow"}),

		BookingConflicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_conflicts_total",
			Help:        "Booking attempts rejected because of an overlap, by flow.",
			ConstLabels: constLabels,
		}, []string{"flow"}),

		Notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "notifications_total",
			Help:        "Notification deliveries, by kind and result.",
			ConstLabels: constLabels,
		}, []string{"kind", "result"}),

		RemindersSent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "reminders_sent_total",
			Help:        "Reminder sweep results.",
			ConstLabels: constLabels,
		}, []string{"result"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueryDuration,
		m.DBConnections,
		m.BookingsCreated,
		m.BookingConflicts,
		m.Notifications,
		m.RemindersSent,
	)

	return m
}

// Методы ниже безопасны для nil - сервис может работать с выключенными метриками

// IncBookingCreated увеличивает счетчик созданных бронирований
func (m *Metrics) IncBookingCreated(flow string) {
	if m == nil {
		return
	}
	m.BookingsCreated.WithLabelValues(flow).Inc()
}

// IncBookingConflict увеличивает счетчик конфликтов
func (m *Metrics) IncBookingConflict(flow string) {
	if m == nil {
		return
	}
	m.BookingConflicts.WithLabelValues(flow).Inc()
}

// IncNotification учитывает результат отправки уведомления
func (m *Metrics) IncNotification(kind string, ok bool) {
	if m == nil {
		return
	}
	m.Notifications.WithLabelValues(kind, result(ok)).Inc()
}

// IncReminder учитывает результат отправки напоминания
func (m *Metrics) IncReminder(ok bool) {
	if m == nil {
		return
	}
	m.RemindersSent.WithLabelValues(result(ok)).Inc()
}

func result(ok bool) string {
	if ok {
		return "success"
	}
	return "failure"
}
