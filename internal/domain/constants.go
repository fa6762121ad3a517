package domain

// Default schedule values
const (
	DefaultSlotDurationMinutes  = 60
	DefaultBufferTimeMinutes    = 15
	DefaultMinimumNoticeMinutes = 120 // 2 hours
	DefaultMaxAdvanceDays       = 90
	DefaultAllowMultipleClients = true
)

// Schedule validation constants
const (
	MinSlotDurationMinutes  = 15
	MaxSlotDurationMinutes  = 480 // 8 hours
	MinBufferTimeMinutes    = 0
	MaxBufferTimeMinutes    = 120
	MinMinimumNoticeMinutes = 30
	MaxMinimumNoticeMinutes = 1440 // 1 day
	MinMaxAdvanceDays       = 1
	MaxMaxAdvanceDays       = 365
	MaxNotesLength          = 1000
	MaxReasonLength         = 500
	MaxCustomerNameLength   = 100
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses statuses that occupy a stylist's time
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}
