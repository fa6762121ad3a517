package sms

// Template тип SMS сообщения
type Template string

const (
	TemplateBookingConfirmation Template = "booking_confirmation"
	TemplateStylistNotification Template = "stylist_notification"
	TemplateBookingCancellation Template = "booking_cancellation"
	TemplateBookingReschedule   Template = "booking_reschedule"
	TemplateBookingReminder     Template = "booking_reminder"
)

// BookingDetails данные записи для шаблона SMS
type BookingDetails struct {
	BookingID          string   `json:"bookingId"`
	BookingDate        string   `json:"bookingDate"`
	StartTime          string   `json:"startTime"`
	EndTime            string   `json:"endTime"`
	StylistName        string   `json:"stylistName"`
	CustomerName       string   `json:"customerName"`
	SalonAddress       *string  `json:"salonAddress,omitempty"`
	CustomerPhone      *string  `json:"customerPhone,omitempty"`
	StylistPhone       *string  `json:"stylistPhone,omitempty"`
	DepositAmount      *float64 `json:"depositAmount,omitempty"`
	TotalAmount        *float64 `json:"totalAmount,omitempty"`
	CancellationReason *string  `json:"cancellationReason,omitempty"`
	NewDate            *string  `json:"newDate,omitempty"`
	NewStartTime       *string  `json:"newStartTime,omitempty"`
	NewEndTime         *string  `json:"newEndTime,omitempty"`
}

// sendRequest тело запроса к SMS шлюзу
type sendRequest struct {
	Template Template       `json:"template"`
	Phone    string         `json:"phone"`
	Details  BookingDetails `json:"details"`
}
