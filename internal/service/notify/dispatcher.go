package notify

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/SMC-StylistBooking/internal/domain"
	"github.com/m04kA/SMC-StylistBooking/internal/integrations/sms"
)

// DefaultSendTimeout ограничение на одну отправку
const DefaultSendTimeout = 10 * time.Second

// Виды уведомлений (метка метрики)
const (
	KindCreated     = "created"
	KindCancelled   = "cancelled"
	KindRescheduled = "rescheduled"
	KindReminder    = "reminder"
)

// ErrNoPhone у получателя нет номера телефона
var ErrNoPhone = errors.New("notify: recipient has no phone number")

type job struct {
	kind string
	run  func(ctx context.Context) error
}

// Dispatcher отправляет уведомления о записях в фоне.
// Ошибки отправки только логируются и никогда не влияют на саму запись.
type Dispatcher struct {
	sender       Sender
	directory    Directory
	metrics      Metrics
	logger       Logger
	salonAddress string

	mu     sync.RWMutex
	closed bool
	queue  chan job
	wg     sync.WaitGroup
}

// NewDispatcher создает диспетчер и запускает workers воркеров.
// salonAddress используется, если у стилиста адрес не заполнен.
func NewDispatcher(sender Sender, directory Directory, metrics Metrics, logger Logger, queueSize, workers int, salonAddress string) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 1
	}
	if workers <= 0 {
		workers = 1
	}
	if metrics == nil {
		metrics = nopMetrics{}
	}

	d := &Dispatcher{
		sender:       sender,
		directory:    directory,
		metrics:      metrics,
		logger:       logger,
		salonAddress: salonAddress,
		queue:        make(chan job, queueSize),
	}

	for i := 0; i < workers; i++ {
		d.wg.Add(1)
		go d.worker()
	}

	return d
}

// NotifyBookingCreated подтверждение клиенту и уведомление стилисту
func (d *Dispatcher) NotifyBookingCreated(booking *domain.Booking) {
	b := *booking
	d.enqueue(KindCreated, func(ctx context.Context) error {
		details, customer, stylist, err := d.details(ctx, &b)
		if err != nil {
			return err
		}
		errCustomer := d.send(ctx, sms.TemplateBookingConfirmation, customer, details)
		errStylist := d.send(ctx, sms.TemplateStylistNotification, stylist, details)
		return errors.Join(errCustomer, errStylist)
	})
}

// NotifyBookingCancelled сообщает клиенту об отмене
func (d *Dispatcher) NotifyBookingCancelled(booking *domain.Booking) {
	b := *booking
	d.enqueue(KindCancelled, func(ctx context.Context) error {
		details, customer, _, err := d.details(ctx, &b)
		if err != nil {
			return err
		}
		details.CancellationReason = b.CancellationReason
		return d.send(ctx, sms.TemplateBookingCancellation, customer, details)
	})
}

// NotifyBookingRescheduled сообщает клиенту о переносе с original на rescheduled
func (d *Dispatcher) NotifyBookingRescheduled(original, rescheduled *domain.Booking) {
	orig, next := *original, *rescheduled
	d.enqueue(KindRescheduled, func(ctx context.Context) error {
		details, customer, _, err := d.details(ctx, &orig)
		if err != nil {
			return err
		}
		newDate := next.BookingDate.Format(domain.DateFormat)
		newStart, newEnd := next.StartTime.String(), next.EndTime.String()
		details.NewDate = &newDate
		details.NewStartTime = &newStart
		details.NewEndTime = &newEnd
		return d.send(ctx, sms.TemplateBookingReschedule, customer, details)
	})
}

// SendReminder синхронно отправляет напоминание клиенту.
// Вызывающий по результату решает, отмечать ли напоминание отправленным.
func (d *Dispatcher) SendReminder(ctx context.Context, booking *domain.Booking) error {
	err := func() error {
		details, customer, _, err := d.details(ctx, booking)
		if err != nil {
			return err
		}
		return d.send(ctx, sms.TemplateBookingReminder, customer, details)
	}()
	d.observe(KindReminder, booking.ID, err)
	return err
}

// Close перестаёт принимать задачи и ждёт отправки уже поставленных
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	d.wg.Wait()
}

func (d *Dispatcher) enqueue(kind string, run func(ctx context.Context) error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.logger.Warn("Notify: dispatcher closed, %s notification dropped", kind)
		return
	}

	select {
	case d.queue <- job{kind: kind, run: run}:
	default:
		d.logger.Warn("Notify: queue full, %s notification dropped", kind)
		d.observe(kind, "", errors.New("queue full"))
	}
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()

	for j := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), DefaultSendTimeout)
		err := d.safeRun(ctx, j)
		cancel()
		d.observe(j.kind, "", err)
	}
}

func (d *Dispatcher) safeRun(ctx context.Context, j job) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("notify: panic in %s notification: %v", j.kind, p)
		}
	}()
	return j.run(ctx)
}

type nopMetrics struct{}

func (nopMetrics) IncNotification(string, bool) {}

func (d *Dispatcher) observe(kind, bookingID string, err error) {
	d.metrics.IncNotification(kind, err == nil)
	if err != nil {
		d.logger.Error("Notify: %s notification failed (booking=%s): %v", kind, bookingID, err)
	}
}

// details собирает данные для шаблона и возвращает телефоны клиента и стилиста
func (d *Dispatcher) details(ctx context.Context, b *domain.Booking) (sms.BookingDetails, *string, *string, error) {
	customer, err := d.directory.GetUser(ctx, b.CustomerID)
	if err != nil {
		return sms.BookingDetails{}, nil, nil, fmt.Errorf("notify: load customer %s: %w", b.CustomerID, err)
	}

	details := sms.BookingDetails{
		BookingID:     b.ID,
		BookingDate:   b.BookingDate.Format(domain.DateFormat),
		StartTime:     b.StartTime.String(),
		EndTime:       b.EndTime.String(),
		CustomerName:  customer.FullName(),
		CustomerPhone: phoneOf(customer.PhoneNumber),
		DepositAmount: b.DepositAmount,
		TotalAmount:   b.TotalAmount,
	}

	var stylistPhone *string
	if stylist, err := d.directory.GetStylistIfApproved(ctx, b.StylistID); err == nil {
		details.StylistName = stylist.DisplayName()
		details.SalonAddress = stylist.SalonAddress
		stylistPhone = phoneOf(stylist.PhoneNumber)
	} else if user, err := d.directory.GetUser(ctx, b.StylistID); err == nil {
		details.StylistName = user.FullName()
		stylistPhone = phoneOf(user.PhoneNumber)
	} else {
		return sms.BookingDetails{}, nil, nil, fmt.Errorf("notify: load stylist %s: %w", b.StylistID, err)
	}
	details.StylistPhone = stylistPhone

	if details.SalonAddress == nil && d.salonAddress != "" {
		addr := d.salonAddress
		details.SalonAddress = &addr
	}

	return details, details.CustomerPhone, stylistPhone, nil
}

func (d *Dispatcher) send(ctx context.Context, template sms.Template, phone *string, details sms.BookingDetails) error {
	if phone == nil {
		return fmt.Errorf("%w: %s", ErrNoPhone, template)
	}
	return d.sender.Send(ctx, template, *phone, details)
}

func phoneOf(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
