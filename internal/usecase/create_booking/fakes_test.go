package create_booking

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/SMC-StylistBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-StylistBooking/internal/infra/storage/booking"
	identityRepo "github.com/m04kA/SMC-StylistBooking/internal/infra/storage/identity"
	scheduleRepo "github.com/m04kA/SMC-StylistBooking/internal/infra/storage/schedule"
)

// fakeBookings хранилище записей в памяти; Create повторяет exclusion constraint
type fakeBookings struct {
	mu       sync.Mutex
	bookings []*domain.Booking
	seq      int
	// listDelay расширяет окно гонки между проверкой и вставкой
	listDelay time.Duration
}

func (f *fakeBookings) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.bookings {
		if existing.IsActive() && existing.StylistID == b.StylistID &&
			existing.BookingDate.Equal(b.BookingDate) && existing.Range().Overlaps(b.Range()) {
			return nil, bookingRepo.ErrOverlap
		}
	}

	f.seq++
	copied := *b
	copied.ID = fmt.Sprintf("booking-%d", f.seq)
	f.bookings = append(f.bookings, &copied)
	out := copied
	return &out, nil
}

func (f *fakeBookings) List(_ context.Context, filter domain.BookingFilter) ([]*domain.Booking, error) {
	if f.listDelay > 0 {
		time.Sleep(f.listDelay)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if filter.StylistID != nil && b.StylistID != *filter.StylistID {
			continue
		}
		if filter.Date != nil && !b.BookingDate.Equal(*filter.Date) {
			continue
		}
		if len(filter.Statuses) > 0 && !b.Status.IsActive() {
			continue
		}
		copied := *b
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeBookings) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.bookings)
}

type fakeSchedules struct {
	schedules map[string]*domain.WorkingSchedule
}

func (f *fakeSchedules) GetByStylistID(_ context.Context, stylistID string) (*domain.WorkingSchedule, error) {
	if s, ok := f.schedules[stylistID]; ok {
		return s, nil
	}
	return nil, scheduleRepo.ErrScheduleNotFound
}

type fakeExceptions struct {
	exceptions []*domain.ScheduleException
}

func (f *fakeExceptions) ListForDate(_ context.Context, _ string, date time.Time) ([]*domain.ScheduleException, error) {
	out := make([]*domain.ScheduleException, 0)
	for _, e := range f.exceptions {
		if e.AppliesTo(date) {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeIdentity struct {
	mu       sync.Mutex
	stylists map[string]*domain.Stylist
	users    map[string]*domain.User
	created  int
}

func (f *fakeIdentity) GetStylistIfApproved(_ context.Context, id string) (*domain.Stylist, error) {
	if s, ok := f.stylists[id]; ok && s.Status == domain.ProfileApproved {
		return s, nil
	}
	return nil, identityRepo.ErrStylistNotFound
}

func (f *fakeIdentity) GetUser(_ context.Context, id string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, identityRepo.ErrUserNotFound
}

func (f *fakeIdentity) GetOrCreateCustomerByPhone(_ context.Context, phone string, firstName *string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.PhoneNumber == phone {
			return u, nil
		}
	}
	f.created++
	u := &domain.User{ID: "customer-" + phone, PhoneNumber: phone, FirstName: firstName, Role: domain.RoleCustomer, Status: domain.UserStatusActive}
	f.users[u.ID] = u
	return u, nil
}

// passthroughTx выполняет функцию без реальной транзакции
type passthroughTx struct{}

func (passthroughTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type recordingNotifier struct {
	mu      sync.Mutex
	created []*domain.Booking
}

func (n *recordingNotifier) NotifyBookingCreated(b *domain.Booking) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.created = append(n.created, b)
}

type countingMetrics struct {
	mu        sync.Mutex
	created   map[string]int
	conflicts map[string]int
}

func newCountingMetrics() *countingMetrics {
	return &countingMetrics{created: map[string]int{}, conflicts: map[string]int{}}
}

func (m *countingMetrics) IncBookingCreated(flow string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.created[flow]++
}

func (m *countingMetrics) IncBookingConflict(flow string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.conflicts[flow]++
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
