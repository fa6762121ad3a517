package create_booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StylistBooking/internal/domain"
	"github.com/m04kA/SMC-StylistBooking/internal/infra/lock"
	"github.com/m04kA/SMC-StylistBooking/internal/service/scheduling"
	"github.com/m04kA/SMC-StylistBooking/pkg/ptr"
	"github.com/m04kA/SMC-StylistBooking/pkg/types"
)

// 2026-03-02 is a Monday
var monday = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

type fixture struct {
	bookings   *fakeBookings
	exceptions *fakeExceptions
	identity   *fakeIdentity
	notifier   *recordingNotifier
	metrics    *countingMetrics
	uc         *UseCase
}

func newFixture(now time.Time) *fixture {
	schedule := domain.NewWorkingSchedule("stylist-1")
	schedule.Days[time.Monday] = domain.DayWindow{Start: "09:00", End: "18:00"}
	schedule.BufferTimeMinutes = 0

	f := &fixture{
		bookings:   &fakeBookings{},
		exceptions: &fakeExceptions{},
		identity: &fakeIdentity{
			stylists: map[string]*domain.Stylist{
				"stylist-1": {User: domain.User{ID: "stylist-1", Role: domain.RoleProvider}, Status: domain.ProfileApproved},
				"stylist-2": {User: domain.User{ID: "stylist-2", Role: domain.RoleProvider}, Status: domain.ProfilePendingApproval},
			},
			users: map[string]*domain.User{
				"customer-1": {ID: "customer-1", PhoneNumber: "+10000000001", Role: domain.RoleCustomer},
				"customer-2": {ID: "customer-2", PhoneNumber: "+10000000002", Role: domain.RoleCustomer},
			},
		},
		notifier: &recordingNotifier{},
		metrics:  newCountingMetrics(),
	}

	f.uc = NewUseCase(
		f.bookings,
		&fakeSchedules{schedules: map[string]*domain.WorkingSchedule{"stylist-1": schedule}},
		f.exceptions,
		f.identity,
		lock.NewMemory(),
		passthroughTx{},
		f.notifier,
		f.metrics,
		nopLogger{},
	).WithTimeProvider(fixedClock{now: now})

	return f
}

func request(customerID string, start, end types.TimeString) *Request {
	return &Request{
		StylistID:  "stylist-1",
		CustomerID: customerID,
		Slot:       Slot{Date: monday, StartTime: start, EndTime: end},
	}
}

func TestExecute_CreatesPendingBooking(t *testing.T) {
	f := newFixture(monday.AddDate(0, 0, -3))

	req := request("customer-1", "09:00", "10:00")
	req.CustomerNotes = ptr.Ptr("first visit")
	req.TotalAmount = ptr.Ptr(50.0)

	booking, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, domain.StatusPending, booking.Status)
	assert.Equal(t, "customer-1", booking.CustomerID)
	assert.Equal(t, types.TimeString("09:00"), booking.StartTime)
	assert.Equal(t, "first visit", *booking.CustomerNotes)
	assert.Len(t, f.notifier.created, 1)
	assert.Equal(t, 1, f.metrics.created[FlowAuthenticated])
}

func TestExecute_ValidationSequence(t *testing.T) {
	now := monday.AddDate(0, 0, -3)

	tests := []struct {
		name string
		req  *Request
		now  time.Time
		want error
		kind error
	}{
		{"empty range", request("customer-1", "10:00", "10:00"), now, ErrInvalidInput, domain.ErrInvalidInput},
		{"bad format", request("customer-1", "9:00", "10:00"), now, ErrInvalidInput, domain.ErrInvalidInput},
		{"unknown stylist", &Request{StylistID: "nobody", CustomerID: "customer-1", Slot: Slot{Date: monday, StartTime: "09:00", EndTime: "10:00"}}, now, ErrStylistNotFound, domain.ErrNotFound},
		{"stylist not approved", &Request{StylistID: "stylist-2", CustomerID: "customer-1", Slot: Slot{Date: monday, StartTime: "09:00", EndTime: "10:00"}}, now, ErrStylistNotFound, domain.ErrNotFound},
		{"unknown customer", request("ghost", "09:00", "10:00"), now, ErrCustomerNotFound, domain.ErrNotFound},
		{"day off", &Request{StylistID: "stylist-1", CustomerID: "customer-1", Slot: Slot{Date: monday.AddDate(0, 0, 1), StartTime: "09:00", EndTime: "10:00"}}, now, scheduling.ErrDayOff, domain.ErrInvalidSchedule},
		{"insufficient notice", request("customer-1", "10:00", "11:00"), monday.Add(9*time.Hour + 50*time.Minute), scheduling.ErrInsufficientNotice, domain.ErrInvalidSchedule},
		{"too far in advance", request("customer-1", "10:00", "11:00"), monday.AddDate(0, 0, -120), scheduling.ErrTooFarInAdvance, domain.ErrInvalidSchedule},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(tt.now)
			_, err := f.uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, tt.kind)
			assert.Zero(t, f.bookings.count(), "nothing persisted")
			assert.Empty(t, f.notifier.created)
		})
	}
}

func TestExecute_ConflictsWithExceptionAndBooking(t *testing.T) {
	f := newFixture(monday.AddDate(0, 0, -3))
	f.exceptions.exceptions = []*domain.ScheduleException{{
		Date:      &monday,
		StartTime: ptr.Ptr(types.TimeString("13:00")),
		EndTime:   ptr.Ptr(types.TimeString("14:00")),
	}}

	_, err := f.uc.Execute(context.Background(), request("customer-1", "13:30", "14:30"))
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = f.uc.Execute(context.Background(), request("customer-1", "09:00", "10:00"))
	require.NoError(t, err)

	_, err = f.uc.Execute(context.Background(), request("customer-2", "09:30", "10:30"))
	assert.ErrorIs(t, err, scheduling.ErrOverlapsBooking)
	assert.Equal(t, 2, f.metrics.conflicts[FlowAuthenticated])
}

func TestExecute_ConcurrentOverlappingCreates(t *testing.T) {
	f := newFixture(monday.AddDate(0, 0, -3))
	f.bookings.listDelay = 20 * time.Millisecond

	const callers = 2
	var (
		wg      sync.WaitGroup
		start   = make(chan struct{})
		results = make([]error, callers)
	)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			customer := []string{"customer-1", "customer-2"}[i]
			_, results[i] = f.uc.Execute(context.Background(), request(customer, "09:00", "10:00"))
		}(i)
	}
	close(start)
	wg.Wait()

	var ok, conflicts int
	for _, err := range results {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, domain.ErrConflict):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, ok)
	assert.Equal(t, 1, conflicts)
	assert.Equal(t, 1, f.bookings.count())
}

func TestExecute_DatabaseOverlapIsConflict(t *testing.T) {
	f := newFixture(monday.AddDate(0, 0, -3))
	// запись, которую List не видит (вставлена в обход), но constraint отклонит вставку
	f.bookings.bookings = []*domain.Booking{{
		ID: "hidden", StylistID: "stylist-1", BookingDate: monday, StartTime: "09:00", EndTime: "10:00", Status: domain.StatusConfirmed,
	}}
	f.uc.bookingRepo = blindBookings{f.bookings}

	_, err := f.uc.Execute(context.Background(), request("customer-1", "09:00", "10:00"))
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

// blindBookings отдаёт пустой список, имитируя запись из другой транзакции
type blindBookings struct {
	*fakeBookings
}

func (blindBookings) List(context.Context, domain.BookingFilter) ([]*domain.Booking, error) {
	return nil, nil
}

func TestExecutePublic_CreatesCustomerByPhone(t *testing.T) {
	f := newFixture(monday.AddDate(0, 0, -3))

	booking, err := f.uc.ExecutePublic(context.Background(), &PublicRequest{
		StylistID:     "stylist-1",
		CustomerPhone: "+19990000000",
		CustomerName:  ptr.Ptr("Maria"),
		Slot:          Slot{Date: monday, StartTime: "11:00", EndTime: "12:00"},
	})
	require.NoError(t, err)

	assert.Equal(t, "customer-+19990000000", booking.CustomerID)
	assert.Equal(t, domain.StatusPending, booking.Status)
	assert.Equal(t, 1, f.identity.created)
	assert.Equal(t, 1, f.metrics.created[FlowPublic])

	// тот же телефон - тот же клиент
	_, err = f.uc.ExecutePublic(context.Background(), &PublicRequest{
		StylistID:     "stylist-1",
		CustomerPhone: "+19990000000",
		Slot:          Slot{Date: monday, StartTime: "12:00", EndTime: "13:00"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, f.identity.created)
}

func TestExecutePublic_RejectsBadPhone(t *testing.T) {
	f := newFixture(monday.AddDate(0, 0, -3))

	_, err := f.uc.ExecutePublic(context.Background(), &PublicRequest{
		StylistID:     "stylist-1",
		CustomerPhone: "call me",
		Slot:          Slot{Date: monday, StartTime: "11:00", EndTime: "12:00"},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, f.identity.created)
}
