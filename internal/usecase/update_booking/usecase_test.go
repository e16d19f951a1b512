package update_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartappt/booking-service/internal/domain"
	bookingRepo "github.com/smartappt/booking-service/internal/infra/storage/booking"
	catalogRepo "github.com/smartappt/booking-service/internal/infra/storage/catalog"
	scheduleRepo "github.com/smartappt/booking-service/internal/infra/storage/schedule"
	"github.com/smartappt/booking-service/pkg/ptr"
	"github.com/smartappt/booking-service/pkg/types"
)

type fakeBookingRepo struct {
	booking   *domain.Booking
	confirmed []*domain.Booking
	updated   *domain.Booking
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	if f.booking == nil || f.booking.ID != id {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return f.booking, nil
}

func (f *fakeBookingRepo) GetAllWithFilter(_ context.Context, _ domain.BookingFilter) ([]*domain.Booking, error) {
	return f.confirmed, nil
}

func (f *fakeBookingRepo) Update(_ context.Context, booking *domain.Booking) error {
	saved := *booking
	f.updated = &saved
	return nil
}

type fakeCatalogRepo struct {
	service *domain.Service
}

func (f *fakeCatalogRepo) GetByID(_ context.Context, id int64) (*domain.Service, error) {
	if f.service == nil || f.service.ID != id {
		return nil, catalogRepo.ErrServiceNotFound
	}
	return f.service, nil
}

type fakeScheduleRepo struct {
	holiday *domain.Holiday
	hours   *domain.OpeningHours
}

func (f *fakeScheduleRepo) GetHoursByWeekday(_ context.Context, _ int64, _ int) (*domain.OpeningHours, error) {
	if f.hours == nil {
		return nil, scheduleRepo.ErrHoursNotFound
	}
	return f.hours, nil
}

func (f *fakeScheduleRepo) GetHolidayByDate(_ context.Context, _ int64, _ time.Time) (*domain.Holiday, error) {
	if f.holiday == nil {
		return nil, scheduleRepo.ErrHolidayNotFound
	}
	return f.holiday, nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time { return p.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var (
	testNow  = time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	oldStart = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	newStart = time.Date(2026, 3, 2, 14, 0, 0, 0, time.UTC)
)

type env struct {
	bookings *fakeBookingRepo
	catalog  *fakeCatalogRepo
	schedule *fakeScheduleRepo
	uc       *UseCase
}

func newEnv() *env {
	e := &env{
		bookings: &fakeBookingRepo{booking: &domain.Booking{
			ID:         5,
			BusinessID: 1,
			ServiceID:  10,
			CustomerID: 100,
			StartAtUtc: oldStart,
			EndAtUtc:   oldStart.Add(30 * time.Minute),
			Status:     domain.StatusPending,
		}},
		catalog: &fakeCatalogRepo{service: &domain.Service{
			ID: 10, BusinessID: 1, DurationMin: 30, IsActive: true,
		}},
		schedule: &fakeScheduleRepo{hours: &domain.OpeningHours{
			BusinessID: 1, DayOfWeek: 1,
			OpenTime:  types.TimeString("09:00"),
			CloseTime: types.TimeString("17:00"),
		}},
	}

	e.uc = NewUseCase(e.bookings, e.catalog, e.schedule, &fakeTxManager{}, nopLogger{})
	e.uc.timeProvider = &fixedTimeProvider{now: testNow}
	return e
}

func TestExecute_MovesBooking(t *testing.T) {
	e := newEnv()

	resp, err := e.uc.Execute(context.Background(), &Request{
		BookingID:  5,
		CustomerID: 100,
		StartAt:    newStart,
		Notes:      ptr.Ptr("перенос по просьбе клиента"),
	})
	require.NoError(t, err)

	assert.Equal(t, newStart, resp.StartAtUtc)
	assert.Equal(t, newStart.Add(30*time.Minute), resp.EndAtUtc)
	require.NotNil(t, e.bookings.updated)
	require.NotNil(t, e.bookings.updated.Notes)
	assert.Equal(t, "перенос по просьбе клиента", *e.bookings.updated.Notes)
}

func TestExecute_OwnershipIsChecked(t *testing.T) {
	e := newEnv()

	_, err := e.uc.Execute(context.Background(), &Request{
		BookingID:  5,
		CustomerID: 999,
		StartAt:    newStart,
	})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Nil(t, e.bookings.updated)
}

// Время вне рабочего окна при переносе трактуется как отсутствие
// рабочих часов, а не как ошибка валидации
func TestExecute_OutsideWindowReportsNoWorkingHours(t *testing.T) {
	e := newEnv()

	_, err := e.uc.Execute(context.Background(), &Request{
		BookingID:  5,
		CustomerID: 100,
		StartAt:    time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrNoWorkingHours)
}

// Собственное подтвержденное бронирование не блокирует перенос
// на то же время
func TestExecute_OwnBookingIsExcludedFromConflictScan(t *testing.T) {
	e := newEnv()
	e.bookings.booking.Status = domain.StatusConfirmed
	e.bookings.confirmed = []*domain.Booking{{
		ID: 5, ServiceID: 10, Status: domain.StatusConfirmed, StartAtUtc: newStart,
	}}

	_, err := e.uc.Execute(context.Background(), &Request{
		BookingID:  5,
		CustomerID: 100,
		StartAt:    newStart,
	})
	require.NoError(t, err)
	assert.NotNil(t, e.bookings.updated)
}

func TestExecute_ForeignConfirmedBookingBlocksSlot(t *testing.T) {
	e := newEnv()
	e.bookings.confirmed = []*domain.Booking{{
		ID: 77, ServiceID: 10, Status: domain.StatusConfirmed, StartAtUtc: newStart,
	}}

	_, err := e.uc.Execute(context.Background(), &Request{
		BookingID:  5,
		CustomerID: 100,
		StartAt:    newStart,
	})
	assert.ErrorIs(t, err, ErrAlreadyExists)
	assert.Nil(t, e.bookings.updated)
}

func TestExecute_PipelineErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(e *env, req *Request)
		wantErr error
	}{
		{
			name:    "unknown booking",
			mutate:  func(_ *env, req *Request) { req.BookingID = 42 },
			wantErr: ErrBookingNotFound,
		},
		{
			name:    "start in the past",
			mutate:  func(_ *env, req *Request) { req.StartAt = testNow.Add(-time.Minute) },
			wantErr: ErrValidation,
		},
		{
			name:    "inactive service",
			mutate:  func(e *env, _ *Request) { e.catalog.service.IsActive = false },
			wantErr: ErrServiceInactive,
		},
		{
			name: "holiday",
			mutate: func(e *env, _ *Request) {
				e.schedule.holiday = &domain.Holiday{BusinessID: 1, Date: newStart}
			},
			wantErr: ErrHoliday,
		},
		{
			name:    "no working hours",
			mutate:  func(e *env, _ *Request) { e.schedule.hours = nil },
			wantErr: ErrNoWorkingHours,
		},
		{
			name: "misaligned start",
			mutate: func(_ *env, req *Request) {
				req.StartAt = time.Date(2026, 3, 2, 14, 10, 0, 0, time.UTC)
			},
			wantErr: ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEnv()
			req := &Request{BookingID: 5, CustomerID: 100, StartAt: newStart}
			tt.mutate(e, req)

			_, err := e.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, e.bookings.updated)
		})
	}
}
