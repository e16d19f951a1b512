package daily_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartappt/booking-service/internal/domain"
	businessRepo "github.com/smartappt/booking-service/internal/infra/storage/business"
	catalogRepo "github.com/smartappt/booking-service/internal/infra/storage/catalog"
	scheduleRepo "github.com/smartappt/booking-service/internal/infra/storage/schedule"
	"github.com/smartappt/booking-service/pkg/types"
)

type fakeBookingRepo struct {
	confirmed []*domain.Booking
}

func (f *fakeBookingRepo) GetAllWithFilter(_ context.Context, _ domain.BookingFilter) ([]*domain.Booking, error) {
	return f.confirmed, nil
}

type fakeBusinessRepo struct {
	business *domain.Business
}

func (f *fakeBusinessRepo) GetByID(_ context.Context, id int64) (*domain.Business, error) {
	if f.business == nil || f.business.ID != id {
		return nil, businessRepo.ErrBusinessNotFound
	}
	return f.business, nil
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

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testDate = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC) // понедельник

type env struct {
	bookings   *fakeBookingRepo
	businesses *fakeBusinessRepo
	catalog    *fakeCatalogRepo
	schedule   *fakeScheduleRepo
	uc         *UseCase
}

func newEnv() *env {
	e := &env{
		bookings:   &fakeBookingRepo{},
		businesses: &fakeBusinessRepo{business: &domain.Business{ID: 1, Name: "Барбершоп"}},
		catalog: &fakeCatalogRepo{service: &domain.Service{
			ID: 10, BusinessID: 1, DurationMin: 30, IsActive: true,
		}},
		schedule: &fakeScheduleRepo{hours: &domain.OpeningHours{
			BusinessID: 1, DayOfWeek: 1,
			OpenTime:  types.TimeString("09:00"),
			CloseTime: types.TimeString("11:00"),
		}},
	}

	e.uc = NewUseCase(e.bookings, e.businesses, e.catalog, e.schedule, nopLogger{})
	return e
}

func validRequest() *Request {
	return &Request{BusinessID: 1, ServiceID: 10, Date: testDate}
}

func TestExecute_FullGridWhenNothingIsBooked(t *testing.T) {
	e := newEnv()

	resp, err := e.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.False(t, resp.Busy)
	assert.Equal(t, []types.TimeString{"09:00", "09:30", "10:00", "10:30"}, resp.Slots)
}

// Подтвержденное бронирование убирает свой слот из сетки,
// порядок остальных сохраняется
func TestExecute_ConfirmedBookingRemovesSlot(t *testing.T) {
	e := newEnv()
	e.bookings.confirmed = []*domain.Booking{{
		ID: 7, ServiceID: 10, Status: domain.StatusConfirmed,
		StartAtUtc: time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC),
	}}

	resp, err := e.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.False(t, resp.Busy)
	assert.Equal(t, []types.TimeString{"09:00", "10:00", "10:30"}, resp.Slots)
}

// Праздник - не ошибка: день помечается занятым с пустым списком
func TestExecute_HolidayMarksDayBusy(t *testing.T) {
	e := newEnv()
	e.schedule.holiday = &domain.Holiday{BusinessID: 1, Date: testDate}

	resp, err := e.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.True(t, resp.Busy)
	assert.Empty(t, resp.Slots)
}

func TestExecute_NoWorkingHoursMarksDayBusy(t *testing.T) {
	e := newEnv()
	e.schedule.hours = nil

	resp, err := e.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.True(t, resp.Busy)
	assert.Empty(t, resp.Slots)
}

func TestExecute_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(e *env, req *Request)
		wantErr error
	}{
		{
			name:    "non-positive business id",
			mutate:  func(_ *env, req *Request) { req.BusinessID = 0 },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "non-positive service id",
			mutate:  func(_ *env, req *Request) { req.ServiceID = 0 },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "zero date",
			mutate:  func(_ *env, req *Request) { req.Date = time.Time{} },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "unknown business",
			mutate:  func(e *env, _ *Request) { e.businesses.business = nil },
			wantErr: ErrBusinessNotFound,
		},
		{
			name:    "unknown service",
			mutate:  func(e *env, _ *Request) { e.catalog.service = nil },
			wantErr: ErrServiceNotFound,
		},
		{
			name:    "service of another business",
			mutate:  func(e *env, _ *Request) { e.catalog.service.BusinessID = 2 },
			wantErr: ErrValidation,
		},
		{
			name:    "inactive service",
			mutate:  func(e *env, _ *Request) { e.catalog.service.IsActive = false },
			wantErr: ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEnv()
			req := validRequest()
			tt.mutate(e, req)

			_, err := e.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
