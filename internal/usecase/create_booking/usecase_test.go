package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartappt/booking-service/internal/domain"
	businessRepo "github.com/smartappt/booking-service/internal/infra/storage/business"
	catalogRepo "github.com/smartappt/booking-service/internal/infra/storage/catalog"
	customerRepo "github.com/smartappt/booking-service/internal/infra/storage/customer"
	scheduleRepo "github.com/smartappt/booking-service/internal/infra/storage/schedule"
	"github.com/smartappt/booking-service/pkg/types"
)

// Фейки репозиториев

type fakeBookingRepo struct {
	duplicates []*domain.Booking // ответ на скан по клиенту
	confirmed  []*domain.Booking // ответ на скан занятости слота
	created    []*domain.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	saved := *booking
	saved.ID = int64(len(f.created) + 1)
	saved.CreatedAt = time.Now().UTC()
	saved.UpdatedAt = saved.CreatedAt
	f.created = append(f.created, &saved)
	return &saved, nil
}

func (f *fakeBookingRepo) GetAllWithFilter(_ context.Context, filter domain.BookingFilter) ([]*domain.Booking, error) {
	if filter.CustomerID != nil {
		return f.duplicates, nil
	}
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

type fakeCustomerRepo struct {
	customer *domain.Customer
}

func (f *fakeCustomerRepo) GetByID(_ context.Context, id int64) (*domain.Customer, error) {
	if f.customer == nil || f.customer.ID != id {
		return nil, customerRepo.ErrCustomerNotFound
	}
	return f.customer, nil
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

// Окружение теста: бизнес 1 с услугой 10 (30 минут, активна),
// клиент 100, рабочее окно 09:00-17:00 каждый день.
type env struct {
	bookings   *fakeBookingRepo
	businesses *fakeBusinessRepo
	catalog    *fakeCatalogRepo
	customers  *fakeCustomerRepo
	schedule   *fakeScheduleRepo
	uc         *UseCase
}

func newEnv(now time.Time) *env {
	e := &env{
		bookings: &fakeBookingRepo{},
		businesses: &fakeBusinessRepo{business: &domain.Business{
			ID: 1, Name: "Барбершоп", TimeZone: "UTC",
		}},
		catalog: &fakeCatalogRepo{service: &domain.Service{
			ID: 10, BusinessID: 1, Name: "Стрижка", DurationMin: 30, IsActive: true,
		}},
		customers: &fakeCustomerRepo{customer: &domain.Customer{ID: 100, FullName: "Иван"}},
		schedule: &fakeScheduleRepo{hours: &domain.OpeningHours{
			BusinessID: 1, DayOfWeek: 1,
			OpenTime:  types.TimeString("09:00"),
			CloseTime: types.TimeString("17:00"),
		}},
	}

	e.uc = NewUseCase(e.bookings, e.businesses, e.catalog, e.customers, e.schedule, &fakeTxManager{}, nopLogger{})
	e.uc.timeProvider = &fixedTimeProvider{now: now}
	return e
}

func validRequest(startAt time.Time) *Request {
	return &Request{
		BusinessID: 1,
		ServiceID:  10,
		CustomerID: 100,
		StartAt:    startAt,
		Status:     domain.StatusPending,
	}
}

var (
	testNow   = time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)  // понедельник 08:00
	slotStart = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC) // слот 10:00
)

func TestExecute_Success(t *testing.T) {
	e := newEnv(testNow)

	resp, err := e.uc.Execute(context.Background(), validRequest(slotStart))
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, slotStart, resp.StartAtUtc)
	assert.Equal(t, slotStart.Add(30*time.Minute), resp.EndAtUtc)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	require.Len(t, e.bookings.created, 1)
}

// Статус из запроса сохраняется как есть: подтвержденная заявка
// персонала не понижается до pending
func TestExecute_KeepsRequestedStatus(t *testing.T) {
	e := newEnv(testNow)

	req := validRequest(slotStart)
	req.Status = domain.StatusConfirmed

	resp, err := e.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
}

// Дробные секунды отбрасываются до начала проверок
func TestExecute_TruncatesSubSecondPrecision(t *testing.T) {
	e := newEnv(testNow)

	req := validRequest(slotStart.Add(123 * time.Nanosecond))

	resp, err := e.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, slotStart, resp.StartAtUtc)
}

// Проверка "в будущем" идет по исходному времени до отбрасывания
// дробных секунд: заявка внутри текущей секунды проходит
func TestExecute_FutureCheckPrecedesTruncation(t *testing.T) {
	e := newEnv(slotStart.Add(500 * time.Millisecond))

	resp, err := e.uc.Execute(context.Background(), validRequest(slotStart.Add(900*time.Millisecond)))
	require.NoError(t, err)
	assert.Equal(t, slotStart, resp.StartAtUtc)
}

func TestExecute_ValidationOrder(t *testing.T) {
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
			name:    "start in the past",
			mutate:  func(_ *env, req *Request) { req.StartAt = testNow.Add(-time.Hour) },
			wantErr: ErrValidation,
		},
		{
			name:    "unknown customer",
			mutate:  func(e *env, _ *Request) { e.customers.customer = nil },
			wantErr: ErrCustomerNotFound,
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
			wantErr: ErrServiceInactive,
		},
		{
			name: "holiday closes the business",
			mutate: func(e *env, _ *Request) {
				e.schedule.holiday = &domain.Holiday{BusinessID: 1, Date: slotStart}
			},
			wantErr: ErrHoliday,
		},
		{
			name:    "no working hours for the weekday",
			mutate:  func(e *env, _ *Request) { e.schedule.hours = nil },
			wantErr: ErrNoWorkingHours,
		},
		{
			name: "slot outside working window",
			mutate: func(_ *env, req *Request) {
				req.StartAt = time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC)
			},
			wantErr: ErrValidation,
		},
		{
			name: "slot misaligned to the grid",
			mutate: func(_ *env, req *Request) {
				req.StartAt = time.Date(2026, 3, 2, 9, 15, 0, 0, time.UTC)
			},
			wantErr: ErrValidation,
		},
		{
			name: "duplicate booking for the same day",
			mutate: func(e *env, _ *Request) {
				e.bookings.duplicates = []*domain.Booking{{ID: 7, Status: domain.StatusCancelled}}
			},
			wantErr: ErrAlreadyExists,
		},
		{
			name: "slot taken by a confirmed booking",
			mutate: func(e *env, _ *Request) {
				e.bookings.confirmed = []*domain.Booking{{
					ID: 8, CustomerID: 200, Status: domain.StatusConfirmed, StartAtUtc: slotStart,
				}}
			},
			wantErr: ErrAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEnv(testNow)
			req := validRequest(slotStart)
			tt.mutate(e, req)

			_, err := e.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, e.bookings.created)
		})
	}
}

// Дубликат по клиенту блокируется независимо от статуса найденного
// бронирования: отмененное тоже считается
func TestExecute_CancelledBookingStillBlocksDuplicate(t *testing.T) {
	e := newEnv(testNow)
	e.bookings.duplicates = []*domain.Booking{{ID: 7, Status: domain.StatusCancelled}}

	_, err := e.uc.Execute(context.Background(), validRequest(slotStart))
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

// Проверка занятости слота - это чтение-потом-запись: две заявки,
// читающие состояние до вставки друг друга, обе проходят проверку
// и обе сохраняются. Фиксируем это окно гонки как текущее поведение.
func TestExecute_ReadThenWriteConflictWindow(t *testing.T) {
	e := newEnv(testNow)

	first := validRequest(slotStart)
	first.Status = domain.StatusConfirmed

	second := validRequest(slotStart)
	second.CustomerID = 100
	second.Status = domain.StatusConfirmed

	// Фейковый репозиторий не отражает первую вставку в сканах,
	// моделируя одновременное чтение обеими транзакциями
	_, err := e.uc.Execute(context.Background(), first)
	require.NoError(t, err)

	_, err = e.uc.Execute(context.Background(), second)
	require.NoError(t, err)

	require.Len(t, e.bookings.created, 2)
	assert.Equal(t, e.bookings.created[0].StartAtUtc, e.bookings.created[1].StartAtUtc)
}
