package monthly_calendar

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartappt/booking-service/internal/domain"
	businessRepo "github.com/smartappt/booking-service/internal/infra/storage/business"
	catalogRepo "github.com/smartappt/booking-service/internal/infra/storage/catalog"
	"github.com/smartappt/booking-service/pkg/types"
)

type fakeBookingRepo struct {
	counts map[string]int
	calls  int
}

func (f *fakeBookingRepo) CountConfirmedByServiceInRange(_ context.Context, _ int64, _, _ time.Time) (map[string]int, error) {
	f.calls++
	return f.counts, nil
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
	hours    []*domain.OpeningHours
	holidays []*domain.Holiday
}

func (f *fakeScheduleRepo) GetHoursByBusinessID(_ context.Context, _ int64) ([]*domain.OpeningHours, error) {
	return f.hours, nil
}

func (f *fakeScheduleRepo) GetHolidaysInRange(_ context.Context, _ int64, _, _ time.Time) ([]*domain.Holiday, error) {
	return f.holidays, nil
}

type fakeCache struct {
	data   map[string][]byte
	setErr error
	sets   int
}

func (f *fakeCache) Get(_ context.Context, key string) ([]byte, error) {
	if data, ok := f.data[key]; ok {
		return data, nil
	}
	return nil, errors.New("cache miss")
}

func (f *fakeCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	f.sets++
	if f.setErr != nil {
		return f.setErr
	}
	if f.data == nil {
		f.data = map[string][]byte{}
	}
	f.data[key] = value
	return nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time { return p.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Март 2026: тесты смотрят на месяц из середины, 15 марта
var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

type env struct {
	bookings   *fakeBookingRepo
	businesses *fakeBusinessRepo
	catalog    *fakeCatalogRepo
	schedule   *fakeScheduleRepo
	cache      *fakeCache
	uc         *UseCase
}

func newEnv(cache *fakeCache) *env {
	weekdays := make([]*domain.OpeningHours, 0, 5)
	for dow := 1; dow <= 5; dow++ {
		weekdays = append(weekdays, &domain.OpeningHours{
			BusinessID: 1, DayOfWeek: dow,
			OpenTime:  types.TimeString("09:00"),
			CloseTime: types.TimeString("17:00"),
		})
	}

	e := &env{
		bookings:   &fakeBookingRepo{},
		businesses: &fakeBusinessRepo{business: &domain.Business{ID: 1, Name: "Барбершоп"}},
		catalog: &fakeCatalogRepo{service: &domain.Service{
			ID: 10, BusinessID: 1, DurationMin: 30, IsActive: true,
		}},
		schedule: &fakeScheduleRepo{hours: weekdays},
		cache:    cache,
	}

	var c CalendarCache
	if cache != nil {
		c = cache
	}
	e.uc = NewUseCase(e.bookings, e.businesses, e.catalog, e.schedule, c, time.Minute, nopLogger{})
	e.uc.timeProvider = &fixedTimeProvider{now: testNow}
	return e
}

func validRequest() *Request {
	return &Request{BusinessID: 1, ServiceID: 10, Year: 2026, Month: 3}
}

func TestExecute_BuildsMonth(t *testing.T) {
	e := newEnv(nil)
	// 20 марта (пятница) полностью занят: 16 слотов по 30 минут
	e.bookings.counts = map[string]int{"2026-03-20": 16, "2026-03-23": 3}
	// 24 марта (вторник) - праздник
	e.schedule.holidays = []*domain.Holiday{{
		BusinessID: 1, Date: time.Date(2026, 3, 24, 0, 0, 0, 0, time.UTC),
	}}

	resp, err := e.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	require.Len(t, resp.Days, 31)

	day := func(n int) DayResponse { return resp.Days[n-1] }

	// Прошедшие дни закрыты, текущий день еще открыт
	assert.False(t, day(14).IsOpen)
	assert.False(t, day(15).IsOpen) // воскресенье, часов нет
	assert.True(t, day(16).IsOpen)  // понедельник

	// Выходные без рабочих часов закрыты
	assert.False(t, day(21).IsOpen) // суббота
	assert.False(t, day(22).IsOpen) // воскресенье

	// Праздник закрыт, несмотря на рабочий день недели
	assert.False(t, day(24).IsOpen)

	// Полностью занятый день открыт, но без свободных слотов
	assert.True(t, day(20).IsOpen)
	assert.False(t, day(20).HasFreeSlots)

	// Частично занятый день свободен
	assert.True(t, day(23).IsOpen)
	assert.True(t, day(23).HasFreeSlots)
}

// Попадание в кеш возвращает сохраненный ответ без построения месяца.
// Проверки бизнеса и услуги при этом выполняются всегда, до обращения к кешу.
func TestExecute_CacheHitSkipsMonthBuild(t *testing.T) {
	cached := &Response{ServiceID: 10, Year: 2026, Month: 3, Days: []DayResponse{{Day: 1}}}
	data, err := json.Marshal(cached)
	require.NoError(t, err)

	e := newEnv(&fakeCache{data: map[string][]byte{"calendar:10:2026-03": data}})

	resp, err := e.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, cached, resp)
	assert.Zero(t, e.bookings.calls)
}

// Закешированный календарь не отдается чужому бизнесу
func TestExecute_CacheHitDoesNotBypassOwnershipChecks(t *testing.T) {
	cached := &Response{ServiceID: 10, Year: 2026, Month: 3, Days: []DayResponse{{Day: 1}}}
	data, err := json.Marshal(cached)
	require.NoError(t, err)

	e := newEnv(&fakeCache{data: map[string][]byte{"calendar:10:2026-03": data}})
	e.catalog.service.BusinessID = 2

	_, err = e.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrValidation)
}

func TestExecute_StoresResponseInCache(t *testing.T) {
	e := newEnv(&fakeCache{})

	_, err := e.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, 1, e.cache.sets)
	assert.Contains(t, e.cache.data, "calendar:10:2026-03")
}

// Отказ кеша при записи не ломает ответ
func TestExecute_CacheSetFailureIsIgnored(t *testing.T) {
	e := newEnv(&fakeCache{setErr: errors.New("redis down")})

	resp, err := e.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Len(t, resp.Days, 31)
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
			name:    "month out of range",
			mutate:  func(_ *env, req *Request) { req.Month = 13 },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "non-positive year",
			mutate:  func(_ *env, req *Request) { req.Year = 0 },
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
			wantErr: ErrServiceInactive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEnv(nil)
			req := validRequest()
			tt.mutate(e, req)

			_, err := e.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
