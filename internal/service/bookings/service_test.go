package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartappt/booking-service/internal/domain"
	bookingRepo "github.com/smartappt/booking-service/internal/infra/storage/booking"
	"github.com/smartappt/booking-service/internal/service/bookings/models"
	"github.com/smartappt/booking-service/pkg/ptr"
)

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking
	list     []*domain.Booking

	lastFilter    *domain.BookingFilter
	statusUpdates []domain.BookingStatus
	deleted       []int64
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeBookingRepo) GetAllWithFilter(_ context.Context, filter domain.BookingFilter) ([]*domain.Booking, error) {
	f.lastFilter = &filter
	return f.list, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	b, ok := f.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = status
	f.statusUpdates = append(f.statusUpdates, status)
	return nil
}

func (f *fakeBookingRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.bookings[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	delete(f.bookings, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeCustomerRepo struct {
	customers map[int64]*domain.Customer
	lastIDs   []int64
}

func (f *fakeCustomerRepo) GetByIDs(_ context.Context, ids []int64) (map[int64]*domain.Customer, error) {
	f.lastIDs = ids
	return f.customers, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newService(repo *fakeBookingRepo, customers *fakeCustomerRepo) *Service {
	if customers == nil {
		customers = &fakeCustomerRepo{}
	}
	return NewService(repo, customers, nopLogger{})
}

func seedBooking(status domain.BookingStatus) *fakeBookingRepo {
	return &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		5: {ID: 5, BusinessID: 1, ServiceID: 10, CustomerID: 100, Status: status},
	}}
}

func TestGetByID_OwnershipIsEnforced(t *testing.T) {
	repo := seedBooking(domain.StatusPending)
	svc := newService(repo, nil)

	resp, err := svc.GetByID(context.Background(), 5, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(5), resp.ID)

	_, err = svc.GetByID(context.Background(), 5, 999)
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.GetByID(context.Background(), 42, 100)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

// Граница страницы истории клиента отклоняется включительно:
// skip=99/take=99 - последние допустимые значения
func TestGetMyBookings_PageBounds(t *testing.T) {
	tests := []struct {
		name    string
		skip    int
		take    int
		wantErr bool
	}{
		{name: "last valid page", skip: 99, take: 99},
		{name: "skip at the limit is rejected", skip: 100, take: 10, wantErr: true},
		{name: "take at the limit is rejected", skip: 0, take: 100, wantErr: true},
		{name: "negative skip", skip: -1, take: 10, wantErr: true},
		{name: "zero take", skip: 0, take: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newService(&fakeBookingRepo{}, nil)

			_, err := svc.GetMyBookings(context.Background(), &models.GetMyBookingsRequest{
				CustomerID: 100, Skip: tt.skip, Take: tt.take,
			})
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetMyBookings_StatusFilter(t *testing.T) {
	repo := &fakeBookingRepo{list: []*domain.Booking{
		{ID: 1, CustomerID: 100, Status: domain.StatusConfirmed},
	}}
	svc := newService(repo, nil)

	resp, err := svc.GetMyBookings(context.Background(), &models.GetMyBookingsRequest{
		CustomerID: 100, Status: ptr.Ptr("confirmed"), Take: 20,
	})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)

	require.NotNil(t, repo.lastFilter.Status)
	assert.Equal(t, domain.StatusConfirmed, *repo.lastFilter.Status)

	_, err = svc.GetMyBookings(context.Background(), &models.GetMyBookingsRequest{
		CustomerID: 100, Status: ptr.Ptr("unknown"), Take: 20,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

// Верхняя граница take для списка бизнеса включена: 1000 допустим, 1001 - нет
func TestGetBusinessBookings_PageBounds(t *testing.T) {
	svc := newService(&fakeBookingRepo{}, nil)

	_, err := svc.GetBusinessBookings(context.Background(), &models.GetBusinessBookingsRequest{
		BusinessID: 1, Take: 1000,
	})
	assert.NoError(t, err)

	_, err = svc.GetBusinessBookings(context.Background(), &models.GetBusinessBookingsRequest{
		BusinessID: 1, Take: 1001,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.GetBusinessBookings(context.Background(), &models.GetBusinessBookingsRequest{
		BusinessID: 1, Skip: 1000, Take: 10,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetDailyBookings_JoinsCustomers(t *testing.T) {
	phone := "+79990000000"
	repo := &fakeBookingRepo{list: []*domain.Booking{
		{ID: 1, BusinessID: 1, CustomerID: 100, Status: domain.StatusConfirmed},
		{ID: 2, BusinessID: 1, CustomerID: 200, Status: domain.StatusPending},
		{ID: 3, BusinessID: 1, CustomerID: 100, Status: domain.StatusPending},
	}}
	customers := &fakeCustomerRepo{customers: map[int64]*domain.Customer{
		100: {ID: 100, FullName: "Иван", Phone: &phone},
		200: {ID: 200, FullName: "Мария"},
	}}
	svc := newService(repo, customers)

	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	resp, err := svc.GetDailyBookings(context.Background(), &models.GetDailyBookingsRequest{
		BusinessID: 1, Date: date, Take: 100,
	})
	require.NoError(t, err)

	assert.Equal(t, "2026-03-02", resp.Date)
	require.Len(t, resp.Bookings, 3)

	// Карточки загружаются одним запросом без дублей
	assert.Equal(t, []int64{100, 200}, customers.lastIDs)

	require.NotNil(t, resp.Bookings[0].Customer)
	assert.Equal(t, "Иван", resp.Bookings[0].Customer.FullName)
	assert.Equal(t, "Мария", resp.Bookings[1].Customer.FullName)
}

func TestGetDailyBookings_TakeBound(t *testing.T) {
	svc := newService(&fakeBookingRepo{}, nil)

	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	_, err := svc.GetDailyBookings(context.Background(), &models.GetDailyBookingsRequest{
		BusinessID: 1, Date: date, Take: 501,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

// Решение по заявке может принять только бизнес-владелец:
// чужой бизнес получает ошибку валидации, статус не меняется
func TestDecide_ForeignBusinessIsRejected(t *testing.T) {
	repo := seedBooking(domain.StatusPending)
	svc := newService(repo, nil)

	err := svc.Decide(context.Background(), 2, 5, models.ActionConfirm)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, domain.StatusPending, repo.bookings[5].Status)
	assert.Empty(t, repo.statusUpdates)

	err = svc.Decide(context.Background(), 2, 5, models.ActionCancel)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, domain.StatusPending, repo.bookings[5].Status)
}

func TestDecide_NonPositiveBusinessID(t *testing.T) {
	repo := seedBooking(domain.StatusPending)
	svc := newService(repo, nil)

	err := svc.Decide(context.Background(), 0, 5, models.ActionConfirm)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDecide_Confirm(t *testing.T) {
	repo := seedBooking(domain.StatusPending)
	svc := newService(repo, nil)

	err := svc.Decide(context.Background(), 1, 5, models.ActionConfirm)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, repo.bookings[5].Status)
}

// Подтверждение уже подтвержденной заявки - успешный no-op
func TestDecide_ConfirmOnConfirmedIsNoop(t *testing.T) {
	repo := seedBooking(domain.StatusConfirmed)
	svc := newService(repo, nil)

	err := svc.Decide(context.Background(), 1, 5, models.ActionConfirm)
	require.NoError(t, err)
	assert.Empty(t, repo.statusUpdates)
}

// Отмененную заявку подтвердить нельзя
func TestDecide_ConfirmOnCancelledFails(t *testing.T) {
	repo := seedBooking(domain.StatusCancelled)
	svc := newService(repo, nil)

	err := svc.Decide(context.Background(), 1, 5, models.ActionConfirm)
	assert.ErrorIs(t, err, ErrAlreadyCanceled)
}

// Отмена идемпотентна: повторная отмена отвечает успехом без записи
func TestDecide_CancelIsIdempotent(t *testing.T) {
	repo := seedBooking(domain.StatusConfirmed)
	svc := newService(repo, nil)

	require.NoError(t, svc.Decide(context.Background(), 1, 5, models.ActionCancel))
	require.NoError(t, svc.Decide(context.Background(), 1, 5, models.ActionCancel))

	assert.Equal(t, domain.StatusCancelled, repo.bookings[5].Status)
	assert.Len(t, repo.statusUpdates, 1)
}

func TestDecide_UnknownBooking(t *testing.T) {
	svc := newService(&fakeBookingRepo{bookings: map[int64]*domain.Booking{}}, nil)

	err := svc.Decide(context.Background(), 1, 42, models.ActionConfirm)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancel(t *testing.T) {
	repo := seedBooking(domain.StatusPending)
	svc := newService(repo, nil)

	// Чужое бронирование отменить нельзя
	err := svc.Cancel(context.Background(), 5, 999)
	assert.ErrorIs(t, err, ErrAccessDenied)

	require.NoError(t, svc.Cancel(context.Background(), 5, 100))
	assert.Equal(t, domain.StatusCancelled, repo.bookings[5].Status)

	// Повторная отмена - успех без записи
	require.NoError(t, svc.Cancel(context.Background(), 5, 100))
	assert.Len(t, repo.statusUpdates, 1)
}

func TestDelete(t *testing.T) {
	repo := seedBooking(domain.StatusCancelled)
	svc := newService(repo, nil)

	err := svc.Delete(context.Background(), 5, 999)
	assert.ErrorIs(t, err, ErrAccessDenied)

	require.NoError(t, svc.Delete(context.Background(), 5, 100))
	assert.Equal(t, []int64{5}, repo.deleted)

	err = svc.Delete(context.Background(), 5, 100)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
