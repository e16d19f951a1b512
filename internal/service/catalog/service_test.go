package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartappt/booking-service/internal/domain"
	businessRepo "github.com/smartappt/booking-service/internal/infra/storage/business"
	catalogRepo "github.com/smartappt/booking-service/internal/infra/storage/catalog"
	"github.com/smartappt/booking-service/internal/service/catalog/models"
)

type fakeCatalogRepo struct {
	services    map[int64]*domain.Service
	list        []*domain.Service
	nextID      int64
	deactivated []int64
	deleted     []int64
}

func (f *fakeCatalogRepo) Create(_ context.Context, service *domain.Service) (*domain.Service, error) {
	f.nextID++
	saved := *service
	saved.ID = f.nextID
	if f.services == nil {
		f.services = map[int64]*domain.Service{}
	}
	f.services[saved.ID] = &saved
	return &saved, nil
}

func (f *fakeCatalogRepo) GetByID(_ context.Context, id int64) (*domain.Service, error) {
	s, ok := f.services[id]
	if !ok {
		return nil, catalogRepo.ErrServiceNotFound
	}
	return s, nil
}

func (f *fakeCatalogRepo) ListByBusiness(_ context.Context, _ int64, _, _ int) ([]*domain.Service, error) {
	return f.list, nil
}

func (f *fakeCatalogRepo) Deactivate(_ context.Context, id int64) error {
	s, ok := f.services[id]
	if !ok {
		return catalogRepo.ErrServiceNotFound
	}
	s.IsActive = false
	f.deactivated = append(f.deactivated, id)
	return nil
}

func (f *fakeCatalogRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.services[id]; !ok {
		return catalogRepo.ErrServiceNotFound
	}
	delete(f.services, id)
	f.deleted = append(f.deleted, id)
	return nil
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

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newService(repo *fakeCatalogRepo) *Service {
	return NewService(repo, &fakeBusinessRepo{business: &domain.Business{ID: 1, Name: "Барбершоп"}}, nopLogger{})
}

func TestAddService(t *testing.T) {
	repo := &fakeCatalogRepo{}
	svc := newService(repo)

	resp, err := svc.AddService(context.Background(), 1, &models.AddServiceRequest{
		Name:        "  Стрижка  ",
		DurationMin: 30,
		Price:       1500,
	})
	require.NoError(t, err)

	// Имя обрезается, новая услуга активна
	assert.Equal(t, "Стрижка", resp.Name)
	assert.True(t, resp.IsActive)
	assert.Equal(t, int64(1), resp.BusinessID)
}

func TestAddService_Validation(t *testing.T) {
	tests := []struct {
		name       string
		businessID int64
		req        models.AddServiceRequest
		wantErr    error
	}{
		{
			name:       "blank name",
			businessID: 1,
			req:        models.AddServiceRequest{Name: "   ", DurationMin: 30},
			wantErr:    ErrInvalidInput,
		},
		{
			name:       "duration below minimum",
			businessID: 1,
			req:        models.AddServiceRequest{Name: "Стрижка", DurationMin: domain.MinServiceDurationMin - 1},
			wantErr:    ErrInvalidInput,
		},
		{
			name:       "negative price",
			businessID: 1,
			req:        models.AddServiceRequest{Name: "Стрижка", DurationMin: 30, Price: -1},
			wantErr:    ErrInvalidInput,
		},
		{
			name:       "unknown business",
			businessID: 42,
			req:        models.AddServiceRequest{Name: "Стрижка", DurationMin: 30},
			wantErr:    ErrBusinessNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeCatalogRepo{}
			svc := newService(repo)

			_, err := svc.AddService(context.Background(), tt.businessID, &tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, repo.services)
		})
	}
}

func TestGetByID(t *testing.T) {
	repo := &fakeCatalogRepo{services: map[int64]*domain.Service{
		10: {ID: 10, BusinessID: 1, Name: "Стрижка", DurationMin: 30, IsActive: true},
	}}
	svc := newService(repo)

	resp, err := svc.GetByID(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, "Стрижка", resp.Name)

	_, err = svc.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

// Граница страницы каталога отклоняется включительно:
// skip=99/take=99 - последние допустимые значения
func TestList_PageBounds(t *testing.T) {
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
			svc := newService(&fakeCatalogRepo{})

			_, err := svc.List(context.Background(), &models.ListServicesRequest{
				BusinessID: 1, Skip: tt.skip, Take: tt.take,
			})
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDeactivate(t *testing.T) {
	repo := &fakeCatalogRepo{services: map[int64]*domain.Service{
		10: {ID: 10, BusinessID: 1, IsActive: true},
	}}
	svc := newService(repo)

	require.NoError(t, svc.Deactivate(context.Background(), 10))
	assert.False(t, repo.services[10].IsActive)

	err := svc.Deactivate(context.Background(), 42)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestDelete(t *testing.T) {
	repo := &fakeCatalogRepo{services: map[int64]*domain.Service{
		10: {ID: 10, BusinessID: 1},
	}}
	svc := newService(repo)

	require.NoError(t, svc.Delete(context.Background(), 10))
	assert.Equal(t, []int64{10}, repo.deleted)

	err := svc.Delete(context.Background(), 10)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}
