package customer

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/smartappt/booking-service/internal/domain"
	"github.com/smartappt/booking-service/pkg/dbmetrics"
	"github.com/smartappt/booking-service/pkg/psqlbuilder"
)

// Repository репозиторий для работы с клиентами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория клиентов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает нового клиента
func (r *Repository) Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("customers").
		Columns(
			"full_name",
			"email",
			"phone",
		).
		Values(
			customer.FullName,
			customer.Email,
			customer.Phone,
		).
		Suffix("RETURNING id, created_at_utc").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&customer.ID,
		&createdAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	customer.CreatedAtUtc = createdAt.Time

	return customer, nil
}

// GetByID получает клиента по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"full_name",
		"email",
		"phone",
		"created_at_utc",
	).
		From("customers").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var customer domain.Customer
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&customer.ID,
		&customer.FullName,
		&customer.Email,
		&customer.Phone,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan customer: %v", ErrScanRow, err)
	}

	customer.CreatedAtUtc = createdAt.Time

	return &customer, nil
}

// GetByIDs получает клиентов по списку ID одним запросом
func (r *Repository) GetByIDs(ctx context.Context, ids []int64) (map[int64]*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	result := make(map[int64]*domain.Customer, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	query, args, err := psqlbuilder.Select(
		"id",
		"full_name",
		"email",
		"phone",
		"created_at_utc",
	).
		From("customers").
		Where(squirrel.Eq{"id": ids}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var customer domain.Customer
		var createdAt sql.NullTime

		if err := rows.Scan(
			&customer.ID,
			&customer.FullName,
			&customer.Email,
			&customer.Phone,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("%w: GetByIDs - scan row: %v", ErrScanRow, err)
		}

		customer.CreatedAtUtc = createdAt.Time
		result[customer.ID] = &customer
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}
