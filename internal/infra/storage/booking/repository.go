package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/smartappt/booking-service/internal/domain"
	"github.com/smartappt/booking-service/pkg/dbmetrics"
	"github.com/smartappt/booking-service/pkg/psqlbuilder"
)

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция (через context.Value), использует её.
// Иначе выполняет обычный запрос без транзакции.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"business_id",
			"service_id",
			"customer_id",
			"start_at_utc",
			"end_at_utc",
			"status",
			"notes",
		).
		Values(
			booking.BusinessID,
			booking.ServiceID,
			booking.CustomerID,
			booking.StartAtUtc,
			booking.EndAtUtc,
			booking.Status,
			booking.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"business_id",
		"service_id",
		"customer_id",
		"start_at_utc",
		"end_at_utc",
		"status",
		"notes",
		"created_at",
		"updated_at",
	).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&booking.BusinessID,
		&booking.ServiceID,
		&booking.CustomerID,
		&booking.StartAtUtc,
		&booking.EndAtUtc,
		&booking.Status,
		&booking.Notes,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// GetAllWithFilter получает бронирования с гибкой фильтрацией
// Поддерживает фильтрацию по:
// - Бизнесу, услуге, клиенту - опционально
// - Статусу (Status) - опционально
// - Календарной дате начала (Date) - опционально
// - Пагинации (Skip, Take); Take=0 означает без ограничения
//
// Если запрос выполняется в транзакции и задан фильтр по дате,
// добавляется FOR UPDATE для блокировки строк на время проверки конфликтов.
func (r *Repository) GetAllWithFilter(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"business_id",
		"service_id",
		"customer_id",
		"start_at_utc",
		"end_at_utc",
		"status",
		"notes",
		"created_at",
		"updated_at",
	).
		From("bookings")

	if filter.BusinessID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"business_id": *filter.BusinessID})
	}
	if filter.ServiceID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"service_id": *filter.ServiceID})
	}
	if filter.CustomerID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"customer_id": *filter.CustomerID})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(
			squirrel.Expr("(start_at_utc AT TIME ZONE 'UTC')::date = ?::date", filter.Date.Format(domain.DateFormat)),
		)
	}

	selectBuilder = selectBuilder.OrderBy("start_at_utc ASC, id ASC")

	if filter.Skip > 0 {
		selectBuilder = selectBuilder.Offset(uint64(filter.Skip))
	}
	if filter.Take > 0 {
		selectBuilder = selectBuilder.Limit(uint64(filter.Take))
	}

	// Если используется транзакция и запрошена конкретная дата,
	// блокируем строки на время проверки конфликтов
	if dbmetrics.IsInTransaction(ctx) && filter.Date != nil {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetAllWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAllWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// CountConfirmedByServiceInRange считает подтвержденные бронирования услуги
// по календарным дням за диапазон [from, to).
// Возвращает карту "YYYY-MM-DD" -> количество; дни без бронирований отсутствуют.
// Один агрегатный запрос на весь диапазон вместо запроса на каждый день.
func (r *Repository) CountConfirmedByServiceInRange(ctx context.Context, serviceID int64, from, to time.Time) (map[string]int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"(start_at_utc AT TIME ZONE 'UTC')::date AS booking_day",
		"COUNT(*) AS total",
	).
		From("bookings").
		Where(squirrel.Eq{"service_id": serviceID, "status": domain.StatusConfirmed}).
		Where(squirrel.GtOrEq{"start_at_utc": from}).
		Where(squirrel.Lt{"start_at_utc": to}).
		GroupBy("booking_day").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CountConfirmedByServiceInRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CountConfirmedByServiceInRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var day time.Time
		var total int
		if err := rows.Scan(&day, &total); err != nil {
			return nil, fmt.Errorf("%w: CountConfirmedByServiceInRange - scan row: %v", ErrScanRow, err)
		}
		counts[day.Format(domain.DateFormat)] = total
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CountConfirmedByServiceInRange - rows error: %v", ErrScanRow, err)
	}

	return counts, nil
}

// Update обновляет время, статус и комментарий бронирования
func (r *Repository) Update(ctx context.Context, booking *domain.Booking) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("start_at_utc", booking.StartAtUtc).
		Set("end_at_utc", booking.EndAtUtc).
		Set("status", booking.Status).
		Set("notes", booking.Notes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": booking.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// Delete удаляет бронирование (физическое удаление, использовать осторожно)
// Рекомендуется отмена вместо физического удаления для сохранения истории
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var booking domain.Booking
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&booking.ID,
			&booking.BusinessID,
			&booking.ServiceID,
			&booking.CustomerID,
			&booking.StartAtUtc,
			&booking.EndAtUtc,
			&booking.Status,
			&booking.Notes,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		booking.CreatedAt = createdAt.Time
		booking.UpdatedAt = updatedAt.Time

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
