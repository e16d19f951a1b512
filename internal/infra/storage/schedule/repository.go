package schedule

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

// Repository репозиторий для работы с расписанием бизнеса:
// рабочие часы по дням недели и праздничные дни
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetHoursByBusinessID получает все рабочие часы бизнеса,
// отсортированные по дню недели (понедельник=1 .. воскресенье=7)
func (r *Repository) GetHoursByBusinessID(ctx context.Context, businessID int64) ([]*domain.OpeningHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"business_id",
		"day_of_week",
		"open_time",
		"close_time",
	).
		From("opening_hours").
		Where(squirrel.Eq{"business_id": businessID}).
		OrderBy("day_of_week ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetHoursByBusinessID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetHoursByBusinessID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	hours := make([]*domain.OpeningHours, 0)
	for rows.Next() {
		var h domain.OpeningHours
		if err := rows.Scan(&h.ID, &h.BusinessID, &h.DayOfWeek, &h.OpenTime, &h.CloseTime); err != nil {
			return nil, fmt.Errorf("%w: GetHoursByBusinessID - scan row: %v", ErrScanRow, err)
		}
		hours = append(hours, &h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetHoursByBusinessID - rows error: %v", ErrScanRow, err)
	}

	return hours, nil
}

// GetHoursByWeekday получает рабочие часы бизнеса на конкретный день недели
func (r *Repository) GetHoursByWeekday(ctx context.Context, businessID int64, dayOfWeek int) (*domain.OpeningHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"business_id",
		"day_of_week",
		"open_time",
		"close_time",
	).
		From("opening_hours").
		Where(squirrel.Eq{"business_id": businessID, "day_of_week": dayOfWeek}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetHoursByWeekday - build select query: %v", ErrBuildQuery, err)
	}

	var h domain.OpeningHours
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&h.ID,
		&h.BusinessID,
		&h.DayOfWeek,
		&h.OpenTime,
		&h.CloseTime,
	)

	if err == sql.ErrNoRows {
		return nil, ErrHoursNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetHoursByWeekday - scan hours: %v", ErrScanRow, err)
	}

	return &h, nil
}

// UpsertHours создает или обновляет рабочие часы на день недели.
// Пара (business_id, day_of_week) уникальна, конфликт разрешается обновлением окна.
func (r *Repository) UpsertHours(ctx context.Context, hours *domain.OpeningHours) (*domain.OpeningHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("opening_hours").
		Columns(
			"business_id",
			"day_of_week",
			"open_time",
			"close_time",
		).
		Values(
			hours.BusinessID,
			hours.DayOfWeek,
			hours.OpenTime,
			hours.CloseTime,
		).
		Suffix(`ON CONFLICT (business_id, day_of_week)
			DO UPDATE SET open_time = EXCLUDED.open_time, close_time = EXCLUDED.close_time
			RETURNING id`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpsertHours - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&hours.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: UpsertHours - execute insert: %v", ErrExecQuery, err)
	}

	return hours, nil
}

// DeleteHours удаляет рабочие часы на день недели (день становится выходным)
func (r *Repository) DeleteHours(ctx context.Context, businessID int64, dayOfWeek int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("opening_hours").
		Where(squirrel.Eq{"business_id": businessID, "day_of_week": dayOfWeek}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteHours - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteHours - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteHours - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrHoursNotFound
	}

	return nil
}

// GetHolidayByDate получает праздник бизнеса на календарную дату
func (r *Repository) GetHolidayByDate(ctx context.Context, businessID int64, date time.Time) (*domain.Holiday, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"business_id",
		"holiday_date",
		"reason",
	).
		From("holidays").
		Where(squirrel.Eq{"business_id": businessID}).
		Where(squirrel.Expr("holiday_date = ?::date", date.Format(domain.DateFormat))).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetHolidayByDate - build select query: %v", ErrBuildQuery, err)
	}

	var h domain.Holiday
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&h.ID,
		&h.BusinessID,
		&h.Date,
		&h.Reason,
	)

	if err == sql.ErrNoRows {
		return nil, ErrHolidayNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetHolidayByDate - scan holiday: %v", ErrScanRow, err)
	}

	return &h, nil
}

// GetHolidaysInRange получает все праздники бизнеса в диапазоне дат [from, to]
func (r *Repository) GetHolidaysInRange(ctx context.Context, businessID int64, from, to time.Time) ([]*domain.Holiday, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"business_id",
		"holiday_date",
		"reason",
	).
		From("holidays").
		Where(squirrel.Eq{"business_id": businessID}).
		Where(squirrel.GtOrEq{"holiday_date": from.Format(domain.DateFormat)}).
		Where(squirrel.LtOrEq{"holiday_date": to.Format(domain.DateFormat)}).
		OrderBy("holiday_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetHolidaysInRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetHolidaysInRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	holidays := make([]*domain.Holiday, 0)
	for rows.Next() {
		var h domain.Holiday
		if err := rows.Scan(&h.ID, &h.BusinessID, &h.Date, &h.Reason); err != nil {
			return nil, fmt.Errorf("%w: GetHolidaysInRange - scan row: %v", ErrScanRow, err)
		}
		holidays = append(holidays, &h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetHolidaysInRange - rows error: %v", ErrScanRow, err)
	}

	return holidays, nil
}

// CreateHoliday добавляет праздничный день бизнеса.
// Повторное добавление той же даты обновляет причину.
func (r *Repository) CreateHoliday(ctx context.Context, holiday *domain.Holiday) (*domain.Holiday, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("holidays").
		Columns(
			"business_id",
			"holiday_date",
			"reason",
		).
		Values(
			holiday.BusinessID,
			holiday.Date.Format(domain.DateFormat),
			holiday.Reason,
		).
		Suffix(`ON CONFLICT (business_id, holiday_date)
			DO UPDATE SET reason = EXCLUDED.reason
			RETURNING id`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateHoliday - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&holiday.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateHoliday - execute insert: %v", ErrExecQuery, err)
	}

	return holiday, nil
}

// DeleteHoliday удаляет праздничный день
func (r *Repository) DeleteHoliday(ctx context.Context, businessID int64, date time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("holidays").
		Where(squirrel.Eq{"business_id": businessID}).
		Where(squirrel.Expr("holiday_date = ?::date", date.Format(domain.DateFormat))).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteHoliday - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteHoliday - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteHoliday - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrHolidayNotFound
	}

	return nil
}
