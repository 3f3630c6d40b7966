package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/psqlbuilder"
)

// Repository репозиторий локального зеркала бронирований.
// Источник истины - удалённый календарь; зеркало пишется best-effort после
// успешного создания записи там и используется для чтения истории и для
// проверки конфликтов при расчёте слотов.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create записывает подтверждённое бронирование в зеркало
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	bookingDate, err := time.ParseInLocation(domain.DateFormat, b.DateKey, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - invalid booking date %q: %v", ErrBuildQuery, b.DateKey, err)
	}

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"calendar_event_id",
			"staff_id",
			"contact_id",
			"service_id",
			"booking_date",
			"start_minutes",
			"end_minutes",
			"status",
			"service_name",
			"notes",
		).
		Values(
			b.CalendarEventID,
			b.StaffID,
			b.ContactID,
			b.ServiceID,
			bookingDate,
			b.StartMinutes,
			b.EndMinutes,
			b.Status,
			b.ServiceName,
			b.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&b.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return b, nil
}

// GetByID получает бронирование из зеркала по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	query, args, err := selectBookingColumns().
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	b, err := scanBookingRow(row)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return b, nil
}

// GetByContactID получает историю бронирований клиента.
// Опционально фильтрует по статусу.
func (r *Repository) GetByContactID(ctx context.Context, contactID int64, status *domain.BookingStatus) ([]domain.Booking, error) {
	selectBuilder := selectBookingColumns().
		Where(squirrel.Eq{"contact_id": contactID})

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.
		OrderBy("booking_date DESC, start_minutes DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByContactID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByContactID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		b, err := scanBookingRow(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByContactID - scan booking: %v", ErrScanRow, err)
		}
		bookings = append(bookings, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByContactID - iterate rows: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// ListWithFilter получает бронирования из зеркала с гибкой фильтрацией.
// Используется шлюзом ограничений для проверки конфликтов (фильтр по
// сотруднику и диапазону дат, только активные статусы).
func (r *Repository) ListWithFilter(ctx context.Context, filter domain.StaffBookingsFilter) ([]domain.Booking, error) {
	selectBuilder := selectBookingColumns()

	if filter.StaffID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"staff_id": *filter.StaffID})
	}
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"booking_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"booking_date": *filter.EndDate})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeInactive {
		// Если не указан конкретный статус и не нужны неактивные - исключаем их
		inactiveStatusStrings := make([]string, len(domain.InactiveStatuses))
		for i, s := range domain.InactiveStatuses {
			inactiveStatusStrings[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": inactiveStatusStrings})
	}

	query, args, err := selectBuilder.
		OrderBy("booking_date ASC, start_minutes ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		b, err := scanBookingRow(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListWithFilter - scan booking: %v", ErrScanRow, err)
		}
		bookings = append(bookings, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - iterate rows: %v", ErrScanRow, err)
	}

	return bookings, nil
}

func selectBookingColumns() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"calendar_event_id",
		"staff_id",
		"contact_id",
		"service_id",
		"booking_date",
		"start_minutes",
		"end_minutes",
		"status",
		"service_name",
		"notes",
		"created_at",
		"updated_at",
	).From("bookings")
}

// rowScanner покрывает *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBookingRow(row rowScanner) (*domain.Booking, error) {
	var (
		b                    domain.Booking
		bookingDate          time.Time
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&b.ID,
		&b.CalendarEventID,
		&b.StaffID,
		&b.ContactID,
		&b.ServiceID,
		&bookingDate,
		&b.StartMinutes,
		&b.EndMinutes,
		&b.Status,
		&b.ServiceName,
		&b.Notes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	b.DateKey = bookingDate.Format(domain.DateFormat)
	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return &b, nil
}
