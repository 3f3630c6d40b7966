package schedule

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/psqlbuilder"
)

// Repository репозиторий рабочих часов салона и сотрудников.
// Все нормализации (weekday-индексация, инвариант open < close) выполняются
// здесь, на границе хранилища; резолвер получает уже типизированные окна.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetBusinessHours возвращает недельное расписание салона.
// Отсутствие настроенных часов - фатальная ошибка конфигурации:
// без них расчёт слотов невозможен.
func (r *Repository) GetBusinessHours(ctx context.Context) (domain.WeekSchedule, error) {
	var week domain.WeekSchedule

	query, args, err := psqlbuilder.Select(
		"weekday",
		"open_minutes",
		"close_minutes",
		"is_closed",
	).
		From("business_hours").
		OrderBy("weekday ASC").
		ToSql()
	if err != nil {
		return week, fmt.Errorf("%w: GetBusinessHours - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return week, fmt.Errorf("%w: GetBusinessHours - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	// По умолчанию день считается закрытым, пока не встретилась строка
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		week[wd] = domain.DayWindow{Weekday: wd, Closed: true}
	}

	found := 0
	for rows.Next() {
		window, weekday, err := scanDayWindow(rows)
		if err != nil {
			return week, err
		}
		week[weekday] = window
		found++
	}
	if err := rows.Err(); err != nil {
		return week, fmt.Errorf("%w: GetBusinessHours - iterate rows: %v", ErrScanRow, err)
	}

	if found == 0 {
		return week, ErrBusinessHoursNotFound
	}

	return week, nil
}

// GetStaffSchedule возвращает расписание сотрудника вместе с флагами выходных.
// Если у сотрудника нет ни одной строки staff_hours, возвращает
// ErrStaffScheduleNotFound - вызывающая сторона откатывается на часы салона.
func (r *Repository) GetStaffSchedule(ctx context.Context, staffID int64) (*domain.StaffSchedule, error) {
	flagsQuery, flagsArgs, err := psqlbuilder.Select("saturday_off", "sunday_off").
		From("staff").
		Where(squirrel.Eq{"id": staffID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetStaffSchedule - build staff query: %v", ErrBuildQuery, err)
	}

	schedule := domain.StaffSchedule{StaffID: staffID}
	err = r.db.QueryRowContext(ctx, flagsQuery, flagsArgs...).Scan(&schedule.SaturdayOff, &schedule.SundayOff)
	if err == sql.ErrNoRows {
		return nil, ErrStaffScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetStaffSchedule - scan staff flags: %v", ErrScanRow, err)
	}

	query, args, err := psqlbuilder.Select(
		"weekday",
		"open_minutes",
		"close_minutes",
		"is_closed",
	).
		From("staff_hours").
		Where(squirrel.Eq{"staff_id": staffID}).
		OrderBy("weekday ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetStaffSchedule - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetStaffSchedule - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		schedule.Hours[wd] = domain.DayWindow{Weekday: wd, Closed: true}
	}

	found := 0
	for rows.Next() {
		window, weekday, err := scanDayWindow(rows)
		if err != nil {
			return nil, err
		}
		schedule.Hours[weekday] = window
		found++
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetStaffSchedule - iterate rows: %v", ErrScanRow, err)
	}

	if found == 0 {
		return nil, ErrStaffScheduleNotFound
	}

	return &schedule, nil
}

// scanDayWindow сканирует строку расписания и проверяет инвариант окна
func scanDayWindow(rows *sql.Rows) (domain.DayWindow, time.Weekday, error) {
	var (
		weekday int
		window  domain.DayWindow
	)

	if err := rows.Scan(&weekday, &window.Open, &window.Close, &window.Closed); err != nil {
		return window, 0, fmt.Errorf("%w: scan day window: %v", ErrScanRow, err)
	}

	if weekday < 0 || weekday > 6 {
		return window, 0, fmt.Errorf("%w: weekday %d out of range", ErrScanRow, weekday)
	}
	window.Weekday = time.Weekday(weekday)

	if !window.IsValid() {
		return window, 0, fmt.Errorf("%w: weekday=%d open=%s close=%s",
			ErrInvalidWindow, weekday, window.Open, window.Close)
	}

	return window, window.Weekday, nil
}
