package timeoff

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/psqlbuilder"
)

// Repository репозиторий периодов отсутствия сотрудников (отпуска, отгулы).
// Периоды полнодневные, границы включительные с обеих сторон.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория периодов отсутствия
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListForStaff возвращает периоды отсутствия сотрудника, пересекающие
// диапазон дат [fromDate, toDate] (ключи формата YYYY-MM-DD)
func (r *Repository) ListForStaff(ctx context.Context, staffID int64, fromDate, toDate string) ([]domain.TimeOffPeriod, error) {
	query, args, err := psqlbuilder.Select(
		"staff_id",
		"start_date",
		"end_date",
	).
		From("time_off").
		Where(squirrel.Eq{"staff_id": staffID}).
		Where(squirrel.LtOrEq{"start_date": toDate}).
		Where(squirrel.GtOrEq{"end_date": fromDate}).
		OrderBy("start_date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListForStaff - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListForStaff - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	periods := make([]domain.TimeOffPeriod, 0)
	for rows.Next() {
		var (
			period     domain.TimeOffPeriod
			start, end time.Time
		)
		if err := rows.Scan(&period.StaffID, &start, &end); err != nil {
			return nil, fmt.Errorf("%w: ListForStaff - scan period: %v", ErrScanRow, err)
		}
		// Нормализация дат в строковые ключи - единственное место,
		// где DATE колонка превращается в YYYY-MM-DD
		period.StartDate = start.Format(domain.DateFormat)
		period.EndDate = end.Format(domain.DateFormat)
		periods = append(periods, period)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListForStaff - iterate rows: %v", ErrScanRow, err)
	}

	return periods, nil
}
