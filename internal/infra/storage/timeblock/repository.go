package timeblock

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/psqlbuilder"
)

// Repository репозиторий временных блокировок.
// Блок либо повторяющийся (массив weekdays), либо на конкретную дату
// (block_date); интервал полуоткрытый [start, end).
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория блокировок
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListForStaff возвращает все блокировки сотрудника.
// Повторяющиеся блоки действуют в любом диапазоне дат, поэтому выборка
// не фильтруется по периоду - фильтрация по дню происходит в резолвере.
func (r *Repository) ListForStaff(ctx context.Context, staffID int64) ([]domain.TimeBlock, error) {
	query, args, err := psqlbuilder.Select(
		"staff_id",
		"weekdays",
		"block_date",
		"start_minutes",
		"end_minutes",
	).
		From("time_blocks").
		Where(squirrel.Eq{"staff_id": staffID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListForStaff - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListForStaff - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	blocks := make([]domain.TimeBlock, 0)
	for rows.Next() {
		var (
			block    domain.TimeBlock
			weekdays pq.Int64Array
			date     sql.NullTime
		)
		if err := rows.Scan(&block.StaffID, &weekdays, &date, &block.Start, &block.End); err != nil {
			return nil, fmt.Errorf("%w: ListForStaff - scan block: %v", ErrScanRow, err)
		}

		if date.Valid {
			key := date.Time.Format(domain.DateFormat)
			block.Date = &key
		} else {
			block.Weekdays = make([]time.Weekday, 0, len(weekdays))
			for _, wd := range weekdays {
				if wd < 0 || wd > 6 {
					return nil, fmt.Errorf("%w: weekday %d out of range", ErrScanRow, wd)
				}
				block.Weekdays = append(block.Weekdays, time.Weekday(wd))
			}
		}

		blocks = append(blocks, block)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListForStaff - iterate rows: %v", ErrScanRow, err)
	}

	return blocks, nil
}
