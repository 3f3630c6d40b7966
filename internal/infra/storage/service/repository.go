package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/psqlbuilder"
)

// Repository репозиторий услуг и переопределений длительности
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория услуг
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает услугу по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"duration_minutes",
		"price",
	).
		From("services").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var svc domain.Service
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&svc.ID,
		&svc.Name,
		&svc.DurationMinutes,
		&svc.Price,
	)
	if err == sql.ErrNoRows {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan service: %v", ErrScanRow, err)
	}

	return &svc, nil
}

// GetDurationOverride получает переопределение длительности для пары
// (услуга, сотрудник). Отсутствие переопределения - нормальный случай:
// вызывающая сторона откатывается на длительность услуги по умолчанию.
func (r *Repository) GetDurationOverride(ctx context.Context, serviceID, staffID int64) (*domain.DurationOverride, error) {
	query, args, err := psqlbuilder.Select(
		"service_id",
		"staff_id",
		"duration_minutes",
	).
		From("service_duration_overrides").
		Where(squirrel.Eq{"service_id": serviceID, "staff_id": staffID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetDurationOverride - build select query: %v", ErrBuildQuery, err)
	}

	var override domain.DurationOverride
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&override.ServiceID,
		&override.StaffID,
		&override.DurationMinutes,
	)
	if err == sql.ErrNoRows {
		return nil, ErrOverrideNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetDurationOverride - scan override: %v", ErrScanRow, err)
	}

	return &override, nil
}
