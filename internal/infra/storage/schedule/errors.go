package schedule

import "errors"

var (
	// ErrBusinessHoursNotFound возвращается, когда рабочие часы салона не настроены
	ErrBusinessHoursNotFound = errors.New("schedule.repository: business hours not configured")

	// ErrStaffScheduleNotFound возвращается, когда у сотрудника нет собственного расписания
	ErrStaffScheduleNotFound = errors.New("schedule.repository: staff schedule not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("schedule.repository: failed to scan row")

	// ErrInvalidWindow возвращается, когда строка расписания нарушает инвариант open < close
	ErrInvalidWindow = errors.New("schedule.repository: invalid day window")
)
