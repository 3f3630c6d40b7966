package get_available_slots

import (
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/civiltime"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.StaffID != nil && *req.StaffID <= 0 {
		return fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}

	if req.Days != 0 && !allowedDays(req.Days) {
		return fmt.Errorf("%w: days must be one of %v", ErrInvalidRange, domain.AllowedScanDays)
	}

	if req.StartDate != "" && !civiltime.ValidDateKey(req.StartDate) {
		return fmt.Errorf("%w: startDate must be YYYY-MM-DD", ErrInvalidInput)
	}

	return nil
}

// validateStartDate проверяет, что первый день окна не в прошлом
func validateStartDate(startDate, today string) error {
	if startDate < today {
		return fmt.Errorf("%w: startDate is in the past", ErrInvalidRange)
	}
	return nil
}

func allowedDays(days int) bool {
	for _, d := range domain.AllowedScanDays {
		if d == days {
			return true
		}
	}
	return false
}
