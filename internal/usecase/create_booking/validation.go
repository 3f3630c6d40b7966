package create_booking

import (
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/pkg/civiltime"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ContactID <= 0 {
		return fmt.Errorf("%w: contactID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.StaffID != nil && *req.StaffID <= 0 {
		return fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}

	if !civiltime.ValidDateKey(req.Date) {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}

	if !req.StartMinutes.Valid() {
		return fmt.Errorf("%w: startMinutes out of range", ErrInvalidInput)
	}

	return nil
}

// validateDate проверяет, что дата слота не в прошлом
func validateDate(date, today string) error {
	if date < today {
		return ErrInvalidDate
	}
	return nil
}
