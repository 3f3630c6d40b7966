package get_available_slots

import (
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Request модель запроса на сканирование доступных слотов
type Request struct {
	ServiceID int64  // ID услуги
	StaffID   *int64 // ID мастера (nil - любой)
	Days      int    // Размер окна в днях: 7, 30 или 120 (0 - значение по умолчанию)
	StartDate string // Первый день окна YYYY-MM-DD (пусто - сегодня)
}

// Slot один доступный слот
type Slot struct {
	StartMinutes    int    // Минуты от локальной полуночи (источник истины)
	StartTime       string // "14:30"
	Label           string // "2:30 PM"
	DurationMinutes int
}

// DaySlots слоты на один день
type DaySlots struct {
	Date  string // YYYY-MM-DD
	Slots []Slot
}

// Response модель ответа со слотами по дням.
// Дни без слотов не включаются.
type Response struct {
	ServiceID       int64
	StaffID         *int64
	StartDate       string
	Days            int
	DurationMinutes int
	DaySlots        []DaySlots
}

func toSlot(s domain.AvailableSlot) Slot {
	return Slot{
		StartMinutes:    int(s.StartMinutes),
		StartTime:       s.StartMinutes.String(),
		Label:           s.Label(),
		DurationMinutes: s.DurationMinutes,
	}
}
