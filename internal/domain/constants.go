package domain

// Default configuration values
const (
	DefaultStepMinutes        = 30
	DefaultBufferMinutes      = 15 // минимальный отступ от текущего времени для слотов "на сегодня"
	DefaultScanDays           = 7
	FirstAvailableHorizonDays = 120
)

// Business validation constants
const (
	MinStepMinutes     = 15
	MaxStepMinutes     = 30
	MinDurationMinutes = 5
	MaxDurationMinutes = 480 // 8 hours
	MaxBufferMinutes   = 240
	MaxNotesLength     = 500
	MinutesPerDay      = 24 * 60
)

// AllowedScanDays допустимые размеры окна для полного сканирования
var AllowedScanDays = []int{7, 30, 120}

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов, не участвующих в проверке конфликтов
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
	StatusNoShow,
}
