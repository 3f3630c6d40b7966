package find_first_slot

// Request модель запроса первого доступного слота
type Request struct {
	ServiceID int64  // ID услуги
	StaffID   *int64 // ID мастера (nil - любой)
}

// Response модель ответа.
// Полностью занятый горизонт - нормальный исход: Found=false, остальные
// поля слота пустые.
type Response struct {
	Found           bool
	Date            string // YYYY-MM-DD
	StartMinutes    int
	StartTime       string // "14:30"
	Label           string // "2:30 PM"
	DurationMinutes int
}
