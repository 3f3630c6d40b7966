package create_booking

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	ContactID    int64             // ID клиента (из заголовка аутентификации)
	ServiceID    int64             // ID услуги
	StaffID      *int64            // ID мастера (nil - любой)
	Date         string            // Дата слота YYYY-MM-DD
	StartMinutes types.MinuteOfDay // Начало слота в минутах от локальной полуночи
	Notes        *string           // Дополнительные заметки (опционально)
}

// Предупреждения о сбоях побочных эффектов. Бронирование при этом создано.
const (
	WarnMirrorWriteFailed  = "запись создана, но локальная история может быть неполной"
	WarnNotificationFailed = "запись создана, но уведомление отправить не удалось"
)

// Response модель ответа с созданным бронированием.
// ID зеркальной записи равен нулю, если её не удалось сохранить - источником
// истины остаётся CalendarEventID.
type Response struct {
	ID              int64  // ID записи в локальном зеркале (0 - зеркало не записано)
	CalendarEventID string // ID записи в удалённом календаре
	ContactID       int64
	ServiceID       int64
	StaffID         *int64
	ServiceName     string
	Date            string // YYYY-MM-DD
	StartMinutes    int
	StartTime       string // "14:30"
	EndTime         string // "15:15"
	Label           string // "2:30 PM"
	DurationMinutes int
	Status          string
	Notes           *string
	StartAt         time.Time // Момент начала в UTC
	Warnings        []string  // Сбои побочных эффектов, не отменяющие запись
}
