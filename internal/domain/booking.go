package domain

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
	StatusNoShow    BookingStatus = "no_show"
)

// Booking represents an appointment in the local mirror.
//
// The remote calendar system is the system of record; rows here are written
// best-effort after a remote create succeeds and are advisory for reads.
type Booking struct {
	ID              int64
	CalendarEventID string // ID записи в удалённом календаре (источник истины)
	StaffID         *int64 // nil = сотрудник не закреплён ("any")
	ContactID       int64
	ServiceID       int64
	DateKey         string // YYYY-MM-DD в таймзоне салона
	StartMinutes    types.MinuteOfDay
	EndMinutes      types.MinuteOfDay
	Status          BookingStatus

	// Denormalized data for history
	ServiceName string
	Notes       *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking participates in conflict checks
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled && b.Status != StatusNoShow
}

// Overlaps reports whether the booking overlaps the half-open interval
// [start, start+duration) on the same day. Bookings that merely touch at a
// boundary do not overlap.
func (b *Booking) Overlaps(start types.MinuteOfDay, durationMinutes int) bool {
	end := start.Add(durationMinutes)
	return start < b.EndMinutes && end > b.StartMinutes
}

// StaffBookingsFilter фильтр для выборки бронирований из локального зеркала
type StaffBookingsFilter struct {
	StaffID         *int64         // nil - бронирования всех сотрудников
	StartDate       *string        // Начало периода YYYY-MM-DD (опционально)
	EndDate         *string        // Конец периода YYYY-MM-DD (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отменённые и no-show
}
