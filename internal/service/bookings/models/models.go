package models

import (
	"errors"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// GetContactBookingsRequest запрос истории бронирований клиента
type GetContactBookingsRequest struct {
	ContactID int64   `json:"contactId"`
	Status    *string `json:"status,omitempty"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID              int64   `json:"id"`
	CalendarEventID string  `json:"calendarEventId"`
	ContactID       int64   `json:"contactId"`
	StaffID         *int64  `json:"staffId,omitempty"`
	ServiceID       int64   `json:"serviceId"`
	ServiceName     string  `json:"serviceName"`
	Date            string  `json:"date"`      // "2026-06-15"
	StartTime       string  `json:"startTime"` // "10:00"
	EndTime         string  `json:"endTime"`   // "10:45"
	Label           string  `json:"label"`     // "10:00 AM"
	Status          string  `json:"status"`
	Notes           *string `json:"notes,omitempty"`
	CreatedAt       string  `json:"createdAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// FromDomainBooking конвертирует domain.Booking в ответ API
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:              b.ID,
		CalendarEventID: b.CalendarEventID,
		ContactID:       b.ContactID,
		StaffID:         b.StaffID,
		ServiceID:       b.ServiceID,
		ServiceName:     b.ServiceName,
		Date:            b.DateKey,
		StartTime:       b.StartMinutes.String(),
		EndTime:         b.EndMinutes.String(),
		Label:           b.StartMinutes.Clock12(),
		Status:          string(b.Status),
		Notes:           b.Notes,
		CreatedAt:       b.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// FromDomainBookingList конвертирует список domain.Booking в ответ API
func FromDomainBookingList(bookings []domain.Booking) *BookingListResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for i := range bookings {
		out = append(out, *FromDomainBooking(&bookings[i]))
	}
	return &BookingListResponse{Bookings: out, Total: len(out)}
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	switch domain.BookingStatus(status) {
	case domain.StatusPending, domain.StatusConfirmed, domain.StatusCompleted,
		domain.StatusCancelled, domain.StatusNoShow:
		return domain.BookingStatus(status), nil
	default:
		return "", ErrInvalidStatus
	}
}
