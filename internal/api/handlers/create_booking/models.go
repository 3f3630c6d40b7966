package create_booking

import (
	createBooking "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// CreateBookingRequest HTTP request model.
// Время слота принимается как "HH:MM" и конвертируется в минуты от полуночи.
type CreateBookingRequest struct {
	ServiceID int64   `json:"serviceId"`
	StaffID   *int64  `json:"staffId,omitempty"`
	Date      string  `json:"date"`      // "2026-06-16"
	StartTime string  `json:"startTime"` // "10:00"
	Notes     *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64    `json:"id,omitempty"`
	CalendarEventID string   `json:"calendarEventId"`
	ContactID       int64    `json:"contactId"`
	ServiceID       int64    `json:"serviceId"`
	StaffID         *int64   `json:"staffId,omitempty"`
	ServiceName     string   `json:"serviceName"`
	Date            string   `json:"date"`
	StartMinutes    int      `json:"startMinutes"`
	StartTime       string   `json:"startTime"`
	EndTime         string   `json:"endTime"`
	Label           string   `json:"label"`
	DurationMinutes int      `json:"durationMinutes"`
	Status          string   `json:"status"`
	Notes           *string  `json:"notes,omitempty"`
	Warnings        []string `json:"warnings,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(contactID int64) (*createBooking.Request, error) {
	startMinutes, err := types.ParseMinuteOfDay(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		ContactID:    contactID,
		ServiceID:    r.ServiceID,
		StaffID:      r.StaffID,
		Date:         r.Date,
		StartMinutes: startMinutes,
		Notes:        r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		CalendarEventID: resp.CalendarEventID,
		ContactID:       resp.ContactID,
		ServiceID:       resp.ServiceID,
		StaffID:         resp.StaffID,
		ServiceName:     resp.ServiceName,
		Date:            resp.Date,
		StartMinutes:    resp.StartMinutes,
		StartTime:       resp.StartTime,
		EndTime:         resp.EndTime,
		Label:           resp.Label,
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		Notes:           resp.Notes,
		Warnings:        resp.Warnings,
	}
}
