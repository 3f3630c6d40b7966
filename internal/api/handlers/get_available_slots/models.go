package get_available_slots

import (
	getAvailableSlots "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_available_slots"
)

// SlotResponse HTTP модель одного слота
type SlotResponse struct {
	StartMinutes    int    `json:"startMinutes"`
	StartTime       string `json:"startTime"`
	Label           string `json:"label"`
	DurationMinutes int    `json:"durationMinutes"`
}

// DayResponse слоты на один день
type DayResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

// Response HTTP модель ответа
type Response struct {
	ServiceID       int64         `json:"serviceId"`
	StaffID         *int64        `json:"staffId,omitempty"`
	StartDate       string        `json:"startDate"`
	Days            int           `json:"days"`
	DurationMinutes int           `json:"durationMinutes"`
	DaySlots        []DayResponse `json:"daySlots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *Response {
	days := make([]DayResponse, 0, len(resp.DaySlots))
	for _, d := range resp.DaySlots {
		slots := make([]SlotResponse, 0, len(d.Slots))
		for _, s := range d.Slots {
			slots = append(slots, SlotResponse{
				StartMinutes:    s.StartMinutes,
				StartTime:       s.StartTime,
				Label:           s.Label,
				DurationMinutes: s.DurationMinutes,
			})
		}
		days = append(days, DayResponse{Date: d.Date, Slots: slots})
	}

	return &Response{
		ServiceID:       resp.ServiceID,
		StaffID:         resp.StaffID,
		StartDate:       resp.StartDate,
		Days:            resp.Days,
		DurationMinutes: resp.DurationMinutes,
		DaySlots:        days,
	}
}
