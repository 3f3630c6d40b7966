package models

import (
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// DayResponse рабочие часы на один день недели
type DayResponse struct {
	Weekday string `json:"weekday"` // "Monday" .. "Sunday"
	Open    string `json:"open,omitempty"`
	Close   string `json:"close,omitempty"`
	Closed  bool   `json:"closed"`
}

// TimeOffResponse период отсутствия мастера
type TimeOffResponse struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// StaffScheduleResponse график мастера поверх часов салона
type StaffScheduleResponse struct {
	StaffID     int64             `json:"staffId"`
	HasOwnHours bool              `json:"hasOwnHours"` // false - действуют часы салона
	Week        []DayResponse     `json:"week,omitempty"`
	SaturdayOff bool              `json:"saturdayOff"`
	SundayOff   bool              `json:"sundayOff"`
	TimeOff     []TimeOffResponse `json:"timeOff"`
}

// ScheduleResponse ответ на запрос расписания
type ScheduleResponse struct {
	Week  []DayResponse          `json:"week"`
	Staff *StaffScheduleResponse `json:"staff,omitempty"`
}

// FromDomainWeek конвертирует недельное расписание в ответ API
func FromDomainWeek(week domain.WeekSchedule) []DayResponse {
	out := make([]DayResponse, 0, len(week))
	for _, day := range week {
		resp := DayResponse{
			Weekday: day.Weekday.String(),
			Closed:  day.Closed,
		}
		if !day.Closed {
			resp.Open = day.Open.String()
			resp.Close = day.Close.String()
		}
		out = append(out, resp)
	}
	return out
}

// FromDomainTimeOff конвертирует периоды отсутствия в ответ API
func FromDomainTimeOff(periods []domain.TimeOffPeriod) []TimeOffResponse {
	out := make([]TimeOffResponse, 0, len(periods))
	for _, p := range periods {
		out = append(out, TimeOffResponse{StartDate: p.StartDate, EndDate: p.EndDate})
	}
	return out
}
