package domain

// Service represents a bookable service offered by the shop
type Service struct {
	ID              int64
	Name            string
	DurationMinutes int // default duration; may be overridden per staff member
	Price           *float64
}

// DurationOverride is a per (service, staff) duration override.
// When present it replaces the service's default duration.
type DurationOverride struct {
	ServiceID       int64
	StaffID         int64
	DurationMinutes int
}
