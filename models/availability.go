package models

// SlotAvailability describes capacity for one booking window on a date.
// Start and End are minutes from midnight (e.g. 540 for 9:00 AM).
type SlotAvailability struct {
	SlotID            string `bson:"slotId" json:"slotId"`
	Start             int    `bson:"start" json:"start"`
	End               int    `bson:"end" json:"end"`
	MaxBookings       int    `bson:"maxBookings" json:"maxBookings"`
	AvailableBookings int    `bson:"availableBookings" json:"availableBookings"`
}

// DateAvailability is the per-date record of bookable slots for a service.
type DateAvailability struct {
	ServiceID string             `bson:"serviceId" json:"serviceId"`
	Date      string             `bson:"date" json:"date"` // "2006-01-02"
	HasSlots  bool               `bson:"hasSlots" json:"hasSlots"`
	Slots     []SlotAvailability `bson:"slots,omitempty" json:"slots,omitempty"`
}

// CalendarDay is one cell of the 42-cell booking calendar grid.
type CalendarDay struct {
	Date      string `json:"date"` // "2006-01-02"
	InMonth   bool   `json:"inMonth"`
	Bookable  bool   `json:"bookable"`
	Available bool   `json:"available"`
	Label     string `json:"label,omitempty"` // "Full", "Limited" or "Available"
}

// CalendarMonth is the availability calendar returned for one month.
type CalendarMonth struct {
	ServiceID string        `json:"serviceId"`
	Month     string        `json:"month"` // "2006-01"
	Days      []CalendarDay `json:"days"`
}
