package availability

import (
	"time"

	"homely/models"
	"homely/utils"
)

// Availability labels shown on calendar cells.
const (
	LabelFull      = "Full"
	LabelLimited   = "Limited"
	LabelAvailable = "Available"
)

// IsDateAvailable reports whether some record matches the query date's local
// date string and declares slots available. Both sides are compared through
// the same local-date extraction so zone drift cannot shift the match by a
// day.
func IsDateAvailable(date time.Time, records []models.DateAvailability) bool {
	key := utils.FormatDateToLocalString(date)
	for _, rec := range records {
		if utils.FormatDateToLocalString(utils.ParseAPIDateAsLocal(rec.Date)) == key {
			return rec.HasSlots
		}
	}
	return false
}

// SlotsForDate returns the slot list of the record matching the query date,
// or an empty list when no record matches.
func SlotsForDate(date time.Time, records []models.DateAvailability) []models.SlotAvailability {
	key := utils.FormatDateToLocalString(date)
	for _, rec := range records {
		if utils.FormatDateToLocalString(utils.ParseAPIDateAsLocal(rec.Date)) == key {
			return rec.Slots
		}
	}
	return []models.SlotAvailability{}
}

// AvailabilityLabel classifies remaining capacity. Zero remaining is "Full";
// a ratio strictly above 0.3 is "Available"; anything else, the boundary
// included, is "Limited".
func AvailabilityLabel(available, max int) string {
	if available == 0 {
		return LabelFull
	}
	if max > 0 && float64(available)/float64(max) > 0.3 {
		return LabelAvailable
	}
	return LabelLimited
}
