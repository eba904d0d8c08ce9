package availability

import (
	"testing"

	"homely/models"
	"homely/utils"

	"github.com/stretchr/testify/assert"
)

func TestAvailabilityLabelBoundaries(t *testing.T) {
	cases := []struct {
		available int
		max       int
		want      string
	}{
		{0, 10, LabelFull},
		{3, 10, LabelLimited}, // ratio exactly 0.3 stays Limited
		{4, 10, LabelAvailable},
		{1, 10, LabelLimited},
		{10, 10, LabelAvailable},
		{1, 0, LabelLimited}, // degenerate max guards the division
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, AvailabilityLabel(tc.available, tc.max),
			"AvailabilityLabel(%d, %d)", tc.available, tc.max)
	}
}

func TestIsDateAvailable(t *testing.T) {
	records := []models.DateAvailability{
		{ServiceID: "svc", Date: "2026-09-15", HasSlots: true},
		{ServiceID: "svc", Date: "2026-09-16", HasSlots: false},
	}

	assert.True(t, IsDateAvailable(utils.ParseAPIDateAsLocal("2026-09-15"), records))
	// Record exists but declares no slots.
	assert.False(t, IsDateAvailable(utils.ParseAPIDateAsLocal("2026-09-16"), records))
	// No record at all.
	assert.False(t, IsDateAvailable(utils.ParseAPIDateAsLocal("2026-09-17"), records))
}

func TestIsDateAvailableNormalizesDatetimeRecords(t *testing.T) {
	// A record carrying a datetime string still matches the plain date: both
	// sides run through the same local-date extraction.
	records := []models.DateAvailability{
		{ServiceID: "svc", Date: "2026-09-15T23:00:00Z", HasSlots: true},
	}
	assert.True(t, IsDateAvailable(utils.ParseAPIDateAsLocal("2026-09-15"), records))
}

func TestSlotsForDate(t *testing.T) {
	slots := []models.SlotAvailability{
		{SlotID: "a", Start: 540, End: 720, MaxBookings: 5, AvailableBookings: 2},
	}
	records := []models.DateAvailability{
		{ServiceID: "svc", Date: "2026-09-15", HasSlots: true, Slots: slots},
	}

	assert.Equal(t, slots, SlotsForDate(utils.ParseAPIDateAsLocal("2026-09-15"), records))
	assert.Empty(t, SlotsForDate(utils.ParseAPIDateAsLocal("2026-09-16"), records))
}

func TestLabelForSlotsAggregates(t *testing.T) {
	slots := []models.SlotAvailability{
		{SlotID: "a", MaxBookings: 5, AvailableBookings: 0},
		{SlotID: "b", MaxBookings: 5, AvailableBookings: 3},
	}
	// 3/10 is the boundary ratio.
	assert.Equal(t, LabelLimited, labelForSlots(slots))

	slots[1].AvailableBookings = 4
	assert.Equal(t, LabelAvailable, labelForSlots(slots))

	assert.Equal(t, LabelFull, labelForSlots([]models.SlotAvailability{
		{SlotID: "c", MaxBookings: 5, AvailableBookings: 0},
	}))
}
