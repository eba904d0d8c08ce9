package availability

import (
	"context"
	"testing"
	"time"

	"homely/models"
	"homely/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAvailabilityRepo serves canned records without Mongo.
type stubAvailabilityRepo struct {
	records []models.DateAvailability
	err     error
}

func (s *stubAvailabilityRepo) UpsertDate(ctx context.Context, record models.DateAvailability) error {
	return nil
}

func (s *stubAvailabilityRepo) GetByDate(ctx context.Context, serviceID, date string) (*models.DateAvailability, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, rec := range s.records {
		if rec.ServiceID == serviceID && rec.Date == date {
			return &rec, nil
		}
	}
	return nil, nil
}

func (s *stubAvailabilityRepo) GetRange(ctx context.Context, serviceID, fromDate, toDate string) ([]models.DateAvailability, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []models.DateAvailability
	for _, rec := range s.records {
		if rec.ServiceID == serviceID && rec.Date >= fromDate && rec.Date <= toDate {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (s *stubAvailabilityRepo) DeleteBefore(ctx context.Context, date string) (int64, error) {
	return 0, nil
}

func TestCalendarGridShape(t *testing.T) {
	// Pick a month safely inside the booking window so some cells are
	// bookable regardless of when the test runs.
	target := utils.GetTomorrowDate().AddDate(0, 0, 7)
	month := target.Format("2006-01")
	dateStr := utils.FormatDateToLocalString(target)

	svc := &DefaultAvailabilityService{
		Repo: &stubAvailabilityRepo{records: []models.DateAvailability{
			{ServiceID: "svc", Date: dateStr, HasSlots: true, Slots: []models.SlotAvailability{
				{SlotID: "a", Start: 540, End: 720, MaxBookings: 10, AvailableBookings: 8},
			}},
		}},
	}

	cal, err := svc.Calendar(context.Background(), "svc", month)
	require.NoError(t, err)
	require.Len(t, cal.Days, 42)
	assert.Equal(t, "svc", cal.ServiceID)
	assert.Equal(t, month, cal.Month)

	// Grid starts on a Sunday.
	first := utils.ParseAPIDateAsLocal(cal.Days[0].Date)
	assert.Equal(t, time.Sunday, first.Weekday())

	var found *models.CalendarDay
	for i := range cal.Days {
		if cal.Days[i].Date == dateStr {
			found = &cal.Days[i]
		}
	}
	require.NotNil(t, found, "target date missing from grid")
	assert.True(t, found.Available)
	assert.True(t, found.Bookable)
	assert.Equal(t, LabelAvailable, found.Label)
}

func TestCalendarRejectsMalformedMonth(t *testing.T) {
	svc := &DefaultAvailabilityService{Repo: &stubAvailabilityRepo{}}

	_, err := svc.Calendar(context.Background(), "svc", "september")
	require.Error(t, err)
	var ae *AvailabilityError
	assert.ErrorAs(t, err, &ae)
}

func TestSlotsOn(t *testing.T) {
	slots := []models.SlotAvailability{
		{SlotID: "a", Start: 540, End: 720, MaxBookings: 5, AvailableBookings: 2},
	}
	svc := &DefaultAvailabilityService{
		Repo: &stubAvailabilityRepo{records: []models.DateAvailability{
			{ServiceID: "svc", Date: "2026-09-15", HasSlots: true, Slots: slots},
		}},
	}

	got, err := svc.SlotsOn(context.Background(), "svc", "2026-09-15")
	require.NoError(t, err)
	assert.Equal(t, slots, got)

	// No record: empty list, not an error.
	got, err = svc.SlotsOn(context.Background(), "svc", "2026-09-16")
	require.NoError(t, err)
	assert.Empty(t, got)

	// Malformed date is a soft query error.
	_, err = svc.SlotsOn(context.Background(), "svc", "soon")
	require.Error(t, err)
}
