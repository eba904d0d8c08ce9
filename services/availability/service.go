package availability

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"homely/models"
	"homely/utils"

	"go.uber.org/zap"
)

const (
	calendarCacheKeyFmt = "calendar:%s:%s" // serviceID, "2006-01"
	calendarCacheTTL    = 5 * time.Minute
)

// Calendar builds the 42-cell availability grid for one month. Results are
// cached in Redis keyed by service and month; a cache failure degrades to a
// recompute, never to an error.
func (s *DefaultAvailabilityService) Calendar(ctx context.Context, serviceID, month string) (*models.CalendarMonth, error) {
	logger := utils.GetLogger()

	anchor := utils.ParseAPIDateAsLocal(month + "-01")
	if anchor.IsZero() {
		return nil, NewAvailabilityError(fmt.Sprintf("invalid month %q, expected YYYY-MM", month))
	}

	cacheKey := fmt.Sprintf(calendarCacheKeyFmt, serviceID, month)
	if s.Cache != nil {
		if data, err := s.Cache.Get(ctx, cacheKey).Bytes(); err == nil {
			var cached models.CalendarMonth
			if json.Unmarshal(data, &cached) == nil {
				return &cached, nil
			}
		}
	}

	grid := utils.GetCalendarDates(anchor)
	from := utils.FormatDateToLocalString(grid[0])
	to := utils.FormatDateToLocalString(grid[len(grid)-1])

	records, err := s.Repo.GetRange(ctx, serviceID, from, to)
	if err != nil {
		logger.Error("Calendar: failed to fetch availability range",
			zap.String("serviceID", serviceID), zap.String("month", month), zap.Error(err))
		return nil, err
	}

	tomorrow := utils.GetTomorrowDate()
	maxDate := utils.GetMaxDate()

	days := make([]models.CalendarDay, len(grid))
	for i, cell := range grid {
		day := models.CalendarDay{
			Date:     utils.FormatDateToLocalString(cell),
			InMonth:  cell.Month() == anchor.Month(),
			Bookable: !cell.Before(tomorrow) && !cell.After(maxDate),
		}
		if IsDateAvailable(cell, records) {
			day.Available = true
			day.Label = labelForSlots(SlotsForDate(cell, records))
		}
		days[i] = day
	}

	result := &models.CalendarMonth{
		ServiceID: serviceID,
		Month:     month,
		Days:      days,
	}

	if s.Cache != nil {
		if data, err := json.Marshal(result); err == nil {
			if err := s.Cache.Set(ctx, cacheKey, data, calendarCacheTTL).Err(); err != nil {
				logger.Warn("Calendar: failed to cache month", zap.String("key", cacheKey), zap.Error(err))
			}
		}
	}
	return result, nil
}

// SlotsOn returns the slot records for one date, or an empty list.
func (s *DefaultAvailabilityService) SlotsOn(ctx context.Context, serviceID, date string) ([]models.SlotAvailability, error) {
	day := utils.ParseAPIDateAsLocal(date)
	if day.IsZero() {
		return nil, NewAvailabilityError(fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", date))
	}

	record, err := s.Repo.GetByDate(ctx, serviceID, utils.FormatDateToLocalString(day))
	if err != nil {
		return nil, err
	}
	if record == nil {
		return []models.SlotAvailability{}, nil
	}
	return SlotsForDate(day, []models.DateAvailability{*record}), nil
}

// RefreshCalendarCache drops and rebuilds the cached calendars covering the
// booking window (current month plus the two after it).
func (s *DefaultAvailabilityService) RefreshCalendarCache(ctx context.Context, serviceID string) error {
	now := time.Now()
	for i := 0; i < 3; i++ {
		month := now.AddDate(0, i, 0).Format("2006-01")
		if s.Cache != nil {
			s.Cache.Del(ctx, fmt.Sprintf(calendarCacheKeyFmt, serviceID, month))
		}
		if _, err := s.Calendar(ctx, serviceID, month); err != nil {
			return err
		}
	}
	return nil
}

// labelForSlots classifies a date's aggregate remaining capacity.
func labelForSlots(slots []models.SlotAvailability) string {
	var available, max int
	for _, slot := range slots {
		available += slot.AvailableBookings
		max += slot.MaxBookings
	}
	return AvailabilityLabel(available, max)
}
