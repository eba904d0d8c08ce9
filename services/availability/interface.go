package availability

import (
	"context"
	"fmt"

	availabilityRepo "homely/database/repository/availability"
	"homely/models"

	"github.com/go-redis/redis/v8"
)

// AvailabilityService answers calendar and slot queries for a service.
type AvailabilityService interface {
	Calendar(ctx context.Context, serviceID, month string) (*models.CalendarMonth, error)
	SlotsOn(ctx context.Context, serviceID, date string) ([]models.SlotAvailability, error)
	RefreshCalendarCache(ctx context.Context, serviceID string) error
}

// DefaultAvailabilityService backs calendar queries with the availability
// repository and a Redis response cache.
type DefaultAvailabilityService struct {
	Repo  availabilityRepo.AvailabilityRepository
	Cache *redis.Client
}

// AvailabilityError flags malformed calendar/slot queries.
type AvailabilityError struct {
	Code    string
	Message string
}

func (e *AvailabilityError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewAvailabilityError(msg string) error {
	return &AvailabilityError{
		Code:    "availabilityError",
		Message: msg,
	}
}
