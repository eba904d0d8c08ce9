package tasks

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const TypeAvailabilityRefresh = "availability:refresh"

// AvailabilityRefreshPayload names the service whose calendar cache should be
// rebuilt.
type AvailabilityRefreshPayload struct {
	ServiceID string `json:"serviceId"`
}

func NewAvailabilityRefreshTask(payload AvailabilityRefreshPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeAvailabilityRefresh, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}
