package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"homely/config"
	catalogRepo "homely/database/repository/catalog"
	"homely/services/availability"
	"homely/services/tasks"

	"github.com/hibiken/asynq"
)

// InitRefreshWorker runs the async worker that rebuilds calendar caches in
// the background.
func InitRefreshWorker(availSvc availability.AvailabilityService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: config.AppConfig.WorkerConcurrency,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeAvailabilityRefresh, handleRefreshTask(availSvc))

	// Start async worker with retry logic
	go func() {
		log.Println("[RefreshWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[RefreshWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[RefreshWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleRefreshTask(availSvc availability.AvailabilityService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.AvailabilityRefreshPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[RefreshHandler] invalid payload: %v", err)
			return err
		}

		if err := availSvc.RefreshCalendarCache(ctx, p.ServiceID); err != nil {
			log.Printf("[RefreshHandler] failed to refresh calendars for %s: %v", p.ServiceID, err)
			return err
		}
		return nil
	}
}

// ScheduleNightlyRefresh enqueues one refresh task per active catalog service
// for the configured refresh hour, then re-arms itself for the next day.
func ScheduleNightlyRefresh(client *asynq.Client, catalog catalogRepo.CatalogRepository) {
	go func() {
		for {
			now := time.Now()
			fireAt := time.Date(now.Year(), now.Month(), now.Day(), config.AppConfig.CacheRefreshHour, 0, 0, 0, now.Location())
			if !fireAt.After(now) {
				fireAt = fireAt.AddDate(0, 0, 1)
			}

			services, err := catalog.GetAll(context.Background(), true)
			if err != nil {
				log.Printf("[RefreshScheduler] failed to list services: %v", err)
				time.Sleep(10 * time.Minute)
				continue
			}

			for _, svc := range services {
				task, opts, err := tasks.NewAvailabilityRefreshTask(
					tasks.AvailabilityRefreshPayload{ServiceID: svc.ID}, fireAt)
				if err != nil {
					log.Printf("[RefreshScheduler] failed to build task for %s: %v", svc.ID, err)
					continue
				}
				if _, err := client.Enqueue(task, opts...); err != nil {
					log.Printf("[RefreshScheduler] failed to enqueue refresh for %s: %v", svc.ID, err)
				}
			}

			time.Sleep(time.Until(fireAt) + time.Minute)
		}
	}()
}
