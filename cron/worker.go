package cron

import (
	"context"
	"encoding/json"
	"log"

	"github.com/hibiken/asynq"

	"easyappointment/config"
	"easyappointment/services/schedule"
)

const TypeScheduleGenerate = "schedule:generate"

// schedulePayload is the task body for schedule generation.
type schedulePayload struct {
	ProviderID string `json:"providerId"`
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// ScheduleEnqueuer dispatches schedule-generation tasks onto the queue.
type ScheduleEnqueuer struct {
	client *asynq.Client
}

// NewScheduleEnqueuer creates the asynq client used by the provider service.
func NewScheduleEnqueuer() *ScheduleEnqueuer {
	return &ScheduleEnqueuer{client: asynq.NewClient(redisOpts())}
}

// EnqueueGeneration queues schedule generation for the provider.
func (e *ScheduleEnqueuer) EnqueueGeneration(ctx context.Context, providerID string) error {
	payload, err := json.Marshal(schedulePayload{ProviderID: providerID})
	if err != nil {
		return err
	}
	task := asynq.NewTask(TypeScheduleGenerate, payload)
	_, err = e.client.EnqueueContext(ctx, task, asynq.MaxRetry(5))
	return err
}

// Close releases the underlying asynq client.
func (e *ScheduleEnqueuer) Close() error {
	return e.client.Close()
}

// InitScheduleWorker runs the async worker in background.
func InitScheduleWorker(scheduleSvc schedule.ScheduleService) {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeScheduleGenerate, handleScheduleTask(scheduleSvc))

	go func() {
		log.Println("[ScheduleWorker] Starting async worker...")
		if err := srv.Run(mux); err != nil {
			log.Fatalf("[ScheduleWorker] Failed to start worker: %v", err)
		}
	}()
}

func handleScheduleTask(scheduleSvc schedule.ScheduleService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p schedulePayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ScheduleWorker] Invalid payload: %v", err)
			return err
		}

		count, err := scheduleSvc.GenerateSchedule(ctx, p.ProviderID)
		if err != nil {
			log.Printf("[ScheduleWorker] Generation failed for provider %s: %v", p.ProviderID, err)
			return err
		}
		log.Printf("[ScheduleWorker] Generated %d slots for provider %s", count, p.ProviderID)
		return nil
	}
}
