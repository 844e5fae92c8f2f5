package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"staffplan/config"
	"staffplan/models"
	"staffplan/services/planner"
	"staffplan/utils"

	"github.com/hibiken/asynq"
)

const TypePlanWarm = "plan:warm"

// planWarmPayload selects which month to precompute.
type planWarmPayload struct {
	Month int `json:"month"`
}

// InitPlanWarmWorker runs a background worker that precomputes the current
// month's plan with default parameters and keeps it cached, so the first
// report request of the day is served warm.
func InitPlanWarmWorker(svc planner.PlannerService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 2,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypePlanWarm, handlePlanWarmTask(svc))

	go func() {
		log.Println("[PlanWarmWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[PlanWarmWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[PlanWarmWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()

	go runPlanWarmScheduler(redisOpts)
}

// runPlanWarmScheduler enqueues a warm task for the current month on a fixed
// interval.
func runPlanWarmScheduler(redisOpts asynq.RedisClientOpt) {
	scheduler := asynq.NewScheduler(redisOpts, &asynq.SchedulerOpts{Location: time.Local})

	payload, _ := json.Marshal(planWarmPayload{Month: int(time.Now().Month())})
	if _, err := scheduler.Register("@every 6h", asynq.NewTask(TypePlanWarm, payload)); err != nil {
		log.Printf("[PlanWarmWorker] failed to register schedule: %v", err)
		return
	}
	if err := scheduler.Run(); err != nil {
		log.Printf("[PlanWarmWorker] scheduler stopped: %v", err)
	}
}

func handlePlanWarmTask(svc planner.PlannerService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p planWarmPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[PlanWarmHandler] invalid payload: %v", err)
			return err
		}
		if p.Month == 0 {
			p.Month = int(time.Now().Month())
		}

		report, err := svc.MonthPlan(ctx, models.PlanParams{Month: p.Month, StaffingDetail: true})
		if err != nil {
			log.Printf("[PlanWarmHandler] failed to compute month %d plan: %v", p.Month, err)
			return err
		}

		data, err := json.Marshal(report)
		if err != nil {
			return err
		}
		key := utils.PlanCachePrefix + "month:" + time.Now().Format("2006-01") + ":default"
		ttl := time.Duration(config.AppConfig.PlanCacheTTLHours) * time.Hour
		if err := utils.GetCacheClient().Set(ctx, key, data, ttl).Err(); err != nil {
			log.Printf("[PlanWarmHandler] failed to cache plan: %v", err)
			return err
		}

		log.Printf("[PlanWarmHandler] cached default plan for month %d", p.Month)
		return nil
	}
}
