package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"skillbridge/config"
	availabilityRepo "skillbridge/database/repository/availability"
	"skillbridge/services/availability"

	"github.com/hibiken/asynq"
)

const TypeMatchDigest = "match:digest"

// DigestPayload bounds one digest run.
type DigestPayload struct {
	PoolLimit int `json:"poolLimit"`
}

// InitMatchDigestWorker runs the async worker and its periodic scheduler in
// the background. The digest task warms the Redis match cache for users with
// active slots, so dashboard match lists come back from cache during the day.
func InitMatchDigestWorker(matchSvc availability.MatchingService, repo availabilityRepo.SlotRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeMatchDigest, handleMatchDigestTask(matchSvc, repo))

	// Start async worker with retry logic
	go func() {
		log.Println("[MatchDigestWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[MatchDigestWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[MatchDigestWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()

	// Enqueue a digest run every hour.
	go func() {
		scheduler := asynq.NewScheduler(redisOpts, nil)

		payload, _ := json.Marshal(DigestPayload{PoolLimit: config.AppConfig.DefaultMatchLimit})
		if _, err := scheduler.Register("@every 1h", asynq.NewTask(TypeMatchDigest, payload)); err != nil {
			log.Printf("[MatchDigestWorker] Failed to register digest schedule: %v", err)
			return
		}
		if err := scheduler.Run(); err != nil {
			log.Printf("[MatchDigestWorker] Scheduler stopped: %v", err)
		}
	}()
}

func handleMatchDigestTask(matchSvc availability.MatchingService, repo availabilityRepo.SlotRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p DigestPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[MatchDigestHandler] Invalid payload: %v", err)
			return err
		}
		if p.PoolLimit <= 0 {
			p.PoolLimit = config.AppConfig.DefaultMatchLimit
		}

		userIDs, err := repo.ListUserIDs("", p.PoolLimit)
		if err != nil {
			log.Printf("[MatchDigestHandler] Failed to list users: %v", err)
			return err
		}

		warmed := 0
		for _, id := range userIDs {
			if _, err := matchSvc.FindMatches(id, config.AppConfig.DefaultMinOverlapMinutes, config.AppConfig.DefaultMatchLimit); err != nil {
				// Users without usable schedules are expected; keep going.
				continue
			}
			warmed++
		}
		log.Printf("[MatchDigestHandler] Warmed match cache for %d/%d users", warmed, len(userIDs))
		return nil
	}
}
