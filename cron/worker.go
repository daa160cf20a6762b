package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"tutorhive/config"
	"tutorhive/services/schedule"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

const TypeDraftExpire = "draft:expire"

// draftExpirePayload identifies the edit draft to discard.
type draftExpirePayload struct {
	TutorID string `json:"tutorId"`
	DraftID string `json:"draftId"`
}

// AsynqExpiryScheduler queues draft-expiry tasks. Implements
// schedule.ExpiryScheduler.
type AsynqExpiryScheduler struct {
	client *asynq.Client
}

func NewAsynqExpiryScheduler() *AsynqExpiryScheduler {
	return &AsynqExpiryScheduler{
		client: asynq.NewClient(janitorRedisOpt()),
	}
}

func (s *AsynqExpiryScheduler) ScheduleExpiry(tutorID, draftID string, ttl time.Duration) error {
	payload, err := json.Marshal(draftExpirePayload{TutorID: tutorID, DraftID: draftID})
	if err != nil {
		return err
	}
	task := asynq.NewTask(TypeDraftExpire, payload)
	_, err = s.client.Enqueue(task, asynq.ProcessIn(ttl))
	return err
}

func janitorRedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisJanitorDB,
	}
}

// InitDraftJanitor runs the async worker in background. It discards edit
// drafts that were never saved before their TTL elapsed; drafts saved or
// discarded in the meantime are already gone and the task is a no-op.
func InitDraftJanitor(drafts schedule.DraftStore) {
	srv := asynq.NewServer(
		janitorRedisOpt(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeDraftExpire, handleDraftExpireTask(drafts))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[DraftJanitor] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[DraftJanitor] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[DraftJanitor] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleDraftExpireTask(drafts schedule.DraftStore) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p draftExpirePayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[DraftJanitor] Invalid payload: %v", err)
			return err
		}

		if _, err := drafts.Get(ctx, p.TutorID, p.DraftID); err != nil {
			// Already saved, discarded, or aged out of the store.
			return nil
		}
		log.Printf("[DraftJanitor] Discarding expired draft %s for tutor %s", p.DraftID, p.TutorID)
		return drafts.Delete(ctx, p.TutorID, p.DraftID)
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisJanitorDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[DraftJanitor] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
