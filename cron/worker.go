package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"frontdesk/config"
	"frontdesk/directory"
	"frontdesk/models"
	"frontdesk/services/notification"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

const TypeCallNotify = "call:notify"

// InitNotifyWorker runs the async worker in background.
func InitNotifyWorker(notifSvc notification.NotificationService, dir directory.Directory) {
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
	mux.HandleFunc(TypeCallNotify, handleCallNotifyTask(notifSvc, dir))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[NotifyWorker] 🚀 Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[NotifyWorker] ❌ Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[NotifyWorker] ❗ Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleCallNotifyTask(notifSvc notification.NotificationService, dir directory.Directory) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.CallNotificationPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[NotifyHandler] 🔴 Invalid payload: %v", err)
			return err
		}

		emp := dir.FindByID(p.EmployeeID)
		if emp == nil {
			log.Printf("[NotifyHandler] ⚠️ Unknown employee: %s", p.EmployeeID)
			return nil
		}

		log.Printf("[NotifyHandler] 📣 Notifying %s (%s): %s", emp.Name, emp.ID, p.Title)

		if err := notifSvc.NotifyEmployee(ctx, emp, p); err != nil {
			log.Printf("[NotifyHandler] ❌ Failed to send notification: %v", err)
			return err
		}
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[NotifyWorker] ⚠️ Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
