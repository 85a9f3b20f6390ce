package tasks

import (
	"encoding/json"
	"frontdesk/models"
	"time"

	"github.com/hibiken/asynq"
)

const TypeCallNotify = "call:notify"

func NewCallNotificationTask(payload models.CallNotificationPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeCallNotify, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}
