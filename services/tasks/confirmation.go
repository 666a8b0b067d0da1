package tasks

import (
	"encoding/json"

	"stayhub/models"

	"github.com/hibiken/asynq"
)

const TypeConfirmationSend = "confirmation:send"

func NewConfirmationTask(payload models.ConfirmationEmail) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeConfirmationSend, b)
	opts := []asynq.Option{asynq.MaxRetry(3)}

	return task, opts, nil
}
