package queue

import (
	"encoding/json"

	"github.com/dumo-express/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskBookingNotify alerts the operator inbox about a new booking.
	TaskBookingNotify = constants.TaskBookingNotify
	// TaskContactNotify alerts the operator inbox about a new inquiry.
	TaskContactNotify = constants.TaskContactNotify
)

// OperatorNotifyPayload is the pre-rendered alert carried by both
// notify task types.
type OperatorNotifyPayload struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// NewBookingNotifyTask creates a booking alert task.
func NewBookingNotifyTask(payload OperatorNotifyPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskBookingNotify, body), nil
}

// NewContactNotifyTask creates an inquiry alert task.
func NewContactNotifyTask(payload OperatorNotifyPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskContactNotify, body), nil
}
