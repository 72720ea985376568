package jobs

import (
	"encoding/json"
	"strings"

	"github.com/hibiken/asynq"
)

const TypeSignupConfirmation = "activities:signup-confirmation"

type SignupConfirmationPayload struct {
	Activity string `json:"activity"`
	Email    string `json:"email"`
}

func (p *SignupConfirmationPayload) Normalize() {
	p.Activity = strings.TrimSpace(p.Activity)
	p.Email = strings.TrimSpace(p.Email)
}

func NewSignupConfirmationTask(activity, email string) (*asynq.Task, error) {
	payload := SignupConfirmationPayload{
		Activity: activity,
		Email:    email,
	}
	payload.Normalize()

	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeSignupConfirmation, b, asynq.MaxRetry(3)), nil
}
