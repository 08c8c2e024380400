package task

import "github.com/google/uuid"

const TypeSendVerificationEmail = "sendVerificationEmail"

// SendVerificationEmail delivers the magic link for the requested login.
type SendVerificationEmail struct {
	TaskID uuid.UUID `json:"taskID"`
	Email  string    `json:"email"`
	Token  string    `json:"token"`
}

func (t SendVerificationEmail) ID() uuid.UUID {
	return t.TaskID
}

func (t SendVerificationEmail) Type() string {
	return TypeSendVerificationEmail
}
