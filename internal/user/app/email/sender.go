package email

import "context"

type VerificationSender interface {
	SendVerificationLink(ctx context.Context, email, token string) error
}
