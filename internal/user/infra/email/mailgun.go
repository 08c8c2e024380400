package email

import (
	"context"
	"fmt"
	"net/url"

	"github.com/parkplatztransform/parkapi/internal/user/app/email"
	pkghttp "github.com/parkplatztransform/parkapi/pkg/http"
)

const mailgunDestination pkghttp.Destination = "mailgun"

type Config struct {
	APIBaseURL  string
	APIKey      string
	Domain      string
	Sender      string
	VerifyURL   string
	MailSubject string
}

type mailgunSender struct {
	config Config
	client pkghttp.Client
}

func NewMailgunSender(config Config, clientFactory pkghttp.ClientFactory) email.VerificationSender {
	if config.APIBaseURL == "" {
		config.APIBaseURL = "https://api.mailgun.net"
	}
	if config.MailSubject == "" {
		config.MailSubject = "Please verify your email address"
	}

	client := clientFactory.InitClient(
		mailgunDestination,
		config.APIBaseURL,
		pkghttp.WithClientBasicAuth("api", config.APIKey),
	)

	return mailgunSender{
		config: config,
		client: client,
	}
}

func (s mailgunSender) SendVerificationLink(ctx context.Context, to, token string) error {
	verifyLink := fmt.Sprintf(
		"%s?code=%s&email=%s",
		s.config.VerifyURL,
		url.QueryEscape(token),
		url.QueryEscape(to),
	)

	resp, err := s.client.NewRequest(ctx).
		SetFormData(map[string]string{
			"from":    s.config.Sender,
			"to":      to,
			"subject": s.config.MailSubject,
			"text":    verifyLink,
		}).
		Post(fmt.Sprintf("/v3/%s/messages", s.config.Domain))
	if err != nil {
		return fmt.Errorf("send verification email: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("send verification email: mailgun responded with %d", resp.StatusCode())
	}

	return nil
}
