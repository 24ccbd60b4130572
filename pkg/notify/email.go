package notify

import (
	"context"
	"fmt"

	"project-portal/pkg/utils"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

const sendEndpoint = "/v3/mail/send"

type emailMessage struct {
	to      string
	subject string
	text    string
	html    string
}

type emailClient struct {
	apiKey string
	host   string
	from   *mail.Email
}

func newEmailClient(cfg utils.SendGridConfig) *emailClient {
	return &emailClient{
		apiKey: cfg.APIKey,
		host:   cfg.Host,
		from:   mail.NewEmail(cfg.FromName, cfg.FromEmail),
	}
}

func (c *emailClient) send(ctx context.Context, msg emailMessage) error {
	if c.apiKey == "" {
		return ErrNotConfigured
	}

	message := mail.NewSingleEmail(c.from, msg.subject, mail.NewEmail("", msg.to), msg.text, msg.html)

	request := sendgrid.GetRequest(c.apiKey, sendEndpoint, c.host)
	request.Method = rest.Post
	request.Body = mail.GetRequestBody(message)

	response, err := sendgrid.MakeRequestWithContext(ctx, request)
	if err != nil {
		return fmt.Errorf("sendgrid request: %w", err)
	}
	if response.StatusCode >= 300 {
		return fmt.Errorf("sendgrid responded %d: %s", response.StatusCode, response.Body)
	}

	return nil
}

func passwordResetEmail(to, token string) emailMessage {
	return emailMessage{
		to:      to,
		subject: "Reset your password",
		text:    fmt.Sprintf("Your password reset code is %s. It expires soon, do not share it.", token),
		html:    fmt.Sprintf("<p>Your password reset code is <strong>%s</strong>.</p><p>If you did not request a reset, ignore this email.</p>", token),
	}
}

func userCreatedEmail(to, password string) emailMessage {
	return emailMessage{
		to:      to,
		subject: "Your account has been created",
		text:    fmt.Sprintf("An account was created for you. Sign in with %s and password %s, then change it.", to, password),
		html:    fmt.Sprintf("<p>An account was created for you.</p><p>Email: %s<br>Password: <strong>%s</strong></p><p>Please change it after signing in.</p>", to, password),
	}
}

func latestUpdatesEmail(to, title, message string) emailMessage {
	return emailMessage{
		to:      to,
		subject: title,
		text:    message,
		html:    fmt.Sprintf("<h2>%s</h2><p>%s</p>", title, message),
	}
}
