package notify

import (
	"context"
	"fmt"
	"strings"

	"project-portal/pkg/utils"

	"github.com/go-resty/resty/v2"
)

type smsClient struct {
	http       *resty.Client
	accountSID string
	authToken  string
	from       string
	baseURL    string
}

func newSMSClient(cfg utils.TwilioConfig, client *resty.Client) *smsClient {
	return &smsClient{
		http:       client,
		accountSID: cfg.AccountSID,
		authToken:  cfg.AuthToken,
		from:       cfg.FromNumber,
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
	}
}

func (c *smsClient) send(ctx context.Context, to, body string) error {
	if c.accountSID == "" || c.authToken == "" {
		return ErrNotConfigured
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetBasicAuth(c.accountSID, c.authToken).
		SetFormData(map[string]string{
			"To":   to,
			"From": c.from,
			"Body": body,
		}).
		Post(fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", c.baseURL, c.accountSID))
	if err != nil {
		return fmt.Errorf("twilio request: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("twilio responded %d: %s", resp.StatusCode(), resp.String())
	}

	return nil
}

func passwordResetSMS(token string) string {
	return fmt.Sprintf("Your password reset code is %s", token)
}
