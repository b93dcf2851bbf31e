package client

import (
	"context"
	"encoding/json"
	"net/http"
)

func (c *Client) EmailConfig(ctx context.Context) (*EmailConfigResponse, error) {
	api, _, err := c.transports()
	if err != nil {
		return nil, err
	}

	return decode[EmailConfigResponse](c.do(api.R().SetContext(ctx), http.MethodGet, "/api/email-config"))
}

// UpdateEmailConfig stores the mail-sending settings. sending_domain is
// omitted when empty.
func (c *Client) UpdateEmailConfig(ctx context.Context, cfg EmailConfig) (json.RawMessage, error) {
	api, _, err := c.transports()
	if err != nil {
		return nil, err
	}

	fields := map[string]string{
		"resend_api_key": cfg.ResendAPIKey,
		"from_email":     cfg.FromEmail,
	}
	if cfg.SendingDomain != "" {
		fields["sending_domain"] = cfg.SendingDomain
	}

	r := api.R().
		SetContext(ctx).
		SetMultipartFormData(fields)

	return opaque(c.do(r, http.MethodPost, "/api/email-config"))
}

// TestEmailConfig asks the backend to send a test message. Only non-empty
// fields are sent; at least one is required.
func (c *Client) TestEmailConfig(ctx context.Context, cfg EmailConfigTest) (json.RawMessage, error) {
	api, _, err := c.transports()
	if err != nil {
		return nil, err
	}

	fields := formFields(
		"resend_api_key", cfg.ResendAPIKey,
		"from_email", cfg.FromEmail,
		"sending_domain", cfg.SendingDomain,
		"test_email", cfg.TestEmail,
	)
	if len(fields) == 0 {
		return nil, ErrEmptyEmailConfigTest
	}

	r := api.R().
		SetContext(ctx).
		SetMultipartFormData(fields)

	return opaque(c.do(r, http.MethodPost, "/api/email-config/test"))
}
