package client

import (
	"context"
	"net/http"
)

// CreateUser registers a user. The request is sent as multipart form data
// over the unauthenticated transport; company_name is omitted when empty.
func (c *Client) CreateUser(ctx context.Context, req CreateUserRequest) (*User, error) {
	_, bare, err := c.transports()
	if err != nil {
		return nil, err
	}

	fields := map[string]string{
		"email":     req.Email,
		"full_name": req.FullName,
	}
	if req.CompanyName != "" {
		fields["company_name"] = req.CompanyName
	}

	r := bare.R().
		SetContext(ctx).
		SetMultipartFormData(fields)

	return decode[User](c.do(r, http.MethodPost, "/api/users"))
}

// Profile returns the user owning the stored API key.
func (c *Client) Profile(ctx context.Context) (*User, error) {
	api, _, err := c.transports()
	if err != nil {
		return nil, err
	}

	return decode[User](c.do(api.R().SetContext(ctx), http.MethodGet, "/api/user/profile"))
}
