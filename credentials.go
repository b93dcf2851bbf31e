package client

import (
	"context"
	"fmt"
)

// CredentialStore persists the API key attached to authenticated requests.
// Get returns ok=false when no key is stored. Implementations live in the
// credential package.
type CredentialStore interface {
	Get(ctx context.Context) (key string, ok bool, err error)
	Set(ctx context.Context, key string) error
	Remove(ctx context.Context) error
}

// SetAPIKey stores key. The next authenticated request picks it up.
func (c *Client) SetAPIKey(ctx context.Context, key string) error {
	if c == nil {
		return ErrNilClient
	}

	return c.options.credentialStore.Set(ctx, key)
}

// APIKey returns the stored key, or ok=false when none is stored.
func (c *Client) APIKey(ctx context.Context) (string, bool, error) {
	if c == nil {
		return "", false, ErrNilClient
	}

	return c.options.credentialStore.Get(ctx)
}

// RemoveAPIKey deletes the stored key. Later requests go out unauthenticated.
func (c *Client) RemoveAPIKey(ctx context.Context) error {
	if c == nil {
		return ErrNilClient
	}

	return c.options.credentialStore.Remove(ctx)
}

func (c *Client) lookupAPIKey(ctx context.Context) (string, error) {
	key, ok, err := c.options.credentialStore.Get(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCredentialUnavailable, err)
	}

	if !ok {
		return "", nil
	}

	return key, nil
}
