package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// Client talks to the gift-sending backend. Create it with [New] and call
// [Client.Connect] before any endpoint method. A connected Client is safe
// for concurrent use.
type Client struct {
	baseURL string
	options *Options

	mu        sync.Mutex
	connected bool
	api       *resty.Client // attaches the stored API key
	bare      *resty.Client // health check and user creation
}

func New(baseURL string, opts ...Option) *Client {
	options := newClientOptions()

	for _, o := range opts {
		o(options)
	}

	return &Client{
		baseURL: baseURL,
		options: options,
	}
}

// Connect validates the options, builds the transports and pings the
// backend. It is a no-op once it has succeeded.
func (c *Client) Connect(ctx context.Context) error {
	if c == nil {
		return ErrNilClient
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.connected {
		return nil
	}

	if c.baseURL == "" {
		return errors.New("base URL must be set")
	}

	if err := c.options.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	c.bare = c.newRestyClient()
	c.api = c.newRestyClient().OnBeforeRequest(c.attachCredential)

	if _, err := c.healthCheck(ctx, c.bare); err != nil {
		return fmt.Errorf("failed to ping gift API: %w", err)
	}

	c.connected = true

	return nil
}

// Close releases idle connections and disconnects the client. Endpoint
// calls fail with [ErrNotConnected] until Connect is called again. It is
// safe to call more than once.
func (c *Client) Close() error {
	if c == nil {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.connected {
		return nil
	}

	for _, rc := range []*resty.Client{c.api, c.bare} {
		rc.GetClient().CloseIdleConnections()
	}

	c.connected = false
	c.api, c.bare = nil, nil

	return nil
}

// HealthCheck calls the backend root. No API key is sent.
func (c *Client) HealthCheck(ctx context.Context) (json.RawMessage, error) {
	_, bare, err := c.transports()
	if err != nil {
		return nil, err
	}

	return c.healthCheck(ctx, bare)
}

func (c *Client) healthCheck(ctx context.Context, bare *resty.Client) (json.RawMessage, error) {
	return opaque(c.do(bare.R().SetContext(ctx), http.MethodGet, "/"))
}

func (c *Client) newRestyClient() *resty.Client {
	rc := resty.New().
		SetBaseURL(c.baseURL).
		SetTimeout(c.options.timeout).
		SetRetryCount(0).
		SetHeaders(c.options.requestHeaders).
		SetLogger(c.options.requestLogger).
		SetDebug(c.options.debug)

	rc.OnBeforeRequest(tagRequest)
	rc.OnAfterResponse(c.observeResponse)
	rc.OnError(c.observeError)

	return rc
}

func (c *Client) transports() (api, bare *resty.Client, err error) {
	if c == nil {
		return nil, nil, ErrNilClient
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.connected {
		return nil, nil, ErrNotConnected
	}

	return c.api, c.bare, nil
}

// do executes req and normalizes any failure into an [*Error].
func (c *Client) do(req *resty.Request, method, path string) (*resty.Response, error) {
	resp, err := req.Execute(method, path)
	if err != nil || !resp.IsSuccess() {
		return resp, newError(req.Context(), resp, err, c.options.timeout)
	}

	return resp, nil
}

func tagRequest(_ *resty.Client, req *resty.Request) error {
	req.SetHeader(RequestIDHeader, uuid.NewString())
	return nil
}

// attachCredential reads the store on every request so a changed key takes
// effect without reconnecting.
func (c *Client) attachCredential(_ *resty.Client, req *resty.Request) error {
	key, err := c.lookupAPIKey(req.Context())
	if err != nil {
		return err
	}

	if key != "" {
		req.SetHeader(APIKeyHeader, key)
	}

	return nil
}

// observeResponse and observeError together see every request exactly once:
// resty runs after-response hooks only when the transport succeeded, and
// error hooks only when it did not.
func (c *Client) observeResponse(_ *resty.Client, resp *resty.Response) error {
	c.observe(resp.Request.Context(), resp, nil)
	return nil
}

func (c *Client) observeError(req *resty.Request, err error) {
	c.observe(req.Context(), nil, err)
}

func (c *Client) observe(ctx context.Context, resp *resty.Response, err error) {
	kind := Classify(resp, err)
	requestsTotal.WithLabelValues(kind.String()).Inc()

	if !kind.Notifies() {
		return
	}

	notificationsTotal.WithLabelValues(kind.String()).Inc()
	c.options.notifier.Notify(ctx, Notification{Kind: kind, Message: NotificationMessage(kind)})
}

func decode[T any](resp *resty.Response, err error) (*T, error) {
	if err != nil {
		return nil, err
	}

	var out T
	if len(resp.Body()) == 0 {
		return &out, nil
	}

	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, &Error{
			Kind:       KindUnknown,
			StatusCode: resp.StatusCode(),
			Message:    fmt.Sprintf("failed to decode response: %v", err),
		}
	}

	return &out, nil
}

func opaque(resp *resty.Response, err error) (json.RawMessage, error) {
	if err != nil {
		return nil, err
	}

	if len(resp.Body()) == 0 {
		return nil, nil
	}

	return json.RawMessage(resp.Body()), nil
}

// formFields drops empty values so optional multipart fields are omitted.
func formFields(kv ...string) map[string]string {
	fields := make(map[string]string, len(kv)/2)

	for i := 0; i+1 < len(kv); i += 2 {
		if kv[i+1] != "" {
			fields[kv[i]] = kv[i+1]
		}
	}

	return fields
}
