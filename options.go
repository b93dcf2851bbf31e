package client

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/peteraglen/gift-sender-go-client/credential"
)

const (
	// DefaultTimeout bounds every request issued by [Client].
	DefaultTimeout = 30 * time.Second

	// APIKeyHeader carries the stored credential on authenticated requests.
	APIKeyHeader = "X-API-Key"

	// RequestIDHeader carries a random identifier for each outgoing request.
	RequestIDHeader = "X-Request-ID"
)

type Option func(*Options)

type Options struct {
	timeout         time.Duration
	requestLogger   RequestLogger
	notifier        Notifier
	credentialStore CredentialStore
	requestHeaders  map[string]string
	debug           bool
}

func newClientOptions() *Options {
	return &Options{
		timeout:         DefaultTimeout,
		requestLogger:   &NoopLogger{},
		notifier:        NoopNotifier{},
		credentialStore: credential.NewMemoryStore(),
		requestHeaders: map[string]string{
			"Accept": "application/json",
		},
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(o *Options) {
		if timeout >= time.Millisecond {
			o.timeout = timeout
		}
	}
}

func WithRequestLogger(logger RequestLogger) Option {
	return func(o *Options) {
		if logger != nil {
			o.requestLogger = logger
		}
	}
}

// WithNotifier sets the sink for user-facing failure notifications.
func WithNotifier(notifier Notifier) Option {
	return func(o *Options) {
		if notifier != nil {
			o.notifier = notifier
		}
	}
}

// WithCredentialStore sets the store the API key is read from before each
// authenticated request.
func WithCredentialStore(store CredentialStore) Option {
	return func(o *Options) {
		if store != nil {
			o.credentialStore = store
		}
	}
}

// WithAPIKey seeds a fresh in-memory credential store with key. An empty
// key is ignored.
func WithAPIKey(key string) Option {
	return func(o *Options) {
		if key != "" {
			o.credentialStore = credential.NewMemoryStoreWithKey(key)
		}
	}
}

func WithRequestHeader(header, value string) Option {
	return func(o *Options) {
		header = strings.TrimSpace(header)

		if header == "" || isProtectedHeader(header) {
			return
		}

		o.requestHeaders[http.CanonicalHeaderKey(header)] = value
	}
}

// WithDebug enables request and response dumps through the request logger.
func WithDebug(enabled bool) Option {
	return func(o *Options) {
		o.debug = enabled
	}
}

func isProtectedHeader(header string) bool {
	for _, h := range []string{"Content-Type", "Accept", APIKeyHeader, RequestIDHeader} {
		if strings.EqualFold(header, h) {
			return true
		}
	}

	return false
}

func (o *Options) Validate() error {
	if o.timeout < time.Millisecond {
		return errors.New("timeout must be at least 1ms")
	}

	if o.timeout > 5*time.Minute {
		return fmt.Errorf("timeout must not exceed %v", 5*time.Minute)
	}

	if o.requestLogger == nil {
		return errors.New("requestLogger must not be nil")
	}

	if o.notifier == nil {
		return errors.New("notifier must not be nil")
	}

	if o.credentialStore == nil {
		return errors.New("credentialStore must not be nil")
	}

	return nil
}
