package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// FallbackMessage is used when a failure carries no usable message.
const FallbackMessage = "An unexpected error occurred"

var (
	ErrNilClient    = errors.New("gift client is nil")
	ErrNotConnected = errors.New("client not connected - call Connect() first")

	// ErrCredentialUnavailable is wrapped around credential store failures
	// that abort a request before it is sent.
	ErrCredentialUnavailable = errors.New("credential unavailable")

	ErrEmptyEmailConfigTest = errors.New("email config test needs at least one field")
)

// Error is the single error shape returned by every endpoint method. Only
// the message survives; the server's structured error payload is dropped.
type Error struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return e.Message
}

// IsKind reports whether err is an [*Error] of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == kind
}

// newError normalizes a failed request. The message is taken from, in order:
// the body's "detail" field, the body's "message" field, the transport
// message, and finally FallbackMessage.
func newError(ctx context.Context, resp *resty.Response, err error, timeout time.Duration) *Error {
	kind := Classify(resp, err)

	status := 0
	var body []byte
	if resp != nil {
		status = resp.StatusCode()
		body = resp.Body()
	}

	msg := messageFromBody(body)
	if msg == "" {
		msg = transportMessage(ctx, kind, status, err, timeout)
	}
	if msg == "" {
		msg = FallbackMessage
	}

	return &Error{Kind: kind, StatusCode: status, Message: msg}
}

func messageFromBody(body []byte) string {
	if len(bytes.TrimSpace(body)) == 0 {
		return ""
	}

	var payload struct {
		Detail  json.RawMessage `json:"detail"`
		Message json.RawMessage `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}

	if msg := rawMessage(payload.Detail); msg != "" {
		return msg
	}

	return rawMessage(payload.Message)
}

// rawMessage returns a JSON string value as-is and any other non-null value
// as compact JSON.
func rawMessage(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}

	return buf.String()
}

// transportMessage reports the caller's own deadline as the context error,
// since the client timeout did not fire in that case.
func transportMessage(ctx context.Context, kind ErrorKind, status int, err error, timeout time.Duration) string {
	switch {
	case kind == KindTimeout && ctx != nil && ctx.Err() != nil:
		return ctx.Err().Error()
	case kind == KindTimeout:
		return fmt.Sprintf("timeout of %dms exceeded", timeout.Milliseconds())
	case err != nil:
		var respErr *resty.ResponseError
		if errors.As(err, &respErr) && respErr.Err != nil {
			return respErr.Err.Error()
		}
		return err.Error()
	case status != 0:
		return fmt.Sprintf("request failed with status code %d", status)
	default:
		return ""
	}
}
