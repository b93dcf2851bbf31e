package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"testing"

	"github.com/go-resty/resty/v2"
)

type timeoutError struct{}

func (timeoutError) Error() string   { return "i/o timeout" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

func responseWithStatus(status int) *resty.Response {
	return &resty.Response{RawResponse: &http.Response{StatusCode: status}}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	refused := &url.Error{Op: "Get", URL: "http://127.0.0.1:1", Err: &net.OpError{
		Op:  "dial",
		Net: "tcp",
		Err: errors.New("connection refused"),
	}}

	tests := []struct {
		name     string
		resp     *resty.Response
		err      error
		expected ErrorKind
	}{
		{"success", responseWithStatus(http.StatusOK), nil, KindNone},
		{"no content", responseWithStatus(http.StatusNoContent), nil, KindNone},
		{"client timeout", nil, &url.Error{Op: "Get", URL: "http://x", Err: timeoutError{}}, KindTimeout},
		{"deadline exceeded", nil, context.DeadlineExceeded, KindTimeout},
		{"timeout wins over status", responseWithStatus(http.StatusInternalServerError), context.DeadlineExceeded, KindTimeout},
		{"connection refused", nil, refused, KindNetworkUnavailable},
		{"empty response with error", &resty.Response{}, refused, KindNetworkUnavailable},
		{"canceled", nil, context.Canceled, KindUnknown},
		{"credential failure", nil, fmt.Errorf("%w: %w", ErrCredentialUnavailable, errors.New("boom")), KindUnknown},
		{"unauthorized", responseWithStatus(http.StatusUnauthorized), nil, KindUnauthorized},
		{"forbidden", responseWithStatus(http.StatusForbidden), nil, KindForbidden},
		{"internal server error", responseWithStatus(http.StatusInternalServerError), nil, KindServerError},
		{"gateway timeout status", responseWithStatus(http.StatusGatewayTimeout), nil, KindServerError},
		{"not found", responseWithStatus(http.StatusNotFound), nil, KindClientError},
		{"bad request", responseWithStatus(http.StatusBadRequest), nil, KindClientError},
		{"wrapped response error", nil, &resty.ResponseError{Response: responseWithStatus(http.StatusForbidden), Err: errors.New("hook failed")}, KindForbidden},
		{"body cut off after 200", nil, &resty.ResponseError{Response: responseWithStatus(http.StatusOK), Err: io.ErrUnexpectedEOF}, KindNetworkUnavailable},
		{"body cut off after redirect status", responseWithStatus(http.StatusFound), io.ErrUnexpectedEOF, KindNetworkUnavailable},
		{"body cut off after 500", nil, &resty.ResponseError{Response: responseWithStatus(http.StatusInternalServerError), Err: io.ErrUnexpectedEOF}, KindServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Classify(tt.resp, tt.err); got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestErrorKind_Notifies(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind     ErrorKind
		expected bool
	}{
		{KindNone, false},
		{KindTimeout, true},
		{KindNetworkUnavailable, true},
		{KindUnauthorized, true},
		{KindForbidden, true},
		{KindServerError, true},
		{KindClientError, false},
		{KindUnknown, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.kind.String(), func(t *testing.T) {
			t.Parallel()

			if got := tt.kind.Notifies(); got != tt.expected {
				t.Errorf("expected Notifies()=%v, got %v", tt.expected, got)
			}

			if msg := NotificationMessage(tt.kind); (msg != "") != tt.expected {
				t.Errorf("expected message presence=%v, got %q", tt.expected, msg)
			}
		})
	}
}

func TestErrorKind_String(t *testing.T) {
	t.Parallel()

	if KindNetworkUnavailable.String() != "network_unavailable" {
		t.Errorf("unexpected name %q", KindNetworkUnavailable.String())
	}

	if ErrorKind(99).String() != "unknown" {
		t.Errorf("expected out of range kind to be unknown, got %q", ErrorKind(99).String())
	}
}
