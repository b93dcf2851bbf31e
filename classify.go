package client

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// ErrorKind is the category of a request outcome as seen by [Classify].
type ErrorKind int

const (
	// KindNone is a completed request with a non-error status.
	KindNone ErrorKind = iota
	KindTimeout
	KindNetworkUnavailable
	KindUnauthorized
	KindForbidden
	KindServerError
	// KindClientError covers 4xx statuses other than 401 and 403.
	KindClientError
	// KindUnknown covers caller cancellation, credential store failures and
	// 2xx bodies that could not be decoded.
	KindUnknown
)

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindTimeout:
		return "timeout"
	case KindNetworkUnavailable:
		return "network_unavailable"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindServerError:
		return "server_error"
	case KindClientError:
		return "client_error"
	default:
		return "unknown"
	}
}

// Notifies reports whether k is one of the five kinds that produce a
// user-facing notification.
func (k ErrorKind) Notifies() bool {
	switch k {
	case KindTimeout, KindNetworkUnavailable, KindUnauthorized, KindForbidden, KindServerError:
		return true
	default:
		return false
	}
}

// Classify maps the outcome of a single request to an [ErrorKind]. It has no
// side effects. Buckets are tested in priority order: timeout, network,
// 401, 403, 5xx.
func Classify(resp *resty.Response, err error) ErrorKind {
	if err != nil {
		var respErr *resty.ResponseError
		if errors.As(err, &respErr) && respErr.Response != nil {
			resp = respErr.Response
		}
	}

	status := 0
	if resp != nil {
		status = resp.StatusCode()
	}

	switch {
	case err != nil && isTimeout(err):
		return KindTimeout
	case err != nil && (errors.Is(err, context.Canceled) || errors.Is(err, ErrCredentialUnavailable)):
		return KindUnknown
	case err != nil && status < 400:
		// No status, or the connection broke while the body was being read.
		return KindNetworkUnavailable
	case status == http.StatusUnauthorized:
		return KindUnauthorized
	case status == http.StatusForbidden:
		return KindForbidden
	case status >= 500:
		return KindServerError
	case status >= 400:
		return KindClientError
	default:
		return KindNone
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error

	return errors.As(err, &netErr) && netErr.Timeout()
}
