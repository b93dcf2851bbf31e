package client

import (
	"context"
	"fmt"
	"sync"
	"testing"
)

type recordingLogger struct {
	mu    sync.Mutex
	warns []string
}

func (l *recordingLogger) Errorf(string, ...any) {}
func (l *recordingLogger) Debugf(string, ...any) {}

func (l *recordingLogger) Warnf(format string, v ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warns = append(l.warns, fmt.Sprintf(format, v...))
}

func TestNotificationMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind     ErrorKind
		expected string
	}{
		{KindTimeout, "Request timed out. Please try again."},
		{KindNetworkUnavailable, "Network error. Please check your connection."},
		{KindUnauthorized, "Unauthorized. Please check your API key."},
		{KindForbidden, "Access forbidden. You do not have permission to perform this action."},
		{KindServerError, "Server error. Please try again later."},
		{KindClientError, ""},
		{KindNone, ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.kind.String(), func(t *testing.T) {
			t.Parallel()

			if got := NotificationMessage(tt.kind); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestLogNotifier(t *testing.T) {
	t.Parallel()

	logger := &recordingLogger{}
	notifier := LogNotifier{Logger: logger}

	notifier.Notify(context.Background(), Notification{Kind: KindForbidden, Message: NotificationMessage(KindForbidden)})

	if len(logger.warns) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(logger.warns))
	}

	expected := "forbidden: Access forbidden. You do not have permission to perform this action."
	if logger.warns[0] != expected {
		t.Errorf("expected %q, got %q", expected, logger.warns[0])
	}

	// A notifier without a logger must not panic.
	LogNotifier{}.Notify(context.Background(), Notification{Kind: KindTimeout})
}

func TestNotifierFunc(t *testing.T) {
	t.Parallel()

	var got Notification
	var n Notifier = NotifierFunc(func(_ context.Context, note Notification) {
		got = note
	})

	n.Notify(context.Background(), Notification{Kind: KindServerError, Message: "m"})

	if got.Kind != KindServerError || got.Message != "m" {
		t.Errorf("unexpected notification: %+v", got)
	}
}
