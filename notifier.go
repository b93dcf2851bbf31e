package client

import "context"

// Notification is a user-facing message raised for a classified failure.
type Notification struct {
	Kind    ErrorKind
	Message string
}

// Notifier receives notifications for failed requests. It is a side channel
// only: the failure is still returned to the caller of the endpoint method.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// NotifierFunc adapts a plain function to [Notifier].
type NotifierFunc func(ctx context.Context, n Notification)

func (f NotifierFunc) Notify(ctx context.Context, n Notification) { f(ctx, n) }

// NoopNotifier discards all notifications. It is the default.
type NoopNotifier struct{}

func (NoopNotifier) Notify(context.Context, Notification) {}

// LogNotifier writes notifications to a [RequestLogger] at warn level.
type LogNotifier struct {
	Logger RequestLogger
}

func (n LogNotifier) Notify(_ context.Context, note Notification) {
	if n.Logger == nil {
		return
	}
	n.Logger.Warnf("%s: %s", note.Kind, note.Message)
}

var notificationMessages = map[ErrorKind]string{
	KindTimeout:            "Request timed out. Please try again.",
	KindNetworkUnavailable: "Network error. Please check your connection.",
	KindUnauthorized:       "Unauthorized. Please check your API key.",
	KindForbidden:          "Access forbidden. You do not have permission to perform this action.",
	KindServerError:        "Server error. Please try again later.",
}

// NotificationMessage returns the fixed message for kind, or "" when kind
// does not notify.
func NotificationMessage(kind ErrorKind) string {
	return notificationMessages[kind]
}
