// Package client provides an HTTP client for the gift-sending API.
//
// The client wraps [github.com/go-resty/resty/v2] with API key injection,
// failure classification and user-facing notifications, and exposes one
// typed method per backend operation.
//
// # Basic Usage
//
//	c := client.New("https://gifts.example.com",
//	    client.WithCredentialStore(store),
//	    client.WithNotifier(client.NotifierFunc(showToast)),
//	)
//
//	if err := c.Connect(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	defer c.Close()
//
//	res, err := c.InitiateGift(ctx, client.GiftRequest{
//	    RecipientEmail: "someone@example.com",
//	    Amount:         25,
//	})
//
// # Configuration
//
// All configuration is supplied as [Option] functions passed to [New].
// Invalid values are silently ignored and the default is retained;
// all configuration is validated when [Client.Connect] is called.
// Every request is bounded by a single timeout, 30 seconds unless
// [WithTimeout] says otherwise. Requests are never retried.
//
// # Authentication
//
// The API key lives in a [CredentialStore] and is read before every
// authenticated request, so [Client.SetAPIKey] and [Client.RemoveAPIKey]
// take effect on the next call. When no key is stored the X-API-Key header
// is left off and the backend decides whether to accept the request.
// [Client.HealthCheck] and [Client.CreateUser] never send the key.
// The credential package has memory, file and Redis backed stores.
//
// # Errors and Notifications
//
// Each request outcome is classified by [Classify]. Timeouts, network
// failures, 401, 403 and 5xx responses produce exactly one [Notification]
// on the configured [Notifier]; other outcomes produce none. In every case
// the endpoint method returns an [*Error] whose message is taken from the
// response's "detail" field, then its "message" field, then the transport
// error, then [FallbackMessage].
//
// # Logging
//
// Implement [RequestLogger] and supply it via [WithRequestLogger] to
// integrate with your logging library, or use [NewZerologLogger]. The
// default [NoopLogger] discards all log output. [WithDebug] dumps requests
// and responses, including the API key header, through the same logger.
package client
