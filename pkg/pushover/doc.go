// Package pushover composes and submits notifications to the Pushover
// message API.
//
// An Endpoint carries the API URI and application token, a Message carries
// one notification. Client.Submit validates both, form-encodes the message
// with Encode and POSTs it:
//
//	ep := pushover.NewEndpoint(token)
//	msg := pushover.NewMessage()
//	_ = msg.SetDestination(userKey)
//	_ = msg.SetBody("Build failed")
//	err := pushover.NewClient().Submit(ctx, ep, msg)
//
// Submission is a single blocking call. There is no retry, throttling or
// response parsing.
package pushover
