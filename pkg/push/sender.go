package push

import "context"

// Sender represents an interface for registering devices and sending
// push notifications through a provider.
type Sender interface {
	// RegisterDevice registers a raw device token against a platform
	// application and returns the endpoint identifier to send to.
	RegisterDevice(ctx context.Context, token, platformApplicationArn string) (EndpointArn, error)

	// SendPush delivers a push notification to a registered endpoint.
	SendPush(ctx context.Context, p Push, endpointArn EndpointArn) error
}
