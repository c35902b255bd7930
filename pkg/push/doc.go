// Package push provides a minimal client for sending iOS and Android
// push notifications through Amazon Simple Notification Service (SNS).
//
// The package does exactly two things: it registers a device token
// against an SNS platform application to obtain a stable endpoint ARN,
// and it builds the multi-platform JSON envelope for a push message
// and publishes it to that endpoint. Transport, authentication, and
// retry behavior are the AWS SDK's; nothing is added on top.
//
// # Usage
//
//	cfg, err := push.LoadConfig()
//	if err != nil {
//	    // Handle configuration error
//	}
//
//	client, err := push.NewChecked(ctx, cfg)
//	if err != nil {
//	    // AWS_ACCESS_KEY_ID and/or AWS_SECRET_ACCESS_KEY are missing
//	}
//
//	endpointArn, err := client.RegisterDevice(ctx,
//	    "123coi12j3vi12u3o1k23pb12e0jqpfw79g7w6fyi2o4jg293urf9q7ct9x1oi2h", // device token
//	    "arn:aws:sns:eu-west-1:000000000000:app/APNS/my-app",              // from the SNS dashboard
//	)
//
//	err = client.SendPush(ctx, push.NewAlert("Hello, World!", push.Badge(1)), endpointArn)
//
// Silent pushes wake an app for background work without showing an
// alert:
//
//	err = client.SendPush(ctx, push.NewSilent(nil), endpointArn)
//
// # Payload format
//
// SendPush publishes with SNS message structure "json": a four-key
// envelope (default, APNS, APNS_SANDBOX, GCM) whose platform values
// are themselves JSON documents serialized to strings. The sandbox
// payload always duplicates the production APNS payload. See
// Push.SNSMessage for the exact shapes.
//
// # Error Handling
//
// The package provides sentinel errors for programmatic handling:
//   - ErrAccessKeyMissing, ErrSecretKeyMissing, ErrBothKeysMissing:
//     credential env vars absent at construction
//   - ErrFailedToRegisterDevice: the CreatePlatformEndpoint call failed
//   - ErrFailedToPublish: the Publish call failed
//
// Operation errors wrap the underlying SNS failure, so the cause is
// preserved for display and for errors.Is/errors.As checks. No error
// is retried or swallowed.
//
// # Development
//
// DevSender satisfies the same Sender interface but writes payloads to
// disk and fabricates deterministic endpoint IDs, so applications can
// run without AWS credentials:
//
//	sender := push.NewDevSender("./push-output")
//	endpointArn, _ := sender.RegisterDevice(ctx, token, appArn)
//	err := sender.SendPush(ctx, push.NewAlert("Hi", nil), endpointArn)
package push
