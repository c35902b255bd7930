package push

import "errors"

var (
	// Credential presence errors - each renders a distinct diagnostic so callers
	// can tell exactly which env var to fix
	ErrAccessKeyMissing = errors.New("AWS_ACCESS_KEY_ID env var is missing")
	ErrSecretKeyMissing = errors.New("AWS_SECRET_ACCESS_KEY env var is missing")
	ErrBothKeysMissing  = errors.New("both AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY env vars are missing")

	// Operation errors - wrapped around the underlying SNS failure
	ErrFailedToRegisterDevice = errors.New("failed to register device with SNS")
	ErrFailedToPublish        = errors.New("failed to publish push notification")

	// Configuration errors
	ErrInvalidConfig       = errors.New("invalid configuration")
	ErrFailedToLoadConfig  = errors.New("failed to load AWS config")
	ErrFailedToParseConfig = errors.New("failed to parse environment variables into config")
)
