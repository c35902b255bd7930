package push

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/smithy-go"
)

// SNSAPI defines the interface for the SNS operations used by Client.
type SNSAPI interface {
	CreatePlatformEndpoint(ctx context.Context, params *sns.CreatePlatformEndpointInput, optFns ...func(*sns.Options)) (*sns.CreatePlatformEndpointOutput, error)
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// Client sends mobile push notifications through Amazon SNS.
// It is stateless beyond the SDK handle and safe for concurrent use.
// No retry, timeout, or caching policy is added on top of the SDK's own.
type Client struct {
	client SNSAPI
	logger *slog.Logger
}

var _ Sender = (*Client)(nil)

// Option defines a function that configures the Client.
type Option func(*clientOptions)

type clientOptions struct {
	snsClient        SNSAPI
	httpClient       *http.Client
	awsConfigOptions []func(*config.LoadOptions) error
	snsClientOptions []func(*sns.Options)
	logger           *slog.Logger
}

// WithSNSClient sets a custom pre-configured SNS client.
// Useful for testing with mocks.
func WithSNSClient(client SNSAPI) Option {
	return func(o *clientOptions) {
		o.snsClient = client
	}
}

// WithHTTPClient sets a custom HTTP client for SNS requests.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = client
	}
}

// WithAWSConfigOption adds a custom AWS config option.
func WithAWSConfigOption(option func(*config.LoadOptions) error) Option {
	return func(o *clientOptions) {
		o.awsConfigOptions = append(o.awsConfigOptions, option)
	}
}

// WithSNSClientOption adds a custom SNS client option.
func WithSNSClientOption(option func(*sns.Options)) Option {
	return func(o *clientOptions) {
		o.snsClientOptions = append(o.snsClientOptions, option)
	}
}

// WithLogger enables debug logging of register and send calls.
// Logging is disabled when not set.
func WithLogger(logger *slog.Logger) Option {
	return func(o *clientOptions) {
		o.logger = logger
	}
}

// NewChecked creates a new client for a specific region.
//
// It requires that the AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY
// environment variables are set and returns an error naming whichever
// of them is missing. Only presence is checked, not validity; no
// network call is made during construction.
func NewChecked(ctx context.Context, cfg Config, opts ...Option) (*Client, error) {
	if err := checkCredentials(); err != nil {
		return nil, err
	}
	if cfg.Region == "" {
		return nil, fmt.Errorf("%w: Region is required", ErrInvalidConfig)
	}

	options := &clientOptions{}
	for _, opt := range opts {
		opt(options)
	}

	var client SNSAPI
	if options.snsClient != nil {
		client = options.snsClient
	} else {
		awsOptions := []func(*config.LoadOptions) error{
			config.WithRegion(cfg.Region),
		}

		if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
			awsOptions = append(awsOptions,
				config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
					cfg.AccessKeyID,
					cfg.SecretAccessKey,
					"",
				)),
			)
		}

		if options.httpClient != nil {
			awsOptions = append(awsOptions, config.WithHTTPClient(options.httpClient))
		}

		awsOptions = append(awsOptions, options.awsConfigOptions...)

		awsConfig, err := config.LoadDefaultConfig(ctx, awsOptions...)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFailedToLoadConfig, err)
		}

		client = sns.NewFromConfig(awsConfig, func(o *sns.Options) {
			for _, opt := range options.snsClientOptions {
				opt(o)
			}
		})
	}

	return &Client{
		client: client,
		logger: options.logger,
	}, nil
}

// MustNewChecked creates a client that panics on error.
// Follows the fail-fast pattern for initialization at startup.
func MustNewChecked(ctx context.Context, cfg Config, opts ...Option) *Client {
	client, err := NewChecked(ctx, cfg, opts...)
	if err != nil {
		panic(err)
	}
	return client
}

// checkCredentials verifies both credential env vars are present.
// The three failure cases are kept distinct so callers can see exactly
// which value to supply.
func checkCredentials() error {
	_, hasID := os.LookupEnv("AWS_ACCESS_KEY_ID")
	_, hasKey := os.LookupEnv("AWS_SECRET_ACCESS_KEY")

	switch {
	case hasID && hasKey:
		return nil
	case hasID:
		return ErrSecretKeyMissing
	case hasKey:
		return ErrAccessKeyMissing
	default:
		return ErrBothKeysMissing
	}
}

// RegisterDevice registers a device token with SNS and returns its
// endpoint ARN.
//
// SNS guarantees idempotency: registering an already-known token under
// the same platform application returns the existing endpoint ARN, so
// no local deduplication is done. The platform application ARN comes
// from the SNS dashboard.
func (c *Client) RegisterDevice(ctx context.Context, token, platformApplicationArn string) (EndpointArn, error) {
	resp, err := c.client.CreatePlatformEndpoint(ctx, &sns.CreatePlatformEndpointInput{
		PlatformApplicationArn: aws.String(platformApplicationArn),
		Token:                  aws.String(token),
	})
	if err != nil {
		return "", wrapSNSError(ErrFailedToRegisterDevice, err)
	}

	// SNS contractually returns an endpoint ARN on success. A response
	// without one is unrecoverable; fail fast rather than hand back an
	// empty identifier.
	if resp.EndpointArn == nil {
		panic("push: CreatePlatformEndpoint response has no endpoint ARN")
	}

	arn := EndpointArn(*resp.EndpointArn)
	if c.logger != nil {
		c.logger.DebugContext(ctx, "registered device endpoint",
			slog.String("endpoint_arn", arn),
			slog.String("platform_application_arn", platformApplicationArn),
		)
	}
	return arn, nil
}

// SendPush sends a push notification to a specific endpoint ARN.
func (c *Client) SendPush(ctx context.Context, p Push, endpointArn EndpointArn) error {
	payload, err := p.SNSMessage()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToPublish, err)
	}

	resp, err := c.client.Publish(ctx, &sns.PublishInput{
		Message:          aws.String(payload),
		MessageStructure: aws.String("json"),
		TargetArn:        aws.String(endpointArn),
	})
	if err != nil {
		return wrapSNSError(ErrFailedToPublish, err)
	}

	if c.logger != nil {
		c.logger.DebugContext(ctx, "published push notification",
			slog.String("endpoint_arn", endpointArn),
			slog.String("message_id", aws.ToString(resp.MessageId)),
		)
	}
	return nil
}

// wrapSNSError tags an SNS failure with its operation kind, surfacing
// the API error code when the SDK provides one. The underlying error
// stays in the chain for errors.Is/errors.As, and the message renders
// on a single line.
func wrapSNSError(kind, err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("%w: %s: %w", kind, apiErr.ErrorCode(), err)
	}
	return fmt.Errorf("%w: %w", kind, err)
}
