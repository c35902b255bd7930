package push

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DevSender implements Sender for local development.
// It saves push payloads as JSON files to a specified directory
// instead of sending them through SNS, and derives deterministic
// endpoint identifiers from the device token so no AWS credentials
// are needed.
type DevSender struct {
	dir string
}

// NewDevSender creates a development sender that saves pushes to disk.
// The directory will be created if it doesn't exist.
func NewDevSender(dir string) Sender {
	return &DevSender{dir: dir}
}

// pushMetadata contains the push data saved to JSON.
type pushMetadata struct {
	Timestamp   string          `json:"timestamp"`
	EndpointArn string          `json:"endpoint_arn"`
	Envelope    json.RawMessage `json:"envelope"`
}

// RegisterDevice derives a stable fake endpoint ARN from the token and
// platform application ARN. The same inputs always map to the same
// identifier, matching the idempotency of real registration.
func (d *DevSender) RegisterDevice(ctx context.Context, token, platformApplicationArn string) (EndpointArn, error) {
	sum := sha256.Sum256([]byte(platformApplicationArn + ":" + token))
	return EndpointArn(fmt.Sprintf("arn:aws:sns:dev:000000000000:endpoint/dev/%x", sum[:8])), nil
}

// SendPush saves the SNS envelope and metadata as a JSON file in the
// configured directory.
func (d *DevSender) SendPush(ctx context.Context, p Push, endpointArn EndpointArn) error {
	payload, err := p.SNSMessage()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToPublish, err)
	}

	if err := os.MkdirAll(d.dir, 0755); err != nil {
		return fmt.Errorf("%w: failed to create directory: %v", ErrFailedToPublish, err)
	}

	now := time.Now()
	metadata := pushMetadata{
		Timestamp:   now.Format(time.RFC3339),
		EndpointArn: endpointArn,
		Envelope:    json.RawMessage(payload),
	}

	jsonData, err := json.MarshalIndent(metadata, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: failed to marshal metadata: %v", ErrFailedToPublish, err)
	}

	filename := fmt.Sprintf("%s_push.json", now.Format("2006_01_02_150405.000000"))
	if err := os.WriteFile(filepath.Join(d.dir, filename), jsonData, 0644); err != nil {
		return fmt.Errorf("%w: failed to write JSON file: %v", ErrFailedToPublish, err)
	}

	return nil
}
