package push_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/pushkit/pkg/push"
)

func TestLoadConfig(t *testing.T) {
	t.Run("loads from environment", func(t *testing.T) {
		t.Setenv("AWS_REGION", "eu-west-1")
		t.Setenv("AWS_ACCESS_KEY_ID", "test-key")
		t.Setenv("AWS_SECRET_ACCESS_KEY", "test-secret")

		cfg, err := push.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "eu-west-1", cfg.Region)
		assert.Equal(t, "test-key", cfg.AccessKeyID)
		assert.Equal(t, "test-secret", cfg.SecretAccessKey)
	})

	t.Run("credentials are optional at parse time", func(t *testing.T) {
		t.Setenv("AWS_REGION", "us-east-1")
		unsetEnv(t, "AWS_ACCESS_KEY_ID")
		unsetEnv(t, "AWS_SECRET_ACCESS_KEY")

		cfg, err := push.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "us-east-1", cfg.Region)
		assert.Empty(t, cfg.AccessKeyID)
		assert.Empty(t, cfg.SecretAccessKey)
	})

	t.Run("region is required", func(t *testing.T) {
		t.Setenv("AWS_REGION", "")
		require.NoError(t, os.Unsetenv("AWS_REGION"))

		_, err := push.LoadConfig()
		require.ErrorIs(t, err, push.ErrFailedToParseConfig)
	})
}
