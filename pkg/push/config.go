package push

import (
	"errors"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the SNS client configuration.
// Region selects which geographic SNS endpoint to use and is required.
// The credential fields are optional here: when both are set they are
// wired as a static credentials provider, otherwise the AWS SDK's
// default credential chain applies. NewChecked separately verifies
// that both credential env vars are present in the process
// environment before any client is built.
type Config struct {
	Region          string `env:"AWS_REGION,required"`
	AccessKeyID     string `env:"AWS_ACCESS_KEY_ID"`
	SecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY"`
}

var defaultEnvLoaded sync.Once

// LoadConfig loads a Config from the process environment.
// A .env file, if present, is loaded once per process first; a missing
// file is not an error.
func LoadConfig() (Config, error) {
	defaultEnvLoaded.Do(func() {
		_ = godotenv.Load()
	})

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrFailedToParseConfig, err)
	}
	return cfg, nil
}
