package config

import (
	"os"
	"time"
)

// parseEnv overlays configuration values from environment variables.
// Unset variables leave the current value untouched. SESSION_VALIDITY
// accepts Go duration syntax ("72h"); an unparsable value panics, the
// same way a broken JSON file does.
func parseEnv(config *Config) {
	setIfPresent := func(key string, dst *string) {
		if v, ok := os.LookupEnv(key); ok {
			*dst = v
		}
	}

	setIfPresent("ADDRESS", &config.EndpointAddr)
	setIfPresent("DATABASE_DSN", &config.DatabaseDSN)
	setIfPresent("SECRET_KEY", &config.SecretKey)
	setIfPresent("ENVIRONMENT", &config.Environment)
	setIfPresent("CLIENT_BASE_URL", &config.ClientBaseURL)
	setIfPresent("SMTP_ADDR", &config.SMTPAddr)
	setIfPresent("SMTP_FROM", &config.SMTPFrom)
	setIfPresent("S3_ROOT_USER", &config.S3RootUser)
	setIfPresent("S3_ROOT_PASSWORD", &config.S3RootPassword)
	setIfPresent("S3_BUCKET", &config.S3Bucket)
	setIfPresent("S3_REGION", &config.S3Region)
	setIfPresent("S3_BASE_ENDPOINT", &config.S3BaseEndpoint)

	if v, ok := os.LookupEnv("SESSION_VALIDITY"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		config.SessionValidityDuration = d
	}
}
