package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/wpsaas/wpcloud/internal/flagx"
	"github.com/wpsaas/wpcloud/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify lifetimes either as strings like "15m"
// or as integer nanoseconds. Empty fields leave the current Config values
// in place.
type JsonConfig struct {
	EndpointAddrHTTP             string         `json:"endpoint_addr_http"`
	DatabaseDSN                  string         `json:"database_dsn"`
	SecretKey                    string         `json:"secret_key"`
	WebhookSecret                string         `json:"webhook_secret"`
	FrontendURL                  string         `json:"frontend_url"`
	AccessTokenValidityDuration  timex.Duration `json:"access_token_validity"`
	RefreshTokenValidityDuration timex.Duration `json:"refresh_token_validity"`
	S3RootUser                   string         `json:"s3_root_user"`
	S3RootPassword               string         `json:"s3_root_password"`
	S3Bucket                     string         `json:"s3_bucket"`
	S3Region                     string         `json:"s3_region"`
	S3BaseEndpoint               string         `json:"s3_base_endpoint"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// the -c/-config flags. No flag, no overlay. Read or unmarshal errors panic
// (caller should recover if desired).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.EndpointAddrHTTP != "" {
		cfg.EndpointAddrHTTP = jc.EndpointAddrHTTP
	}
	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.SecretKey != "" {
		cfg.SecretKey = jc.SecretKey
	}
	if jc.WebhookSecret != "" {
		cfg.WebhookSecret = jc.WebhookSecret
	}
	if jc.FrontendURL != "" {
		cfg.FrontendURL = jc.FrontendURL
	}
	if jc.AccessTokenValidityDuration.Duration != 0 {
		cfg.AccessTokenValidityDuration = time.Duration(jc.AccessTokenValidityDuration.Duration)
	}
	if jc.RefreshTokenValidityDuration.Duration != 0 {
		cfg.RefreshTokenValidityDuration = time.Duration(jc.RefreshTokenValidityDuration.Duration)
	}
	if jc.S3RootUser != "" {
		cfg.S3RootUser = jc.S3RootUser
	}
	if jc.S3RootPassword != "" {
		cfg.S3RootPassword = jc.S3RootPassword
	}
	if jc.S3Bucket != "" {
		cfg.S3Bucket = jc.S3Bucket
	}
	if jc.S3Region != "" {
		cfg.S3Region = jc.S3Region
	}
	if jc.S3BaseEndpoint != "" {
		cfg.S3BaseEndpoint = jc.S3BaseEndpoint
	}
}
