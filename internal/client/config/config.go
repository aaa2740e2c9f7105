package config

import "time"

// Config holds runtime settings for the wpcloud CLI.
//
// Fields:
//   - ServerEndpointAddr: base URL of the backend HTTP API.
//   - CallbackAddr: local bind address for the payment confirmation page.
//   - StateDSN: SQLite DSN for the local state database.
//   - OnlineCheckInterval: how often the client probes server reachability.
type Config struct {
	ServerEndpointAddr  string
	CallbackAddr        string
	StateDSN            string
	OnlineCheckInterval time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "http://127.0.0.1:8080"
	c.CallbackAddr = "127.0.0.1:8484"
	c.StateDSN = "wpcloud.db"
	c.OnlineCheckInterval = 3 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
