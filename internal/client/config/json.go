package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/wpsaas/wpcloud/internal/flagx"
	"github.com/wpsaas/wpcloud/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "3s"
// or as integer nanoseconds. Empty fields leave the current Config values
// in place.
type JsonConfig struct {
	ServerEndpointAddr  string         `json:"server_endpoint_addr"`
	CallbackAddr        string         `json:"callback_addr"`
	StateDSN            string         `json:"state_dsn"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval"`
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

	if jc.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	}
	if jc.CallbackAddr != "" {
		cfg.CallbackAddr = jc.CallbackAddr
	}
	if jc.StateDSN != "" {
		cfg.StateDSN = jc.StateDSN
	}
	if jc.OnlineCheckInterval.Duration != 0 {
		cfg.OnlineCheckInterval = time.Duration(jc.OnlineCheckInterval.Duration)
	}
}
