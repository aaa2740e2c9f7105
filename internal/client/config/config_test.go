package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:8080", c.ServerEndpointAddr)
	assert.Equal(t, "127.0.0.1:8484", c.CallbackAddr)
	assert.Equal(t, "wpcloud.db", c.StateDSN)
	assert.Equal(t, 3*time.Second, c.OnlineCheckInterval)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	os.Args = []string{"cli"}
	defer func() { os.Args = origArgs }()

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://127.0.0.1:8080", cfg.ServerEndpointAddr)
	assert.Equal(t, 3*time.Second, cfg.OnlineCheckInterval)
}

func TestParseJson_Overlay(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.json")

	jc := JsonConfig{
		ServerEndpointAddr: "https://api.wpcloud.example",
		CallbackAddr:       "127.0.0.1:9999",
	}
	data, err := json.Marshal(jc)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(file, data, 0o600))

	origArgs := os.Args
	os.Args = []string{"cli", "-c", file}
	defer func() { os.Args = origArgs }()

	var cfg Config
	cfg.LoadDefaults()
	parseJson(&cfg)

	assert.Equal(t, "https://api.wpcloud.example", cfg.ServerEndpointAddr)
	assert.Equal(t, "127.0.0.1:9999", cfg.CallbackAddr)
	assert.Equal(t, "wpcloud.db", cfg.StateDSN, "empty fields must not override defaults")
}

func TestParseFlags_Overrides(t *testing.T) {
	origArgs := os.Args
	os.Args = []string{"cli", "-a", "http://other:8081", "-i", "10"}
	defer func() { os.Args = origArgs }()

	var cfg Config
	cfg.LoadDefaults()
	parseFlags(&cfg)

	assert.Equal(t, "http://other:8081", cfg.ServerEndpointAddr)
	assert.Equal(t, 10*time.Second, cfg.OnlineCheckInterval)
}
