package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJson_Overlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"endpoint_addr_http": ":7070",
		"access_token_validity": "30m"
	}`), 0o600))

	oldArgs := os.Args
	os.Args = []string{"server", "-c", path}
	t.Cleanup(func() { os.Args = oldArgs })

	var c Config
	c.LoadDefaults()
	parseJson(&c)

	assert.Equal(t, ":7070", c.EndpointAddrHTTP)
	assert.Equal(t, 30*time.Minute, c.AccessTokenValidityDuration)
	// Fields absent from the file keep their defaults.
	assert.Equal(t, "secretKey", c.SecretKey)
}

func TestParseJson_NoFlag_NoOverlay(t *testing.T) {
	oldArgs := os.Args
	os.Args = []string{"server"}
	t.Cleanup(func() { os.Args = oldArgs })

	var c Config
	c.LoadDefaults()
	parseJson(&c)

	assert.Equal(t, ":8080", c.EndpointAddrHTTP)
}

func TestParseJson_MissingFile_Panics(t *testing.T) {
	oldArgs := os.Args
	os.Args = []string{"server", "-c", "/does/not/exist.json"}
	t.Cleanup(func() { os.Args = oldArgs })

	var c Config
	c.LoadDefaults()
	assert.Panics(t, func() { parseJson(&c) })
}
