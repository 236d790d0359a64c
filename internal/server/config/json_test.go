package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJson_OverlaysFileValues(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	file := filepath.Join(t.TempDir(), "config.json")
	body := `{
		"endpoint_addr_http": ":3000",
		"database_dsn": "postgres://u:p@db:5432/notes",
		"secret_key": "fromfile",
		"mirror_enabled": true,
		"mirror_debounce": "750ms",
		"mirror_timeout": "3s",
		"s3_bucket": "file-bucket"
	}`
	require.NoError(t, os.WriteFile(file, []byte(body), 0o600))

	os.Args = []string{"server", "-c", file}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, ":3000", cfg.EndpointAddrHTTP)
	assert.Equal(t, "postgres://u:p@db:5432/notes", cfg.DatabaseDSN)
	assert.Equal(t, "fromfile", cfg.SecretKey)
	assert.True(t, cfg.MirrorEnabled)
	assert.Equal(t, 750*time.Millisecond, cfg.MirrorDebounce)
	assert.Equal(t, 3*time.Second, cfg.MirrorTimeout)
	assert.Equal(t, "file-bucket", cfg.S3Bucket)
}

func TestParseJson_NoFlagLeavesConfigUntouched(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"server"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, ":8080", cfg.EndpointAddrHTTP)
}

func TestParseJson_InvalidFilePanics(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	file := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(file, []byte("{not json"), 0o600))
	os.Args = []string{"server", "-c", file}

	cfg := &Config{}
	cfg.LoadDefaults()
	assert.Panics(t, func() { parseJson(cfg) })
}
