package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalConfig = `
[upstream]
url = "https://parking-api.example.com/api"
uploads_url = "https://parking-api.example.com/uploads"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 10, cfg.Upstream.Timeout)
	assert.True(t, cfg.Fallback.TreatEmptyAsUnavailable)
	assert.False(t, cfg.Database.Enabled)
	assert.Equal(t, "@every 30s", cfg.Monitor.Schedule)
	assert.Equal(t, "info", cfg.Logs.Level)
}

func TestLoad_FileValues(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig+`
[server]
http_port = 9090
cors_origins = ["http://localhost:3000"]
timezone = "UTC"

[fallback]
treat_empty_as_unavailable = false

[database]
enabled = true
host = "localhost"
user = "portal"
dbname = "portal"
`))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.CORSOrigins)
	assert.False(t, cfg.Fallback.TreatEmptyAsUnavailable)
	assert.Equal(t, "host=localhost port=5432 user=portal password= dbname=portal sslmode=disable", cfg.Database.DSN())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(EnvParkingAPIURL, "http://localhost:5000/api")
	t.Setenv(EnvLocalTokenSecret, "s3cret")
	t.Setenv(EnvDBPassword, "pw")
	t.Setenv(EnvHTTPPort, "7000")

	cfg, err := Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:5000/api", cfg.Upstream.URL)
	assert.Equal(t, "https://parking-api.example.com/uploads", cfg.Upstream.UploadsURL)
	assert.Equal(t, "s3cret", cfg.Auth.LocalTokenSecret)
	assert.Equal(t, "pw", cfg.Database.Password)
	assert.Equal(t, 7000, cfg.Server.HTTPPort)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "missing upstream url", content: `[upstream]
uploads_url = "https://x.example.com/uploads"`},
		{name: "bad log level", content: minimalConfig + `
[logs]
level = "verbose"`},
		{name: "database enabled without host", content: minimalConfig + `
[database]
enabled = true
user = "u"
dbname = "d"`},
		{name: "broken toml", content: `[upstream`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
