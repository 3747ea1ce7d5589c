package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[mainConfig]
port = 9090

[jwtConfig]
secret = "0123456789abcdef0123456789abcdef"

[formConfig]
endpoint = "http://example.test/cadastro"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	conf, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, conf.MainConfig.Port)
	assert.Equal(t, "0.0.0.0", conf.MainConfig.Host)
	assert.Equal(t, "DevNice", conf.JWTConfig.Issuer)
	assert.Equal(t, 12, conf.JWTConfig.ExpiryHours)
	assert.Equal(t, "http://example.test/cadastro", conf.FormConfig.Endpoint)
	assert.Equal(t, "channel", conf.KafkaConfig.MessageMode)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestGetConfigFallsBackToDefaults(t *testing.T) {
	SetConfig(nil)
	t.Cleanup(func() { SetConfig(nil) })

	conf := GetConfig()
	require.NotNil(t, conf)
	assert.Equal(t, "http://localhost:8080/cadastro", conf.FormConfig.Endpoint)
	assert.Same(t, conf, GetConfig())
}
