package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWithDefaults_FileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	yaml := []byte("server:\n  port: 9090\njwt:\n  secret: from-file\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "payroll.yaml"), yaml, 0o644))

	t.Setenv("CONFIG_PATH", dir)
	t.Setenv("PAYROLL_JWT_SECRET", "from-env")

	cfg, err := LoadWithDefaults("payroll", map[string]interface{}{
		"server.port":    3000,
		"server.timeout": "15s",
		"jwt.secret":     "default",
	})
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.GetInt("server.port"))
	assert.Equal(t, 15*time.Second, cfg.GetDuration("server.timeout"))
	assert.Equal(t, "from-env", cfg.GetString("jwt.secret"))
}

func TestLoadWithDefaults_NoConfigFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", t.TempDir())

	cfg, err := LoadWithDefaults("payroll-missing", map[string]interface{}{
		"log.level": "debug",
	})
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.GetString("log.level"))
	assert.False(t, cfg.IsSet("mongo.uri"))
}
