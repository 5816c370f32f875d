package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, env, body string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, env+".yaml"), []byte(body), 0o600))

	previous := ConfigPaths
	ConfigPaths = []string{dir}
	t.Cleanup(func() { ConfigPaths = previous })
	t.Setenv("VL_ENV", env)
}

func TestLoadConfig_FileAndDefaults(t *testing.T) {
	writeConfig(t, Test, `
server:
  port: 9090
ledger:
  owner: "0xowner"
  controllers: ["0xc1", "0xc2"]
`)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, Test, cfg.Environment)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, StorageMemory, cfg.Ledger.Storage)
	assert.Equal(t, "0xowner", cfg.Ledger.Owner)
	assert.Equal(t, []string{"0xc1", "0xc2"}, cfg.Ledger.Controllers)
	assert.Equal(t, 5*time.Second, cfg.Ledger.LockTimeout())
	assert.Equal(t, uint8(18), cfg.Ledger.Decimals)
	assert.Equal(t, "2000000000000000000000000000", cfg.Ledger.InitialSupply)
	assert.False(t, cfg.UsesDatabase())
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	writeConfig(t, Test, `
ledger:
  owner: "0xowner"
`)
	t.Setenv("VL_OWNER", "0xother")
	t.Setenv("VL_CONTROLLERS", "0xa, 0xb,,")
	t.Setenv("VL_LOCK_TIMEOUT_MS", "250")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "0xother", cfg.Ledger.Owner)
	assert.Equal(t, []string{"0xa", "0xb"}, cfg.Ledger.Controllers)
	assert.Equal(t, 250*time.Millisecond, cfg.Ledger.LockTimeout())
}

func TestLoadConfig_ReportsAllMissingDatabaseSettings(t *testing.T) {
	writeConfig(t, Test, `
ledger:
  storage: postgres
`)

	_, err := LoadConfig()
	require.Error(t, err)

	for _, key := range []string{"database.host", "database.username", "database.password", "database.database", "ledger.owner"} {
		assert.Contains(t, err.Error(), key)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	previous := ConfigPaths
	ConfigPaths = []string{t.TempDir()}
	t.Cleanup(func() { ConfigPaths = previous })
	t.Setenv("VL_ENV", "nowhere")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	cfg := &Config{
		Server: ServerConfig{Port: 8080},
		Ledger: LedgerConfig{Storage: "redis", Owner: "o", LockTimeoutMs: -1},
		RateLimit: RateLimitConfig{
			Enabled: true,
		},
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ledger.storage")
	assert.Contains(t, err.Error(), "ledger.lockTimeoutMs")
	assert.Contains(t, err.Error(), "rateLimit")
}
