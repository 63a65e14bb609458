package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.GRPCPort)
	assert.Equal(t, "USDC", cfg.Vault.Asset)
	assert.Equal(t, int64(100), cfg.Vault.CashBufferBps)
	assert.Equal(t, int64(200), cfg.Vault.ProtocolFeeBps)
	assert.Equal(t, 24*time.Hour, cfg.Vault.GracePeriod.Std())
	assert.Equal(t, 7*24*time.Hour, cfg.Vault.MinHoldPeriod.Std())
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FileAndEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
server:
  grpc_port: ":9090"
vault:
  asset: DAI
  protocol_fee_bps: 150
strategy:
  rate_bps: 25
  interval: 1h
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	t.Setenv("PROTOCOL_FEE_BPS", "300")
	t.Setenv("API_TOKEN", "secret")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.GRPCPort)
	assert.Equal(t, "DAI", cfg.Vault.Asset)
	// Env wins over file
	assert.Equal(t, int64(300), cfg.Vault.ProtocolFeeBps)
	assert.Equal(t, "secret", cfg.Server.APIToken)
	assert.Equal(t, int64(25), cfg.Strategy.RateBps)
	assert.Equal(t, time.Hour, cfg.Strategy.Interval.Std())
}

func TestConnectionString(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Contains(t, cfg.ConnectionString(), "dbname=donorvault")

	cfg.Database.ConnStr = "host=db port=5432 user=u password=p dbname=x sslmode=disable"
	assert.Equal(t, cfg.Database.ConnStr, cfg.ConnectionString())
}

func TestValidate_RejectsOutOfRangeBps(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	cfg.Vault.MaxLossBps = 10001
	assert.Error(t, cfg.Validate())
}
