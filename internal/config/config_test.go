package config_test

import (
	"os"
	"path/filepath"
	"sellerscheck/internal/config"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	require.Equal(t, "127.0.0.1", cfg.Database.Host)
	require.Equal(t, 5434, cfg.Database.Port)
	require.Equal(t, "ttkit_db", cfg.Database.DatabaseName)
	require.Equal(t, "postgres", cfg.Database.Username)
	require.Equal(t, "apti-ttkit:asia-northeast1:ttkit-db-instance", cfg.Proxy.InstanceConnectionName)
	require.Equal(t, []string{
		"advertising.com", "tremorhub.com", "telaria.com", "freewheel.com", "criteo.com", "adcolony.com",
		"loopme.com", "opera.com", "synacor.com", "yandex.com", "pangleglobal.com",
	}, cfg.Report.Domains)
}

func TestLoad_MissingFileFallsBackToEnv(t *testing.T) {
	t.Setenv("DATABASE_PORT", "6543")
	t.Setenv("REPORT_DOMAINS", "opera.com,yandex.com")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "does-not-exist.yml"))
	require.NoError(t, err)
	require.Equal(t, 6543, cfg.Database.Port)
	require.Equal(t, []string{"opera.com", "yandex.com"}, cfg.Report.Domains)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
environment: production
database:
  host: db.internal
  port: 5432
  connectTimeout: 5s
report:
  title: nightly check
  domains:
    - criteo.com
    - opera.com
`), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, "db.internal", cfg.Database.Host)
	require.Equal(t, 5432, cfg.Database.Port)
	require.Equal(t, 5*time.Second, cfg.Database.ConnectTimeout)
	// untouched keys keep their defaults
	require.Equal(t, "ttkit_db", cfg.Database.DatabaseName)
	require.Equal(t, "nightly check", cfg.Report.Title)
	require.Equal(t, []string{"criteo.com", "opera.com"}, cfg.Report.Domains)
}
