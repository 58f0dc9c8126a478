package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir is a stand-in for t.Chdir, which requires Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Errorf("restoring working directory: %v", err)
		}
	})
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir()) // no config file present

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 2019, cfg.Contract.BaseYear)
	assert.Equal(t, 4, cfg.Contract.BaseMonth)
	assert.InDelta(t, 1.1, cfg.Reconcile.Tolerance, 1e-9)
	assert.Equal(t, 1200, cfg.Outlier.MaxAgeMonths)
	assert.InDelta(t, 30000, cfg.Outlier.MaxUnitTarget, 1e-9)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, ".", cfg.Output.Dir)
}

func TestLoadEnvOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("RENTPREP_CONTRACT_BASE_YEAR", "2021")
	t.Setenv("RENTPREP_REFDATA_GEO_PATH", "/data/geo.csv")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 2021, cfg.Contract.BaseYear)
	assert.Equal(t, "/data/geo.csv", cfg.Refdata.GeoPath)
}

func TestInitLoggerBadLevel(t *testing.T) {
	err := InitLogger(LogConfig{Level: "nope", Format: "json"})
	assert.Error(t, err)
}

func TestInitLoggerConsole(t *testing.T) {
	err := InitLogger(LogConfig{Level: "debug", Format: "console"})
	assert.NoError(t, err)
}
