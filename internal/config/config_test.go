package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeConfigDefaults(t *testing.T) {
	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "text", config.Log.Format)
	assert.Equal(t, "Delivery_Challan.csv", config.Data.File)
	assert.Equal(t, "categories.yaml", config.Data.CategoriesFile)
	assert.Equal(t, "tiers.yaml", config.Data.TiersFile)
	assert.Equal(t, "reports", config.Report.Directory)
	assert.Equal(t, "json", config.Report.Format)
}

func TestInitializeConfigEnvOverride(t *testing.T) {
	t.Setenv("CHALLAN_LOG_LEVEL", "debug")
	t.Setenv("CHALLAN_REPORT_FORMAT", "xlsx")

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "xlsx", config.Report.Format)
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name         string
		logLevel     string
		logFormat    string
		reportFormat string
		expectError  bool
	}{
		{"Valid defaults", "info", "text", "json", false},
		{"Valid json logging", "debug", "json", "xlsx", false},
		{"Bad log level", "noisy", "text", "json", true},
		{"Bad log format", "info", "xml", "json", true},
		{"Bad report format", "info", "text", "pdf", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var config Config
			config.Log.Level = tc.logLevel
			config.Log.Format = tc.logFormat
			config.Report.Format = tc.reportFormat

			err := validateConfig(&config)
			if tc.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	var config Config
	config.Log.Level = "debug"
	config.Log.Format = "json"

	logger := ConfigureLoggingFromConfig(&config)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)
}

func TestConfigureLoggingInvalidLevelFallsBack(t *testing.T) {
	var config Config
	config.Log.Level = "shouty"
	config.Log.Format = "text"

	logger := ConfigureLoggingFromConfig(&config)
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
}

func TestGetEnv(t *testing.T) {
	t.Setenv("CHALLAN_TEST_KEY", "value")
	assert.Equal(t, "value", GetEnv("CHALLAN_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", GetEnv("CHALLAN_TEST_MISSING", "fallback"))
}
