package cmd

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "crosswire", configBaseName)
	assert.Equal(t, "crosswire.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "output", outputFlagName)
	assert.Equal(t, "plain", plainFlagName)
	assert.Equal(t, "wire", wireFlagName)
	assert.Equal(t, "input.path", inputPathKey)
	assert.Equal(t, "wires", wiresConfigKey)
	assert.Equal(t, "ui.plain", plainConfigKey)
	assert.Equal(t, ".crosswire-reports", defaultReportsDir)
	assert.Equal(t, "input.txt", defaultInputPath)
	assert.Equal(t, "CROSSWIRE", envPrefix)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestConfigDefaults(t *testing.T) {
	assert.Equal(t, defaultInputPath, viper.GetString(inputPathKey))
	assert.Empty(t, viper.GetStringSlice(wiresConfigKey))
	assert.Equal(t, defaultLogMaxBackups, viper.GetInt(logMaxBackupsKey))
}

func TestConfigEnvOverride(t *testing.T) {
	t.Setenv("CROSSWIRE_INPUT_PATH", "from-env.txt")

	assert.Equal(t, "from-env.txt", viper.GetString(inputPathKey))
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"", slog.LevelWarn},
		{"debug", slog.LevelDebug},
		{" INFO ", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"-4", slog.LevelDebug},
		{"loud", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelWarn))
		})
	}
}

func TestConfigureLogger_WritesToFile(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	logPath := filepath.Join(t.TempDir(), "crosswire.log")
	configureLogger(logPath, true)

	slog.Debug("wire built", "segments", 4)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "wire built")
	assert.Contains(t, string(data), "segments=4")
}
