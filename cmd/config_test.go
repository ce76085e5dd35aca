package cmd

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "tsmat", configBaseName)
	assert.Equal(t, "tsmat.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "mapping-config-path", mappingConfigFlagName)
	assert.Equal(t, "extensions", extensionsFlagName)
	assert.Equal(t, "dry-run", dryRunFlagName)
	assert.Equal(t, "mapping.config_path", mappingConfigKey)
	assert.Equal(t, "paths.extensions", extensionsKey)
	assert.Equal(t, "./package.json", defaultMappingConfigPath)
	assert.Equal(t, []string{"js", "ts", "d.ts"}, defaultExtensions)
	assert.Equal(t, "TSMAT", envPrefix)
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  slog.Level
	}{
		{"empty uses default", "", slog.LevelWarn},
		{"debug", "debug", slog.LevelDebug},
		{"info", "info", slog.LevelInfo},
		{"warn", "warn", slog.LevelWarn},
		{"warning", "warning", slog.LevelWarn},
		{"error", "error", slog.LevelError},
		{"mixed case", "DeBuG", slog.LevelDebug},
		{"numeric", "-4", slog.LevelDebug},
		{"garbage uses default", "loud", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelWarn))
		})
	}
}
