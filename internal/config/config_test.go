package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trknhr/kanarank/internal/config"
	"github.com/trknhr/kanarank/internal/model/entity"
)

func writeFile(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	path := writeFile(t, `
[request]
max_candidates = 5
kind = "prediction"
mixed_conversion = true

[tuning]
typing_correction_max_rank = 20
`)

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Request.MaxCandidates)
	assert.True(t, cfg.Request.CursorAtTail)
	assert.Equal(t, 3000, cfg.Tuning.TypingCorrectionCostOffset)
	assert.Equal(t, 20, cfg.Tuning.TypingCorrectionMaxRank)
	assert.Equal(t, "ipa", cfg.Dictionary.Kind)

	req := cfg.NewRequest("かんじ")
	assert.Equal(t, entity.KindPrediction, req.Kind)
	assert.True(t, req.MixedConversion)
	assert.Equal(t, 3, req.Tuning.TypingCorrectionMaxCount)
	assert.Equal(t, 20, req.Tuning.TypingCorrectionMaxRank)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"syntax", "[request\nmax_candidates = 5"},
		{"kind", "[request]\nkind = \"conversion\""},
		{"max candidates", "[request]\nmax_candidates = 0"},
		{"dictionary", "[dictionary]\nkind = \"unidic\""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.LoadConfig(writeFile(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfigWithPriority(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, path, err := config.LoadConfigWithPriority("")
	require.NoError(t, err)
	assert.Equal(t, "", path)
	assert.Equal(t, config.DefaultConfig(), cfg)

	custom := writeFile(t, "[log]\nlevel = \"debug\"\n")
	cfg, path, err = config.LoadConfigWithPriority(custom)
	require.NoError(t, err)
	assert.Equal(t, custom, path)
	assert.Equal(t, "debug", cfg.Log.Level)

	broken := writeFile(t, "[request]\nkind = \"nope\"\n")
	cfg, path, err = config.LoadConfigWithPriority(broken)
	require.NoError(t, err)
	assert.Equal(t, "", path)
	assert.Equal(t, config.DefaultConfig(), cfg)
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := config.DefaultConfig()
	cfg.Filter.BlocklistPath = "/tmp/blocklist.txt"

	require.NoError(t, config.SaveConfig(cfg, path))
	loaded, err := config.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
