/*
Package config loads the TOML configuration of kanarank.
*/
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/trknhr/kanarank/internal/logger"
	"github.com/trknhr/kanarank/internal/model/entity"
)

type Config struct {
	Request    RequestConfig    `toml:"request"`
	Tuning     TuningConfig     `toml:"tuning"`
	Dictionary DictionaryConfig `toml:"dictionary"`
	Filter     FilterConfig     `toml:"filter"`
	History    HistoryConfig    `toml:"history"`
	Log        LogConfig        `toml:"log"`
}

type RequestConfig struct {
	MaxCandidates   int    `toml:"max_candidates"`
	Kind            string `toml:"kind"`
	MixedConversion bool   `toml:"mixed_conversion"`
	CursorAtTail    bool   `toml:"cursor_at_tail"`
}

type TuningConfig struct {
	SingleKanjiCostOffset            int  `toml:"single_kanji_cost_offset"`
	TypingCorrectionCostOffset       int  `toml:"typing_correction_cost_offset"`
	TypingCorrectionMaxCount         int  `toml:"typing_correction_max_count"`
	TypingCorrectionMaxRank          int  `toml:"typing_correction_max_rank"`
	CancelContentWordSuffixPenalty   bool `toml:"cancel_content_word_suffix_penalty"`
	MoveLiteralTypingCorrectionToTop bool `toml:"move_literal_typing_correction_to_top"`
}

type DictionaryConfig struct {
	Kind   string `toml:"kind"`
	DBPath string `toml:"db_path"`
}

type FilterConfig struct {
	ExpectedItems     uint    `toml:"expected_items"`
	FalsePositiveRate float64 `toml:"false_positive_rate"`
	BlocklistPath     string  `toml:"blocklist_path"`
}

type HistoryConfig struct {
	CommitLogPath string `toml:"commit_log_path"`
}

type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

func DefaultConfig() *Config {
	tuning := entity.DefaultTuning()
	return &Config{
		Request: RequestConfig{
			MaxCandidates: 10,
			Kind:          "suggestion",
			CursorAtTail:  true,
		},
		Tuning: TuningConfig{
			SingleKanjiCostOffset:      tuning.SingleKanjiCostOffset,
			TypingCorrectionCostOffset: tuning.TypingCorrectionCostOffset,
			TypingCorrectionMaxCount:   tuning.TypingCorrectionMaxCount,
			TypingCorrectionMaxRank:    tuning.TypingCorrectionMaxRank,
		},
		Dictionary: DictionaryConfig{Kind: "ipa"},
		Filter: FilterConfig{
			ExpectedItems:     10000,
			FalsePositiveRate: 0.001,
		},
		Log: LogConfig{Level: "info"},
	}
}

// DefaultConfigPath returns [UserConfigDir]/kanarank/config.toml.
func DefaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "kanarank", "config.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: [UserConfigDir]/kanarank/config.toml
// 3. Builtin defaults
//
// The returned path is empty when the builtin defaults are used.
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			cfg, err := LoadConfig(customConfigPath)
			if err != nil {
				logger.Warn("failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
			} else {
				logger.Debug("loaded config from custom path: %s", customConfigPath)
				return cfg, customConfigPath, nil
			}
		} else {
			logger.Warn("custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		logger.Warn("failed to determine default config path: %v. Using builtin defaults...", err)
		return DefaultConfig(), "", nil
	}
	if _, err := os.Stat(defaultPath); err != nil {
		return DefaultConfig(), "", nil
	}
	cfg, err := LoadConfig(defaultPath)
	if err != nil {
		logger.Warn("failed to load config from %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	logger.Debug("loaded config from default path: %s", defaultPath)
	return cfg, defaultPath, nil
}

// LoadConfig decodes path over the defaults, so omitted keys keep their default value.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		logger.WarnOnce("unknown config key %s in %s", key.String(), path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func SaveConfig(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}

func (c *Config) Validate() error {
	if c.Request.MaxCandidates <= 0 {
		return fmt.Errorf("request.max_candidates must be positive, got %d", c.Request.MaxCandidates)
	}
	if _, err := entity.ParseRequestKind(c.Request.Kind); err != nil {
		return fmt.Errorf("request.kind: %w", err)
	}
	if c.Dictionary.Kind != "ipa" {
		return fmt.Errorf("dictionary.kind %q is not supported", c.Dictionary.Kind)
	}
	return nil
}

func (c *Config) EntityTuning() entity.Tuning {
	return entity.Tuning{
		SingleKanjiCostOffset:            c.Tuning.SingleKanjiCostOffset,
		TypingCorrectionCostOffset:       c.Tuning.TypingCorrectionCostOffset,
		TypingCorrectionMaxCount:         c.Tuning.TypingCorrectionMaxCount,
		TypingCorrectionMaxRank:          c.Tuning.TypingCorrectionMaxRank,
		CancelContentWordSuffixPenalty:   c.Tuning.CancelContentWordSuffixPenalty,
		MoveLiteralTypingCorrectionToTop: c.Tuning.MoveLiteralTypingCorrectionToTop,
	}
}

// NewRequest builds a request for key from the [request] and [tuning] sections.
func (c *Config) NewRequest(key string) *entity.Request {
	kind, _ := entity.ParseRequestKind(c.Request.Kind)
	return &entity.Request{
		Key:             key,
		Kind:            kind,
		MaxCandidates:   c.Request.MaxCandidates,
		MixedConversion: c.Request.MixedConversion,
		CursorAtTail:    c.Request.CursorAtTail,
		Tuning:          c.EntityTuning(),
	}
}
