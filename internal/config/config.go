// Package config loads runtime settings from a YAML file, with sensible
// defaults for everything so the tool runs with no config at all.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds every runtime setting.
type Config struct {
	// InputDir is watched in watch mode and scanned by analyze when no
	// explicit files are given.
	InputDir  string `yaml:"input_dir"`
	OutputDir string `yaml:"output_dir"`

	// KeywordFile is the path to the keyword list (txt, md or csv).
	KeywordFile string `yaml:"keyword_file"`

	// DBPath is the bbolt database holding analysis results.
	DBPath string `yaml:"db_path"`

	// MinSourceLen is the minimum normalized rune count for an extracted
	// text source to participate in reconciliation.
	MinSourceLen int `yaml:"min_source_len"`

	// BatchThreshold and BatchChunk control chunked analysis of very large
	// documents, in normalized runes. Zero keeps the engine defaults.
	BatchThreshold int `yaml:"batch_threshold"`
	BatchChunk     int `yaml:"batch_chunk"`

	// OCREnabled and VisionEnabled gate the optional escalation engines.
	OCREnabled    bool `yaml:"ocr_enabled"`
	VisionEnabled bool `yaml:"vision_enabled"`

	LogLevel string `yaml:"log_level"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		InputDir:     "input",
		OutputDir:    "output",
		KeywordFile:  "keywords.txt",
		DBPath:       "vietminer.db",
		MinSourceLen: 50,
		LogLevel:     "info",
	}
}

// Load reads the YAML config at path, layered over defaults. A missing file
// is not an error; the defaults are returned as-is.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.MinSourceLen < 0 {
		return cfg, fmt.Errorf("min_source_len must not be negative")
	}
	return cfg, nil
}
