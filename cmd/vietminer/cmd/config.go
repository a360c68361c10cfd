package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	RunE:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	source := configPath
	if _, statErr := os.Stat(configPath); os.IsNotExist(statErr) {
		source = "(defaults, no config file)"
	}

	fmt.Printf("config:         %s\n", source)
	fmt.Printf("input_dir:      %s\n", cfg.InputDir)
	fmt.Printf("output_dir:     %s\n", cfg.OutputDir)
	fmt.Printf("keyword_file:   %s\n", cfg.KeywordFile)
	fmt.Printf("db_path:        %s\n", cfg.DBPath)
	fmt.Printf("min_source_len: %d\n", cfg.MinSourceLen)
	if cfg.BatchThreshold > 0 || cfg.BatchChunk > 0 {
		fmt.Printf("batch:          threshold=%d chunk=%d\n", cfg.BatchThreshold, cfg.BatchChunk)
	}
	fmt.Printf("ocr_enabled:    %t\n", cfg.OCREnabled)
	fmt.Printf("vision_enabled: %t\n", cfg.VisionEnabled)
	fmt.Printf("log_level:      %s\n", cfg.LogLevel)
	return nil
}
