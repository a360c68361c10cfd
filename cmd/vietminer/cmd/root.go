package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lamvt/vietminer/internal/adapters/ahocorasick"
	"github.com/lamvt/vietminer/internal/adapters/bbolt"
	"github.com/lamvt/vietminer/internal/adapters/extract"
	"github.com/lamvt/vietminer/internal/adapters/keywordfile"
	"github.com/lamvt/vietminer/internal/app"
	"github.com/lamvt/vietminer/internal/config"
	"github.com/lamvt/vietminer/internal/domain/keyword"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "vietminer",
	Short: "vietminer — Vietnamese keyword analysis for document files",
	Long:  "Extracts text from PDF and office documents, repairs broken Vietnamese encodings, and counts keyword occurrences per group.",
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "vietminer.yaml", "path to config file")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(keywordsCmd)
	rootCmd.AddCommand(normalizeCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig reads the configured YAML file, falling back to defaults when
// it does not exist.
func loadConfig() (config.Config, error) {
	return config.Load(configPath)
}

// newLogger builds the process logger at the configured level.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	return zcfg.Build()
}

// buildPipeline assembles the full processing pipeline from config.
// The returned cleanup closes the result store.
func buildPipeline(cfg config.Config, log *zap.Logger) (*app.Pipeline, keyword.Map, func(), error) {
	keywords, maxGroup, err := keywordfile.Load(cfg.KeywordFile)
	if err != nil {
		return nil, nil, nil, err
	}
	if len(keywords) == 0 {
		return nil, nil, nil, fmt.Errorf("keyword file %s contains no keywords", cfg.KeywordFile)
	}
	log.Info("keywords loaded",
		zap.String("file", cfg.KeywordFile),
		zap.Int("keywords", len(keywords)),
		zap.Int("max_group", maxGroup))

	store, err := bbolt.NewStore(cfg.DBPath)
	if err != nil {
		return nil, nil, nil, err
	}

	analyzer := keyword.NewAnalyzer(ahocorasick.NewScanner, log)
	analyzer.SetBatchSize(cfg.BatchThreshold, cfg.BatchChunk)
	recon := keyword.NewReconciler(analyzer, log)
	recon.SetMinSourceRunes(cfg.MinSourceLen)

	// OCR and vision engines are not bundled with this binary; the ports
	// stay nil and the pipeline runs on extracted text alone.
	if cfg.OCREnabled || cfg.VisionEnabled {
		log.Warn("ocr/vision enabled in config but no engine is available in this build")
	}

	extractor := extract.NewRegistry(log)
	pipeline := app.NewPipeline(extractor, recon, keywords, store, nil, nil, log)
	return pipeline, keywords, func() { store.Close() }, nil
}
