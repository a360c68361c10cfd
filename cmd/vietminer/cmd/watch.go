package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lamvt/vietminer/internal/adapters/extract"
	"github.com/lamvt/vietminer/internal/adapters/fsnotify"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch input_dir and analyze new documents as they arrive",
	RunE:  runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer log.Sync()

	pipeline, _, cleanup, err := buildPipeline(cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	watcher, err := fsnotify.NewWatcher(extract.NewRegistry(log).Supports)
	if err != nil {
		return err
	}
	defer watcher.Stop()

	err = watcher.Watch(cfg.InputDir, func(path string) {
		res, err := pipeline.ProcessFile(path)
		if err != nil {
			log.Warn("processing failed", zap.String("file", path), zap.Error(err))
			return
		}
		fmt.Printf("%s: %d keyword hits\n", res.File, res.TotalKeywords)
	})
	if err != nil {
		return err
	}

	fmt.Printf("watching %s (ctrl-c to stop)\n", cfg.InputDir)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	fmt.Println("stopping")
	return nil
}
