package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/lamvt/vietminer/internal/app"
	"github.com/lamvt/vietminer/internal/ports"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [files...]",
	Short: "Analyze document files and write CSV reports",
	Long:  "Counts keyword occurrences in the given files, or in every supported file under input_dir when no files are named. Results go to the database and CSV reports to output_dir.",
	RunE:  runAnalyze,
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer log.Sync()

	pipeline, keywords, cleanup, err := buildPipeline(cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	var results []*ports.DocumentResult
	if len(args) == 0 {
		results, err = pipeline.ProcessDir(cfg.InputDir)
		if err != nil {
			return err
		}
	} else {
		for _, path := range args {
			res, err := pipeline.ProcessFile(path)
			if err != nil {
				return err
			}
			results = append(results, res)
		}
	}

	if len(results) == 0 {
		fmt.Println("no documents processed")
		return nil
	}

	if err := app.WriteReports(results, keywords, cfg.OutputDir); err != nil {
		return err
	}

	printSummary(results)
	fmt.Printf("reports written to %s\n", cfg.OutputDir)
	return nil
}

func printSummary(results []*ports.DocumentResult) {
	for _, res := range results {
		fmt.Printf("%s: %d keyword hits across %d source(s)\n",
			res.File, res.TotalKeywords, res.SourceCount)

		kws := make([]string, 0, len(res.KeywordCounts))
		for kw := range res.KeywordCounts {
			kws = append(kws, kw)
		}
		sort.Slice(kws, func(i, j int) bool {
			if res.KeywordCounts[kws[i]] != res.KeywordCounts[kws[j]] {
				return res.KeywordCounts[kws[i]] > res.KeywordCounts[kws[j]]
			}
			return kws[i] < kws[j]
		})
		for _, kw := range kws {
			fmt.Printf("  %-30s %d\n", kw, res.KeywordCounts[kw])
		}
	}
}
