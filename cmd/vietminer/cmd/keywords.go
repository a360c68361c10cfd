package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lamvt/vietminer/internal/adapters/keywordfile"
	"github.com/lamvt/vietminer/internal/domain/keyword"
)

var showVariants bool

var keywordsCmd = &cobra.Command{
	Use:   "keywords",
	Short: "Show the parsed keyword list",
	Long:  "Prints each keyword with its group, and optionally the spelling variants the matcher tolerates.",
	RunE:  runKeywords,
}

func init() {
	keywordsCmd.Flags().BoolVar(&showVariants, "variants", false, "also print matcher variants per keyword")
}

func runKeywords(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	keywords, maxGroup, err := keywordfile.Load(cfg.KeywordFile)
	if err != nil {
		return err
	}

	byGroup := make(map[int][]string)
	for kw, g := range keywords {
		byGroup[g] = append(byGroup[g], kw)
	}

	for g := 0; g <= maxGroup; g++ {
		kws, ok := byGroup[g]
		if !ok {
			continue
		}
		sort.Strings(kws)
		fmt.Printf("group %d (%d keywords)\n", g, len(kws))
		for _, kw := range kws {
			fmt.Printf("  %s\n", kw)
			if showVariants {
				fmt.Printf("    variants: %s\n", strings.Join(keyword.Variants(kw), ", "))
			}
		}
	}
	fmt.Printf("%d keywords in %d group(s)\n", len(keywords), len(byGroup))
	return nil
}
