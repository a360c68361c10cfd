package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lamvt/vietminer/internal/domain/textnorm"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize [text...]",
	Short: "Normalize Vietnamese text the way the matcher sees it",
	Long:  "Repairs legacy font encodings, folds diacritics and collapses whitespace. Reads stdin when no text is given.",
	RunE:  runNormalize,
}

func runNormalize(cmd *cobra.Command, args []string) error {
	var input string
	if len(args) > 0 {
		input = strings.Join(args, " ")
	} else {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		input = string(data)
	}

	fmt.Println(textnorm.Normalize(input))
	return nil
}
