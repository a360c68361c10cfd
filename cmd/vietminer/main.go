// vietminer counts Vietnamese keywords in document files.
// It repairs legacy font encodings, folds diacritics, and reconciles
// multiple extraction methods so each keyword is counted once.
package main

import (
	"os"

	"github.com/lamvt/vietminer/cmd/vietminer/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
