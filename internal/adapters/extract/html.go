package extract

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"regexp"

	"github.com/lamvt/vietminer/internal/ports"
)

var (
	scriptRe = regexp.MustCompile(`(?is)<(script|style)[^>]*>.*?</(script|style)>`)
	tagRe    = regexp.MustCompile(`<[^>]*>`)
)

// extractHTML strips markup from HTML and XML files. Script and style bodies
// are dropped first so their contents never reach the keyword engine, then
// remaining tags become spaces and entities are decoded.
func extractHTML(path string) ([]ports.TextSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}

	text := scriptRe.ReplaceAllString(string(data), " ")
	text = tagRe.ReplaceAllString(text, " ")
	text = html.UnescapeString(text)

	return []ports.TextSource{{Method: "html", Text: text}}, nil
}
