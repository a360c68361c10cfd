package extract

import (
	"fmt"
	"path/filepath"

	"github.com/lu4p/cat"

	"github.com/lamvt/vietminer/internal/ports"
)

// extractOffice handles docx, odt and rtf through the cat library, which
// unpacks the container and strips markup in one call.
func extractOffice(path string) ([]ports.TextSource, error) {
	text, err := cat.File(path)
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", filepath.Base(path), err)
	}
	return []ports.TextSource{{Method: "office", Text: text}}, nil
}
