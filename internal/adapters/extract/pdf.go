package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/lamvt/vietminer/internal/ports"
)

// extractPDF reads the embedded text layer of a PDF page by page. The pdf
// library panics on some malformed files, so every library call runs behind
// a recover. Pages that cannot be read are skipped; a file whose entire text
// layer is unreadable yields an empty source, which the pipeline treats as a
// scanned document and escalates to OCR.
func extractPDF(path string) ([]ports.TextSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", filepath.Base(path), err)
	}

	var reader *pdf.Reader
	func() {
		defer func() { _ = recover() }()
		reader, err = pdf.NewReader(f, stat.Size())
	}()
	if err != nil || reader == nil {
		return []ports.TextSource{{Method: "pdf"}}, nil
	}

	pages := 0
	func() {
		defer func() { _ = recover() }()
		pages = reader.NumPage()
	}()

	var b strings.Builder
	for i := 1; i <= pages; i++ {
		func() {
			defer func() { _ = recover() }()
			page := reader.Page(i)
			if page.V.IsNull() {
				return
			}
			for _, item := range page.Content().Text {
				b.WriteString(item.S)
				b.WriteByte(' ')
			}
			b.WriteByte('\n')
		}()
	}

	return []ports.TextSource{{Method: "pdf", Text: strings.TrimSpace(b.String())}}, nil
}
