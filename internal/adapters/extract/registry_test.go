package extract

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRegistrySupports(t *testing.T) {
	r := NewRegistry(nil)

	for _, ext := range []string{".pdf", ".docx", ".odt", ".rtf", ".html", ".txt", ".md", ".csv", ".jpg", ".png", ".tiff"} {
		assert.True(t, r.Supports(ext), ext)
	}
	assert.True(t, r.Supports("pdf"), "dotless extension")
	assert.True(t, r.Supports(".PDF"), "uppercase extension")
	assert.False(t, r.Supports(".exe"))
	assert.False(t, r.Supports(".xlsx"))
}

func TestExtractUnsupported(t *testing.T) {
	r := NewRegistry(nil)

	_, err := r.Extract("report.xlsx")
	assert.ErrorContains(t, err, "unsupported file type")
}

func TestExtractPlainText(t *testing.T) {
	r := NewRegistry(nil)
	path := writeTemp(t, "note.txt", "Ngân hàng số phát triển nhanh")

	sources, err := r.Extract(path)
	require.NoError(t, err)
	require.Len(t, sources, 1)
	assert.Equal(t, "plain", sources[0].Method)
	assert.Equal(t, "Ngân hàng số phát triển nhanh", sources[0].Text)
}

func TestExtractHTMLStripsMarkup(t *testing.T) {
	r := NewRegistry(nil)
	path := writeTemp(t, "page.html", `<html><head>
<style>body { color: red; }</style>
<script>var ngân = "hàng";</script>
</head><body><h1>Ng&acirc;n h&agrave;ng</h1><p>d&#7883;ch v&#7909; s&#7889;</p></body></html>`)

	sources, err := r.Extract(path)
	require.NoError(t, err)
	require.Len(t, sources, 1)
	assert.Equal(t, "html", sources[0].Method)
	assert.Contains(t, sources[0].Text, "Ngân hàng")
	assert.Contains(t, sources[0].Text, "dịch vụ số")
	assert.NotContains(t, sources[0].Text, "color: red")
	assert.NotContains(t, sources[0].Text, "var ngân")
}

func TestExtractMissingFile(t *testing.T) {
	r := NewRegistry(nil)

	_, err := r.Extract(filepath.Join(t.TempDir(), "absent.txt"))
	assert.Error(t, err)
}

// writeMinimalDocx builds the smallest zip container the docx reader accepts:
// a word/document.xml with one text run.
func writeMinimalDocx(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.docx")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = io.WriteString(w, `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body><w:p><w:r><w:t>`+text+`</w:t></w:r></w:p></w:body></w:document>`)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return path
}

func TestExtractOfficeDocx(t *testing.T) {
	r := NewRegistry(nil)
	path := writeMinimalDocx(t, "ngân hàng số phát triển")

	sources, err := r.Extract(path)
	require.NoError(t, err)
	require.Len(t, sources, 1)
	assert.Equal(t, "office", sources[0].Method)
	assert.Contains(t, sources[0].Text, "ngân hàng số phát triển")
}

func TestExtractOfficeMissingFile(t *testing.T) {
	r := NewRegistry(nil)

	_, err := r.Extract(filepath.Join(t.TempDir(), "absent.docx"))
	assert.Error(t, err)
}

func TestExtractImageYieldsEmptySource(t *testing.T) {
	r := NewRegistry(nil)
	// Content is irrelevant: images have no text layer to read.
	path := writeTemp(t, "scan.jpg", "\xff\xd8\xff\xe0")

	sources, err := r.Extract(path)
	require.NoError(t, err)
	require.Len(t, sources, 1)
	assert.Equal(t, "image", sources[0].Method)
	assert.Empty(t, sources[0].Text)
}

func TestExtractImageMissingFile(t *testing.T) {
	r := NewRegistry(nil)

	_, err := r.Extract(filepath.Join(t.TempDir(), "absent.png"))
	assert.Error(t, err)
}

func TestExtractMalformedPDFDoesNotPanic(t *testing.T) {
	r := NewRegistry(nil)
	path := writeTemp(t, "broken.pdf", "%PDF-1.4 this is not a real pdf body")

	sources, err := r.Extract(path)
	require.NoError(t, err)
	require.Len(t, sources, 1)
	assert.Equal(t, "pdf", sources[0].Method)
	assert.Empty(t, sources[0].Text)
}
