package extract

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
)

var rePageMarker = regexp.MustCompile(`Page\s*\d+`)

// FromFile loads document text from path. PDF files go through plain-text
// extraction; anything else is read as UTF-8 text.
func FromFile(path string) (string, error) {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return FromPDF(path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read text file: %w", err)
	}
	return string(data), nil
}

// FromReader drains r, for piped/pasted input.
func FromReader(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}

// FromPDF extracts the plain text of a PDF and scrubs page-number
// headers and footers, which would otherwise pollute sentence ranking.
func FromPDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	content, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract pdf text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(content); err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}

	return rePageMarker.ReplaceAllString(buf.String(), ""), nil
}
