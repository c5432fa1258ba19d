// Package extract pulls plain text out of uploaded requirement documents.
package extract

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fumiama/go-docx"
	"github.com/ledongthuc/pdf"
)

// allowed maps the supported upload extensions.
var allowed = map[string]bool{
	".pdf":  true,
	".docx": true,
	".txt":  true,
}

// AllowedFilename reports whether the filename carries a supported extension.
func AllowedFilename(name string) bool {
	return allowed[strings.ToLower(filepath.Ext(name))]
}

// Text extracts the plain-text content of the file at path, dispatching on
// the file extension.
func Text(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return fromPDF(path)
	case ".docx":
		return fromDocx(path)
	case ".txt":
		return fromTxt(path)
	default:
		return "", fmt.Errorf("unsupported file type: %s", filepath.Ext(path))
	}
}

func fromPDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("read pdf: %w", err)
	}
	defer f.Close()

	var buf bytes.Buffer
	reader, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract pdf text: %w", err)
	}
	if _, err := buf.ReadFrom(reader); err != nil {
		return "", fmt.Errorf("extract pdf text: %w", err)
	}
	return buf.String(), nil
}

func fromDocx(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("read docx: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("read docx: %w", err)
	}

	doc, err := docx.Parse(f, info.Size())
	if err != nil {
		return "", fmt.Errorf("parse docx: %w", err)
	}

	var parts []string
	for _, item := range doc.Document.Body.Items {
		switch item.(type) {
		case *docx.Paragraph, *docx.Table:
			if text := strings.TrimSpace(fmt.Sprint(item)); text != "" {
				parts = append(parts, text)
			}
		}
	}
	return strings.Join(parts, "\n"), nil
}

func fromTxt(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read txt: %w", err)
	}
	return string(b), nil
}
