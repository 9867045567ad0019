// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ingest extracts plain text from manuscript files so the
// analysis pipeline only ever sees strings. PDF and DOCX payloads are
// unwrapped with format-specific readers; plain text passes through.
// All extracted text is cleaned the same way: page-number lines and
// control characters dropped, runs of blank lines collapsed, but
// paragraph breaks preserved because the section splitter depends on
// them.
package ingest

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
)

// SupportedExtensions lists the file types the extractor accepts, in
// lowercase with the leading dot.
var SupportedExtensions = []string{".pdf", ".docx", ".txt"}

// pageNumberLine matches lines holding nothing but a page number.
var pageNumberLine = regexp.MustCompile(`^\d{1,4}$`)

// Extractor reads manuscript files and yields cleaned plain text.
type Extractor struct{}

// NewExtractor builds a ready-to-use Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Supported reports whether the extractor can handle the file's
// extension.
func Supported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, s := range SupportedExtensions {
		if ext == s {
			return true
		}
	}
	return false
}

// ExtractText pulls the text out of a manuscript file. The returned
// string is cleaned but otherwise unmodified; an empty string with a
// nil error means the file held no extractable text.
func (e *Extractor) ExtractText(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))

	var text string
	var err error
	switch ext {
	case ".pdf":
		text, err = extractPDF(path)
	case ".docx":
		text, err = extractDOCX(path)
	case ".txt":
		var raw []byte
		raw, err = os.ReadFile(path)
		text = string(raw)
	default:
		return "", fmt.Errorf("unsupported file type %q", ext)
	}
	if err != nil {
		return "", err
	}
	return CleanText(text), nil
}

func extractPDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening pdf %s: %w", path, err)
	}
	defer f.Close()

	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		content, pageErr := p.GetPlainText(nil)
		if pageErr != nil {
			// Pages that fail to decode are skipped rather than
			// failing the whole document.
			continue
		}
		b.WriteString(content)
		b.WriteString("\n\n")
	}
	return b.String(), nil
}

func extractDOCX(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading docx %s: %w", path, err)
	}

	zr, err := zip.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return "", fmt.Errorf("opening docx archive %s: %w", path, err)
	}

	var xmlData []byte
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			rc, openErr := f.Open()
			if openErr != nil {
				return "", fmt.Errorf("opening document.xml: %w", openErr)
			}
			xmlData, err = io.ReadAll(rc)
			rc.Close()
			if err != nil {
				return "", fmt.Errorf("reading document.xml: %w", err)
			}
			break
		}
	}
	if len(xmlData) == 0 {
		return "", fmt.Errorf("docx %s has no word/document.xml", path)
	}
	return docxText(xmlData)
}

// docxText walks the WordprocessingML token stream collecting run text.
// Each paragraph element becomes a blank-line separated block so the
// downstream paragraph splitter sees real boundaries.
func docxText(xmlData []byte) (string, error) {
	decoder := xml.NewDecoder(bytes.NewReader(xmlData))
	var b strings.Builder
	inText := false
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("decoding document.xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "p":
				if b.Len() > 0 {
					b.WriteString("\n\n")
				}
			case "tab":
				b.WriteString(" ")
			case "br":
				b.WriteString("\n")
			}
		case xml.EndElement:
			if t.Name.Local == "t" {
				inText = false
			}
		case xml.CharData:
			if inText {
				b.Write(t)
			}
		}
	}
	return b.String(), nil
}

// CleanText normalizes extracted text: spaces collapse within lines,
// standalone page numbers and control characters vanish, and runs of
// blank lines shrink to a single paragraph break.
func CleanText(text string) string {
	text = strings.ReplaceAll(text, "\x00", "")
	text = strings.ReplaceAll(text, "�", "")

	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	blankPending := false
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line == "" || pageNumberLine.MatchString(line) {
			blankPending = len(out) > 0
			continue
		}
		if blankPending {
			out = append(out, "")
			blankPending = false
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
