// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ingest

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTextPlainFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "paper.txt")
	content := "Abstract\n\nThis paper studies text extraction.\n\n1\n\nIntroduction\n\nBody text."
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	got, err := NewExtractor().ExtractText(path)
	require.NoError(t, err)
	assert.Equal(t, "Abstract\n\nThis paper studies text extraction.\n\nIntroduction\n\nBody text.", got)
}

func TestExtractTextDOCX(t *testing.T) {
	body := `<w:document><w:body>` +
		`<w:p><w:r><w:t>Abstract</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>This study examines document parsing.</w:t></w:r></w:p>` +
		`</w:body></w:document>`
	path := filepath.Join(t.TempDir(), "paper.docx")
	require.NoError(t, os.WriteFile(path, buildDOCX(t, body), 0o644))

	got, err := NewExtractor().ExtractText(path)
	require.NoError(t, err)
	assert.Equal(t, "Abstract\n\nThis study examines document parsing.", got)
}

func TestExtractTextDOCXMissingDocument(t *testing.T) {
	var b bytes.Buffer
	zw := zip.NewWriter(&b)
	_, err := zw.Create("word/styles.xml")
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	path := filepath.Join(t.TempDir(), "broken.docx")
	require.NoError(t, os.WriteFile(path, b.Bytes(), 0o644))

	_, err = NewExtractor().ExtractText(path)
	assert.Error(t, err)
}

func TestExtractTextUnsupported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "paper.epub")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	_, err := NewExtractor().ExtractText(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file type")
}

func TestSupported(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"paper.pdf", true},
		{"paper.PDF", true},
		{"paper.docx", true},
		{"notes.txt", true},
		{"book.epub", false},
		{"README", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Supported(tt.path), tt.path)
	}
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"collapses spaces", "a   b\tc", "a b c"},
		{"drops page numbers", "line one\n42\nline two", "line one\n\nline two"},
		{"collapses blank runs", "a\n\n\n\nb", "a\n\nb"},
		{"strips control chars", "a\x00b�c", "abc"},
		{"empty", "", ""},
		{"leading blanks dropped", "\n\n\nfirst", "first"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanText(tt.in))
		})
	}
}

func buildDOCX(t *testing.T, bodyXML string) []byte {
	t.Helper()
	var b bytes.Buffer
	zw := zip.NewWriter(&b)
	f, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	doc := `<?xml version="1.0" encoding="UTF-8"?>` + bodyXML
	_, err = f.Write([]byte(doc))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return b.Bytes()
}
