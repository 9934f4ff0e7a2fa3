package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTextMissingFile(t *testing.T) {
	parser := NewPDFParserService()

	text, err := parser.ExtractText(filepath.Join(t.TempDir(), "does-not-exist.pdf"))
	assert.Error(t, err)
	assert.Empty(t, text)
}

func TestExtractTextCorruptFile(t *testing.T) {
	parser := NewPDFParserService()

	tests := []struct {
		name    string
		content []byte
	}{
		{name: "empty file", content: nil},
		{name: "not a pdf", content: []byte("plain text pretending to be a resume")},
		{name: "truncated header", content: []byte("%PDF-1.4\ngarbage")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "resume.pdf")
			require.NoError(t, os.WriteFile(path, tt.content, 0644))

			text, err := parser.ExtractText(path)
			assert.Error(t, err, "corrupt input must degrade to an error, never panic")
			assert.Empty(t, text)
		})
	}
}
