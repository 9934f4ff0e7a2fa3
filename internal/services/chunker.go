package services

import (
	"strings"
	"unicode/utf8"
)

type TextChunker interface {
	ChunkText(text string, maxChunkSize int) []string
}

type textChunker struct{}

func NewTextChunker() TextChunker {
	return &textChunker{}
}

// ChunkText splits text into pieces of at most maxChunkSize runes, breaking
// on paragraph boundaries first and sentence boundaries inside oversized
// paragraphs. Used to keep embedding requests under the model's input limit
// without throwing away the tail of long documents.
func (tc *textChunker) ChunkText(text string, maxChunkSize int) []string {
	if maxChunkSize <= 0 {
		maxChunkSize = 1000
	}

	var chunks []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			chunks = append(chunks, current.String())
			current.Reset()
		}
	}

	add := func(piece, sep string) {
		// A piece with no usable boundary still has to honor the budget,
		// so it is hard-split on rune windows.
		for _, window := range splitRuneWindows(piece, maxChunkSize) {
			if current.Len() > 0 && utf8.RuneCountInString(current.String()+sep+window) > maxChunkSize {
				flush()
			}
			if current.Len() > 0 {
				current.WriteString(sep)
			}
			current.WriteString(window)
		}
	}

	for _, para := range strings.Split(text, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}

		if utf8.RuneCountInString(para) <= maxChunkSize {
			add(para, "\n\n")
			continue
		}

		for _, sentence := range splitIntoSentences(para) {
			add(sentence, " ")
		}
	}
	flush()

	return chunks
}

func splitRuneWindows(text string, n int) []string {
	runes := []rune(text)
	if len(runes) <= n {
		return []string{text}
	}

	var windows []string
	for start := 0; start < len(runes); start += n {
		end := start + n
		if end > len(runes) {
			end = len(runes)
		}
		windows = append(windows, string(runes[start:end]))
	}
	return windows
}

func splitIntoSentences(text string) []string {
	pieces := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?' || r == '\n'
	})

	var result []string
	for _, s := range pieces {
		s = strings.TrimSpace(s)
		if s != "" {
			result = append(result, s)
		}
	}
	return result
}
