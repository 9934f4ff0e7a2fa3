package services

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var nonWordRun = regexp.MustCompile(`[^\p{L}\p{N}_]+`)

// Preprocess turns raw text into the normalized token stream used for both
// similarity scoring and skill extraction: lowercase, every run of non-word
// characters collapsed to a single space, stop-words and single-character
// tokens dropped, survivors lemmatized and re-joined in their original order.
func (n *NLPContext) Preprocess(text string) string {
	if text == "" {
		return ""
	}

	text = strings.ToLower(text)
	text = nonWordRun.ReplaceAllString(text, " ")

	var processed []string
	for _, token := range strings.Fields(text) {
		if utf8.RuneCountInString(token) <= 1 {
			continue
		}
		if n.IsStopWord(token) {
			continue
		}
		processed = append(processed, n.Lemma(token))
	}

	return strings.Join(processed, " ")
}
