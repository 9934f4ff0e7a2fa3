package services

import (
	"fmt"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	"github.com/jdkato/prose/v2"
)

// NLPContext bundles the process-wide language resources: the stop-word
// lexicon, the English lemmatizer and the part-of-speech tagger used for
// noun-phrase chunking. It is built once at startup and never mutated
// afterwards, so it is safe to share across requests.
type NLPContext struct {
	stopWords  map[string]struct{}
	lemmatizer *golem.Lemmatizer
}

// NewNLPContext loads the language resources. Any load failure is returned
// to the caller so the process can refuse to start instead of silently
// scoring every request at zero.
func NewNLPContext() (*NLPContext, error) {
	lemmatizer, err := golem.New(en.New())
	if err != nil {
		return nil, fmt.Errorf("failed to load english lemmatizer: %w", err)
	}

	// Warm up the tagger so a broken model surfaces here, not mid-request.
	if _, err := prose.NewDocument("warmup",
		prose.WithExtraction(false),
		prose.WithSegmentation(false),
	); err != nil {
		return nil, fmt.Errorf("failed to load pos tagging model: %w", err)
	}

	return &NLPContext{
		stopWords:  englishStopWords,
		lemmatizer: lemmatizer,
	}, nil
}

// IsStopWord reports whether token is in the fixed stop-word lexicon.
func (n *NLPContext) IsStopWord(token string) bool {
	_, ok := n.stopWords[token]
	return ok
}

// Lemma reduces a token to its dictionary base form.
func (n *NLPContext) Lemma(token string) string {
	return n.lemmatizer.Lemma(token)
}

func (n *NLPContext) tagTokens(text string) ([]prose.Token, error) {
	doc, err := prose.NewDocument(text,
		prose.WithExtraction(false),
		prose.WithSegmentation(false),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to tag text: %w", err)
	}
	return doc.Tokens(), nil
}
