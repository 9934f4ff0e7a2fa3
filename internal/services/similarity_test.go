package services

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bagOfWordsEmbedder is a deterministic stand-in for the remote embedding
// model: each word increments one of a fixed number of dimensions.
type bagOfWordsEmbedder struct {
	dims int
}

func (e *bagOfWordsEmbedder) EmbedText(_ context.Context, text string) ([]float32, error) {
	dims := e.dims
	if dims == 0 {
		dims = 16
	}
	vec := make([]float32, dims)
	for _, word := range strings.Fields(text) {
		var sum int
		for _, b := range []byte(word) {
			sum += int(b)
		}
		vec[sum%dims]++
	}
	return vec, nil
}

type erroringEmbedder struct{}

func (e *erroringEmbedder) EmbedText(context.Context, string) ([]float32, error) {
	return nil, errors.New("embedding backend unavailable")
}

type fixedEmbedder struct {
	vec []float32
}

func (e *fixedEmbedder) EmbedText(context.Context, string) ([]float32, error) {
	return e.vec, nil
}

func TestScoreSelfSimilarityIsMaximal(t *testing.T) {
	svc := NewSimilarityService(&bagOfWordsEmbedder{})

	texts := []string{
		"python developer cloud aws",
		"kubernetes docker terraform",
		"single",
	}
	for _, text := range texts {
		score, err := svc.Score(context.Background(), text, text)
		require.NoError(t, err)
		assert.InDelta(t, 100.0, score, 1e-9, "self similarity of %q", text)
	}
}

func TestScoreIsSymmetric(t *testing.T) {
	svc := NewSimilarityService(&bagOfWordsEmbedder{})

	pairs := [][2]string{
		{"python developer", "java developer"},
		{"machine learning engineer", "data platform lead"},
		{"a b c", "z y x"},
	}
	for _, pair := range pairs {
		ab, err := svc.Score(context.Background(), pair[0], pair[1])
		require.NoError(t, err)
		ba, err := svc.Score(context.Background(), pair[1], pair[0])
		require.NoError(t, err)
		assert.InDelta(t, ab, ba, 1e-9)
	}
}

func TestScoreBounds(t *testing.T) {
	svc := NewSimilarityService(&bagOfWordsEmbedder{})

	inputs := [][2]string{
		{"", ""},
		{"", "something"},
		{"something", ""},
		{"alpha beta", "gamma delta"},
		{"identical text", "identical text"},
	}
	for _, in := range inputs {
		score, err := svc.Score(context.Background(), in[0], in[1])
		require.NoError(t, err)
		assert.False(t, math.IsNaN(score), "score must never be NaN")
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 100.0)
	}
}

func TestScoreEmptyTextIsZero(t *testing.T) {
	// The erroring embedder proves empty inputs short-circuit before any
	// embedding call happens.
	svc := NewSimilarityService(&erroringEmbedder{})

	score, err := svc.Score(context.Background(), "", "resume text")
	require.NoError(t, err)
	assert.Equal(t, 0.0, score)

	score, err = svc.Score(context.Background(), "job text", "")
	require.NoError(t, err)
	assert.Equal(t, 0.0, score)
}

func TestScoreZeroNormVectorIsZero(t *testing.T) {
	svc := NewSimilarityService(&fixedEmbedder{vec: make([]float32, 8)})

	score, err := svc.Score(context.Background(), "job", "resume")
	require.NoError(t, err)
	assert.Equal(t, 0.0, score)
}

func TestScorePropagatesEmbedderErrors(t *testing.T) {
	svc := NewSimilarityService(&erroringEmbedder{})

	_, err := svc.Score(context.Background(), "job", "resume")
	assert.Error(t, err)
}

func TestCosineSimilarityClamp(t *testing.T) {
	// Opposed vectors are mathematically -1; the contract clamps to 0.
	assert.Equal(t, 0.0, cosineSimilarity([]float32{1, 0}, []float32{-1, 0}))

	// Mismatched or empty inputs score 0 instead of panicking.
	assert.Equal(t, 0.0, cosineSimilarity(nil, []float32{1}))
	assert.Equal(t, 0.0, cosineSimilarity([]float32{1, 2}, []float32{1}))

	assert.InDelta(t, 1.0, cosineSimilarity([]float32{3, 4}, []float32{3, 4}), 1e-12)
}
