package services

import (
	"context"
	"fmt"
	"math"
)

// Embedder produces a fixed-dimensional dense vector for a text.
type Embedder interface {
	EmbedText(ctx context.Context, text string) ([]float32, error)
}

type SimilarityService interface {
	Score(ctx context.Context, jdText, resumeText string) (float64, error)
}

type similarityService struct {
	embedder Embedder
}

func NewSimilarityService(embedder Embedder) SimilarityService {
	return &similarityService{embedder: embedder}
}

// Score returns the cosine similarity of the two texts' embeddings scaled
// to [0, 100]. An empty text or a zero-norm vector on either side scores
// 0.0 rather than erroring; only embedder failures propagate.
func (s *similarityService) Score(ctx context.Context, jdText, resumeText string) (float64, error) {
	if jdText == "" || resumeText == "" {
		return 0.0, nil
	}

	jdVec, err := s.embedder.EmbedText(ctx, jdText)
	if err != nil {
		return 0.0, fmt.Errorf("failed to embed job description: %w", err)
	}

	resumeVec, err := s.embedder.EmbedText(ctx, resumeText)
	if err != nil {
		return 0.0, fmt.Errorf("failed to embed resume: %w", err)
	}

	return cosineSimilarity(jdVec, resumeVec) * 100, nil
}

// cosineSimilarity is clamped to [0, 1]. The explicit norm checks guard
// against zero vectors; the clamp guards against floating-point overshoot
// past the mathematical bounds.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(b) == 0 || len(a) != len(b) {
		return 0.0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0.0
	}

	sim := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	return math.Max(0.0, math.Min(1.0, sim))
}
