package services

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// maxEmbedChars is the input budget for a single embedding request
// (roughly 10000 tokens). Longer texts are chunked and their chunk
// vectors averaged.
const maxEmbedChars = 40000

type geminiEmbedder struct {
	client     *genai.Client
	embedModel string
	chunker    TextChunker
}

// NewGeminiEmbedder creates the embedding client. Construction fails when
// the client cannot be built, so main can refuse to start instead of
// serving zero scores.
func NewGeminiEmbedder(apiKey, embedModel string) (Embedder, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiEmbedder{
		client:     client,
		embedModel: embedModel,
		chunker:    NewTextChunker(),
	}, nil
}

// EmbedText implements Embedder.
func (g *geminiEmbedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	if len(text) <= maxEmbedChars {
		return g.embedChunk(ctx, text)
	}

	chunks := g.chunker.ChunkText(text, maxEmbedChars)
	if len(chunks) == 0 {
		return nil, fmt.Errorf("no embeddable content")
	}

	var sum []float32
	for _, chunk := range chunks {
		vec, err := g.embedChunk(ctx, chunk)
		if err != nil {
			return nil, err
		}
		if sum == nil {
			sum = make([]float32, len(vec))
		}
		if len(vec) != len(sum) {
			return nil, fmt.Errorf("inconsistent embedding dimensions: %d vs %d", len(vec), len(sum))
		}
		for i, v := range vec {
			sum[i] += v
		}
	}

	for i := range sum {
		sum[i] /= float32(len(chunks))
	}
	return sum, nil
}

func (g *geminiEmbedder) embedChunk(ctx context.Context, text string) ([]float32, error) {
	result, err := g.client.Models.EmbedContent(ctx, g.embedModel, genai.Text(text), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to generate embedding: %w", err)
	}

	if result == nil || len(result.Embeddings) == 0 {
		return nil, fmt.Errorf("empty embedding result")
	}

	return result.Embeddings[0].Values, nil
}
