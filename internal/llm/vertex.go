package llm

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/vertexai/genai"
	"google.golang.org/api/option"

	"github.com/trendcraft/trendcraft-server/internal/config"
)

// Generator sends one prompt to a hosted large language model and returns
// the raw text response. A single blocking request per call: no caching, no
// retry, no streaming; remote failure propagates to the caller.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// VertexGenerator talks to a Vertex AI generative model.
type VertexGenerator struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewVertexGenerator(ctx context.Context, cfg *config.Config) (*VertexGenerator, error) {
	client, err := genai.NewClient(ctx, cfg.GCPProject, cfg.GCPLocation,
		option.WithCredentialsFile(cfg.GoogleCredentialsPath))
	if err != nil {
		return nil, fmt.Errorf("failed to create vertex client: %w", err)
	}

	return &VertexGenerator{
		client: client,
		model:  client.GenerativeModel(cfg.LLMModel),
	}, nil
}

func (g *VertexGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("generate content failed: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("model returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return sb.String(), nil
}

func (g *VertexGenerator) Close() error {
	return g.client.Close()
}
