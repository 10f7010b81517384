package llm

import (
	"context"
	"errors"
	"strings"

	vertexgenai "cloud.google.com/go/vertexai/genai"
)

// VertexGemini runs Gemini models through Vertex AI using application
// default credentials.
type VertexGemini struct {
	client *vertexgenai.Client
}

func NewVertexGemini(ctx context.Context, projectID, location string) (*VertexGemini, error) {
	if projectID == "" {
		return nil, errors.New("VERTEX_PROJECT is required for the vertex provider")
	}
	c, err := vertexgenai.NewClient(ctx, projectID, location)
	if err != nil {
		return nil, err
	}
	return &VertexGemini{client: c}, nil
}

func (v *VertexGemini) Name() string { return "vertex" }

func (v *VertexGemini) Close() error { return v.client.Close() }

func (v *VertexGemini) Complete(ctx context.Context, req Request) (string, error) {
	m := v.client.GenerativeModel(req.Model)
	m.SystemInstruction = &vertexgenai.Content{
		Parts: []vertexgenai.Part{vertexgenai.Text(req.System)},
	}

	resp, err := m.GenerateContent(ctx, vertexgenai.Text(req.User))
	if err != nil {
		return "", err
	}

	// first candidate only
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrEmptyCompletion
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(vertexgenai.Text); ok {
			b.WriteString(string(t))
		}
	}
	if strings.TrimSpace(b.String()) == "" {
		return "", ErrEmptyCompletion
	}
	return b.String(), nil
}
