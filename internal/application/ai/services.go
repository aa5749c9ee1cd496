package ai

import (
	"context"

	"github.com/scamradar/scamradar/internal/domain/ai"
	"github.com/scamradar/scamradar/internal/domain/rules"
)

// Service asks the AI client for a human-readable explanation of a
// verdict, seeded with what the deterministic pipeline already found.
// Advisory only — the decision engine never consults it.
type Service struct {
	client ai.Client
}

func NewService(client ai.Client) *Service {
	return &Service{client: client}
}

func (s *Service) Explain(ctx context.Context, text string) (string, error) {
	norm := rules.Normalize(text)
	category := rules.Categorize(norm)
	verdict := rules.Evaluate(norm)
	return s.client.Explain(ctx, text, string(category), verdict.Triggered)
}
