package ai

import "context"

type Client interface {
	Explain(ctx context.Context, text, category string, triggered []string) (string, error)
}
