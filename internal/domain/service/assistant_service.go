package service

import (
	"context"
)

// AssistantService is the boundary to the generative-text provider. A single
// call, no retry or backoff; failures surface directly to the caller.
type AssistantService interface {
	ImproveSummary(ctx context.Context, summary string) (string, error)
}
