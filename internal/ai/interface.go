package ai

import (
	"context"
)

// Inferrer defines the contract for the generative-text collaborator.
// This interface allows swapping providers (Gemini, OpenAI, etc.) and
// keeps the reply-scraping logic mockable in tests.
type Inferrer interface {
	// InferCategory asks the model for a cost modifier and a recommended
	// vehicle for an unknown delivery category. The reply is parsed but
	// not validated; range checks belong to the caller.
	InferCategory(ctx context.Context, category string) (CategoryResult, error)

	// CurrentFuelPrice asks the model for today's average retail petrol
	// price in Canada, in CAD per litre.
	CurrentFuelPrice(ctx context.Context) (float64, error)
}
