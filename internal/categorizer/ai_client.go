package categorizer

import "context"

// AIClient is an optional external categorization service consulted only
// after the deterministic chain has found nothing. Implementations call an
// external API; this abstraction keeps the core testable offline.
type AIClient interface {
	// Categorize returns a category name for the description, or an empty
	// string when the service could not decide.
	Categorize(ctx context.Context, description string) (string, error)
}
