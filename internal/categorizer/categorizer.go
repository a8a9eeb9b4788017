// Package categorizer maps a transaction description to exactly one
// category string using, in order: the user's keyword rules, credit
// heuristics, a fixed list of regex fallback patterns, an optional AI
// client, and finally the Miscellaneous sentinel.
package categorizer

import (
	"context"
	"strings"

	"fintrack/bankstmt/internal/logging"
	"fintrack/bankstmt/internal/models"
)

// RuleSource supplies the active keyword rules in match-priority order.
// The mapping store implements this.
type RuleSource interface {
	ActiveRules() []models.KeywordRule
}

// Categorizer assigns categories to transaction descriptions. It holds no
// per-call state and does not cache: rule changes take effect on the next
// call.
type Categorizer struct {
	rules    RuleSource
	logger   logging.Logger
	aiClient AIClient
}

// New creates a Categorizer over the given rule source. A nil logger falls
// back to the default logger.
func New(rules RuleSource, logger logging.Logger) *Categorizer {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Categorizer{
		rules:  rules,
		logger: logger,
	}
}

// SetAIClient installs an optional AI fallback consulted only when the
// deterministic chain found nothing. With no client the chain is fully
// deterministic given the rule set.
func (c *Categorizer) SetAIClient(client AIClient) {
	c.aiClient = client
}

// Categorize returns the category for a transaction description. Rule
// order is significant: the first matching keyword wins.
func (c *Categorizer) Categorize(description string) string {
	lowered := strings.ToLower(description)

	for _, rule := range c.rules.ActiveRules() {
		if rule.Matches(lowered) {
			c.logger.WithFields(
				logging.Field{Key: "keyword", Value: rule.Keyword},
				logging.Field{Key: "category", Value: rule.Category},
			).Debug("Categorized by keyword rule")
			return rule.Category
		}
	}

	if category, found := matchCreditHeuristics(lowered); found {
		c.logger.WithField("category", category).Debug("Categorized by credit heuristic")
		return category
	}

	if category, found := matchFallbackPatterns(lowered); found {
		c.logger.WithField("category", category).Debug("Categorized by fallback pattern")
		return category
	}

	if c.aiClient != nil {
		category, err := c.aiClient.Categorize(context.Background(), description)
		if err != nil {
			c.logger.WithError(err).Warn("AI categorization failed, using sentinel category")
		} else if category != "" {
			c.logger.WithField("category", category).Debug("Categorized by AI client")
			return category
		}
	}

	return models.CategoryMiscellaneous
}
