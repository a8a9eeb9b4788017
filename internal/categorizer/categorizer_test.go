package categorizer

import (
	"context"
	"errors"
	"testing"

	"fintrack/bankstmt/internal/logging"
	"fintrack/bankstmt/internal/models"

	"github.com/stretchr/testify/assert"
)

// staticRules is a fixed-order RuleSource for tests.
type staticRules []models.KeywordRule

func (r staticRules) ActiveRules() []models.KeywordRule { return r }

func newTestCategorizer(rules ...models.KeywordRule) *Categorizer {
	return New(staticRules(rules), &logging.MockLogger{})
}

func TestCategorize_KeywordRuleCaseInsensitive(t *testing.T) {
	c := newTestCategorizer(models.KeywordRule{Keyword: "zomato", Category: models.CategoryFood})

	assert.Equal(t, models.CategoryFood, c.Categorize("ZOMATO ORDER #123"))
	assert.Equal(t, models.CategoryFood, c.Categorize("upi/zomato/910384"))
}

func TestCategorize_FirstMatchingRuleWins(t *testing.T) {
	c := newTestCategorizer(
		models.KeywordRule{Keyword: "amazon", Category: models.CategoryShopping},
		models.KeywordRule{Keyword: "amazon prime", Category: models.CategoryEntertainment},
	)

	// Rule order is a policy decision: the earlier, broader rule wins.
	assert.Equal(t, models.CategoryShopping, c.Categorize("AMAZON PRIME SUBSCRIPTION"))
}

func TestCategorize_Deterministic(t *testing.T) {
	c := newTestCategorizer(models.KeywordRule{Keyword: "uber", Category: models.CategoryTransportation})

	for i := 0; i < 5; i++ {
		assert.Equal(t, models.CategoryTransportation, c.Categorize("UBER TRIP BLR"))
	}
}

func TestCategorize_CreditHeuristics(t *testing.T) {
	c := newTestCategorizer()

	tests := []struct {
		description string
		want        string
	}{
		{"SALARY CREDIT MARCH", models.CategorySalary},
		{"ANNUAL BONUS PAYOUT", models.CategoryBonus},
		{"FD INTEREST", models.CategoryInvestments},
		{"REFUND FOR ORDER 42", models.CategoryRefunds},
		{"CASHBACK OFFER", models.CategoryCashback},
		// Income-like but no specialized family.
		{"NEFT CR AXIS BANK RAVI", models.CategoryCredits},
		{"AMOUNT CREDITED BY TRANSFER", models.CategoryCredits},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, c.Categorize(tt.description), tt.description)
	}
}

func TestCategorize_FallbackPatternOrder(t *testing.T) {
	c := newTestCategorizer()

	assert.Equal(t, models.CategoryTransportation, c.Categorize("HP PETROL PUMP"))
	assert.Equal(t, models.CategoryFood, c.Categorize("ANNA RESTAURANT CHENNAI"))
	assert.Equal(t, models.CategoryHealthcare, c.Categorize("CITY HOSPITAL OPD"))
	assert.Equal(t, models.CategoryBills, c.Categorize("STATE ELECTRICITY BOARD"))
	assert.Equal(t, models.CategoryGroceries, c.Categorize("FRESH VEGETABLE MART"))
}

func TestCategorize_KeywordRulesPrecedeFallbacks(t *testing.T) {
	c := newTestCategorizer(models.KeywordRule{Keyword: "petrol", Category: "Vehicle"})

	assert.Equal(t, "Vehicle", c.Categorize("HP PETROL PUMP"))
}

func TestCategorize_Miscellaneous(t *testing.T) {
	c := newTestCategorizer()
	assert.Equal(t, models.CategoryMiscellaneous, c.Categorize("XK91 ??"))
}

// stubAIClient is a canned AIClient for tests.
type stubAIClient struct {
	category string
	err      error
	calls    int
}

func (s *stubAIClient) Categorize(ctx context.Context, description string) (string, error) {
	s.calls++
	return s.category, s.err
}

func TestCategorize_AIClientOnlyConsultedAsLastResort(t *testing.T) {
	ai := &stubAIClient{category: "Travel"}
	c := newTestCategorizer(models.KeywordRule{Keyword: "zomato", Category: models.CategoryFood})
	c.SetAIClient(ai)

	assert.Equal(t, models.CategoryFood, c.Categorize("ZOMATO ORDER"))
	assert.Equal(t, 0, ai.calls)

	assert.Equal(t, "Travel", c.Categorize("XK91 ??"))
	assert.Equal(t, 1, ai.calls)
}

func TestCategorize_AIFailureFallsBackToSentinel(t *testing.T) {
	c := newTestCategorizer()
	c.SetAIClient(&stubAIClient{err: errors.New("quota exceeded")})

	assert.Equal(t, models.CategoryMiscellaneous, c.Categorize("XK91 ??"))
}

func TestExtractCategoryFromResponse(t *testing.T) {
	assert.Equal(t, "Shopping",
		extractCategoryFromResponse("Category: Shopping\nDescription: retail purchase"))
	assert.Equal(t, models.CategoryFood, extractCategoryFromResponse("food & dining"))
	assert.Equal(t, "", extractCategoryFromResponse("no idea"))
}
