package categorizer

import (
	"context"
	"fmt"
	"strings"

	"fintrack/bankstmt/internal/logging"
	"fintrack/bankstmt/internal/models"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiClient implements AIClient against the Google Gemini API. The
// client is lazy: the API connection is opened on the first Categorize
// call so constructing one without an API key stays cheap.
type GeminiClient struct {
	apiKey    string
	modelName string
	logger    logging.Logger

	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiClient creates a Gemini-backed AIClient. modelName may be empty
// to use the default model.
func NewGeminiClient(apiKey, modelName string, logger logging.Logger) *GeminiClient {
	if logger == nil {
		logger = logging.GetLogger()
	}
	if modelName == "" {
		modelName = "gemini-2.0-flash"
	}
	return &GeminiClient{
		apiKey:    apiKey,
		modelName: modelName,
		logger:    logger,
	}
}

func (c *GeminiClient) ensureClient(ctx context.Context) error {
	if c.client != nil {
		return nil
	}
	if c.apiKey == "" {
		return fmt.Errorf("gemini API key not set")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(c.apiKey))
	if err != nil {
		return fmt.Errorf("failed to create Gemini client: %w", err)
	}
	c.client = client
	c.model = client.GenerativeModel(c.modelName)
	return nil
}

// knownCategories are the categories the model is allowed to answer with.
var knownCategories = []string{
	models.CategoryFood,
	models.CategoryGroceries,
	models.CategoryShopping,
	models.CategoryTransportation,
	models.CategoryHealthcare,
	models.CategoryBills,
	models.CategoryEntertainment,
	models.CategorySalary,
	models.CategoryRefunds,
	models.CategoryCashback,
	models.CategoryInvestments,
	models.CategoryCredits,
	models.CategoryMiscellaneous,
}

// Categorize asks Gemini to assign one of the known categories to the
// description.
func (c *GeminiClient) Categorize(ctx context.Context, description string) (string, error) {
	if err := c.ensureClient(ctx); err != nil {
		return "", err
	}

	prompt := fmt.Sprintf(`Categorize the following bank transaction description:
%s

Please assign it to exactly one of the following categories:
%s

Respond in this format:
Category: [Selected Category Name]`,
		description, strings.Join(knownCategories, ", "))

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini API error: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from Gemini API")
	}

	responseText := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	category := extractCategoryFromResponse(responseText)

	c.logger.WithFields(
		logging.Field{Key: "description", Value: description},
		logging.Field{Key: "category", Value: category},
	).Debug("Gemini categorization response")
	return category, nil
}

// extractCategoryFromResponse parses the model response, accepting either
// the structured "Category: X" format or a bare category name.
func extractCategoryFromResponse(response string) string {
	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "Category:") {
			return strings.TrimSpace(strings.TrimPrefix(line, "Category:"))
		}
	}

	trimmed := strings.TrimSpace(response)
	for _, known := range knownCategories {
		if strings.EqualFold(trimmed, known) {
			return known
		}
	}
	return ""
}
