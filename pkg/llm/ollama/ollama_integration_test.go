package ollama

import (
	"context"
	"os"
	"testing"
	"time"

	"ai-shopping-list-be/pkg/grocery"
	"ai-shopping-list-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs against a local server:
// OLLAMA_INTEGRATION_URL=http://localhost:11434 OLLAMA_INTEGRATION_MODEL=gemma:2b go test ./pkg/llm/ollama/ -run Integration
func TestIntegrationGenerateShoppingList(t *testing.T) {
	baseURL := os.Getenv("OLLAMA_INTEGRATION_URL")
	if baseURL == "" {
		t.Skip("OLLAMA_INTEGRATION_URL not set")
	}
	model := os.Getenv("OLLAMA_INTEGRATION_MODEL")
	if model == "" {
		model = "gemma:2b"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	caller := llm.NewChatCaller(NewOllamaProvider(baseURL, model), llm.WithTemperature(0.2))
	generator := grocery.NewGenerator(caller, grocery.WithIDGenerator(grocery.NewSequentialIDs("item")))

	plan := grocery.MealPlan{
		"Monday": grocery.DayPlan{
			grocery.SlotBreakfast: {
				Title: "Oatmeal",
				Ingredients: []grocery.Ingredient{
					{Name: "rolled oats", Amount: "1", Unit: "cup"},
					{Name: "milk", Amount: "1", Unit: "cup"},
				},
			},
			grocery.SlotDinner: {
				Title: "Grilled salmon",
				Ingredients: []grocery.Ingredient{
					{Name: "salmon fillet", Amount: "2"},
					{Name: "spinach", Amount: "1", Unit: "bag"},
				},
			},
		},
	}

	items, err := generator.Generate(ctx, plan)
	require.NoError(t, err)
	require.NotEmpty(t, items)

	for _, item := range items {
		assert.NotEmpty(t, item.Name)
		assert.Greater(t, item.Quantity, 0.0)
		assert.True(t, item.Category.IsValid(), "unexpected category %q", item.Category)
	}
	t.Logf("model returned %d items", len(items))
}
