package grocery

import (
	"context"
)

// ModelCaller is the language model behind the generator. The context
// carries cancellation and deadlines; implementations must not retry on
// their own behalf.
type ModelCaller interface {
	Complete(ctx context.Context, systemInstruction, userPrompt string) (string, error)
}

// ModelCallerFunc adapts a function to ModelCaller.
type ModelCallerFunc func(ctx context.Context, systemInstruction, userPrompt string) (string, error)

func (f ModelCallerFunc) Complete(ctx context.Context, systemInstruction, userPrompt string) (string, error) {
	return f(ctx, systemInstruction, userPrompt)
}

// GeneratorOption customizes a Generator.
type GeneratorOption func(*Generator)

// WithIDGenerator sets the id strategy used for produced items.
func WithIDGenerator(ids IDGenerator) GeneratorOption {
	return func(g *Generator) {
		g.newIDs = func() IDGenerator { return ids }
	}
}

// WithIDGeneratorFactory builds a fresh id strategy for every Generate call,
// e.g. a new SequentialIDs so each list starts at 1.
func WithIDGeneratorFactory(factory func() IDGenerator) GeneratorOption {
	return func(g *Generator) {
		g.newIDs = factory
	}
}

// Generator turns a meal plan into a shopping list by asking the model and
// parsing its answer. It keeps no per-call state and is safe for concurrent use.
type Generator struct {
	model  ModelCaller
	newIDs func() IDGenerator
}

func NewGenerator(model ModelCaller, opts ...GeneratorOption) *Generator {
	g := &Generator{
		model:  model,
		newIDs: func() IDGenerator { return UUIDGenerator{} },
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate validates plan, calls the model once and parses the reply.
// It returns either a non-empty list or an *Error, never both.
func (g *Generator) Generate(ctx context.Context, plan MealPlan) ([]ShoppingItem, error) {
	result, err := g.GenerateDetailed(ctx, plan)
	if err != nil {
		return nil, err
	}
	return result.Items, nil
}

// GenerateDetailed is Generate with the parse diagnostics kept.
func (g *Generator) GenerateDetailed(ctx context.Context, plan MealPlan) (*ParseResult, error) {
	// 1. Validate
	if len(plan) == 0 {
		return nil, NewValidationError(ReasonNoMealPlan)
	}

	// 2. Ask the model
	response, err := g.model.Complete(ctx, SystemInstruction(), BuildPrompt(plan))
	if err != nil {
		return nil, NewGenerationError(err)
	}

	// 3. Parse
	result := NewParser(g.newIDs()).ParseDetailed(response)

	// 4. Validate result
	if result.IsEmpty() {
		return nil, NewEmptyResultError(map[string]interface{}{
			"headers": result.Headers,
			"skipped": result.Skipped,
		})
	}

	return result, nil
}
