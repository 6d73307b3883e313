package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"ai-shopping-list-be/internal/dto"
	"ai-shopping-list-be/internal/pkg/logger"
	"ai-shopping-list-be/internal/repository/contract"
	"ai-shopping-list-be/internal/repository/memory"
	"ai-shopping-list-be/pkg/events"
	"ai-shopping-list-be/pkg/grocery"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const modelResponse = `Produce:
- Tomatoes - 4 pieces
- Spinach - 1 bag

Dairy:
- Milk - 1 gallon

Random unparseable line without a name`

type recordingEvents struct {
	mu     sync.Mutex
	events []events.Event
	err    error
}

func (r *recordingEvents) Publish(ctx context.Context, event events.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return r.err
}

type fixture struct {
	svc    IShoppingListService
	repo   *memory.ShoppingListRepository
	pubSub *gochannel.GoChannel
	events *recordingEvents
	calls  *int
}

func newFixture(t *testing.T, response string, modelErr error) *fixture {
	t.Helper()

	calls := 0
	model := grocery.ModelCallerFunc(func(ctx context.Context, system, user string) (string, error) {
		calls++
		if err := ctx.Err(); err != nil {
			return "", err
		}
		return response, modelErr
	})

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	t.Cleanup(func() { _ = pubSub.Close() })

	repo := memory.NewShoppingListRepository(time.Minute)
	evts := &recordingEvents{}

	svc := NewShoppingListService(
		grocery.NewGenerator(model, grocery.WithIDGeneratorFactory(func() grocery.IDGenerator {
			return grocery.NewSequentialIDs("item")
		})),
		repo,
		NewPublisherService("shopping_list_generated", pubSub),
		evts,
		logger.NewNopLogger(),
		time.Second,
	)

	return &fixture{svc: svc, repo: repo, pubSub: pubSub, events: evts, calls: &calls}
}

func samplePlan() *dto.GenerateShoppingListRequest {
	return &dto.GenerateShoppingListRequest{
		MealPlan: map[string]map[string]*dto.RecipeDTO{
			"Monday": {
				"dinner": {
					Title: "Salad",
					Ingredients: []dto.IngredientDTO{
						{Name: "tomatoes", Amount: "4"},
					},
				},
				"lunch": nil,
			},
		},
	}
}

func TestGenerate(t *testing.T) {
	f := newFixture(t, modelResponse, nil)
	ctx := context.Background()

	messages, err := f.pubSub.Subscribe(ctx, "shopping_list_generated")
	require.NoError(t, err)

	resp, err := f.svc.Generate(ctx, samplePlan())
	require.NoError(t, err)

	require.Len(t, resp.Items, 3)
	assert.Equal(t, "item-1", resp.Items[0].Id)
	assert.Equal(t, "Tomatoes", resp.Items[0].Name)
	assert.Equal(t, 4.0, resp.Items[0].Quantity)
	assert.Equal(t, "pieces", resp.Items[0].Unit)
	assert.Equal(t, "Produce", resp.Items[0].Category)
	assert.Equal(t, "Dairy", resp.Items[2].Category)
	assert.Equal(t, []string{"Produce", "Dairy"}, resp.Categories)
	assert.Equal(t, dto.ParseStatsDTO{Items: 3, Headers: 2, Skipped: 1}, resp.Stats)

	stored, err := f.repo.FindById(ctx, resp.Id)
	require.NoError(t, err)
	assert.Len(t, stored.Items, 3)

	select {
	case msg := <-messages:
		var payload dto.ShoppingListGeneratedMessage
		require.NoError(t, json.Unmarshal(msg.Payload, &payload))
		msg.Ack()
		assert.Equal(t, resp.Id, payload.ListId)
		assert.Equal(t, 3, payload.ItemCount)
		assert.Equal(t, map[string]int{"Produce": 2, "Dairy": 1}, payload.CategoryCounts)
	case <-time.After(time.Second):
		t.Fatal("expected a generated message")
	}

	require.Len(t, f.events.events, 1)
	assert.Equal(t, events.TypeShoppingListGenerated, f.events.events[0].EventType())
}

func TestGenerateEmptyPlan(t *testing.T) {
	f := newFixture(t, modelResponse, nil)

	_, err := f.svc.Generate(context.Background(), &dto.GenerateShoppingListRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, grocery.ErrValidation)
	assert.Equal(t, 0, *f.calls)
	assert.Empty(t, f.events.events)
}

func TestGenerateModelFailure(t *testing.T) {
	cause := errors.New("connection refused")
	f := newFixture(t, "", cause)

	_, err := f.svc.Generate(context.Background(), samplePlan())
	require.Error(t, err)
	assert.ErrorIs(t, err, grocery.ErrGeneration)
	assert.ErrorIs(t, err, cause)
	assert.Empty(t, f.events.events)
}

func TestGenerateEmptyResult(t *testing.T) {
	f := newFixture(t, "Produce:\nDairy:\n", nil)

	_, err := f.svc.Generate(context.Background(), samplePlan())
	require.Error(t, err)
	assert.ErrorIs(t, err, grocery.ErrEmptyResult)
}

func TestGenerateEventFailureDoesNotFailRequest(t *testing.T) {
	f := newFixture(t, modelResponse, nil)
	f.events.err = errors.New("nats down")

	resp, err := f.svc.Generate(context.Background(), samplePlan())
	require.NoError(t, err)
	assert.Len(t, resp.Items, 3)
}

func TestParseResponse(t *testing.T) {
	f := newFixture(t, "", nil)
	ctx := context.Background()

	resp, err := f.svc.ParseResponse(ctx, &dto.ParseResponseRequest{Response: modelResponse})
	require.NoError(t, err)
	assert.Len(t, resp.Items, 3)
	assert.Equal(t, 0, *f.calls)
	for _, item := range resp.Items {
		_, err := uuid.Parse(item.Id)
		assert.NoError(t, err)
	}

	got, err := f.svc.Get(ctx, resp.Id)
	require.NoError(t, err)
	assert.Equal(t, resp.Items, got.Items)

	_, err = f.svc.ParseResponse(ctx, &dto.ParseResponseRequest{Response: "just some prose"})
	assert.ErrorIs(t, err, grocery.ErrEmptyResult)
}

func TestDelete(t *testing.T) {
	f := newFixture(t, modelResponse, nil)
	ctx := context.Background()

	resp, err := f.svc.Generate(ctx, samplePlan())
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(ctx, resp.Id))

	_, err = f.svc.Get(ctx, resp.Id)
	assert.ErrorIs(t, err, contract.ErrShoppingListNotFound)
	assert.ErrorIs(t, f.svc.Delete(ctx, resp.Id), contract.ErrShoppingListNotFound)
}

func TestGetNotFound(t *testing.T) {
	f := newFixture(t, "", nil)

	_, err := f.svc.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, contract.ErrShoppingListNotFound)
}

func TestCategories(t *testing.T) {
	f := newFixture(t, "", nil)

	resp := f.svc.Categories()
	assert.Equal(t, []string{"Produce", "Dairy", "Meat & Seafood", "Pantry", "Frozen", "Beverages", "Other"}, resp.Categories)
	assert.Equal(t, "Other", resp.Default)
}
