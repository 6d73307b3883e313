// FILE: internal/service/shopping_list_service.go
// Service for generating, parsing and retrieving shopping lists
package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"ai-shopping-list-be/internal/dto"
	"ai-shopping-list-be/internal/entity"
	"ai-shopping-list-be/internal/mapper"
	"ai-shopping-list-be/internal/pkg/logger"
	"ai-shopping-list-be/internal/repository/contract"
	"ai-shopping-list-be/pkg/events"
	"ai-shopping-list-be/pkg/grocery"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const moduleShoppingList = "SHOPPING_LIST"

var tracer = otel.Tracer("ai-shopping-list-be/internal/service")

// EventPublisher sends domain events to other services (NATS in production).
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

type IShoppingListService interface {
	Generate(ctx context.Context, req *dto.GenerateShoppingListRequest) (*dto.ShoppingListResponse, error)
	ParseResponse(ctx context.Context, req *dto.ParseResponseRequest) (*dto.ShoppingListResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.ShoppingListResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Categories() *dto.CategoriesResponse
}

type shoppingListService struct {
	generator        *grocery.Generator
	repo             contract.ShoppingListRepository
	publisherService IPublisherService
	eventPublisher   EventPublisher // Optional
	log              logger.ILogger
	timeout          time.Duration
	now              func() time.Time
}

func NewShoppingListService(
	generator *grocery.Generator,
	repo contract.ShoppingListRepository,
	publisherService IPublisherService,
	eventPublisher EventPublisher,
	log logger.ILogger,
	timeout time.Duration,
) IShoppingListService {
	return &shoppingListService{
		generator:        generator,
		repo:             repo,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		log:              log,
		timeout:          timeout,
		now:              time.Now,
	}
}

func (s *shoppingListService) Generate(ctx context.Context, req *dto.GenerateShoppingListRequest) (*dto.ShoppingListResponse, error) {
	plan := mapper.ToMealPlan(req)

	ctx, span := tracer.Start(ctx, "shopping_list.generate")
	defer span.End()
	span.SetAttributes(attribute.Int("meal_plan.days", len(plan)))

	// The core never times out on its own; bound the model call here
	genCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		genCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := s.now()
	result, err := s.generator.GenerateDetailed(genCtx, plan)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.logFailure(err, len(plan))
		return nil, err
	}
	span.SetAttributes(
		attribute.Int("shopping_list.items", len(result.Items)),
		attribute.Int("shopping_list.skipped_lines", result.Skipped),
	)

	list := &entity.ShoppingList{
		Id:        uuid.New(),
		Items:     result.Items,
		Headers:   result.Headers,
		Skipped:   result.Skipped,
		CreatedAt: s.now(),
	}
	if err := s.repo.Save(ctx, list); err != nil {
		span.RecordError(err)
		return nil, err
	}

	s.log.Info(moduleShoppingList, "Shopping list generated", map[string]interface{}{
		"list_id":     list.Id.String(),
		"days":        len(plan),
		"items":       len(list.Items),
		"skipped":     list.Skipped,
		"duration_ms": s.now().Sub(start).Milliseconds(),
	})

	s.publishGenerated(ctx, list)

	return mapper.ToShoppingListResponse(list), nil
}

func (s *shoppingListService) ParseResponse(ctx context.Context, req *dto.ParseResponseRequest) (*dto.ShoppingListResponse, error) {
	result := grocery.NewParser(grocery.UUIDGenerator{}).ParseDetailed(req.Response)
	if result.IsEmpty() {
		return nil, grocery.NewEmptyResultError(map[string]interface{}{
			"headers": result.Headers,
			"skipped": result.Skipped,
		})
	}

	list := &entity.ShoppingList{
		Id:        uuid.New(),
		Items:     result.Items,
		Headers:   result.Headers,
		Skipped:   result.Skipped,
		CreatedAt: s.now(),
	}
	if err := s.repo.Save(ctx, list); err != nil {
		return nil, err
	}

	s.log.Debug(moduleShoppingList, "Model response parsed", map[string]interface{}{
		"list_id": list.Id.String(),
		"items":   len(list.Items),
	})

	return mapper.ToShoppingListResponse(list), nil
}

func (s *shoppingListService) Get(ctx context.Context, id uuid.UUID) (*dto.ShoppingListResponse, error) {
	list, err := s.repo.FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapper.ToShoppingListResponse(list), nil
}

func (s *shoppingListService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info(moduleShoppingList, "Shopping list deleted", map[string]interface{}{
		"list_id": id.String(),
	})
	return nil
}

func (s *shoppingListService) Categories() *dto.CategoriesResponse {
	cats := grocery.Categories()
	names := make([]string, 0, len(cats))
	for _, c := range cats {
		names = append(names, string(c))
	}
	return &dto.CategoriesResponse{
		Categories: names,
		Default:    string(grocery.CategoryOther),
	}
}

func (s *shoppingListService) logFailure(err error, days int) {
	details := map[string]interface{}{
		"error": err.Error(),
		"days":  days,
	}

	var genErr *grocery.Error
	if errors.As(err, &genErr) {
		details["kind"] = string(genErr.Kind)
		if genErr.Kind == grocery.KindValidation {
			s.log.Warn(moduleShoppingList, "Rejected meal plan", details)
			return
		}
	}
	s.log.Error(moduleShoppingList, "Shopping list generation failed", details)
}

// publishGenerated notifies listeners. Failures are logged, the list is already stored.
func (s *shoppingListService) publishGenerated(ctx context.Context, list *entity.ShoppingList) {
	counts := mapper.CategoryCounts(list.Items)

	if s.publisherService != nil {
		payload, err := json.Marshal(dto.ShoppingListGeneratedMessage{
			ListId:         list.Id,
			ItemCount:      len(list.Items),
			CategoryCounts: counts,
			GeneratedAt:    list.CreatedAt,
		})
		if err == nil {
			err = s.publisherService.Publish(ctx, payload)
		}
		if err != nil {
			s.log.Warn(moduleShoppingList, "Failed to publish in-process event", map[string]interface{}{
				"list_id": list.Id.String(),
				"error":   err.Error(),
			})
		}
	}

	if s.eventPublisher != nil {
		evt := events.NewShoppingListGenerated(list.Id.String(), len(list.Items), counts, list.CreatedAt)
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.log.Warn(moduleShoppingList, "Failed to publish event", map[string]interface{}{
				"list_id": list.Id.String(),
				"error":   err.Error(),
			})
		}
	}
}
