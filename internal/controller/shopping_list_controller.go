package controller

import (
	"errors"

	"ai-shopping-list-be/internal/dto"
	"ai-shopping-list-be/internal/pkg/serverutils"
	"ai-shopping-list-be/internal/repository/contract"
	"ai-shopping-list-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IShoppingListController interface {
	RegisterRoutes(r fiber.Router)
	Generate(ctx *fiber.Ctx) error
	Parse(ctx *fiber.Ctx) error
	Categories(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type shoppingListController struct {
	service service.IShoppingListService
}

func NewShoppingListController(service service.IShoppingListService) IShoppingListController {
	return &shoppingListController{service: service}
}

func (c *shoppingListController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/shopping-list/v1")
	h.Post("/generate", c.Generate)
	h.Post("/parse", c.Parse)
	h.Get("/categories", c.Categories)
	h.Get("/:id", c.Show)
	h.Delete("/:id", c.Delete)
}

func (c *shoppingListController) Generate(ctx *fiber.Ctx) error {
	var req dto.GenerateShoppingListRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Generate(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success generate shopping list", res))
}

func (c *shoppingListController) Parse(ctx *fiber.Ctx) error {
	var req dto.ParseResponseRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.ParseResponse(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success parse shopping list", res))
}

func (c *shoppingListController) Categories(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success get categories", c.service.Categories()))
}

func (c *shoppingListController) Show(ctx *fiber.Ctx) error {
	id, err := parseListId(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Get(ctx.UserContext(), id)
	if errors.Is(err, contract.ErrShoppingListNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "Shopping list not found")
	}
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show shopping list", res))
}

func (c *shoppingListController) Delete(ctx *fiber.Ctx) error {
	id, err := parseListId(ctx)
	if err != nil {
		return err
	}

	err = c.service.Delete(ctx.UserContext(), id)
	if errors.Is(err, contract.ErrShoppingListNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "Shopping list not found")
	}
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success delete shopping list", nil))
}

func parseListId(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid shopping list id")
	}
	return id, nil
}
