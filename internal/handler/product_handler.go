package handler

import (
	"strconv"

	"go-stocktrack/internal/dto"
	"go-stocktrack/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ProductHandler struct {
	service service.ProductService
}

func NewProductHandler(s service.ProductService) *ProductHandler {
	return &ProductHandler{service: s}
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid JSON"})
	}

	product, err := h.service.Create(req, actorID(c))
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(product)
}

// List supports the typed filter set: search, category, stockFilter
// (low/out/in), page, limit.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	filter := dto.ProductFilter{
		Search: c.Query("search"),
		Stock:  dto.StockFilter(c.Query("stockFilter")),
	}
	if !filter.Stock.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid stockFilter; use low, out or in"})
	}
	if raw := c.Query("category"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid category ID"})
		}
		filter.CategoryID = &id
	}
	filter.Page, _ = strconv.Atoi(c.Query("page", "1"))
	filter.Limit, _ = strconv.Atoi(c.Query("limit", "10"))

	list, err := h.service.List(filter)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid product ID"})
	}

	product, err := h.service.Get(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(product)
}

func (h *ProductHandler) LowStock(c *fiber.Ctx) error {
	products, err := h.service.LowStock()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(products)
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid product ID"})
	}

	var req dto.UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid JSON"})
	}

	product, err := h.service.Update(id, req, actorID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(product)
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid product ID"})
	}

	result, err := h.service.Delete(id)
	if err != nil {
		return writeError(c, err)
	}

	message := "Product deleted successfully"
	if result.Deactivated {
		message = "Product deactivated; it has ledger history and cannot be removed"
	}
	return c.JSON(fiber.Map{"message": message, "deactivated": result.Deactivated})
}
