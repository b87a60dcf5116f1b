package handler

import (
	"go-stocktrack/internal/dto"
	"go-stocktrack/internal/service"

	"github.com/gofiber/fiber/v2"
)

type SupplierHandler struct {
	service service.SupplierService
}

func NewSupplierHandler(s service.SupplierService) *SupplierHandler {
	return &SupplierHandler{service: s}
}

func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateSupplierRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid JSON"})
	}

	supplier, err := h.service.Create(req)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(supplier)
}

func (h *SupplierHandler) List(c *fiber.Ctx) error {
	suppliers, err := h.service.List()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(suppliers)
}

func (h *SupplierHandler) Get(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid supplier ID"})
	}

	supplier, err := h.service.Get(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(supplier)
}

func (h *SupplierHandler) Update(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid supplier ID"})
	}

	var req dto.UpdateSupplierRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid JSON"})
	}

	supplier, err := h.service.Update(id, req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(supplier)
}

func (h *SupplierHandler) Delete(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid supplier ID"})
	}

	if err := h.service.Delete(id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Supplier removed"})
}
