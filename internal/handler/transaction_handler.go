package handler

import (
	"time"

	"go-stocktrack/internal/dto"
	"go-stocktrack/internal/service"

	"github.com/gofiber/fiber/v2"
)

type TransactionHandler struct {
	ledger  service.LedgerService
	reports service.ReportService
}

func NewTransactionHandler(ledger service.LedgerService, reports service.ReportService) *TransactionHandler {
	return &TransactionHandler{ledger: ledger, reports: reports}
}

// Create applies a stock movement through the ledger.
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid JSON"})
	}

	entry, err := h.ledger.Apply(req, actorID(c))
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(entry)
}

func (h *TransactionHandler) List(c *fiber.Ctx) error {
	transactions, err := h.ledger.List()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(transactions)
}

func (h *TransactionHandler) Get(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid transaction ID"})
	}

	entry, err := h.ledger.Get(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(entry)
}

func (h *TransactionHandler) ListByProduct(c *fiber.Ctx) error {
	productID, err := parseUUID(c, "productId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid product ID"})
	}

	transactions, err := h.ledger.ListByProduct(productID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(transactions)
}

// Summary returns by-type and by-day aggregates over a date window.
// Query params: startDate, endDate (YYYY-MM-DD or RFC3339).
func (h *TransactionHandler) Summary(c *fiber.Ctx) error {
	start, err := parseDateQuery(c.Query("startDate"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid startDate"})
	}
	end, err := parseDateQuery(c.Query("endDate"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid endDate"})
	}

	summary, err := h.reports.Summary(start, end)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(summary)
}

func parseDateQuery(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
