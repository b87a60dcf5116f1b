package handler

import (
	"strconv"

	"go-stocktrack/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	service service.ReportService
}

func NewReportHandler(s service.ReportService) *ReportHandler {
	return &ReportHandler{service: s}
}

// StockMovement returns per-day inbound/outbound quantities for charts.
// Query params: days (default 7)
func (h *ReportHandler) StockMovement(c *fiber.Ctx) error {
	days, err := strconv.Atoi(c.Query("days", "7"))
	if err != nil || days <= 0 {
		days = 7
	}

	data, err := h.service.StockMovement(days)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(fiber.Map{
		"period": days,
		"data":   data,
	})
}

// DashboardStats returns overview statistics.
func (h *ReportHandler) DashboardStats(c *fiber.Ctx) error {
	stats, err := h.service.DashboardStats()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(stats)
}
