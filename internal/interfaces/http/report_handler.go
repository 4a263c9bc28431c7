package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/reaksa/stockford-api/internal/application/dto"
	"github.com/reaksa/stockford-api/internal/application/usecase"
	"github.com/reaksa/stockford-api/internal/domain"
)

// ReportHandler maneja los reportes de solo lectura (protegido).
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// CriticalStock godoc
// @Summary      Items en estado crítico
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ItemResponse
// @Router       /api/reports/critical-stock [get]
func (h *ReportHandler) CriticalStock(c *fiber.Ctx) error {
	out, err := h.uc.CriticalStock()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// CriticalStockPDF godoc
// @Summary      Reporte de stock crítico en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/reports/critical-stock/pdf [get]
func (h *ReportHandler) CriticalStockPDF(c *fiber.Ctx) error {
	doc, err := h.uc.CriticalStockPDF(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	filename := "critical-stock-" + time.Now().UTC().Format("2006-01-02") + ".pdf"
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(doc)
}

// DailyMovements godoc
// @Summary      Movimientos de una categoría en un día
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        category  query  string  true   "accessory|tool"
// @Param        date      query  string  false  "YYYY-MM-DD (UTC, default hoy)"
// @Success      200  {array}   dto.DailyMovementItem
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/daily-movements [get]
func (h *ReportHandler) DailyMovements(c *fiber.Ctx) error {
	category := c.Query("category")
	date := c.Query("date")
	if date == "" {
		date = time.Now().UTC().Format("2006-01-02")
	}
	out, err := h.uc.DailyMovements(category, date)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "category válida y date en formato YYYY-MM-DD son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Summary godoc
// @Summary      Resumen de inventario por categoría
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CategorySummaryResponse
// @Router       /api/reports/summary [get]
func (h *ReportHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
