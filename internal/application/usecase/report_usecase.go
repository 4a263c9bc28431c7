package usecase

import (
	"context"
	"time"

	"github.com/reaksa/stockford-api/internal/application/dto"
	"github.com/reaksa/stockford-api/internal/domain"
	"github.com/reaksa/stockford-api/internal/domain/entity"
	"github.com/reaksa/stockford-api/internal/domain/repository"
)

// ReportUseCase reportes de solo lectura: stock crítico, movimientos
// diarios y resumen por categoría.
type ReportUseCase struct {
	repo repository.ReportRepository
	pdf  ReportPDFGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(repo repository.ReportRepository, pdf ReportPDFGenerator) *ReportUseCase {
	return &ReportUseCase{repo: repo, pdf: pdf}
}

// CriticalStock lista los items en bucket critical (totalStock < 0.2*stockIn).
func (uc *ReportUseCase) CriticalStock() ([]dto.ItemResponse, error) {
	items, err := uc.repo.CriticalStock()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, *toItemResponse(it))
	}
	return out, nil
}

// CriticalStockPDF genera el reporte de stock crítico como documento PDF.
func (uc *ReportUseCase) CriticalStockPDF(ctx context.Context) ([]byte, error) {
	items, err := uc.CriticalStock()
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateCriticalStockPDF(ctx, items, time.Now().UTC())
}

// DailyMovements agrega los movimientos de una categoría dentro de la
// ventana UTC del día indicado (formato 2006-01-02). Los items sin
// movimiento ese día se omiten.
func (uc *ReportUseCase) DailyMovements(category, date string) ([]dto.DailyMovementItem, error) {
	if !entity.ValidCategory(category) {
		return nil, domain.ErrInvalidInput
	}
	day, err := time.ParseInLocation("2006-01-02", date, time.UTC)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	from := day
	to := day.AddDate(0, 0, 1)

	items, err := uc.repo.ItemsWithMovements(category, from, to)
	if err != nil {
		return nil, err
	}

	out := make([]dto.DailyMovementItem, 0, len(items))
	for _, it := range items {
		entry := dto.DailyMovementItem{ItemResponse: *toItemResponse(it)}
		for _, h := range it.History {
			if h.Date.Before(from) || !h.Date.Before(to) {
				continue
			}
			switch h.Type {
			case entity.MovementTypeIn:
				entry.DailyIn = entry.DailyIn.Add(h.Quantity)
			case entity.MovementTypeOut:
				entry.DailyOut = entry.DailyOut.Add(h.Quantity)
			}
			entry.TotalMovements++
			entry.MovementDetails = append(entry.MovementDetails, dto.MovementDetail{
				Type:     h.Type,
				Quantity: h.Quantity,
				Notes:    h.Notes,
				Time:     h.Date.UTC().Format("15:04:05"),
			})
		}
		if entry.DailyIn.IsPositive() || entry.DailyOut.IsPositive() {
			out = append(out, entry)
		}
	}
	return out, nil
}

// Summary agrupa por categoría: totalItems, totalStockIn, totalStockOut,
// totalCurrentStock.
func (uc *ReportUseCase) Summary() ([]dto.CategorySummaryResponse, error) {
	rows, err := uc.repo.SummaryByCategory()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategorySummaryResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.CategorySummaryResponse{
			Category:          r.Category,
			TotalItems:        r.TotalItems,
			TotalStockIn:      r.TotalStockIn,
			TotalStockOut:     r.TotalStockOut,
			TotalCurrentStock: r.TotalCurrentStock,
		})
	}
	return out, nil
}
