package usecase

import (
	"context"
	"time"

	"github.com/reaksa/stockford-api/internal/application/dto"
)

// ReportPDFGenerator puerto para la exportación del reporte de stock
// crítico. Lo implementa infrastructure/pdf.
type ReportPDFGenerator interface {
	GenerateCriticalStockPDF(ctx context.Context, items []dto.ItemResponse, generatedAt time.Time) ([]byte, error)
}
