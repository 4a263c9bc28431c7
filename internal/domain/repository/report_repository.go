package repository

import (
	"time"

	"github.com/reaksa/stockford-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// CategorySummary totales agregados de una categoría.
type CategorySummary struct {
	Category          string
	TotalItems        int64
	TotalStockIn      decimal.Decimal
	TotalStockOut     decimal.Decimal
	TotalCurrentStock decimal.Decimal
}

// ReportRepository consultas de solo lectura para reportes.
type ReportRepository interface {
	// CriticalStock devuelve los items con totalStock < 0.2 * stockIn
	// (stockIn > 0), con historial cargado.
	CriticalStock() ([]*entity.Item, error)
	// ItemsWithMovements devuelve los items de la categoría que tienen al
	// menos un movimiento con fecha en [from, to), con historial completo.
	ItemsWithMovements(category string, from, to time.Time) ([]*entity.Item, error)
	// SummaryByCategory agrupa totales por categoría.
	SummaryByCategory() ([]CategorySummary, error)
}
