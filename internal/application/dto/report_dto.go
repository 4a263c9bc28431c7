package dto

import "github.com/shopspring/decimal"

// MovementDetail un movimiento dentro de la ventana del reporte diario.
type MovementDetail struct {
	Type     string          `json:"type"`
	Quantity decimal.Decimal `json:"quantity"`
	Notes    string          `json:"notes"`
	Time     string          `json:"time"` // HH:MM:SS
}

// DailyMovementItem item con sus totales de la ventana diaria. Solo se
// incluyen items con al menos un movimiento ese día.
type DailyMovementItem struct {
	ItemResponse
	DailyIn         decimal.Decimal  `json:"dailyIn"`
	DailyOut        decimal.Decimal  `json:"dailyOut"`
	TotalMovements  int              `json:"totalMovements"`
	MovementDetails []MovementDetail `json:"movementDetails"`
}

// CategorySummaryResponse totales de una categoría para el reporte resumen.
type CategorySummaryResponse struct {
	Category          string          `json:"category"`
	TotalItems        int64           `json:"totalItems"`
	TotalStockIn      decimal.Decimal `json:"totalStockIn"`
	TotalStockOut     decimal.Decimal `json:"totalStockOut"`
	TotalCurrentStock decimal.Decimal `json:"totalCurrentStock"`
}
